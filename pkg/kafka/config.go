package kafka

// Config holds broker connection parameters shared by producers.
type Config struct {
	// SASL configuration for authenticated clusters.
	SASLMechanism string // "PLAIN", "SCRAM-SHA-256" or "SCRAM-SHA-512"
	SASLUsername  string
	SASLPassword  string

	Brokers []string

	// TLS enables TLS for broker connections.
	TLS         bool
	SASLEnabled bool
}
