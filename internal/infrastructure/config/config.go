package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type DatabaseConfig struct {
	Enabled  bool
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type KafkaConfig struct {
	Enabled bool
	Brokers []string
	Topic   string
}

// CollaboratorConfig points at one external decision-support service. An
// empty BaseURL means the adapter runs with deterministic simulated
// responses.
type CollaboratorConfig struct {
	BaseURL        string
	APIKey         string
	TimeoutSeconds int
	MaxRetries     int
	RetryBackoffMs int
}

type ObservabilityConfig struct {
	LogLevel     string
	LogFormat    string
	OTLPEndpoint string
}

type Config struct {
	GRPCPort    int
	HTTPPort    int
	ServiceName string

	DB    DatabaseConfig
	Kafka KafkaConfig

	PolicyRetrieval CollaboratorConfig
	RiskScoring     CollaboratorConfig
	Documents       CollaboratorConfig
	Packets         CollaboratorConfig

	// PolicyFile is an optional YAML file overriding tier thresholds and the
	// document catalog.
	PolicyFile string

	Observability ObservabilityConfig
}

func (c Config) Validate() {
	if c.DB.Enabled && c.DB.Password == "" {
		panic("DB_PASSWORD environment variable is required when persistence is enabled")
	}
	if c.Kafka.Enabled && len(c.Kafka.Brokers) == 0 {
		panic("KAFKA_BROKERS environment variable is required when event publishing is enabled")
	}
}

func Load() Config {
	return Config{
		GRPCPort:    getEnvInt("GRPC_PORT", 9094),
		HTTPPort:    getEnvInt("HTTP_PORT", 8094),
		ServiceName: "risk-assessment-service",
		DB: DatabaseConfig{
			Enabled:  getEnvBool("DB_ENABLED", false),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "risk"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "risk_assessment"),
			SSLMode:  getEnv("DB_SSLMODE", "require"),
		},
		Kafka: KafkaConfig{
			Enabled: getEnvBool("KAFKA_ENABLED", false),
			Brokers: strings.Split(getEnv("KAFKA_BROKERS", "localhost:9092"), ","),
			Topic:   getEnv("KAFKA_TOPIC", "risk.assessments"),
		},
		PolicyRetrieval: collaborator("POLICY"),
		RiskScoring:     collaborator("SCORING"),
		Documents:       collaborator("DOCUMENTS"),
		Packets:         collaborator("PACKETS"),
		PolicyFile:      getEnv("ASSESSMENT_POLICY_FILE", ""),
		Observability: ObservabilityConfig{
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			LogFormat:    getEnv("LOG_FORMAT", "json"),
			OTLPEndpoint: getEnv("OTLP_ENDPOINT", ""),
		},
	}
}

func collaborator(prefix string) CollaboratorConfig {
	return CollaboratorConfig{
		BaseURL:        getEnv(prefix+"_BASE_URL", ""),
		APIKey:         getEnv(prefix+"_API_KEY", ""),
		TimeoutSeconds: getEnvInt(prefix+"_TIMEOUT_SECONDS", 10),
		MaxRetries:     getEnvInt(prefix+"_MAX_RETRIES", 3),
		RetryBackoffMs: getEnvInt(prefix+"_RETRY_BACKOFF_MS", 200),
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}
