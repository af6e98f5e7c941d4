package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskTier – immutable value object
// ---------------------------------------------------------------------------

// RiskTier is the discrete risk classification derived from a numeric score.
// Tiers form an ordered ladder: LOW < MEDIUM < HIGH < DECLINE.
type RiskTier struct {
	value string
	rank  int
}

const (
	riskTierLow     = "LOW"
	riskTierMedium  = "MEDIUM"
	riskTierHigh    = "HIGH"
	riskTierDecline = "DECLINE"
)

var (
	RiskTierLow     = RiskTier{value: riskTierLow, rank: 0}
	RiskTierMedium  = RiskTier{value: riskTierMedium, rank: 1}
	RiskTierHigh    = RiskTier{value: riskTierHigh, rank: 2}
	RiskTierDecline = RiskTier{value: riskTierDecline, rank: 3}
)

var validRiskTiers = map[string]RiskTier{
	riskTierLow:     RiskTierLow,
	riskTierMedium:  RiskTierMedium,
	riskTierHigh:    RiskTierHigh,
	riskTierDecline: RiskTierDecline,
}

// Ladder returns all tiers from least to most risky.
func Ladder() []RiskTier {
	return []RiskTier{RiskTierLow, RiskTierMedium, RiskTierHigh, RiskTierDecline}
}

// NewRiskTier creates a RiskTier from a raw string.
func NewRiskTier(s string) (RiskTier, error) {
	v, ok := validRiskTiers[s]
	if !ok {
		return RiskTier{}, fmt.Errorf("invalid risk tier: %q", s)
	}
	return v, nil
}

// String returns the string representation of the tier.
func (t RiskTier) String() string { return t.value }

// Rank returns the tier's position on the ladder (0 = least risky).
func (t RiskTier) Rank() int { return t.rank }

// IsZero returns true if the tier has not been initialised.
func (t RiskTier) IsZero() bool { return t.value == "" }

// Equal returns true when both tiers carry the same value.
func (t RiskTier) Equal(other RiskTier) bool { return t.value == other.value }

// RiskierThan returns true when t sits above other on the ladder.
func (t RiskTier) RiskierThan(other RiskTier) bool { return t.rank > other.rank }

// MarshalText implements encoding.TextMarshaler so the tier serialises as its
// string value in JSON payloads.
func (t RiskTier) MarshalText() ([]byte, error) {
	return []byte(t.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *RiskTier) UnmarshalText(text []byte) error {
	v, err := NewRiskTier(string(text))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
