package service

import (
	"fmt"
	"math"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// TierClassifier – domain service mapping scores to the tier ladder
// ---------------------------------------------------------------------------

// TierClassifier maps a numeric risk score onto the LOW/MEDIUM/HIGH/DECLINE
// ladder using institution-configured boundaries. A score exactly equal to a
// boundary classifies into the higher-risk tier.
type TierClassifier struct {
	thresholds []float64
}

// NewTierClassifier validates the boundaries at construction time: one fewer
// than the ladder has tiers, strictly increasing, all finite.
func NewTierClassifier(thresholds []float64) (*TierClassifier, error) {
	want := len(valueobject.Ladder()) - 1
	if len(thresholds) != want {
		return nil, model.NewConfigurationError(
			fmt.Sprintf("tier thresholds: expected %d boundaries, got %d", want, len(thresholds)))
	}
	for i, t := range thresholds {
		if math.IsNaN(t) || math.IsInf(t, 0) {
			return nil, model.NewConfigurationError(
				fmt.Sprintf("tier thresholds: boundary %d is not finite", i))
		}
		if i > 0 && t <= thresholds[i-1] {
			return nil, model.NewConfigurationError(
				fmt.Sprintf("tier thresholds: boundaries must be strictly increasing, got %v", thresholds))
		}
	}

	bounds := make([]float64, len(thresholds))
	copy(bounds, thresholds)
	return &TierClassifier{thresholds: bounds}, nil
}

// Classify maps a finite score to exactly one tier. Non-finite scores are
// rejected, never silently classified.
func (c *TierClassifier) Classify(score float64) (valueobject.RiskTier, error) {
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return valueobject.RiskTier{}, model.NewValidationError("score", "must be a finite number")
	}

	ladder := valueobject.Ladder()
	for i, boundary := range c.thresholds {
		if score < boundary {
			return ladder[i], nil
		}
	}
	return ladder[len(ladder)-1], nil
}

// Thresholds returns a copy of the configured boundaries.
func (c *TierClassifier) Thresholds() []float64 {
	bounds := make([]float64, len(c.thresholds))
	copy(bounds, c.thresholds)
	return bounds
}
