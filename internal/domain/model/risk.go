package model

import (
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Risk scoring collaborator output
// ---------------------------------------------------------------------------

// RiskFeature is one feature contribution returned by the scoring service.
// Features arrive ordered by significance; the order matters only for display
// and audit.
type RiskFeature struct {
	Code        string  `json:"code"`
	Description string  `json:"description"`
	Value       any     `json:"value"`
	Direction   string  `json:"direction"` // "increase" or "decrease"
	Weight      float64 `json:"weight"`
}

// ReasonCode is a machine-readable adverse-action/explanation code.
type ReasonCode struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// RiskScoreResult is the standardised output of the risk scoring service.
// An empty ReasonCodes slice is valid and means no adverse factors.
type RiskScoreResult struct {
	Score       float64       `json:"score"`
	Features    []RiskFeature `json:"features"`
	ReasonCodes []ReasonCode  `json:"reason_codes"`
}

// ReasonCodeStrings returns the bare reason code identifiers.
func (r RiskScoreResult) ReasonCodeStrings() []string {
	codes := make([]string, 0, len(r.ReasonCodes))
	for _, rc := range r.ReasonCodes {
		codes = append(codes, rc.Code)
	}
	return codes
}

// FeatureByCode indexes the feature contributions by code.
func (r RiskScoreResult) FeatureByCode() map[string]RiskFeature {
	lookup := make(map[string]RiskFeature, len(r.Features))
	for _, f := range r.Features {
		lookup[f.Code] = f
	}
	return lookup
}

// ScoringPayload is the structured payload submitted to the scoring service.
// PolicyIDs carries the ids of the policy chunks retrieved for this
// application; reordering retrieval and scoring would change this payload, so
// the pipeline never does.
type ScoringPayload struct {
	ApplicationID string         `json:"application_id"`
	Borrower      map[string]any `json:"borrower"`
	Loan          map[string]any `json:"loan"`
	Region        string         `json:"region"`
	Product       string         `json:"product"`
	Context       map[string]any `json:"context,omitempty"`
	PolicyIDs     []string       `json:"policy_ids"`
}

// ---------------------------------------------------------------------------
// InterestBand – optional resolver output
// ---------------------------------------------------------------------------

// InterestBand is a policy-backed APR range attached to an assessment. It may
// legitimately be absent: no resolver configured, or no policy grounds a band
// for the tier.
type InterestBand struct {
	MinAPR          decimal.Decimal `json:"min_apr"`
	MaxAPR          decimal.Decimal `json:"max_apr"`
	PolicyReference string          `json:"policy_reference"`
	Conditions      []string        `json:"conditions,omitempty"`
}
