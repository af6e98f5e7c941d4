package adapter

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"net/http"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Risk Scoring Adapter
// ---------------------------------------------------------------------------

// ScoringClient defines the interface for the external risk model endpoint.
type ScoringClient interface {
	Score(ctx context.Context, payload model.ScoringPayload) (model.RiskScoreResult, error)
}

// RiskScoringAdapter fronts the institution's risk model. It implements
// port.RiskScorer and is designed to be backed by a real model-serving
// endpoint; without a client it runs a deterministic heuristic scorecard,
// suitable for development and testing.
type RiskScoringAdapter struct {
	config Config
	client ScoringClient // nil = use the heuristic scorecard
}

// NewRiskScoringAdapter creates a new adapter with the given configuration.
// If client is nil, heuristic scoring is used.
func NewRiskScoringAdapter(config Config, client ScoringClient) *RiskScoringAdapter {
	return &RiskScoringAdapter{config: config, client: client}
}

// Score submits the payload for scoring. It implements port.RiskScorer.
func (a *RiskScoringAdapter) Score(ctx context.Context, payload model.ScoringPayload) (model.RiskScoreResult, error) {
	if payload.ApplicationID == "" {
		return model.RiskScoreResult{}, fmt.Errorf("application ID is required")
	}

	if a.client != nil {
		var result model.RiskScoreResult
		err := a.config.withRetry(ctx, func() error {
			var opErr error
			result, opErr = a.client.Score(ctx, payload)
			return opErr
		})
		if err != nil {
			return model.RiskScoreResult{}, fmt.Errorf("risk model request failed: %w", err)
		}
		return result, nil
	}

	return scorecard(payload), nil
}

// scorecard computes a deterministic heuristic score on the 0-1 scale. The
// base component is derived from the application ID hash so repeated runs on
// the same application reproduce the same score.
func scorecard(payload model.ScoringPayload) model.RiskScoreResult {
	h := sha256.Sum256([]byte(payload.ApplicationID))
	score := float64(binary.BigEndian.Uint32(h[:4])%1000) / 10000.0 // [0, 0.1)

	var (
		features    []model.RiskFeature
		reasonCodes []model.ReasonCode
	)

	if dti, ok := numericAttr(payload.Borrower, "dti"); ok {
		switch {
		case dti > 0.43:
			score += 0.30
			features = append(features, model.RiskFeature{
				Code: "HIGH_DTI", Description: "Debt-to-income ratio", Value: dti, Direction: "increase", Weight: 0.30,
			})
			reasonCodes = append(reasonCodes, model.ReasonCode{
				Code: "HIGH_DTI", Description: "Debt-to-income ratio above policy limit",
			})
		case dti > 0.36:
			score += 0.15
			features = append(features, model.RiskFeature{
				Code: "DTI_ELEVATED", Description: "Debt-to-income ratio", Value: dti, Direction: "increase", Weight: 0.15,
			})
			reasonCodes = append(reasonCodes, model.ReasonCode{
				Code: "DTI_ELEVATED", Description: "Debt-to-income ratio approaching policy limit",
			})
		}
	}

	if creditScore, ok := numericAttr(payload.Borrower, "credit_score"); ok {
		switch {
		case creditScore < 620:
			score += 0.25
			features = append(features, model.RiskFeature{
				Code: "CREDIT_SCORE_LOW", Description: "Credit bureau score", Value: creditScore, Direction: "increase", Weight: 0.25,
			})
			reasonCodes = append(reasonCodes, model.ReasonCode{
				Code: "CREDIT_SCORE_LOW", Description: "Credit score below lending threshold",
			})
		case creditScore >= 740:
			score -= 0.10
			features = append(features, model.RiskFeature{
				Code: "CREDIT_SCORE_STRONG", Description: "Credit bureau score", Value: creditScore, Direction: "decrease", Weight: 0.10,
			})
		}
	}

	if verified, ok := payload.Borrower["income_verified"].(bool); ok && !verified {
		score += 0.10
		features = append(features, model.RiskFeature{
			Code: "INCOME_UNVERIFIED", Description: "Income verification status", Value: false, Direction: "increase", Weight: 0.10,
		})
		reasonCodes = append(reasonCodes, model.ReasonCode{
			Code: "INCOME_UNVERIFIED", Description: "Stated income has not been verified",
		})
	}

	if amount, ok := numericAttr(payload.Loan, "amount"); ok {
		if income, ok := numericAttr(payload.Borrower, "annual_income"); ok && income > 0 && amount/income > 3 {
			score += 0.10
			features = append(features, model.RiskFeature{
				Code: "LOAN_SIZE_LARGE", Description: "Loan amount to annual income", Value: amount / income, Direction: "increase", Weight: 0.10,
			})
			reasonCodes = append(reasonCodes, model.ReasonCode{
				Code: "LOAN_SIZE_LARGE", Description: "Requested amount is large relative to income",
			})
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}

	return model.RiskScoreResult{Score: score, Features: features, ReasonCodes: reasonCodes}
}

func numericAttr(attrs map[string]any, key string) (float64, bool) {
	switch v := attrs[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	default:
		return 0, false
	}
}

// ---------------------------------------------------------------------------
// HTTP-backed client
// ---------------------------------------------------------------------------

// HTTPScoringClient implements ScoringClient against a JSON model-serving API.
type HTTPScoringClient struct {
	config Config
	client *http.Client
}

// NewHTTPScoringClient builds a client for the configured scoring API.
func NewHTTPScoringClient(config Config) *HTTPScoringClient {
	return &HTTPScoringClient{config: config, client: config.httpClient()}
}

func (c *HTTPScoringClient) Score(ctx context.Context, payload model.ScoringPayload) (model.RiskScoreResult, error) {
	var resp model.RiskScoreResult
	if err := postJSON(ctx, c.client, c.config, "/v1/score", payload, &resp); err != nil {
		return model.RiskScoreResult{}, err
	}
	return resp, nil
}
