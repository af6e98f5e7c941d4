package dto

import (
	"time"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// AssessmentRequest carries one loan application to assess.
type AssessmentRequest struct {
	ApplicationID string         `json:"application_id"`
	Borrower      map[string]any `json:"borrower"`
	Loan          map[string]any `json:"loan"`
	Region        string         `json:"region"`
	Product       string         `json:"product"`
	Context       map[string]any `json:"context,omitempty"`
}

// ToApplication converts the request into the domain input model.
func (r AssessmentRequest) ToApplication() model.LoanApplication {
	return model.LoanApplication{
		ApplicationID: r.ApplicationID,
		Borrower:      r.Borrower,
		Loan:          r.Loan,
		Region:        r.Region,
		Product:       r.Product,
		Context:       r.Context,
	}
}

// GetAssessmentRequest identifies an assessment to retrieve.
type GetAssessmentRequest struct {
	ApplicationID string `json:"application_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// RiskScoreView nests the numeric score with its scale and derived tier.
type RiskScoreView struct {
	Value float64 `json:"value"`
	Scale string  `json:"scale"`
	Tier  string  `json:"tier"`
}

// AssessmentResponse is the external representation of one decision record.
type AssessmentResponse struct {
	ApplicationID      string                 `json:"application_id"`
	RiskScore          RiskScoreView          `json:"risk_score"`
	ReasonCodes        []string               `json:"reason_codes"`
	Reasons            []model.Reason         `json:"reasons"`
	InterestBand       *model.InterestBand    `json:"interest_band"`
	RequestedDocuments []string               `json:"requested_documents"`
	PolicyCitations    []model.PolicyCitation `json:"policy_citations"`
	UserPacket         map[string]any         `json:"user_packet"`
	Compliance         model.Compliance       `json:"compliance"`
	GovernanceLogIDs   []string               `json:"governance_log_ids"`
	Diagnostics        []string               `json:"diagnostics,omitempty"`
	AssessedAt         time.Time              `json:"assessed_at"`
}

// FromResult converts the domain result into its external representation.
func FromResult(result model.AssessmentResult) AssessmentResponse {
	return AssessmentResponse{
		ApplicationID: result.ApplicationID,
		RiskScore: RiskScoreView{
			Value: result.RiskScore,
			Scale: result.ScoreScale,
			Tier:  result.RiskTier.String(),
		},
		ReasonCodes:        result.ReasonCodes,
		Reasons:            result.Reasons,
		InterestBand:       result.InterestBand,
		RequestedDocuments: result.RequestedDocuments,
		PolicyCitations:    result.PolicyCitations,
		UserPacket:         result.UserPacket,
		Compliance:         result.Compliance,
		GovernanceLogIDs:   result.GovernanceLogIDs,
		Diagnostics:        result.Diagnostics,
		AssessedAt:         result.AssessedAt,
	}
}
