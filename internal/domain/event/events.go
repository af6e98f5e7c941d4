package event

import (
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

// ---------------------------------------------------------------------------
// Assessment Events
// ---------------------------------------------------------------------------

// AssessmentCompleted is raised when an application has been fully assessed.
type AssessmentCompleted struct {
	events.BaseEvent
	RiskTier         string   `json:"risk_tier"`
	RiskScore        float64  `json:"risk_score"`
	ReasonCodes      []string `json:"reason_codes"`
	PolicyCitations  []string `json:"policy_citations"`
	GovernanceLogIDs []string `json:"governance_log_ids"`
}

// NewAssessmentCompleted builds the completion event for an application.
func NewAssessmentCompleted(
	applicationID, riskTier string,
	riskScore float64,
	reasonCodes, policyCitations, governanceLogIDs []string,
) AssessmentCompleted {
	return AssessmentCompleted{
		BaseEvent:        events.NewBaseEvent("risk.assessment.completed", applicationID, "Assessment"),
		RiskTier:         riskTier,
		RiskScore:        riskScore,
		ReasonCodes:      reasonCodes,
		PolicyCitations:  policyCitations,
		GovernanceLogIDs: governanceLogIDs,
	}
}

// DocumentsRequested is raised when supporting documents were requested for
// an application during assessment.
type DocumentsRequested struct {
	events.BaseEvent
	RequestID string   `json:"request_id"`
	Documents []string `json:"documents"`
}

// NewDocumentsRequested builds the document-request event.
func NewDocumentsRequested(applicationID, requestID string, documents []string) DocumentsRequested {
	return DocumentsRequested{
		BaseEvent: events.NewBaseEvent("risk.assessment.documents_requested", applicationID, "Assessment"),
		RequestID: requestID,
		Documents: documents,
	}
}
