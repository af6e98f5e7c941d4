package model

import (
	"time"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Assessment output model
// ---------------------------------------------------------------------------

// ReasonSource identifies where a reason narrative came from: a scoring
// feature or a policy chunk.
type ReasonSource struct {
	Type     string `json:"type"` // "feature" or "policy"
	IDOrCode string `json:"id_or_code"`
}

// Reason is one human-readable explanation entry on the decision record.
type Reason struct {
	Label  string       `json:"label"`
	Detail string       `json:"detail"`
	Source ReasonSource `json:"source"`
}

// PolicyCitation is a policy excerpt cited to justify the tier or band.
type PolicyCitation struct {
	ChunkID string `json:"chunk_id"`
	Title   string `json:"title"`
	Section string `json:"section"`
	Quote   string `json:"quote"`
}

// GovernanceLogRecord echoes one accepted governance log entry. The log id is
// assigned by the logging collaborator; records are append-only and never
// mutated by this service.
type GovernanceLogRecord struct {
	EventType   string `json:"event_type"`
	LogID       string `json:"log_id"`
	PayloadHash string `json:"payload_hash,omitempty"`
}

// DocumentRequestAck acknowledges a document request submitted to the
// document-request collaborator.
type DocumentRequestAck struct {
	RequestID string   `json:"request_id"`
	Documents []string `json:"documents,omitempty"`
}

// Compliance echoes the jurisdictional context of the decision. PolicyGap is
// true when no interest band could be grounded in retrieved policy.
type Compliance struct {
	Region    string `json:"region"`
	Product   string `json:"product"`
	PolicyGap bool   `json:"policy_gap"`
}

// PacketPayload is the accumulated decision data handed to the user-packet
// composition collaborator.
type PacketPayload struct {
	ApplicationID      string               `json:"application_id"`
	RiskScore          float64              `json:"risk_score"`
	RiskTier           valueobject.RiskTier `json:"risk_tier"`
	Reasons            []Reason             `json:"reasons"`
	RequestedDocuments []string             `json:"requested_documents"`
	PolicyCitations    []PolicyCitation     `json:"policy_citations"`
	InterestBand       *InterestBand        `json:"interest_band"`
}

// AssessmentResult is the canonical decision record returned to callers. It
// is constructed once per assessment and fully populated before return; a
// failed mandatory step yields an error and no result at all.
//
// The field set is a stable schema downstream systems depend on: additions
// are backward compatible, removals and renames are not.
type AssessmentResult struct {
	ApplicationID      string               `json:"application_id"`
	RiskTier           valueobject.RiskTier `json:"risk_tier"`
	RiskScore          float64              `json:"risk_score"`
	ScoreScale         string               `json:"score_scale"`
	ReasonCodes        []string             `json:"reason_codes"`
	Reasons            []Reason             `json:"reasons"`
	InterestBand       *InterestBand        `json:"interest_band"`
	RequestedDocuments []string             `json:"requested_documents"`
	PolicyCitations    []PolicyCitation     `json:"policy_citations"`
	UserPacket         map[string]any       `json:"user_packet"`
	Compliance         Compliance           `json:"compliance"`
	GovernanceLogIDs   []string             `json:"governance_log_ids"`
	Diagnostics        []string             `json:"diagnostics,omitempty"`
	AssessedAt         time.Time            `json:"assessed_at"`
}
