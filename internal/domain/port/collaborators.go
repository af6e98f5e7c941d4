package port

import (
	"context"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Collaborator ports (external decision-support services)
// ---------------------------------------------------------------------------

// PolicyRetriever searches the policy knowledge store. Results arrive most
// relevant first; an empty result is valid and does not halt an assessment.
type PolicyRetriever interface {
	Retrieve(ctx context.Context, query string, topK int) ([]model.PolicyChunk, error)
}

// PolicyLookup fetches policy chunks by id. The returned mapping is keyed by
// exactly the requested ids that exist; missing ids are simply absent, never
// substituted.
type PolicyLookup interface {
	GetByID(ctx context.Context, ids []string) (map[string]model.PolicyChunk, error)
}

// RiskScorer submits a scoring payload to the external risk model. A scorer
// failure is fatal to the whole assessment: no fallback score is ever
// substituted.
type RiskScorer interface {
	Score(ctx context.Context, payload model.ScoringPayload) (model.RiskScoreResult, error)
}

// InterestBandResolver attaches a rate band to a tier using retrieved policy.
// The resolver is optional; a nil band with a nil error means the resolver
// declines to produce a band for this tier.
type InterestBandResolver interface {
	Resolve(ctx context.Context, chunks []model.PolicyChunk, tier valueobject.RiskTier) (*model.InterestBand, error)
}

// DocumentRequester submits a supporting-document request downstream.
type DocumentRequester interface {
	Request(ctx context.Context, documents []string) (model.DocumentRequestAck, error)
}

// PacketComposer renders the customer-facing packet from accumulated decision
// data. The packet is opaque to the core beyond pass-through.
type PacketComposer interface {
	Compose(ctx context.Context, payload model.PacketPayload) (map[string]any, error)
}

// GovernanceLogger appends one audit record per decision point. Logging
// failures must never block a business outcome; callers swallow them.
type GovernanceLogger interface {
	Log(ctx context.Context, eventType string, payload map[string]any) (model.GovernanceLogRecord, error)
}
