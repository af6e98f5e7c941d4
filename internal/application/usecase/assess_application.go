package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/application/dto"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/event"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/port"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/service"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

// Pipeline step names carried on UpstreamError and governance events.
const (
	StepPolicyRetrieval   = "policy_retrieval"
	StepRiskScoring       = "risk_scoring"
	StepBandResolution    = "interest_band_resolution"
	StepDocumentRequest   = "document_request"
	StepPacketComposition = "packet_composition"
)

// Governance event types, one per decision point.
const (
	EventProblemReceived       = "problem_received"
	EventRetrievalDone         = "retrieval_done"
	EventRiskScored            = "risk_scored"
	EventDocsRequested         = "docs_requested"
	EventPacketComposed        = "packet_composed"
	EventAssessmentCompleted   = "assessment_completed"
	EventBandResolutionFailed  = "interest_band_resolution_failed"
	EventDocumentRequestFailed = "document_request_failed"
)

const (
	defaultPolicyTopK = 5
	maxCitations      = 5
	maxReasons        = 8
)

// AssessmentDeps wires the orchestrator's collaborators and policy services.
// PolicyLookup, BandResolver, Repository and Publisher are optional; the rest
// are mandatory.
type AssessmentDeps struct {
	PolicyRetriever port.PolicyRetriever
	PolicyLookup    port.PolicyLookup
	RiskScorer      port.RiskScorer
	BandResolver    port.InterestBandResolver
	DocRequester    port.DocumentRequester
	PacketComposer  port.PacketComposer
	GovLogger       port.GovernanceLogger
	Classifier      *service.TierClassifier
	DocumentPolicy  *service.DocumentPolicy
	Repository      port.AssessmentRepository
	Publisher       port.EventPublisher
	Logger          *slog.Logger
	PolicyTopK      int
	ScoreScale      string
}

// AssessApplicationUseCase drives the end-to-end risk assessment pipeline:
// validation, policy retrieval, risk scoring, tier classification, optional
// interest banding, document requirements, packet composition and governance
// logging, in that order. Each call is independent; the use case holds no
// mutable state, so concurrent assessments need no locking here.
type AssessApplicationUseCase struct {
	retriever  port.PolicyRetriever
	lookup     port.PolicyLookup
	scorer     port.RiskScorer
	resolver   port.InterestBandResolver
	requester  port.DocumentRequester
	composer   port.PacketComposer
	govLogger  port.GovernanceLogger
	classifier *service.TierClassifier
	docPolicy  *service.DocumentPolicy
	repo       port.AssessmentRepository
	publisher  port.EventPublisher
	logger     *slog.Logger
	topK       int
	scoreScale string
}

// NewAssessApplicationUseCase validates the wiring once, at construction.
// Missing mandatory collaborators surface as a ConfigurationError here and
// never mid-assessment.
func NewAssessApplicationUseCase(deps AssessmentDeps) (*AssessApplicationUseCase, error) {
	switch {
	case deps.PolicyRetriever == nil:
		return nil, model.NewConfigurationError("policy retriever is required")
	case deps.RiskScorer == nil:
		return nil, model.NewConfigurationError("risk scorer is required")
	case deps.DocRequester == nil:
		return nil, model.NewConfigurationError("document requester is required")
	case deps.PacketComposer == nil:
		return nil, model.NewConfigurationError("packet composer is required")
	case deps.GovLogger == nil:
		return nil, model.NewConfigurationError("governance logger is required")
	case deps.Classifier == nil:
		return nil, model.NewConfigurationError("tier classifier is required")
	case deps.DocumentPolicy == nil:
		return nil, model.NewConfigurationError("document policy is required")
	}

	topK := deps.PolicyTopK
	if topK == 0 {
		topK = defaultPolicyTopK
	}
	if topK < 0 {
		return nil, model.NewConfigurationError("policy top_k must be positive")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	scale := deps.ScoreScale
	if scale == "" {
		scale = "0-1"
	}

	return &AssessApplicationUseCase{
		retriever:  deps.PolicyRetriever,
		lookup:     deps.PolicyLookup,
		scorer:     deps.RiskScorer,
		resolver:   deps.BandResolver,
		requester:  deps.DocRequester,
		composer:   deps.PacketComposer,
		govLogger:  deps.GovLogger,
		classifier: deps.Classifier,
		docPolicy:  deps.DocumentPolicy,
		repo:       deps.Repository,
		publisher:  deps.Publisher,
		logger:     logger,
		topK:       topK,
		scoreScale: scale,
	}, nil
}

// Execute runs one assessment. The caller receives either a fully populated
// response or an error naming the failed step, never a partial result.
func (uc *AssessApplicationUseCase) Execute(
	ctx context.Context,
	req dto.AssessmentRequest,
) (dto.AssessmentResponse, error) {
	ctx, span := otel.Tracer("usecase").Start(ctx, "AssessApplication",
		trace.WithAttributes(attribute.String("application_id", req.ApplicationID)))
	defer span.End()

	// 1. Validate before touching any collaborator.
	app := req.ToApplication()
	if err := app.Validate(); err != nil {
		return dto.AssessmentResponse{}, err
	}

	var (
		govIDs      []string
		diagnostics []string
	)

	uc.log(ctx, &govIDs, EventProblemReceived, map[string]any{
		"application_id": app.ApplicationID,
		"region":         app.Region,
		"product":        app.Product,
		"redactions":     true,
	})

	// 2. Retrieve policy chunks scoped to product and region.
	query := buildPolicyQuery(app)
	chunks, err := uc.retriever.Retrieve(ctx, query, uc.topK)
	if err != nil {
		return dto.AssessmentResponse{}, model.NewUpstreamError(StepPolicyRetrieval, err)
	}
	chunks = uc.enrichChunks(ctx, chunks)

	uc.log(ctx, &govIDs, EventRetrievalDone, map[string]any{
		"application_id": app.ApplicationID,
		"query":          query,
		"chunk_ids":      chunkIDs(chunks),
	})

	// 3. Score risk. No fallback score is ever substituted: a wrong tier has
	// direct compliance consequences.
	scoreResult, err := uc.scorer.Score(ctx, model.ScoringPayload{
		ApplicationID: app.ApplicationID,
		Borrower:      app.Borrower,
		Loan:          app.Loan,
		Region:        app.Region,
		Product:       app.Product,
		Context:       app.Context,
		PolicyIDs:     chunkIDs(chunks),
	})
	if err != nil {
		return dto.AssessmentResponse{}, model.NewUpstreamError(StepRiskScoring, err)
	}
	reasonCodes := scoreResult.ReasonCodeStrings()

	uc.log(ctx, &govIDs, EventRiskScored, map[string]any{
		"application_id": app.ApplicationID,
		"risk_score":     scoreResult.Score,
		"reason_codes":   reasonCodes,
	})

	// 4. Classify tier.
	tier, err := uc.classifier.Classify(scoreResult.Score)
	if err != nil {
		return dto.AssessmentResponse{}, err
	}

	// 5. Resolve interest band. Banding is advisory: a resolver failure is
	// absorbed, recorded, and the band stays nil.
	band := uc.resolveBand(ctx, &govIDs, &diagnostics, app, chunks, tier)

	// 6-7. Determine and request supporting documents.
	documents := service.MergeDocuments(
		uc.docPolicy.DocumentsNeeded(tier, reasonCodes),
		uc.docPolicy.DocumentsForApplication(app),
		policyDocuments(chunks),
	)
	requestID := uc.requestDocuments(ctx, &govIDs, &diagnostics, app, documents)

	reasons := buildReasons(scoreResult, chunks)
	citations := buildCitations(chunks)

	// 8. Compose the customer-facing packet; it is a required output.
	packet, err := uc.composer.Compose(ctx, model.PacketPayload{
		ApplicationID:      app.ApplicationID,
		RiskScore:          scoreResult.Score,
		RiskTier:           tier,
		Reasons:            reasons,
		RequestedDocuments: documents,
		PolicyCitations:    citations,
		InterestBand:       band,
	})
	if err != nil {
		return dto.AssessmentResponse{}, model.NewUpstreamError(StepPacketComposition, err)
	}

	uc.log(ctx, &govIDs, EventPacketComposed, map[string]any{
		"application_id": app.ApplicationID,
	})

	// 9. One summary governance event for the full decision.
	uc.log(ctx, &govIDs, EventAssessmentCompleted, map[string]any{
		"application_id": app.ApplicationID,
		"risk_tier":      tier.String(),
		"risk_score":     scoreResult.Score,
		"reason_codes":   reasonCodes,
		"citations":      citationIDs(citations),
	})

	// 10. Assemble the decision record.
	result := model.AssessmentResult{
		ApplicationID:      app.ApplicationID,
		RiskTier:           tier,
		RiskScore:          scoreResult.Score,
		ScoreScale:         uc.scoreScale,
		ReasonCodes:        reasonCodes,
		Reasons:            reasons,
		InterestBand:       band,
		RequestedDocuments: documents,
		PolicyCitations:    citations,
		UserPacket:         packet,
		Compliance: model.Compliance{
			Region:    app.Region,
			Product:   app.Product,
			PolicyGap: band == nil,
		},
		GovernanceLogIDs: govIDs,
		Diagnostics:      diagnostics,
		AssessedAt:       time.Now().UTC(),
	}

	if uc.repo != nil {
		if err := uc.repo.Save(ctx, result); err != nil {
			return dto.AssessmentResponse{}, fmt.Errorf("save assessment: %w", err)
		}
	}

	uc.publishEvents(ctx, result, requestID)

	return dto.FromResult(result), nil
}

// enrichChunks re-resolves retrieved chunks through the policy-by-id lookup
// when one is configured. A missing id keeps the retrieved copy; a lookup
// failure keeps all retrieved copies.
func (uc *AssessApplicationUseCase) enrichChunks(ctx context.Context, chunks []model.PolicyChunk) []model.PolicyChunk {
	if uc.lookup == nil || len(chunks) == 0 {
		return chunks
	}

	resolved, err := uc.lookup.GetByID(ctx, chunkIDs(chunks))
	if err != nil {
		uc.logger.WarnContext(ctx, "policy lookup failed, keeping retrieved chunks", "error", err)
		return chunks
	}

	enriched := make([]model.PolicyChunk, 0, len(chunks))
	for _, chunk := range chunks {
		if full, ok := resolved[chunk.ChunkID]; ok {
			enriched = append(enriched, full)
		} else {
			enriched = append(enriched, chunk)
		}
	}
	return enriched
}

// resolveBand asks the configured resolver first, then falls back to bands
// declared in policy-chunk metadata. Both "no resolver" and "resolver
// declined" legitimately yield no band.
func (uc *AssessApplicationUseCase) resolveBand(
	ctx context.Context,
	govIDs *[]string,
	diagnostics *[]string,
	app model.LoanApplication,
	chunks []model.PolicyChunk,
	tier valueobject.RiskTier,
) *model.InterestBand {
	if uc.resolver != nil {
		band, err := uc.resolver.Resolve(ctx, chunks, tier)
		if err != nil {
			uc.logger.WarnContext(ctx, "interest band resolution failed",
				"application_id", app.ApplicationID, "error", err)
			uc.log(ctx, govIDs, EventBandResolutionFailed, map[string]any{
				"application_id": app.ApplicationID,
				"step":           StepBandResolution,
				"error":          err.Error(),
			})
			*diagnostics = append(*diagnostics, StepBandResolution+": "+err.Error())
		} else if band != nil {
			return band
		}
	}

	for _, chunk := range chunks {
		if band, ok := chunk.InterestBandFromMetadata(); ok {
			return band
		}
	}
	return nil
}

// requestDocuments submits the document request when any documents are
// needed. Failure is absorbed: the returned list still reflects what was
// requested, possibly unconfirmed.
func (uc *AssessApplicationUseCase) requestDocuments(
	ctx context.Context,
	govIDs *[]string,
	diagnostics *[]string,
	app model.LoanApplication,
	documents []string,
) string {
	if len(documents) == 0 {
		return ""
	}

	ack, err := uc.requester.Request(ctx, documents)
	if err != nil {
		uc.logger.WarnContext(ctx, "document request failed",
			"application_id", app.ApplicationID, "error", err)
		uc.log(ctx, govIDs, EventDocumentRequestFailed, map[string]any{
			"application_id": app.ApplicationID,
			"step":           StepDocumentRequest,
			"documents":      documents,
			"error":          err.Error(),
		})
		*diagnostics = append(*diagnostics, StepDocumentRequest+": "+err.Error())
		return ""
	}

	uc.log(ctx, govIDs, EventDocsRequested, map[string]any{
		"application_id":      app.ApplicationID,
		"requested_documents": documents,
		"tool_response_id":    ack.RequestID,
	})
	return ack.RequestID
}

// log appends one governance record id on success. Governance logging is
// audit-only: a failure is surfaced operationally but never raised to the
// caller.
func (uc *AssessApplicationUseCase) log(
	ctx context.Context,
	govIDs *[]string,
	eventType string,
	payload map[string]any,
) {
	record, err := uc.govLogger.Log(ctx, eventType, payload)
	if err != nil {
		uc.logger.WarnContext(ctx, "governance logging failed",
			"event_type", eventType, "error", err)
		return
	}
	*govIDs = append(*govIDs, record.LogID)
}

// publishEvents notifies downstream consumers. Events are advisory: a broker
// outage must not invalidate a completed verdict.
func (uc *AssessApplicationUseCase) publishEvents(ctx context.Context, result model.AssessmentResult, requestID string) {
	if uc.publisher == nil {
		return
	}

	events := []event.DomainEvent{
		event.NewAssessmentCompleted(
			result.ApplicationID,
			result.RiskTier.String(),
			result.RiskScore,
			result.ReasonCodes,
			citationIDs(result.PolicyCitations),
			result.GovernanceLogIDs,
		),
	}
	if len(result.RequestedDocuments) > 0 && requestID != "" {
		events = append(events, event.NewDocumentsRequested(result.ApplicationID, requestID, result.RequestedDocuments))
	}

	if err := uc.publisher.Publish(ctx, events...); err != nil {
		uc.logger.WarnContext(ctx, "event publish failed",
			"application_id", result.ApplicationID, "error", err)
	}
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func buildPolicyQuery(app model.LoanApplication) string {
	terms := []string{app.Region, app.Product, "risk tiering", "interest band", "documentation"}
	for key, value := range app.Context {
		terms = append(terms, fmt.Sprintf("%s:%v", key, value))
	}

	var nonEmpty []string
	for _, term := range terms {
		if term != "" {
			nonEmpty = append(nonEmpty, term)
		}
	}
	return strings.Join(nonEmpty, " ")
}

func chunkIDs(chunks []model.PolicyChunk) []string {
	ids := make([]string, 0, len(chunks))
	for _, chunk := range chunks {
		ids = append(ids, chunk.ChunkID)
	}
	return ids
}

func policyDocuments(chunks []model.PolicyChunk) []string {
	var docs []string
	for _, chunk := range chunks {
		docs = append(docs, chunk.RequiredDocuments()...)
	}
	return docs
}

// buildReasons pairs each reason code with its feature contribution when one
// exists, then appends policy-guidance chunks, capped for readability.
func buildReasons(result model.RiskScoreResult, chunks []model.PolicyChunk) []model.Reason {
	var reasons []model.Reason

	features := result.FeatureByCode()
	for _, code := range result.ReasonCodes {
		detail := code.Description
		if feature, ok := features[code.Code]; ok {
			direction := "reduced"
			if strings.EqualFold(feature.Direction, "increase") {
				direction = "raised"
			}
			detail = fmt.Sprintf("%s: feature value %v %s risk", code.Description, feature.Value, direction)
		}
		reasons = append(reasons, model.Reason{
			Label:  code.Description,
			Detail: detail,
			Source: model.ReasonSource{Type: "feature", IDOrCode: code.Code},
		})
	}

	for _, chunk := range chunks {
		guidance, ok := chunk.Guidance()
		if !ok {
			continue
		}
		reasons = append(reasons, model.Reason{
			Label:  guidance,
			Detail: chunk.Quote(),
			Source: model.ReasonSource{Type: "policy", IDOrCode: chunk.ChunkID},
		})
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

func buildCitations(chunks []model.PolicyChunk) []model.PolicyCitation {
	limit := len(chunks)
	if limit > maxCitations {
		limit = maxCitations
	}

	citations := make([]model.PolicyCitation, 0, limit)
	for _, chunk := range chunks[:limit] {
		citations = append(citations, model.PolicyCitation{
			ChunkID: chunk.ChunkID,
			Title:   chunk.Title,
			Section: chunk.Section,
			Quote:   chunk.Quote(),
		})
	}
	return citations
}

func citationIDs(citations []model.PolicyCitation) []string {
	ids := make([]string, 0, len(citations))
	for _, citation := range citations {
		ids = append(ids, citation.ChunkID)
	}
	return ids
}
