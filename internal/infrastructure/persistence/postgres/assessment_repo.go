package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
	pgshared "github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/pkg/postgres"
)

// AssessmentRepo implements port.AssessmentRepository.
type AssessmentRepo struct {
	db pgshared.Querier
}

// NewAssessmentRepo creates a new repository backed by PostgreSQL. db is
// usually a pgxpool.Pool but any Querier works.
func NewAssessmentRepo(db pgshared.Querier) *AssessmentRepo {
	return &AssessmentRepo{db: db}
}

// Save persists an assessment verdict (upsert by application id; the latest
// verdict for an application wins).
func (r *AssessmentRepo) Save(ctx context.Context, result model.AssessmentResult) error {
	reasonCodes, err := json.Marshal(result.ReasonCodes)
	if err != nil {
		return fmt.Errorf("marshal reason codes: %w", err)
	}
	reasons, err := json.Marshal(result.Reasons)
	if err != nil {
		return fmt.Errorf("marshal reasons: %w", err)
	}
	var interestBand []byte
	if result.InterestBand != nil {
		interestBand, err = json.Marshal(result.InterestBand)
		if err != nil {
			return fmt.Errorf("marshal interest band: %w", err)
		}
	}
	documents, err := json.Marshal(result.RequestedDocuments)
	if err != nil {
		return fmt.Errorf("marshal requested documents: %w", err)
	}
	citations, err := json.Marshal(result.PolicyCitations)
	if err != nil {
		return fmt.Errorf("marshal policy citations: %w", err)
	}
	packet, err := json.Marshal(result.UserPacket)
	if err != nil {
		return fmt.Errorf("marshal user packet: %w", err)
	}
	compliance, err := json.Marshal(result.Compliance)
	if err != nil {
		return fmt.Errorf("marshal compliance: %w", err)
	}
	govIDs, err := json.Marshal(result.GovernanceLogIDs)
	if err != nil {
		return fmt.Errorf("marshal governance log ids: %w", err)
	}
	diagnostics, err := json.Marshal(result.Diagnostics)
	if err != nil {
		return fmt.Errorf("marshal diagnostics: %w", err)
	}

	query := `
		INSERT INTO assessments (
			application_id, risk_tier, risk_score, score_scale,
			reason_codes, reasons, interest_band, requested_documents,
			policy_citations, user_packet, compliance, governance_log_ids,
			diagnostics, assessed_at, updated_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		ON CONFLICT (application_id) DO UPDATE SET
			risk_tier           = EXCLUDED.risk_tier,
			risk_score          = EXCLUDED.risk_score,
			score_scale         = EXCLUDED.score_scale,
			reason_codes        = EXCLUDED.reason_codes,
			reasons             = EXCLUDED.reasons,
			interest_band       = EXCLUDED.interest_band,
			requested_documents = EXCLUDED.requested_documents,
			policy_citations    = EXCLUDED.policy_citations,
			user_packet         = EXCLUDED.user_packet,
			compliance          = EXCLUDED.compliance,
			governance_log_ids  = EXCLUDED.governance_log_ids,
			diagnostics         = EXCLUDED.diagnostics,
			assessed_at         = EXCLUDED.assessed_at,
			updated_at          = EXCLUDED.updated_at
	`
	_, err = r.db.Exec(ctx, query,
		result.ApplicationID, result.RiskTier.String(), result.RiskScore, result.ScoreScale,
		reasonCodes, reasons, interestBand, documents,
		citations, packet, compliance, govIDs,
		diagnostics, result.AssessedAt, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("save assessment: %w", err)
	}
	return nil
}

// FindByApplicationID retrieves the stored verdict for an application.
func (r *AssessmentRepo) FindByApplicationID(ctx context.Context, applicationID string) (model.AssessmentResult, error) {
	query := `
		SELECT application_id, risk_tier, risk_score, score_scale,
		       reason_codes, reasons, interest_band, requested_documents,
		       policy_citations, user_packet, compliance, governance_log_ids,
		       diagnostics, assessed_at
		FROM assessments
		WHERE application_id = $1
	`

	var (
		result      model.AssessmentResult
		tierStr     string
		reasonCodes []byte
		reasons     []byte
		band        []byte
		documents   []byte
		citations   []byte
		packet      []byte
		compliance  []byte
		govIDs      []byte
		diagnostics []byte
	)

	err := r.db.QueryRow(ctx, query, applicationID).Scan(
		&result.ApplicationID, &tierStr, &result.RiskScore, &result.ScoreScale,
		&reasonCodes, &reasons, &band, &documents,
		&citations, &packet, &compliance, &govIDs,
		&diagnostics, &result.AssessedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.AssessmentResult{}, model.ErrAssessmentNotFound
		}
		return model.AssessmentResult{}, fmt.Errorf("query assessment: %w", err)
	}

	tier, err := valueobject.NewRiskTier(tierStr)
	if err != nil {
		return model.AssessmentResult{}, fmt.Errorf("parse risk tier: %w", err)
	}
	result.RiskTier = tier

	for _, field := range []struct {
		raw  []byte
		dest any
		name string
	}{
		{reasonCodes, &result.ReasonCodes, "reason codes"},
		{reasons, &result.Reasons, "reasons"},
		{documents, &result.RequestedDocuments, "requested documents"},
		{citations, &result.PolicyCitations, "policy citations"},
		{packet, &result.UserPacket, "user packet"},
		{compliance, &result.Compliance, "compliance"},
		{govIDs, &result.GovernanceLogIDs, "governance log ids"},
		{diagnostics, &result.Diagnostics, "diagnostics"},
	} {
		if len(field.raw) == 0 {
			continue
		}
		if err := json.Unmarshal(field.raw, field.dest); err != nil {
			return model.AssessmentResult{}, fmt.Errorf("unmarshal %s: %w", field.name, err)
		}
	}

	if len(band) > 0 {
		var ib model.InterestBand
		if err := json.Unmarshal(band, &ib); err != nil {
			return model.AssessmentResult{}, fmt.Errorf("unmarshal interest band: %w", err)
		}
		result.InterestBand = &ib
	}

	return result, nil
}
