package adapter_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/infrastructure/adapter"
)

func TestPolicyAdapter_BuiltinCorpus(t *testing.T) {
	a := adapter.NewPolicyAdapter(adapter.DefaultConfig(), nil)

	t.Run("ranks by term overlap for a banding query", func(t *testing.T) {
		chunks, err := a.Retrieve(context.Background(), "risk tiering interest band documentation", 3)

		require.NoError(t, err)
		require.NotEmpty(t, chunks)
		assert.LessOrEqual(t, len(chunks), 3)
		assert.Equal(t, "policy-banding-002", chunks[0].ChunkID)
	})

	t.Run("is deterministic across calls", func(t *testing.T) {
		first, err := a.Retrieve(context.Background(), "income verification documentation", 5)
		require.NoError(t, err)
		second, err := a.Retrieve(context.Background(), "income verification documentation", 5)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rejects non-positive topK", func(t *testing.T) {
		_, err := a.Retrieve(context.Background(), "anything", 0)
		require.Error(t, err)
	})

	t.Run("resolves known ids and omits unknown ones", func(t *testing.T) {
		resolved, err := a.GetByID(context.Background(), []string{"policy-docs-003", "policy-missing-999"})

		require.NoError(t, err)
		require.Len(t, resolved, 1)
		assert.Equal(t, "Supporting Documentation Requirements", resolved["policy-docs-003"].Title)
	})
}

func TestRiskScoringAdapter_Scorecard(t *testing.T) {
	a := adapter.NewRiskScoringAdapter(adapter.DefaultConfig(), nil)

	payload := model.ScoringPayload{
		ApplicationID: "APP-123",
		Borrower: map[string]any{
			"dti":             0.46,
			"credit_score":    float64(655),
			"income_verified": true,
			"annual_income":   float64(90000),
		},
		Loan:    map[string]any{"amount": float64(120000)},
		Region:  "CA",
		Product: "smb_term",
	}

	t.Run("flags an elevated DTI", func(t *testing.T) {
		result, err := a.Score(context.Background(), payload)

		require.NoError(t, err)
		assert.Contains(t, result.ReasonCodeStrings(), "HIGH_DTI")
		assert.GreaterOrEqual(t, result.Score, 0.0)
		assert.LessOrEqual(t, result.Score, 1.0)
	})

	t.Run("is deterministic for identical payloads", func(t *testing.T) {
		first, err := a.Score(context.Background(), payload)
		require.NoError(t, err)
		second, err := a.Score(context.Background(), payload)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("rewards a strong credit score", func(t *testing.T) {
		strong := payload
		strong.Borrower = map[string]any{"credit_score": float64(780)}
		weak := payload
		weak.Borrower = map[string]any{"credit_score": float64(580)}

		strongResult, err := a.Score(context.Background(), strong)
		require.NoError(t, err)
		weakResult, err := a.Score(context.Background(), weak)
		require.NoError(t, err)

		assert.Less(t, strongResult.Score, weakResult.Score)
		assert.Contains(t, weakResult.ReasonCodeStrings(), "CREDIT_SCORE_LOW")
	})

	t.Run("requires an application id", func(t *testing.T) {
		_, err := a.Score(context.Background(), model.ScoringPayload{})
		require.Error(t, err)
	})
}

func TestScheduleBandResolver(t *testing.T) {
	resolver := adapter.NewScheduleBandResolver()

	chunks := []model.PolicyChunk{
		{ChunkID: "no-schedule"},
		{
			ChunkID: "schedule",
			Metadata: map[string]any{
				"interest_bands": map[string]any{
					"MEDIUM": map[string]any{"min_apr": "6.75", "max_apr": "8.50", "policy_reference": "schedule/3.4"},
				},
			},
		},
	}

	t.Run("resolves a band covered by a schedule", func(t *testing.T) {
		band, err := resolver.Resolve(context.Background(), chunks, valueobject.RiskTierMedium)

		require.NoError(t, err)
		require.NotNil(t, band)
		assert.Equal(t, "6.75", band.MinAPR.String())
		assert.Equal(t, "schedule/3.4", band.PolicyReference)
	})

	t.Run("declines for an uncovered tier", func(t *testing.T) {
		band, err := resolver.Resolve(context.Background(), chunks, valueobject.RiskTierHigh)

		require.NoError(t, err)
		assert.Nil(t, band)
	})

	t.Run("never prices a DECLINE", func(t *testing.T) {
		declineChunks := []model.PolicyChunk{{
			ChunkID: "schedule",
			Metadata: map[string]any{
				"interest_bands": map[string]any{
					"DECLINE": map[string]any{"min_apr": "20", "max_apr": "30"},
				},
			},
		}}

		band, err := resolver.Resolve(context.Background(), declineChunks, valueobject.RiskTierDecline)

		require.NoError(t, err)
		assert.Nil(t, band)
	})
}

func TestDocumentRequestAdapter_LocalAck(t *testing.T) {
	a := adapter.NewDocumentRequestAdapter(adapter.DefaultConfig(), nil)

	t.Run("acknowledges with a deterministic request id", func(t *testing.T) {
		docs := []string{"income_verification", "debt_obligation_schedule"}

		first, err := a.Request(context.Background(), docs)
		require.NoError(t, err)
		second, err := a.Request(context.Background(), docs)
		require.NoError(t, err)

		assert.Equal(t, first.RequestID, second.RequestID)
		assert.Equal(t, docs, first.Documents)
	})

	t.Run("rejects an empty document list", func(t *testing.T) {
		_, err := a.Request(context.Background(), nil)
		require.Error(t, err)
	})
}

func TestPacketComposerAdapter_LocalComposition(t *testing.T) {
	a := adapter.NewPacketComposerAdapter(adapter.DefaultConfig(), nil)

	packet, err := a.Compose(context.Background(), model.PacketPayload{
		ApplicationID:      "APP-123",
		RiskTier:           valueobject.RiskTierHigh,
		Reasons:            []model.Reason{{Detail: "Debt-to-income ratio above policy limit"}},
		RequestedDocuments: []string{"income_verification"},
	})

	require.NoError(t, err)
	assert.Equal(t, "APP-123", packet["application_id"])
	assert.Equal(t, "HIGH", packet["risk_tier"])
	summary, ok := packet["summary"].(string)
	require.True(t, ok)
	assert.Contains(t, summary, "risk tier HIGH")
	assert.Contains(t, summary, "income_verification")
}

func TestInMemoryGovernanceLogger(t *testing.T) {
	logger := adapter.NewInMemoryGovernanceLogger()

	first, err := logger.Log(context.Background(), "risk_scored", map[string]any{"risk_score": 0.62})
	require.NoError(t, err)
	second, err := logger.Log(context.Background(), "docs_requested", map[string]any{"documents": []string{"income_verification"}})
	require.NoError(t, err)

	assert.NotEmpty(t, first.LogID)
	assert.NotEqual(t, first.LogID, second.LogID)
	assert.NotEmpty(t, first.PayloadHash)

	records := logger.Records()
	require.Len(t, records, 2)
	assert.Equal(t, "risk_scored", records[0].EventType)
	assert.Equal(t, "docs_requested", records[1].EventType)

	_, err = logger.Log(context.Background(), "", nil)
	require.Error(t, err)
}
