package toolbridge_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/infrastructure/adapter"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/toolbridge"
)

func newStandardBridge() *toolbridge.Bridge {
	policy := adapter.NewPolicyAdapter(adapter.DefaultConfig(), nil)
	return toolbridge.NewStandardBridge(toolbridge.Ports{
		Retriever: policy,
		Lookup:    policy,
		Scorer:    adapter.NewRiskScoringAdapter(adapter.DefaultConfig(), nil),
		Resolver:  adapter.NewScheduleBandResolver(),
		Requester: adapter.NewDocumentRequestAdapter(adapter.DefaultConfig(), nil),
		Composer:  adapter.NewPacketComposerAdapter(adapter.DefaultConfig(), nil),
		GovLogger: adapter.NewInMemoryGovernanceLogger(),
	})
}

func TestBridge_Registration(t *testing.T) {
	bridge := newStandardBridge()

	assert.Equal(t, []string{
		"documents.request",
		"governance.log",
		"interest.resolve",
		"packet.compose",
		"policy.lookup",
		"policy.search",
		"risk.score",
	}, bridge.Names())

	assert.True(t, bridge.Has("risk.score"))
	assert.False(t, bridge.Has("account.open"))
}

func TestBridge_SkipsUnwiredPorts(t *testing.T) {
	bridge := toolbridge.NewStandardBridge(toolbridge.Ports{
		Scorer: adapter.NewRiskScoringAdapter(adapter.DefaultConfig(), nil),
	})

	assert.True(t, bridge.Has("risk.score"))
	assert.False(t, bridge.Has("policy.search"))
	assert.False(t, bridge.Has("interest.resolve"))
}

func TestBridge_Invoke(t *testing.T) {
	bridge := newStandardBridge()
	ctx := context.Background()

	t.Run("dispatches a policy search", func(t *testing.T) {
		result, err := bridge.Invoke(ctx, "policy.search",
			json.RawMessage(`{"query": "risk tiering", "top_k": 2}`))

		require.NoError(t, err)
		var chunks []map[string]any
		require.NoError(t, json.Unmarshal(result, &chunks))
		assert.NotEmpty(t, chunks)
		assert.LessOrEqual(t, len(chunks), 2)
	})

	t.Run("dispatches a scoring call", func(t *testing.T) {
		result, err := bridge.Invoke(ctx, "risk.score",
			json.RawMessage(`{"application_id": "APP-123", "borrower": {"dti": 0.46}, "loan": {}}`))

		require.NoError(t, err)
		var scored struct {
			Score       float64 `json:"score"`
			ReasonCodes []struct {
				Code string `json:"code"`
			} `json:"reason_codes"`
		}
		require.NoError(t, json.Unmarshal(result, &scored))
		require.NotEmpty(t, scored.ReasonCodes)
		assert.Equal(t, "HIGH_DTI", scored.ReasonCodes[0].Code)
	})

	t.Run("rejects an unknown tool", func(t *testing.T) {
		_, err := bridge.Invoke(ctx, "ledger.post", json.RawMessage(`{}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown tool")
	})

	t.Run("rejects a malformed payload", func(t *testing.T) {
		_, err := bridge.Invoke(ctx, "risk.score", json.RawMessage(`{`))

		require.Error(t, err)
	})

	t.Run("rejects an invalid tier on interest.resolve", func(t *testing.T) {
		_, err := bridge.Invoke(ctx, "interest.resolve",
			json.RawMessage(`{"chunks": [], "tier": "SEVERE"}`))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid risk tier")
	})
}
