package valueobject_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

func TestRiskTier(t *testing.T) {
	t.Run("ladder is ordered least to most risky", func(t *testing.T) {
		ladder := valueobject.Ladder()

		require.Len(t, ladder, 4)
		assert.Equal(t, "LOW", ladder[0].String())
		assert.Equal(t, "DECLINE", ladder[3].String())
		for i := 1; i < len(ladder); i++ {
			assert.True(t, ladder[i].RiskierThan(ladder[i-1]))
		}
	})

	t.Run("creates from valid strings", func(t *testing.T) {
		tier, err := valueobject.NewRiskTier("MEDIUM")

		require.NoError(t, err)
		assert.True(t, tier.Equal(valueobject.RiskTierMedium))
		assert.Equal(t, 1, tier.Rank())
	})

	t.Run("rejects unknown and lowercase values", func(t *testing.T) {
		for _, raw := range []string{"", "SEVERE", "low", "Medium"} {
			_, err := valueobject.NewRiskTier(raw)
			assert.Error(t, err, "value %q", raw)
		}
	})

	t.Run("zero value is distinguishable", func(t *testing.T) {
		var tier valueobject.RiskTier
		assert.True(t, tier.IsZero())
		assert.False(t, valueobject.RiskTierLow.IsZero())
	})

	t.Run("round-trips through JSON as its string value", func(t *testing.T) {
		raw, err := json.Marshal(valueobject.RiskTierHigh)
		require.NoError(t, err)
		assert.Equal(t, `"HIGH"`, string(raw))

		var tier valueobject.RiskTier
		require.NoError(t, json.Unmarshal(raw, &tier))
		assert.True(t, tier.Equal(valueobject.RiskTierHigh))

		assert.Error(t, json.Unmarshal([]byte(`"SEVERE"`), &tier))
	})
}
