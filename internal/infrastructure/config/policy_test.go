package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/infrastructure/config"
)

func TestLoadAssessmentPolicy(t *testing.T) {
	t.Run("returns defaults for an empty path", func(t *testing.T) {
		policy, err := config.LoadAssessmentPolicy("")

		require.NoError(t, err)
		assert.Equal(t, []float64{0.3, 0.6, 0.85}, policy.TierThresholds)
		assert.Equal(t, 5, policy.RetrievalTopK)
		assert.Equal(t, "0-1", policy.ScoreScale)
		assert.NotEmpty(t, policy.DocumentCatalog)
	})

	t.Run("overrides only the fields present in the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yaml")
		content := `
score_scale: "0-100"
tier_thresholds: [30, 60, 85]
document_catalog:
  - id: bank_statements_6m
    tiers: [HIGH, DECLINE]
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		policy, err := config.LoadAssessmentPolicy(path)

		require.NoError(t, err)
		assert.Equal(t, "0-100", policy.ScoreScale)
		assert.Equal(t, []float64{30, 60, 85}, policy.TierThresholds)
		assert.Equal(t, 5, policy.RetrievalTopK) // omitted, keeps default
		require.Len(t, policy.DocumentCatalog, 1)
		assert.Equal(t, "bank_statements_6m", policy.DocumentCatalog[0].DocumentID)
		assert.Equal(t, []string{"HIGH", "DECLINE"}, policy.DocumentCatalog[0].Tiers)
	})

	t.Run("fails on a missing file", func(t *testing.T) {
		_, err := config.LoadAssessmentPolicy(filepath.Join(t.TempDir(), "absent.yaml"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "read policy file")
	})

	t.Run("fails on malformed yaml", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("tier_thresholds: {not a list"), 0o600))

		_, err := config.LoadAssessmentPolicy(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse policy file")
	})
}
