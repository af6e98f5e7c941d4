package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/service"
)

// AssessmentPolicy holds the institution-tunable parameters of the pipeline:
// tier boundaries, score scale, retrieval depth and the document catalog.
type AssessmentPolicy struct {
	ScoreScale      string                `yaml:"score_scale"`
	TierThresholds  []float64             `yaml:"tier_thresholds"`
	RetrievalTopK   int                   `yaml:"retrieval_top_k"`
	DocumentCatalog []service.CatalogRule `yaml:"document_catalog"`
}

// DefaultAssessmentPolicy returns the stock policy used when no file
// overrides it.
func DefaultAssessmentPolicy() AssessmentPolicy {
	return AssessmentPolicy{
		ScoreScale:      "0-1",
		TierThresholds:  []float64{0.3, 0.6, 0.85},
		RetrievalTopK:   5,
		DocumentCatalog: service.DefaultCatalog(),
	}
}

// LoadAssessmentPolicy reads the policy file at path, falling back to
// defaults for any omitted field. An empty path returns the defaults.
func LoadAssessmentPolicy(path string) (AssessmentPolicy, error) {
	policy := DefaultAssessmentPolicy()
	if path == "" {
		return policy, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return AssessmentPolicy{}, fmt.Errorf("read policy file %s: %w", path, err)
	}

	var loaded AssessmentPolicy
	if err := yaml.Unmarshal(raw, &loaded); err != nil {
		return AssessmentPolicy{}, fmt.Errorf("parse policy file %s: %w", path, err)
	}

	if loaded.ScoreScale != "" {
		policy.ScoreScale = loaded.ScoreScale
	}
	if len(loaded.TierThresholds) > 0 {
		policy.TierThresholds = loaded.TierThresholds
	}
	if loaded.RetrievalTopK > 0 {
		policy.RetrievalTopK = loaded.RetrievalTopK
	}
	if len(loaded.DocumentCatalog) > 0 {
		policy.DocumentCatalog = loaded.DocumentCatalog
	}
	return policy, nil
}
