package model_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

func TestErrorTaxonomy(t *testing.T) {
	t.Run("validation errors carry the field", func(t *testing.T) {
		err := model.NewValidationError("region", "must be a non-empty string")

		assert.Equal(t, "validation: region: must be a non-empty string", err.Error())
		assert.True(t, model.IsValidation(err))
		assert.False(t, model.IsUpstream(err))
	})

	t.Run("upstream errors wrap the cause and name the step", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := model.NewUpstreamError("risk_scoring", cause)

		assert.Contains(t, err.Error(), "risk_scoring")
		assert.True(t, errors.Is(err, cause))
		assert.True(t, model.IsUpstream(err))

		var ue *model.UpstreamError
		require.True(t, errors.As(err, &ue))
		assert.Equal(t, "risk_scoring", ue.Step)
	})

	t.Run("classification survives wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("execute: %w", model.NewConfigurationError("missing classifier"))

		assert.True(t, model.IsConfiguration(wrapped))
		assert.False(t, model.IsValidation(wrapped))
	})

	t.Run("categories are disjoint", func(t *testing.T) {
		assert.False(t, model.IsValidation(errors.New("plain")))
		assert.False(t, model.IsUpstream(model.NewValidationError("f", "r")))
		assert.False(t, model.IsConfiguration(model.ErrAssessmentNotFound))
	})
}
