package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/application/dto"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/application/usecase"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/valueobject"
)

func TestNewGetAssessmentUseCase(t *testing.T) {
	t.Run("fails without a repository", func(t *testing.T) {
		_, err := usecase.NewGetAssessmentUseCase(nil, nil)

		require.Error(t, err)
		assert.True(t, model.IsConfiguration(err))
	})
}

func TestGetAssessment_Execute(t *testing.T) {
	storedResult := model.AssessmentResult{
		ApplicationID: "APP-123",
		RiskTier:      valueobject.RiskTierHigh,
		RiskScore:     0.62,
		ScoreScale:    "0-1",
		ReasonCodes:   []string{"HIGH_DTI"},
		Compliance:    model.Compliance{Region: "CA", Product: "smb_term"},
		AssessedAt:    time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC),
	}

	t.Run("returns a stored verdict", func(t *testing.T) {
		repo := &mockAssessmentRepository{
			findByIDFunc: func(_ context.Context, applicationID string) (model.AssessmentResult, error) {
				require.Equal(t, "APP-123", applicationID)
				return storedResult, nil
			},
		}
		uc, err := usecase.NewGetAssessmentUseCase(repo, nil)
		require.NoError(t, err)

		resp, err := uc.Execute(context.Background(), dto.GetAssessmentRequest{ApplicationID: "APP-123"})

		require.NoError(t, err)
		assert.Equal(t, "APP-123", resp.ApplicationID)
		assert.Equal(t, "HIGH", resp.RiskScore.Tier)
		assert.Equal(t, storedResult.AssessedAt, resp.AssessedAt)
	})

	t.Run("rejects an empty application id", func(t *testing.T) {
		uc, err := usecase.NewGetAssessmentUseCase(&mockAssessmentRepository{}, nil)
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), dto.GetAssessmentRequest{})

		require.Error(t, err)
		assert.True(t, model.IsValidation(err))
	})

	t.Run("propagates not-found from the repository", func(t *testing.T) {
		uc, err := usecase.NewGetAssessmentUseCase(&mockAssessmentRepository{}, nil)
		require.NoError(t, err)

		_, err = uc.Execute(context.Background(), dto.GetAssessmentRequest{ApplicationID: "APP-999"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, model.ErrAssessmentNotFound))
	})
}
