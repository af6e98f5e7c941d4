package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/application/dto"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/port"
)

// GetAssessmentUseCase re-reads a previously persisted assessment verdict.
type GetAssessmentUseCase struct {
	repo   port.AssessmentRepository
	logger *slog.Logger
}

func NewGetAssessmentUseCase(repo port.AssessmentRepository, logger *slog.Logger) (*GetAssessmentUseCase, error) {
	if repo == nil {
		return nil, model.NewConfigurationError("assessment repository is required")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &GetAssessmentUseCase{repo: repo, logger: logger}, nil
}

// Execute returns the stored verdict for an application, or
// ErrAssessmentNotFound when none was recorded.
func (uc *GetAssessmentUseCase) Execute(ctx context.Context, req dto.GetAssessmentRequest) (dto.AssessmentResponse, error) {
	if req.ApplicationID == "" {
		return dto.AssessmentResponse{}, model.NewValidationError("application_id", "must not be empty")
	}

	result, err := uc.repo.FindByApplicationID(ctx, req.ApplicationID)
	if err != nil {
		return dto.AssessmentResponse{}, fmt.Errorf("find assessment %s: %w", req.ApplicationID, err)
	}

	return dto.FromResult(result), nil
}
