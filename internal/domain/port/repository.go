package port

import (
	"context"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// AssessmentRepository persists completed assessments so case-management
// systems can re-read a verdict. The orchestration core itself holds no state
// between assessments.
type AssessmentRepository interface {
	Save(ctx context.Context, result model.AssessmentResult) error
	FindByApplicationID(ctx context.Context, applicationID string) (model.AssessmentResult, error)
}
