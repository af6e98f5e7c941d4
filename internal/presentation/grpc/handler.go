package grpc

import (
	"context"
	"errors"
	"log/slog"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/application/dto"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/application/usecase"
	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/domain/model"
)

// AssessmentHandler exposes risk assessment operations over gRPC.
type AssessmentHandler struct {
	UnimplementedRiskAssessmentServiceServer

	assess *usecase.AssessApplicationUseCase
	get    *usecase.GetAssessmentUseCase // nil when persistence is disabled
	logger *slog.Logger
}

// NewAssessmentHandler creates a new handler. get may be nil when no
// assessment store is configured; GetAssessment then reports Unimplemented.
func NewAssessmentHandler(
	assess *usecase.AssessApplicationUseCase,
	get *usecase.GetAssessmentUseCase,
	logger *slog.Logger,
) *AssessmentHandler {
	return &AssessmentHandler{
		assess: assess,
		get:    get,
		logger: logger,
	}
}

// AssessApplication runs one end-to-end risk assessment.
func (h *AssessmentHandler) AssessApplication(ctx context.Context, req *AssessApplicationRequest) (*AssessApplicationResponse, error) {
	resp, err := h.assess.Execute(ctx, dto.AssessmentRequest{
		ApplicationID: req.ApplicationID,
		Borrower:      req.Borrower,
		Loan:          req.Loan,
		Region:        req.Region,
		Product:       req.Product,
		Context:       req.Context,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "assessment failed",
			"application_id", req.ApplicationID, "error", err)
		return nil, toStatusError(err)
	}

	return &AssessApplicationResponse{Assessment: resp}, nil
}

// GetAssessment retrieves a previously stored verdict.
func (h *AssessmentHandler) GetAssessment(ctx context.Context, req *GetAssessmentRequest) (*GetAssessmentResponse, error) {
	if h.get == nil {
		return nil, status.Error(codes.Unimplemented, "assessment store is not configured")
	}

	resp, err := h.get.Execute(ctx, dto.GetAssessmentRequest{ApplicationID: req.ApplicationID})
	if err != nil {
		return nil, toStatusError(err)
	}

	return &GetAssessmentResponse{Assessment: resp}, nil
}

// toStatusError maps the domain error taxonomy onto gRPC status codes.
func toStatusError(err error) error {
	switch {
	case errors.Is(err, model.ErrAssessmentNotFound):
		return status.Error(codes.NotFound, err.Error())
	case model.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case model.IsUpstream(err):
		return status.Error(codes.Unavailable, err.Error())
	case model.IsConfiguration(err):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
