package grpc

// proto.go defines the gRPC server interface derived from
// risk/assessment/v1/assessment.proto. This file serves as a stand-in for
// buf-generated code. Once `buf generate` is run, replace this file with the
// import from the generated package.

import (
	"context"

	grpclib "google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/Team-Armadillo-IBM/Risk-Assessment-Prototype-1/internal/application/dto"
)

// AssessApplicationRequest mirrors risk.assessment.v1.AssessApplicationRequest.
type AssessApplicationRequest struct {
	ApplicationID string         `json:"application_id"`
	Borrower      map[string]any `json:"borrower"`
	Loan          map[string]any `json:"loan"`
	Region        string         `json:"region"`
	Product       string         `json:"product"`
	Context       map[string]any `json:"context,omitempty"`
}

// AssessApplicationResponse mirrors risk.assessment.v1.AssessApplicationResponse.
type AssessApplicationResponse struct {
	Assessment dto.AssessmentResponse `json:"assessment"`
}

// GetAssessmentRequest mirrors risk.assessment.v1.GetAssessmentRequest.
type GetAssessmentRequest struct {
	ApplicationID string `json:"application_id"`
}

// GetAssessmentResponse mirrors risk.assessment.v1.GetAssessmentResponse.
type GetAssessmentResponse struct {
	Assessment dto.AssessmentResponse `json:"assessment"`
}

// RiskAssessmentServiceServer is the server API for RiskAssessmentService.
type RiskAssessmentServiceServer interface {
	AssessApplication(context.Context, *AssessApplicationRequest) (*AssessApplicationResponse, error)
	GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error)
	mustEmbedUnimplementedRiskAssessmentServiceServer()
}

// UnimplementedRiskAssessmentServiceServer provides forward-compatible default implementations.
type UnimplementedRiskAssessmentServiceServer struct{}

func (UnimplementedRiskAssessmentServiceServer) AssessApplication(context.Context, *AssessApplicationRequest) (*AssessApplicationResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method AssessApplication not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) GetAssessment(context.Context, *GetAssessmentRequest) (*GetAssessmentResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetAssessment not implemented")
}
func (UnimplementedRiskAssessmentServiceServer) mustEmbedUnimplementedRiskAssessmentServiceServer() {}

// RegisterRiskAssessmentServiceServer registers the server with the gRPC server.
func RegisterRiskAssessmentServiceServer(s *grpclib.Server, srv RiskAssessmentServiceServer) {
	s.RegisterService(&_RiskAssessmentService_serviceDesc, srv) //nolint:revive // gRPC handler registration
}

//nolint:revive // gRPC handler registration
var _RiskAssessmentService_serviceDesc = grpclib.ServiceDesc{
	ServiceName: "risk.assessment.v1.RiskAssessmentService",
	HandlerType: (*RiskAssessmentServiceServer)(nil),
	Methods: []grpclib.MethodDesc{
		{MethodName: "AssessApplication", Handler: _RiskAssessmentService_AssessApplication_Handler}, //nolint:revive // gRPC handler registration
		{MethodName: "GetAssessment", Handler: _RiskAssessmentService_GetAssessment_Handler},         //nolint:revive // gRPC handler registration
	},
	Streams: []grpclib.StreamDesc{},
}

//nolint:revive,errcheck // gRPC handler registration
func _RiskAssessmentService_AssessApplication_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(AssessApplicationRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiskAssessmentServiceServer).AssessApplication(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/risk.assessment.v1.RiskAssessmentService/AssessApplication",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiskAssessmentServiceServer).AssessApplication(ctx, req.(*AssessApplicationRequest))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive,errcheck // gRPC handler registration
func _RiskAssessmentService_GetAssessment_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpclib.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetAssessmentRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(RiskAssessmentServiceServer).GetAssessment(ctx, in)
	}
	info := &grpclib.UnaryServerInfo{
		Server:     srv,
		FullMethod: "/risk.assessment.v1.RiskAssessmentService/GetAssessment",
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(RiskAssessmentServiceServer).GetAssessment(ctx, req.(*GetAssessmentRequest))
	}
	return interceptor(ctx, in, info, handler)
}
