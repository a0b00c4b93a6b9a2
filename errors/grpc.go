package errors

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// grpcCodeMap maps error codes to gRPC status codes.
var grpcCodeMap = map[ErrorCode]codes.Code{
	ErrCodeValidation:   codes.InvalidArgument,
	ErrCodePrecondition: codes.FailedPrecondition,
	ErrCodeInvalidState: codes.FailedPrecondition,
	ErrCodeInternal:     codes.Internal,
}

// GRPCCode returns the gRPC status code for this error.
func (e *AppError) GRPCCode() codes.Code {
	if code, ok := grpcCodeMap[e.Code]; ok {
		return code
	}
	return codes.Internal
}

// GRPCStatus makes AppError recognisable by status.FromError.
func (e *AppError) GRPCStatus() *status.Status {
	return status.New(e.GRPCCode(), e.Message)
}

// ToGRPCStatus converts any error to a gRPC status.
func ToGRPCStatus(err error) *status.Status {
	if err == nil {
		return status.New(codes.OK, "")
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.GRPCStatus()
	}
	return status.New(codes.Internal, err.Error())
}

// ToGRPCError converts any error to a gRPC status error.
func ToGRPCError(err error) error {
	if err == nil {
		return nil
	}
	return ToGRPCStatus(err).Err()
}
