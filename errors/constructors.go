package errors

import (
	"fmt"
	"time"
)

// New creates a new AppError with the given code and message.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// Validation creates a validation error.
func Validation(message string) *AppError {
	return New(ErrCodeValidation, message)
}

// Validationf creates a validation error with a formatted message.
func Validationf(format string, args ...any) *AppError {
	return Validation(fmt.Sprintf(format, args...))
}

// InvalidArgument creates a validation error for a named argument.
// The offending value is part of the message and the details.
func InvalidArgument(argument, value, reason string) *AppError {
	return Validation(fmt.Sprintf("argument %q is not valid: %s (value: %q)", argument, reason, value)).
		WithDetail(DetailArgument, argument).
		WithDetail(DetailValue, value)
}

// Precondition creates a precondition failed error.
func Precondition(message string) *AppError {
	return New(ErrCodePrecondition, message)
}

// PreconditionArgument creates a precondition failed error for a named argument.
func PreconditionArgument(argument, value, reason string) *AppError {
	return Precondition(fmt.Sprintf("argument %q %s (value: %q)", argument, reason, value)).
		WithDetail(DetailArgument, argument).
		WithDetail(DetailValue, value)
}

// Internal creates an internal error.
func Internal(message string) *AppError {
	return New(ErrCodeInternal, message)
}

// InvalidState creates an invalid state error.
func InvalidState(expected, actual string) *AppError {
	return New(ErrCodeInvalidState, "invalid state").
		WithDetail("expected", expected).
		WithDetail("actual", actual)
}
