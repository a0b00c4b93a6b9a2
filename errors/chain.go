package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Wrap adds context to err. An AppError anywhere in the chain keeps its code
// and details; any other error becomes INTERNAL_ERROR.
func Wrap(err error, message string) *AppError {
	if err == nil {
		return nil
	}
	wrapped := Internal(message).WithCause(err)
	if appErr, ok := AsType[*AppError](err); ok {
		wrapped.Code = appErr.Code
		wrapped.Details = maps.Clone(appErr.Details)
	}
	return wrapped
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...any) *AppError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// RootCause returns the innermost error of the chain.
func RootCause(err error) error {
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err
		}
		err = next
	}
}

// IsCode checks if the error has the specified error code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := AsType[*AppError](err)
	return ok && appErr.Code == code
}

// GetCode extracts the error code, ErrCodeInternal for foreign errors.
func GetCode(err error) ErrorCode {
	if appErr, ok := AsType[*AppError](err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}
