// Package errors provides the typed error used by every value type of this
// module, with a mapping to gRPC status codes for adapter layers.
package errors

import (
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// Must panics if err is not nil, otherwise returns value.
func Must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// ErrorCode represents application error categories.
type ErrorCode string

const (
	// ErrCodeValidation marks malformed or structurally invalid input.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrCodePrecondition marks an operation called on a value it is not defined for.
	ErrCodePrecondition ErrorCode = "PRECONDITION_FAILED"
	// ErrCodeInvalidState marks a broken internal invariant.
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"
	// ErrCodeInternal is used for errors of unknown origin.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

// Detail keys shared by all constructors.
const (
	DetailArgument = "argument"
	DetailValue    = "value"
)

// AppError is the standard application error type.
type AppError struct {
	Code      ErrorCode      `json:"code"`
	Message   string         `json:"message"`
	Details   map[string]any `json:"details,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	cause     error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *AppError) WithCause(cause error) *AppError {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Argument returns the name of the violated argument, if recorded.
func (e *AppError) Argument() string {
	s, _ := e.Details[DetailArgument].(string)
	return s
}

// Value returns the offending textual value, if recorded.
func (e *AppError) Value() string {
	s, _ := e.Details[DetailValue].(string)
	return s
}

// Is checks if the error matches a target error code.
func (e *AppError) Is(target error) bool {
	if t, ok := target.(*AppError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// MarshalJSON implements json.Marshaler.
func (e *AppError) MarshalJSON() ([]byte, error) {
	type Alias AppError
	aux := &struct {
		*Alias
		Cause string `json:"cause,omitempty"`
	}{Alias: (*Alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}
