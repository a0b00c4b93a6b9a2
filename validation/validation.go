// Package validation provides composable validation with error accumulation
// and an explicitly constructed struct validation engine.
package validation

import (
	"fmt"
	"strings"

	"github.com/fuinorg/objects4go/errors"
)

// ValidationError describes one failed check.
type ValidationError struct {
	Field   string `json:"field"`
	Path    string `json:"path,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
	Value   any    `json:"value,omitempty"`
}

// key is the path if known, the field name otherwise.
func (e ValidationError) key() string {
	if e.Path != "" {
		return e.Path
	}
	return e.Field
}

func (e ValidationError) Error() string {
	return e.key() + ": " + e.Message
}

// Result accumulates validation errors.
type Result struct {
	errors []ValidationError
}

// NewResult creates an empty validation result.
func NewResult() *Result {
	return &Result{}
}

// AddError adds a validation error.
func (r *Result) AddError(err ValidationError) *Result {
	r.errors = append(r.errors, err)
	return r
}

// IsValid returns true if no errors.
func (r *Result) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns all validation errors.
func (r *Result) Errors() []ValidationError {
	return r.errors
}

// Err converts the result into a single VALIDATION_ERROR, or nil when valid.
// Each failed field is recorded as a detail keyed by its path.
func (r *Result) Err() error {
	if r.IsValid() {
		return nil
	}
	msgs := make([]string, len(r.errors))
	for i, e := range r.errors {
		msgs[i] = e.Error()
	}
	appErr := errors.Validation(strings.Join(msgs, "; "))
	for _, e := range r.errors {
		appErr.WithDetail(e.key(), e.Message)
	}
	return appErr
}

// Validator checks a value and returns nil when it passes.
type Validator[T any] func(T) *ValidationError

// And combines validators; the first failure wins.
func And[T any](validators ...Validator[T]) Validator[T] {
	return func(v T) *ValidationError {
		for _, validator := range validators {
			if err := validator(v); err != nil {
				return err
			}
		}
		return nil
	}
}

// Field runs every validator against the value of field and records each
// failure under the field's path.
func Field[T any](field string, value T, validators ...Validator[T]) *Result {
	result := NewResult()
	for _, validator := range validators {
		if err := validator(value); err != nil {
			err.Field = field
			if err.Path == "" {
				err.Path = field
			}
			err.Value = value
			result.AddError(*err)
		}
	}
	return result
}

// Required checks that string is not blank.
func Required() Validator[string] {
	return func(s string) *ValidationError {
		if strings.TrimSpace(s) == "" {
			return &ValidationError{Message: "is required", Code: "required"}
		}
		return nil
	}
}

// MaxLength checks maximum string length in bytes.
func MaxLength(max int) Validator[string] {
	return func(s string) *ValidationError {
		if len(s) > max {
			return &ValidationError{
				Message: fmt.Sprintf("must be at most %d characters", max),
				Code:    "max_length",
			}
		}
		return nil
	}
}

// MinSize checks minimum slice length.
func MinSize[T any](min int) Validator[[]T] {
	return func(s []T) *ValidationError {
		if len(s) < min {
			return &ValidationError{
				Message: fmt.Sprintf("must have at least %d items", min),
				Code:    "min_size",
			}
		}
		return nil
	}
}

// UniqueBy checks that no two elements share the same key.
func UniqueBy[T any, K comparable](key func(T) K) Validator[[]T] {
	return func(s []T) *ValidationError {
		seen := make(map[K]struct{}, len(s))
		for _, v := range s {
			k := key(v)
			if _, dup := seen[k]; dup {
				return &ValidationError{Message: fmt.Sprintf("duplicate %v", k), Code: "unique"}
			}
			seen[k] = struct{}{}
		}
		return nil
	}
}
