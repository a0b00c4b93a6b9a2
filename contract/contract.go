// Package contract provides the precondition checks every value type uses
// before it accepts an argument. A failed check is always a
// VALIDATION_ERROR that names the argument and carries the offending value.
package contract

import (
	"fmt"

	"github.com/fuinorg/objects4go/errors"
	"github.com/fuinorg/objects4go/validation"
)

// RequireArg runs validators against value and fails with the first error.
func RequireArg[T any](name string, value T, validators ...validation.Validator[T]) error {
	result := validation.Field(name, value, validation.And(validators...))
	if result.IsValid() {
		return nil
	}
	return errors.InvalidArgument(name, fmt.Sprint(value), result.Errors()[0].Message)
}

// RequireArgNotEmpty fails if value is blank.
func RequireArgNotEmpty(name, value string) error {
	return RequireArg(name, value, validation.Required())
}

// RequireArgMaxLength fails if value is longer than max bytes.
func RequireArgMaxLength(name, value string, max int) error {
	return RequireArg(name, value, validation.MaxLength(max))
}

// RequireArgValid fails if valid rejects value. kind names the expected
// textual type in the message, e.g. "hour range".
func RequireArgValid(name, value, kind string, valid func(string) bool) error {
	if valid(value) {
		return nil
	}
	return errors.InvalidArgument(name, value, "not a valid "+kind)
}

// RequireArgNotEmptySlice fails if values has no elements.
func RequireArgNotEmptySlice[T any](name string, values []T) error {
	return RequireArg(name, values, validation.MinSize[T](1))
}

// RequireArgUnique fails if two elements share the same key.
func RequireArgUnique[T any, K comparable](name string, values []T, key func(T) K) error {
	return RequireArg(name, values, validation.UniqueBy(key))
}
