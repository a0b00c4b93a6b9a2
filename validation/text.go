package validation

import (
	"encoding"
	"fmt"
)

// TextType is the compile-time contract for value types that can be parsed
// from and rendered to their textual base type. T is the value type and PT
// its pointer, which must implement encoding.TextUnmarshaler.
type TextType[T any] interface {
	*T
	encoding.TextUnmarshaler
}

// ValueOf parses s into a T using its UnmarshalText method.
func ValueOf[T any, PT TextType[T]](s string) (T, error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
		return v, err
	}
	return v, nil
}

// IsValid reports whether s parses as a T.
func IsValid[T any, PT TextType[T]](s string) bool {
	_, err := ValueOf[T, PT](s)
	return err == nil
}

// Text returns a validator for strings that must parse as T.
func Text[T any, PT TextType[T]](name string) Validator[string] {
	return func(s string) *ValidationError {
		if _, err := ValueOf[T, PT](s); err != nil {
			return &ValidationError{
				Message: fmt.Sprintf("is not a valid %s", name),
				Code:    "text_type",
			}
		}
		return nil
	}
}
