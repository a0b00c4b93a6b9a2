package validation

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/fuinorg/objects4go/errors"
)

// Engine is a struct validation engine. Create one with NewEngine and pass
// it to whoever needs it; there is no shared package-level instance.
type Engine struct {
	validate *validator.Validate
	tags     map[string]struct{}
}

// NewEngine creates an engine that reports field names by their json tag.
func NewEngine() *Engine {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return &Engine{validate: v, tags: make(map[string]struct{})}
}

// RegisterText registers tag as a string validation backed by check,
// usually Text[T] for a value type T. Empty strings are accepted so that
// the tag composes with "required".
func (e *Engine) RegisterText(tag string, check Validator[string]) error {
	err := e.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		s, ok := fl.Field().Interface().(string)
		if !ok {
			return false
		}
		return s == "" || check(s) == nil
	})
	if err != nil {
		return fmt.Errorf("register %q: %w", tag, err)
	}
	e.tags[tag] = struct{}{}
	return nil
}

// HasTag reports whether tag was registered through RegisterText.
func (e *Engine) HasTag(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// Struct validates v and converts field failures into a VALIDATION_ERROR.
func (e *Engine) Struct(v any) error {
	return e.convert(e.validate.Struct(v))
}

// Var validates a single value against tag.
func (e *Engine) Var(value any, tag string) error {
	return e.convert(e.validate.Var(value, tag))
}

func (e *Engine) convert(err error) error {
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !stderrors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validation engine failure")
	}
	result := NewResult()
	for _, fe := range fieldErrs {
		result.AddError(ValidationError{
			Field:   fe.Field(),
			Path:    fe.Namespace(),
			Message: fmt.Sprintf("failed on %q", fe.Tag()),
			Code:    fe.Tag(),
			Value:   fe.Value(),
		})
	}
	return result.Err()
}
