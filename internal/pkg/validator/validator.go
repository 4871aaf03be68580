// Package validator is the validation engine shared by every record type.
//
// Records are decoded from untyped mappings through declarative schemas: a
// Schema lists Field binders, each attaching an ordered set of Check
// functions to one named field, plus cross-field Rules that run once the
// record's own fields passed. Every failure is collected into a Report,
// which satisfies error and unwraps to ErrValidationFailed and to the
// individual violations.
//
// The package also keeps a singleton go-playground validator, used for
// tag-based struct validation (configuration) and for the checks the
// library already implements, such as URL parsing.
package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	gvalidator "github.com/go-playground/validator/v10"
)

// ErrValidationFailed is the first error in every Report chain.
var ErrValidationFailed = errors.New("validation failed")

// validator is the singleton go-playground instance, created on package load.
var validator *gvalidator.Validate

// errStringFormat describes a failed struct tag.
const errStringFormat = "value '%v' does not meet the requirements for the '%s' validation"

func init() {
	validator = gvalidator.New(gvalidator.WithRequiredStructEnabled())
	validator.RegisterTagNameFunc(tagName)
}

// tagName reports struct fields by their configuration or wire name so
// violation paths match what the user wrote.
func tagName(f reflect.StructField) string {
	for _, key := range []string{"envconfig", "yaml", "json"} {
		name, _, _ := strings.Cut(f.Tag.Get(key), ",")
		switch name {
		case "-":
			return ""
		case "":
			continue
		}
		return name
	}
	return f.Name
}

// tagKind maps a go-playground tag to the violation kind it represents.
func tagKind(tag string) Kind {
	switch tag {
	case "required", "required_if", "required_unless", "required_with", "required_without":
		return KindStructural
	case "oneof":
		return KindFieldValue
	}
	return KindFieldFormat
}

// stripRoot removes the struct type name go-playground puts in front of
// every namespace ("Config.WORKERS" becomes "WORKERS").
func stripRoot(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}
	return namespace
}

// formatError turns go-playground errors into a Report. Other errors are
// returned unchanged.
func formatError(schema string, err error) error {
	var validationErrors gvalidator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	report := newReport(schema)
	for _, fieldErr := range validationErrors {
		report.add(stripRoot(fieldErr.Namespace()), Violation{
			Kind:    tagKind(fieldErr.Tag()),
			Message: fmt.Sprintf(errStringFormat, fieldErr.Value(), fieldErr.Tag()),
		})
	}

	return report.err()
}

// Validate checks a struct against its `validate` tags.
//
// It returns nil when every tag passes, otherwise a *Report describing each
// failed field:
//
//	type Input struct {
//	    Name string `yaml:"name" validate:"required"`
//	}
//
//	if err := validator.Validate(input); errors.Is(err, validator.ErrValidationFailed) {
//	    // inspect validator.ExtractReport(err)
//	}
func Validate(v any) error {
	if err := validator.Struct(v); err != nil {
		return formatError(typeName(v), err)
	}

	return nil
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// Var checks a single value against a go-playground tag expression such
// as "http_url". The returned error, if any, is a Violation with an empty path.
func Var(value any, tag string) error {
	if err := validator.Var(value, tag); err != nil {
		var validationErrors gvalidator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return err
		}

		first := validationErrors[0]
		return Violation{
			Kind:    tagKind(first.Tag()),
			Message: fmt.Sprintf(errStringFormat, first.Value(), first.Tag()),
		}
	}

	return nil
}
