package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/idelchi/gogen/pkg/validator"
)

// registerExclusive adds a custom validator ensuring two fields are mutually exclusive.
// It registers both the validation logic and a human-readable error message.
func registerExclusive(validator *validator.Validator) error {
	if err := validator.RegisterValidationAndTranslation(
		"exclusive",
		validateExclusive,
		"{0} and {1} are mutually exclusive",
	); err != nil {
		return fmt.Errorf("registering exclusive validation: %w", err)
	}

	validator.Validator().RegisterTagNameFunc(label)

	return nil
}

// label returns the name a field is reported under: its "label" tag, or the field name.
func label(fld reflect.StructField) string {
	const splitSize = 2

	name := strings.SplitN(fld.Tag.Get("label"), ",", splitSize)[0]
	if name == "-" || name == "" {
		return fld.Name
	}

	return name
}

// validateExclusive checks if two fields are mutually exclusive.
// The parameter names the other field by its label.
// Returns false if both fields hold non-zero values.
func validateExclusive(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	field := fl.Field()

	if parent.Kind() == reflect.Pointer {
		parent = parent.Elem()
	}

	if !field.IsValid() || parent.Kind() != reflect.Struct {
		return true
	}

	for i := range parent.NumField() {
		if label(parent.Type().Field(i)) != fl.Param() {
			continue
		}

		return field.IsZero() || parent.Field(i).IsZero()
	}

	return true
}
