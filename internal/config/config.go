// Package config holds the runtime configuration of gocaesar, populated from
// command-line flags and positional arguments.
package config

import (
	"errors"
	"fmt"

	"github.com/idelchi/gogen/pkg/validator"
)

// ErrUsage indicates an error in command-line usage or configuration.
var ErrUsage = errors.New("usage error")

type Config struct {
	// Common flags
	Show    bool
	Quiet   bool `label:"--quiet" validate:"exclusive=--verbose"`
	Verbose bool `label:"--verbose"`

	// Command-specific flags
	Decrypt bool `mapstructure:"-"`

	// Positional arguments
	Shift  string `mapstructure:"-"`
	Input  string `mapstructure:"-"`
	Output string `mapstructure:"-"`
}

// Display returns the value of the Show field.
func (c Config) Display() bool {
	return c.Show
}

// Validate performs configuration validation using the validator package.
// It returns a wrapped ErrUsage if any validation rules are violated.
func (c Config) Validate(config any) error {
	validator := validator.NewValidator()

	if err := registerExclusive(validator); err != nil {
		return fmt.Errorf("registering exclusive: %w", err)
	}

	errs := validator.Validate(config)

	switch {
	case errs == nil:
		return nil
	case len(errs) == 1:
		return fmt.Errorf("%w: %w", ErrUsage, errs[0])
	default:
		return fmt.Errorf("%ws:\n%w", ErrUsage, errors.Join(errs...))
	}
}
