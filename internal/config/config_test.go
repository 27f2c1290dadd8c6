package config_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/idelchi/gogen/pkg/validator"

	"github.com/idelchi/gocaesar/internal/config"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.Config
		wantErr bool
	}{
		{name: "defaults", cfg: config.Config{}},
		{name: "quiet", cfg: config.Config{Quiet: true}},
		{name: "verbose", cfg: config.Config{Verbose: true}},
		{name: "quiet and verbose", cfg: config.Config{Quiet: true, Verbose: true}, wantErr: true},
		{name: "positionals are not validated", cfg: config.Config{Shift: "x", Input: "", Output: ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			err := tc.cfg.Validate(&tc.cfg)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}

			if !tc.wantErr {
				return
			}

			if !errors.Is(err, config.ErrUsage) {
				t.Errorf("Validate() error %v does not wrap ErrUsage", err)
			}

			if !errors.Is(err, validator.ErrValidation) {
				t.Errorf("Validate() error %v does not wrap validator.ErrValidation", err)
			}

			if want := "--quiet and --verbose are mutually exclusive"; !strings.Contains(err.Error(), want) {
				t.Errorf("Validate() error = %q, want it to contain %q", err, want)
			}
		})
	}
}

func TestDisplay(t *testing.T) {
	t.Parallel()

	if (config.Config{}).Display() {
		t.Error("Display() = true without --show")
	}

	if !(config.Config{Show: true}).Display() {
		t.Error("Display() = false with --show")
	}
}
