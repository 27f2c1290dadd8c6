// Package logic implements the core business logic for the encryption/decryption.
package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/idelchi/gocaesar/internal/cipher"
	"github.com/idelchi/gocaesar/internal/config"
	"github.com/idelchi/gocaesar/internal/stream"
)

// Result represents the outcome of a single run.
type Result struct {
	// Input path
	Input string

	// Output path
	Output string

	// Number of bytes written
	Size int64

	// Wall time of the transform
	Duration time.Duration
}

// Run parses the shift, opens both streams, transforms input into output and closes both streams.
// Argument and open failures are returned as failure.Error before any byte is read.
// Streams that were opened are closed on every path,
// and the completion notice is only logged once both closed cleanly.
func Run(cfg *config.Config, opener *stream.Opener, log zerolog.Logger) (result Result, err error) {
	shift, err := cipher.ParseShift(cfg.Shift)
	if err != nil {
		return result, err
	}

	transform := cipher.Encrypt
	if cfg.Decrypt {
		transform = cipher.Decrypt
	}

	log.Debug().
		Stringer("shift", shift).
		Bool("decrypt", cfg.Decrypt).
		Str("input", cfg.Input).
		Str("output", cfg.Output).
		Msg("starting")

	input, err := opener.Open(cfg.Input, stream.Input)
	if err != nil {
		return result, err
	}

	defer closeOnReturn(input, &err)

	output, err := opener.Open(cfg.Output, stream.Output)
	if err != nil {
		return result, err
	}

	defer closeOnReturn(output, &err)

	start := time.Now()

	size, err := transform(input, output, shift)
	if err != nil {
		return result, fmt.Errorf("transforming %q -> %q: %w", cfg.Input, cfg.Output, err)
	}

	if err := output.Close(); err != nil {
		return result, err
	}

	if err := input.Close(); err != nil {
		return result, err
	}

	result = Result{
		Input:    cfg.Input,
		Output:   cfg.Output,
		Size:     size,
		Duration: time.Since(start),
	}

	log.Info().
		Str("input", result.Input).
		Str("output", result.Output).
		Str("size", humanize.IBytes(uint64(max(0, result.Size)))). //nolint:gosec // size is never negative
		Dur("took", result.Duration.Round(time.Millisecond)).
		Msg("done")

	return result, nil
}

// closeOnReturn closes s and joins any close failure into *errp.
func closeOnReturn(s *stream.Stream, errp *error) {
	if err := s.Close(); err != nil {
		*errp = errors.Join(*errp, err)
	}
}
