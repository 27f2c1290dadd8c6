package failure_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/idelchi/gocaesar/internal/failure"
)

func TestExitCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		kind failure.Kind
		want int
	}{
		{failure.WrongNumberOfArguments, 1},
		{failure.IOError, 2},
		{failure.FailedToParse, 3},
		{failure.ShiftNotWithinRange, 4},
		{failure.InvalidFlags, 5},
	}

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			t.Parallel()

			if got := tc.kind.ExitCode(); got != tc.want {
				t.Errorf("%v.ExitCode() = %d, want %d", tc.kind, got, tc.want)
			}

			if got := tc.kind.ExitCode(); got == failure.ExitInternal {
				t.Errorf("%v collides with ExitInternal", tc.kind)
			}
		})
	}
}

func TestAsThroughWrapping(t *testing.T) {
	t.Parallel()

	base := failure.Wrap(fs.ErrNotExist, failure.IOError, "opening %q", "missing.txt")
	wrapped := fmt.Errorf("running: %w", base)

	got, ok := failure.As(wrapped)
	if !ok {
		t.Fatal("As() did not find the failure through wrapping")
	}

	if got.Kind != failure.IOError {
		t.Errorf("Kind = %v, want %v", got.Kind, failure.IOError)
	}

	if !errors.Is(wrapped, fs.ErrNotExist) {
		t.Error("cause is not reachable through errors.Is")
	}

	if !failure.Is(wrapped, failure.IOError) || failure.Is(wrapped, failure.FailedToParse) {
		t.Error("Is() reported the wrong kind")
	}
}

func TestPlainErrorIsNotAFailure(t *testing.T) {
	t.Parallel()

	if _, ok := failure.As(errors.New("write: broken pipe")); ok {
		t.Error("plain error was classified as a user-facing failure")
	}
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	err := failure.New(failure.ShiftNotWithinRange, "shift %d is not within [1, 25]", 26)
	if got, want := err.Error(), "shift 26 is not within [1, 25]"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	err = failure.Wrap(errors.New("boom"), failure.IOError, "opening")
	if got, want := err.Error(), "opening: boom"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
