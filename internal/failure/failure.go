// Package failure defines the user-facing error kinds of gocaesar and the
// exit codes they map to.
//
// Only errors of type *Error are considered user mistakes. Anything else
// reaching the top level is a defect or an unexpected I/O failure and is
// reported separately with ExitInternal.
package failure

import (
	"errors"
	"fmt"
)

// Kind enumerates the user-facing failure classes.
type Kind int

const (
	// WrongNumberOfArguments is returned when the positional arguments are not <shift> <input> <output>.
	WrongNumberOfArguments Kind = iota + 1
	// IOError is returned when an input or output stream cannot be opened.
	IOError
	// FailedToParse is returned when the shift is not an integer in the byte range.
	FailedToParse
	// ShiftNotWithinRange is returned when the shift is outside [1, 25].
	ShiftNotWithinRange
	// InvalidFlags is returned for unknown or conflicting flags.
	InvalidFlags
)

// ExitInternal is the exit code for failures that are not user mistakes (EX_SOFTWARE).
const ExitInternal = 70

// ExitCode returns the process exit code for the kind.
func (k Kind) ExitCode() int {
	return int(k)
}

func (k Kind) String() string {
	switch k {
	case WrongNumberOfArguments:
		return "WrongNumberOfArguments"
	case IOError:
		return "IOError"
	case FailedToParse:
		return "FailedToParse"
	case ShiftNotWithinRange:
		return "ShiftNotWithinRange"
	case InvalidFlags:
		return "InvalidFlags"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Error is a user-facing failure.
type Error struct {
	// Kind classifies the failure and selects the exit code.
	Kind Kind

	// Message is printed to the error stream as-is.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// New creates an Error of the given kind with a formatted message.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates an Error of the given kind that wraps err.
// The cause is appended to the formatted message.
func Wrap(err error, kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// As reports whether err is, or wraps, a user-facing failure and returns it.
func As(err error) (*Error, bool) {
	var target *Error
	if errors.As(err, &target) {
		return target, true
	}

	return nil, false
}

// Is reports whether err is a user-facing failure of the given kind.
func Is(err error, kind Kind) bool {
	fail, ok := As(err)

	return ok && fail.Kind == kind
}
