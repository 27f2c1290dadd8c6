package cipher

import (
	"errors"
	"strconv"

	"github.com/idelchi/gocaesar/internal/failure"
)

// Bounds of a valid shift. A shift of 0 or 26 leaves the alphabet unchanged.
const (
	MinShift = 1
	MaxShift = 25

	alphabetSize = 26
)

// Shift is a validated alphabet offset in [MinShift, MaxShift].
type Shift uint8

// ParseShift parses s as an unsigned 8-bit integer and checks that it lies within [MinShift, MaxShift].
func ParseShift(s string) (Shift, error) {
	value, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		cause := errors.Unwrap(err)
		if cause == nil {
			cause = err
		}

		return 0, failure.Wrap(cause, failure.FailedToParse, "failed to parse %q as a shift between 0 and 255", s)
	}

	if value < MinShift || value > MaxShift {
		return 0, failure.New(failure.ShiftNotWithinRange,
			"shift %d is not within [%d, %d]", value, MinShift, MaxShift)
	}

	return Shift(value), nil
}

// Inverse returns the complementary shift that undoes s.
func (s Shift) Inverse() Shift {
	return alphabetSize - s
}

// Rotate shifts b within its case if it is an ASCII letter and returns every other byte unchanged.
func (s Shift) Rotate(b byte) byte {
	switch {
	case b >= 'A' && b <= 'Z':
		return 'A' + (b-'A'+byte(s))%alphabetSize
	case b >= 'a' && b <= 'z':
		return 'a' + (b-'a'+byte(s))%alphabetSize
	default:
		return b
	}
}

func (s Shift) String() string {
	return strconv.Itoa(int(s))
}
