//go:build windows

package stream

import (
	"errors"
	"fmt"
	"math"

	"golang.org/x/sys/windows"
)

// lock takes a non-blocking byte-range lock over the whole file, exclusive for writers.
// The lock is released when the handle is closed.
func lock(fd uintptr, exclusive bool) error {
	flags := uint32(windows.LOCKFILE_FAIL_IMMEDIATELY)

	if exclusive {
		flags |= windows.LOCKFILE_EXCLUSIVE_LOCK
	}

	overlapped := new(windows.Overlapped)

	if err := windows.LockFileEx(windows.Handle(fd), flags, 0, math.MaxUint32, math.MaxUint32, overlapped); err != nil {
		if errors.Is(err, windows.ERROR_LOCK_VIOLATION) {
			return ErrLocked
		}

		return fmt.Errorf("locking: %w", err)
	}

	return nil
}
