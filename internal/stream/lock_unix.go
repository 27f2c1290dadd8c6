//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package stream

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// lock takes a non-blocking advisory lock on fd, exclusive for writers.
// The lock is released when the descriptor is closed.
func lock(fd uintptr, exclusive bool) error {
	how := unix.LOCK_SH

	if exclusive {
		how = unix.LOCK_EX
	}

	if err := unix.Flock(int(fd), how|unix.LOCK_NB); err != nil { //nolint:gosec // descriptors fit in int
		if errors.Is(err, unix.EWOULDBLOCK) {
			return ErrLocked
		}

		return fmt.Errorf("locking: %w", err)
	}

	return nil
}
