package pkg

import (
	"errors"
	"fmt"
	"syscall"
	"testing"
)

func TestSentinelErrors(t *testing.T) {
	// Verify all sentinel errors are distinct
	errs := []error{
		ErrUnsupportedHardware,
		ErrMapFailed,
		ErrNotSupported,
		ErrClosed,
		ErrOutOfRange,
		ErrMisaligned,
		ErrDelayTooLong,
	}

	for i, e1 := range errs {
		if e1 == nil {
			t.Errorf("sentinel error %d is nil", i)
			continue
		}
		for j, e2 := range errs {
			if i != j && errors.Is(e1, e2) {
				t.Errorf("sentinel errors %d and %d are not distinct", i, j)
			}
		}
	}
}

func TestMapFailedPreservesErrno(t *testing.T) {
	// The mapping layer wraps both the sentinel and the OS error so
	// callers can classify the failure and recover the errno.
	err := fmt.Errorf("%w: %w", ErrMapFailed, syscall.EACCES)

	if !errors.Is(err, ErrMapFailed) {
		t.Error("wrapped error does not match ErrMapFailed")
	}

	var errno syscall.Errno
	if !errors.As(err, &errno) {
		t.Fatal("errno not recoverable from wrap chain")
	}
	if errno != syscall.EACCES {
		t.Errorf("errno = %v, want EACCES", errno)
	}
}
