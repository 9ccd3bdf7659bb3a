package pkg

import "errors"

// Hardware access errors.
var (
	// ErrUnsupportedHardware indicates the board revision is not in the
	// peripheral address table. Not retryable: the revision is fixed for
	// the life of the boot.
	ErrUnsupportedHardware = errors.New("unsupported hardware revision")

	// ErrMapFailed indicates the physical register window could not be
	// established. The underlying OS error is preserved in the wrap
	// chain. Not retryable within a process: the OS decision (typically
	// a privilege problem) does not change between identical requests.
	ErrMapFailed = errors.New("peripheral mapping failed")

	// ErrNotSupported indicates the operation is unavailable on this
	// platform (physical memory mapping requires Linux).
	ErrNotSupported = errors.New("not supported on this platform")

	// ErrClosed indicates the register window has been unmapped.
	ErrClosed = errors.New("register window closed")

	// ErrOutOfRange indicates a register offset outside the mapped window.
	ErrOutOfRange = errors.New("register offset out of range")

	// ErrMisaligned indicates a register offset that is not 32-bit aligned.
	ErrMisaligned = errors.New("register offset misaligned")

	// ErrDelayTooLong indicates a requested delay beyond the half-range
	// of the 32-bit counter, which the cyclic deadline comparison cannot
	// represent.
	ErrDelayTooLong = errors.New("delay exceeds counter half-range")
)
