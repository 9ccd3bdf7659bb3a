// Package systimer provides microsecond-precision busy-wait delays on
// Raspberry Pi boards by reading the BCM283x/BCM27xx system timer's
// free-running 1 MHz counter directly through a memory-mapped register
// window.
//
// The OS sleep primitives cannot reliably block for single-digit
// microseconds; the system timer can, at the cost of spinning a CPU
// core for the duration:
//
//	if err := systimer.Setup(); err != nil {
//	    // Unsupported board or /dev/mem not accessible.
//	}
//	systimer.Microsleep(10) // >= 10 microseconds, sub-us overshoot
//
// [Setup] is optional: the first [Microsleep] performs it lazily. The
// register window is mapped exactly once per process and never torn
// down; the peripheral is always on, so the mapping's validity is
// process-scoped.
//
// Mapping physical memory requires root or CAP_SYS_RAWIO.
//
// The package-level functions operate on a process-wide default
// [Timer]. [New] builds independently owned instances, which is mainly
// useful for tests that substitute the hardware collaborators.
//
// # Guarantees
//
//   - The measured delay is never shorter than requested. Typical
//     overshoot is one counter read plus loop overhead.
//   - The wait is correct across the counter's 32-bit wraparound
//     (every 2^32 us, about 71.6 minutes): deadlines are compared on
//     the cyclic sequence, not linearly.
//   - Delays must be below 2^31 us; longer requests are rejected with
//     [pkg.ErrDelayTooLong].
//   - The spin loop only reads the counter. Concurrent Microsleep
//     calls are independent and safe.
package systimer
