package systimer

import (
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/ardnew/hardsleep/board"
	"github.com/ardnew/hardsleep/mmio"
	"github.com/ardnew/hardsleep/pkg"
)

// =============================================================================
// Timer
// =============================================================================

// Timer is a handle on the system timer's register window. The zero
// value is not usable; construct with [New].
//
// A Timer configures itself at most once. The first successful Setup
// (explicit or lazy) maps the register window for the remaining life
// of the process; there is no teardown.
type Timer struct {
	configured atomic.Bool
	mu         sync.Mutex

	// Hardware collaborators, replaceable in tests.
	detect   func() (board.SoC, error)
	mapRange func(phys uint64, size int) (*mmio.Region, error)

	win *mmio.Region
	cs  *mmio.Reg32
	clo *mmio.Reg32
	chi *mmio.Reg32
	cmp [4]*mmio.Reg32
}

// New returns a Timer wired to the real hardware collaborators:
// revision detection via [board.Detect] and register mapping via
// [mmio.Open].
func New() *Timer {
	return &Timer{
		detect:   board.Detect,
		mapRange: mmio.Open,
	}
}

var defaultTimer = New()

// Default returns the process-wide Timer used by the package-level
// functions.
func Default() *Timer {
	return defaultTimer
}

// Setup maps the system timer registers on the default Timer.
func Setup() error {
	return defaultTimer.Setup()
}

// Microsleep blocks for at least usec microseconds on the default Timer.
func Microsleep(usec uint32) error {
	return defaultTimer.Microsleep(usec)
}

// Ticks returns the default Timer's 64-bit microsecond counter.
func Ticks() (uint64, error) {
	return defaultTimer.Ticks()
}

// =============================================================================
// Configuration
// =============================================================================

// Setup resolves the board's peripheral base address and maps the
// system timer register window. It is safe to call from multiple
// goroutines and safe to call repeatedly: after the first success it
// returns immediately without touching hardware or address space
// again. Calling it at all is optional; the first delay request
// performs it lazily.
//
// Errors are [pkg.ErrUnsupportedHardware] for boards outside the
// address table and [pkg.ErrMapFailed] (with the OS error in the
// chain) when the window cannot be established.
func (t *Timer) Setup() error {
	return t.ensureConfigured()
}

// Configured reports whether the register window is live.
func (t *Timer) Configured() bool {
	return t.configured.Load()
}

// ensureConfigured performs the one-way transition to the configured
// state. The mutex spans the whole resolve-map-commit sequence so that
// concurrent first callers establish exactly one mapping; mapping the
// same physical range twice must never happen.
func (t *Timer) ensureConfigured() error {
	if t.configured.Load() {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Lost the race to another first caller.
	if t.configured.Load() {
		return nil
	}

	soc, err := t.detect()
	if err != nil {
		return err
	}

	base, err := resolveBase(soc)
	if err != nil {
		return err
	}

	win, err := t.mapRange(base+sysTimerOffset, WindowSize)
	if err != nil {
		return err
	}

	if err := t.bindRegisters(win); err != nil {
		return err
	}
	t.win = win

	pkg.LogDebug(pkg.ComponentTimer, "system timer configured",
		"soc", soc.String(),
		"base", fmt.Sprintf("%#x", base))

	// One-way and permanent: the mapping's validity is process-scoped.
	t.configured.Store(true)
	return nil
}

// bindRegisters points the typed register views into the window.
func (t *Timer) bindRegisters(win *mmio.Region) error {
	var err error
	bind := func(off uintptr) *mmio.Reg32 {
		if err != nil {
			return nil
		}
		var r *mmio.Reg32
		r, err = win.Reg32(off)
		return r
	}
	t.cs = bind(regCS)
	t.clo = bind(regCLO)
	t.chi = bind(regCHI)
	t.cmp[0] = bind(regC0)
	t.cmp[1] = bind(regC1)
	t.cmp[2] = bind(regC2)
	t.cmp[3] = bind(regC3)
	return err
}

// =============================================================================
// Microsleep Engine
// =============================================================================

// maxDelay bounds a single delay request to the half-range of the
// 32-bit counter; beyond it the cyclic deadline comparison cannot
// distinguish past from future.
const maxDelay = 1 << 31

// Microsleep blocks the calling thread for at least usec microseconds
// by spinning on the free-running counter. No sleep or yield is
// issued: the calling goroutine occupies a CPU core for the whole
// wait, in exchange for precision below what the scheduler can
// guarantee. A request of 0 returns after a single counter read.
//
// On the first call Microsleep triggers [Timer.Setup] if needed; on
// any error no delay is performed. usec must be below 2^31.
func (t *Timer) Microsleep(usec uint32) error {
	if usec >= maxDelay {
		return fmt.Errorf("%w: %d us", pkg.ErrDelayTooLong, usec)
	}

	if err := t.ensureConfigured(); err != nil {
		return err
	}

	// The sum wraps modulo 2^32, exactly as the counter itself wraps
	// every 2^32 microseconds.
	deadline := t.clo.Load() + usec

	for ticksBefore(t.clo.Load(), deadline) {
	}
	return nil
}

// ticksBefore reports whether counter value v precedes deadline on the
// cyclic 32-bit sequence: the modular distance deadline-v is nonzero
// and less than half the counter range. A plain v < deadline compare
// would wait forever (or not at all) when the counter wraps mid-spin.
func ticksBefore(v, deadline uint32) bool {
	d := deadline - v
	return d != 0 && d < 1<<31
}

// =============================================================================
// Counter and Register Access
// =============================================================================

// Ticks returns the full 64-bit free-running counter in microseconds,
// extending the usable range past the low word's 71.6-minute wrap.
// Triggers lazy setup like [Timer.Microsleep].
func (t *Timer) Ticks() (uint64, error) {
	if err := t.ensureConfigured(); err != nil {
		return 0, err
	}
	for {
		hi := t.chi.Load()
		lo := t.clo.Load()
		if t.chi.Load() == hi {
			return uint64(hi)<<32 | uint64(lo), nil
		}
		// Low word rolled over between the reads; take them again.
	}
}

// Status returns the control/status register. Triggers lazy setup.
func (t *Timer) Status() (uint32, error) {
	if err := t.ensureConfigured(); err != nil {
		return 0, err
	}
	return t.cs.Load(), nil
}

// Compare returns system timer compare register n (0-3). Channels 0
// and 2 are owned by the GPU; nothing in this package drives any of
// them. Triggers lazy setup.
func (t *Timer) Compare(n int) (uint32, error) {
	if n < 0 || n >= len(t.cmp) {
		return 0, fmt.Errorf("%w: compare channel %d", pkg.ErrOutOfRange, n)
	}
	if err := t.ensureConfigured(); err != nil {
		return 0, err
	}
	return t.cmp[n].Load(), nil
}
