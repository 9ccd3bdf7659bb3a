package mmio

import (
	"fmt"
	"sync/atomic"
	"unsafe"

	"github.com/ardnew/hardsleep/pkg"
)

// =============================================================================
// Register Window
// =============================================================================

// Region is a process-visible window onto a block of hardware registers.
type Region struct {
	win   []byte       // The mapped (or wrapped) window
	unmap func() error // Releases the mapping; nil for wrapped memory
}

// NewRegion wraps caller-provided memory in a Region. The backing
// buffer must be 32-bit aligned (any slice from make is). Intended for
// tests and simulators; hardware windows come from [Open].
func NewRegion(buf []byte) *Region {
	return &Region{win: buf}
}

// Size returns the window length in bytes.
func (r *Region) Size() int {
	return len(r.win)
}

// Reg32 returns a typed register view at the given byte offset within
// the window. The offset must be 32-bit aligned and inside the window.
func (r *Region) Reg32(off uintptr) (*Reg32, error) {
	if r.win == nil {
		return nil, pkg.ErrClosed
	}
	if off%4 != 0 {
		return nil, fmt.Errorf("%w: offset %#x", pkg.ErrMisaligned, off)
	}
	if off+4 > uintptr(len(r.win)) {
		return nil, fmt.Errorf("%w: offset %#x in %d-byte window", pkg.ErrOutOfRange, off, len(r.win))
	}
	return (*Reg32)(unsafe.Pointer(&r.win[off])), nil
}

// Close releases the mapping. Registers obtained from the Region must
// not be used afterward. Close on an already-closed Region is a no-op.
func (r *Region) Close() error {
	if r.win == nil {
		return nil
	}
	r.win = nil
	if r.unmap == nil {
		return nil
	}
	unmap := r.unmap
	r.unmap = nil
	return unmap()
}

// =============================================================================
// Typed Register Access
// =============================================================================

// Reg32 is a live 32-bit hardware register. The pointer aliases mapped
// device memory; all access goes through Load and Store so every read
// reaches the hardware.
type Reg32 struct {
	v uint32
}

// Load reads the register.
func (r *Reg32) Load() uint32 {
	return atomic.LoadUint32(&r.v)
}

// Store writes the register.
func (r *Reg32) Store(v uint32) {
	atomic.StoreUint32(&r.v, v)
}
