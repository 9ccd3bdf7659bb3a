// Package mmio maps physical register blocks into process memory and
// exposes them as typed 32-bit registers.
//
// [Open] maps a physical address range through /dev/mem (Linux only,
// root or CAP_SYS_RAWIO required). The returned [Region] hands out
// [Reg32] views at word offsets within the window:
//
//	win, err := mmio.Open(0xFE003000, 28)
//	if err != nil {
//	    // errors.Is(err, pkg.ErrMapFailed); OS errno in the chain.
//	}
//	clo, _ := win.Reg32(0x04)
//	now := clo.Load()
//
// Every [Reg32.Load] and [Reg32.Store] is a single aligned atomic
// access to the mapped word. The compiler cannot cache, tear, or
// reorder these, so each load observes live hardware state - the
// userspace equivalent of a volatile register read.
//
// [NewRegion] wraps caller-provided memory in the same Region API so
// tests and simulators can stand in for hardware without a mapping.
//
// A Region is never implicitly unmapped. [Region.Close] exists for
// callers with bounded lifetimes; peripherals that are live for the
// whole process simply never call it.
package mmio
