package systimer

import (
	"fmt"

	"github.com/ardnew/hardsleep/board"
	"github.com/ardnew/hardsleep/pkg"
)

// =============================================================================
// Physical Address Table
// =============================================================================

// peripheralBase maps each known SoC generation to the physical base
// address of its peripheral register block.
var peripheralBase = map[board.SoC]uint64{
	board.BCM2835: 0x20000000,
	board.BCM2836: 0x3F000000,
	board.BCM2837: 0x3F000000,
	board.BCM2711: 0xFE000000,
	board.BCM2712: 0x107C000000,
}

// sysTimerOffset locates the system timer block within the peripheral
// address space. It is the same on every generation in the table.
const sysTimerOffset = 0x3000

// resolveBase returns the peripheral base address for the given SoC.
// Generations outside the table (newer or older than the known set)
// yield [pkg.ErrUnsupportedHardware].
func resolveBase(soc board.SoC) (uint64, error) {
	base, ok := peripheralBase[soc]
	if !ok {
		return 0, fmt.Errorf("%w: %s", pkg.ErrUnsupportedHardware, soc)
	}
	return base, nil
}

// =============================================================================
// Register Layout
// =============================================================================

// System timer register offsets (BCM2835 ARM Peripherals, section 12).
const (
	regCS  = 0x00 // Control/status
	regCLO = 0x04 // Free-running counter, low word (1 MHz)
	regCHI = 0x08 // Free-running counter, high word
	regC0  = 0x0C // Compare 0 (owned by the GPU)
	regC1  = 0x10 // Compare 1
	regC2  = 0x14 // Compare 2 (owned by the GPU)
	regC3  = 0x18 // Compare 3
)

// WindowSize is the size in bytes of the full register layout: CS,
// CLO, CHI, and the four compare registers.
const WindowSize = 28
