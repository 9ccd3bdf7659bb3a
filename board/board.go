package board

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ardnew/hardsleep/pkg"
)

// SoC identifies a Broadcom SoC generation used by Raspberry Pi boards.
type SoC uint8

// Known SoC generations.
const (
	SoCUnknown SoC = iota // Unrecognized or undetected
	BCM2835               // Pi 1, Zero, Zero W, CM1
	BCM2836               // Pi 2
	BCM2837               // Pi 3, Zero 2 W, CM3
	BCM2711               // Pi 4, Pi 400, CM4
	BCM2712               // Pi 5, CM5
)

// String returns the SoC part name.
func (s SoC) String() string {
	switch s {
	case BCM2835:
		return "BCM2835"
	case BCM2836:
		return "BCM2836"
	case BCM2837:
		return "BCM2837"
	case BCM2711:
		return "BCM2711"
	case BCM2712:
		return "BCM2712"
	default:
		return "unknown"
	}
}

// CPUInfoPath is the procfs file carrying the board revision code.
const CPUInfoPath = "/proc/cpuinfo"

// =============================================================================
// Detection
// =============================================================================

// Detect reads the board revision from /proc/cpuinfo and decodes the
// SoC generation. It returns [pkg.ErrUnsupportedHardware] when the
// revision is absent or not a known Raspberry Pi code.
func Detect() (SoC, error) {
	f, err := os.Open(CPUInfoPath)
	if err != nil {
		return SoCUnknown, fmt.Errorf("%w: %w", pkg.ErrUnsupportedHardware, err)
	}
	defer f.Close()

	rev, err := scanRevision(f)
	if err != nil {
		return SoCUnknown, err
	}

	soc, err := ParseRevision(rev)
	if err != nil {
		return SoCUnknown, err
	}

	pkg.LogDebug(pkg.ComponentBoard, "board detected", "revision", rev, "soc", soc.String())
	return soc, nil
}

// scanRevision extracts the Revision field from cpuinfo-formatted text.
func scanRevision(r io.Reader) (string, error) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		if strings.TrimSpace(key) == "Revision" {
			return strings.TrimSpace(value), nil
		}
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", pkg.ErrUnsupportedHardware, err)
	}
	return "", fmt.Errorf("%w: no revision in cpuinfo", pkg.ErrUnsupportedHardware)
}

// =============================================================================
// Revision Decoding
// =============================================================================

// Revision code layout (new scheme, bit 23 set):
//
//	bits 23    new-scheme flag
//	bits 12-15 SoC identity (0=BCM2835 .. 4=BCM2712)
//
// Old-scheme codes are sequential board numbers; every one of them is
// a BCM2835 design. Overclock/warranty state is recorded in the bits
// above 24 and must be masked before comparison.
const (
	revNewScheme    = 1 << 23
	revSoCShift     = 12
	revSoCMask      = 0xF
	revWarrantyMask = 0x00FFFFFF

	oldSchemeMin = 0x0002
	oldSchemeMax = 0x0015
)

// ParseRevision decodes a hexadecimal revision string (as found in
// /proc/cpuinfo) into a SoC generation. It returns
// [pkg.ErrUnsupportedHardware] for codes outside the known set.
func ParseRevision(rev string) (SoC, error) {
	rev = strings.TrimSpace(strings.TrimPrefix(rev, "0x"))
	code, err := strconv.ParseUint(rev, 16, 32)
	if err != nil {
		return SoCUnknown, fmt.Errorf("%w: bad revision %q", pkg.ErrUnsupportedHardware, rev)
	}
	return decodeRevision(uint32(code))
}

// decodeRevision maps a numeric revision code to a SoC generation.
func decodeRevision(code uint32) (SoC, error) {
	if code&revNewScheme != 0 {
		switch (code >> revSoCShift) & revSoCMask {
		case 0:
			return BCM2835, nil
		case 1:
			return BCM2836, nil
		case 2:
			return BCM2837, nil
		case 3:
			return BCM2711, nil
		case 4:
			return BCM2712, nil
		}
		return SoCUnknown, fmt.Errorf("%w: revision %#x", pkg.ErrUnsupportedHardware, code)
	}

	// Old scheme: mask warranty bits, then every known code is BCM2835.
	old := code & revWarrantyMask
	if old >= oldSchemeMin && old <= oldSchemeMax {
		return BCM2835, nil
	}
	return SoCUnknown, fmt.Errorf("%w: revision %#x", pkg.ErrUnsupportedHardware, code)
}
