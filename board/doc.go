// Package board identifies the Raspberry Pi hardware generation.
//
// The peripheral register block moves between SoC generations, so any
// code that maps registers directly must first know which SoC it is
// running on. The firmware exposes a board revision code through
// /proc/cpuinfo, and this package decodes it into a [SoC] tag:
//
//	soc, err := board.Detect()
//	if err != nil {
//	    // Revision missing or not a known generation.
//	}
//
// Two revision encodings exist. Boards manufactured before mid-2012
// use small sequential codes (0x0002 through 0x0015), all of which are
// BCM2835 designs. Later boards use a bit-field encoding with the SoC
// identity in bits 12-15. Both schemes are handled by [ParseRevision].
//
// Detection is a pure function of the boot-time hardware identity; the
// result never changes while the process runs, so callers query it
// once and cache the answer.
package board
