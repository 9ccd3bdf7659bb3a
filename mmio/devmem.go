//go:build linux

package mmio

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"

	"github.com/ardnew/hardsleep/pkg"
)

// DevMemPath is the device node exposing physical memory.
const DevMemPath = "/dev/mem"

// Open maps size bytes of physical memory starting at phys with
// read/write access. The physical address need not be page-aligned;
// the mapping is extended downward to the page boundary and the
// returned Region starts exactly at phys.
//
// Requires access to /dev/mem (root or CAP_SYS_RAWIO). Failures are
// reported as [pkg.ErrMapFailed] with the OS error in the wrap chain.
func Open(phys uint64, size int) (*Region, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: window size %d", pkg.ErrOutOfRange, size)
	}

	f, err := os.OpenFile(DevMemPath, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", pkg.ErrMapFailed, err)
	}
	// The mapping outlives the descriptor.
	defer f.Close()

	page := uint64(unix.Getpagesize())
	alignedPhys := phys &^ (page - 1)
	slack := int(phys - alignedPhys)

	mem, err := unix.Mmap(int(f.Fd()), int64(alignedPhys), slack+size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("%w: mmap %#x: %w", pkg.ErrMapFailed, phys, err)
	}

	pkg.LogDebug(pkg.ComponentMMIO, "physical window mapped",
		"phys", fmt.Sprintf("%#x", phys),
		"size", size)

	return &Region{
		win:   mem[slack : slack+size],
		unmap: func() error { return unix.Munmap(mem) },
	}, nil
}
