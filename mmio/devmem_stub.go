//go:build !linux

package mmio

import "github.com/ardnew/hardsleep/pkg"

// DevMemPath is the device node exposing physical memory on Linux.
const DevMemPath = "/dev/mem"

// Open always fails on non-Linux platforms: there is no portable way
// to map a physical address range from userspace.
func Open(phys uint64, size int) (*Region, error) {
	return nil, pkg.ErrNotSupported
}
