// Package pkg provides shared utilities for the hardsleep timer library.
//
// This package contains common functionality used across the board
// detection, register mapping, and timer packages, including:
//
//   - Structured logging via Go's standard [log/slog] package
//   - Sentinel error values for the hardware error taxonomy
//   - Component identifiers for log filtering
//
// The package is designed to have zero external dependencies, relying
// only on the Go standard library.
//
// # Logging
//
// The logging subsystem wraps [log/slog] with hardware-specific context:
//
//	pkg.SetLogLevel(slog.LevelDebug)
//	pkg.LogInfo(pkg.ComponentTimer, "system timer mapped", "base", base)
//
// # Errors
//
// The error surface distinguishes exactly two terminal conditions, plus
// a small set of programming-error sentinels:
//
//	if errors.Is(err, pkg.ErrUnsupportedHardware) {
//	    // This board generation is not in the address table.
//	}
//	if errors.Is(err, pkg.ErrMapFailed) {
//	    // The register window could not be established. The OS error
//	    // is preserved in the chain:
//	    var errno syscall.Errno
//	    errors.As(err, &errno)
//	}
package pkg
