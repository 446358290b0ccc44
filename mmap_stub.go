//go:build !linux
// +build !linux

package sampio

import "fmt"

// Memory-mapped access to a live controller goes through /dev/mem, which
// only exists on Linux. On every other platform Open fails, and the driver
// is limited to register blocks supplied through New, which is still
// enough to develop against a simulated block.

// Open is unsupported on this platform.
func Open(base uintptr) (*PIO, error) {
	return nil, fmt.Errorf("mmap PIO block at %#x: /dev/mem requires linux", base)
}

// Close invalidates the handle.
//
// Returns an error if the handle is already invalid.
func (pio *PIO) Close() error {
	if ok, err := pio.valid(); !ok {
		return err
	}
	pio.regs = nil
	return nil
}
