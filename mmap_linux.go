//go:build linux
// +build linux

package sampio

import (
	"fmt"
	"os"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Open maps the PIO controller register block at the given physical base
// address through /dev/mem and returns a handle bound to it. The base is
// normally one of the BasePIO constants. Opening /dev/mem requires root
// (or CAP_SYS_RAWIO), and the controller's peripheral clock must already
// be enabled or reads will not reflect pin state.
//
// Returns an error if /dev/mem could not be opened or the block could not
// be mapped.
func Open(base uintptr) (*PIO, error) {

	f, err := os.OpenFile("/dev/mem", os.O_RDWR|os.O_SYNC, 0)
	if nil != err {
		return nil, fmt.Errorf("open /dev/mem: %w", err)
	}
	defer f.Close()

	// Mapping offsets must be page-aligned; the PIO instances are not.
	page := uintptr(unix.Getpagesize())
	head := base & (page - 1)
	size := int(head + unsafe.Sizeof(Registers{}))

	mem, err := unix.Mmap(int(f.Fd()), int64(base-head), size,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if nil != err {
		return nil, fmt.Errorf("mmap PIO block at %#x: %w", base, err)
	}

	return &PIO{
		regs: (*Registers)(unsafe.Pointer(&mem[head])),
		mem:  mem,
	}, nil
}

// Close unmaps the register block of a handle created with Open and
// invalidates the handle. Closing a handle created with New only
// invalidates it.
//
// Returns an error if the handle is invalid or the unmap failed.
func (pio *PIO) Close() error {

	if ok, err := pio.valid(); !ok {
		return err
	}

	if nil != pio.mem {
		if err := unix.Munmap(pio.mem); nil != err {
			return fmt.Errorf("munmap PIO block: %w", err)
		}
		pio.mem = nil
	}
	pio.regs = nil

	return nil
}
