// Package sampio provides a register-level driver for the parallel
// input/output (PIO) controller found on Microchip (Atmel) SAM3S and SAM4S
// microcontrollers. Each controller is a bank of up to 32 pins that can be
// routed to one of four peripheral functions or driven as plain digital
// I/O, with optional input filtering (deglitch or debounce), internal
// pull-ups, and multi-drive (open-drain) outputs.
//
// All operations act on a bitmask selecting one or more pins of a single
// controller, and every pin in the mask is treated identically. The driver
// holds no state of its own: each call is a fixed, bounded sequence of
// register accesses, and the only state is the register block itself. The
// caller is responsible for serializing access to a controller across
// execution contexts, and for enabling the controller's peripheral clock
// before use.
//
// Datasheet: https://ww1.microchip.com/downloads/en/DeviceDoc/Atmel-11100-32-bit-Cortex-M4-Microcontroller-SAM4S_Datasheet.pdf
//
// Memory-mapped register access provided by: golang.org/x/sys/unix
package sampio

import (
	"errors"
	"fmt"
)

// SlowClockHz is the nominal frequency of the slow clock feeding the input
// filter divider.
const SlowClockHz = 32768

// scdrMask covers the significant bits of the slow clock divider register.
const scdrMask = 0x3FFF

// wpKey is the write protect key, "PIO" in ASCII, required in the upper
// bytes of every WPMR write for the hardware to honor it.
const wpKey uint32 = 0x50494F00

// ErrInvalidMode is returned (wrapped) when a pin mode is outside the set
// accepted by the called operation.
var ErrInvalidMode = errors.New("invalid pin mode")

// Mode selects what drives a pin: one of the four multiplexed peripheral
// functions, or the PIO controller itself as input or output.
type Mode byte

// Enumerated constants for all pin modes. ModeOutputLow and ModeOutputHigh
// both configure an output and differ only in the default level driven.
// ModeNotAPin is a sentinel for board pin tables describing unconnected
// lines; it is never configurable.
const (
	ModePeriphA Mode = iota
	ModePeriphB
	ModePeriphC
	ModePeriphD
	ModeInput
	ModeOutputLow
	ModeOutputHigh
	ModeNotAPin
)

func (m Mode) String() string {
	switch m {
	case ModePeriphA:
		return "PeriphA"
	case ModePeriphB:
		return "PeriphB"
	case ModePeriphC:
		return "PeriphC"
	case ModePeriphD:
		return "PeriphD"
	case ModeInput:
		return "Input"
	case ModeOutputLow:
		return "OutputLow"
	case ModeOutputHigh:
		return "OutputHigh"
	case ModeNotAPin:
		return "NotAPin"
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

// Attr is a bit set of orthogonal configuration attributes applied along
// with a mode. AttrDeglitch and AttrDebounce are mutually exclusive; if both
// are given, deglitch wins.
type Attr byte

// Enumerated constants for pin configuration attributes.
const (
	AttrDefault   Attr = 0x00 // no attribute
	AttrPullUp    Attr = 0x01 // enable the internal pull-up
	AttrDeglitch  Attr = 0x02 // filter pulses shorter than half a clock cycle
	AttrOpenDrain Attr = 0x04 // multi-drive: only drive low, float high
	AttrDebounce  Attr = 0x08 // filter pulses shorter than the divided slow clock
)

// -----------------------------------------------------------------------------
// -- CONTROLLER ---------------------------------------------------- [start] --

// PIO is a handle to one PIO controller instance. Handles are cheap: they
// carry only the location of the register block, never any pin state, so
// any number of controllers can be driven concurrently (by distinct
// callers; a single controller is not safe for unserialized concurrent
// use).
type PIO struct {
	regs *Registers
	mem  []byte // mmap backing when created with Open, else nil
}

// New returns a handle bound to an existing register block. The block may
// be a live controller already mapped into the address space, or plain
// memory standing in for one under test. Use Open to map a live controller
// through /dev/mem instead.
func New(regs *Registers) *PIO {
	return &PIO{regs: regs}
}

// valid verifies the receiver and its register block are both not nil.
//
// Returns false with a descriptive error if either is nil.
func (pio *PIO) valid() (bool, error) {
	if nil == pio {
		return false, fmt.Errorf("nil PIO controller")
	}
	if nil == pio.regs {
		return false, fmt.Errorf("nil register block")
	}
	return true, nil
}

// -- CONTROLLER ------------------------------------------------------ [end] --
// -----------------------------------------------------------------------------

// -----------------------------------------------------------------------------
// -- PIN CONFIGURATION --------------------------------------------- [start] --

// Configure configures every pin in mask for the given mode, applying the
// attributes the mode supports: pull-up for every mode, open-drain for
// outputs, deglitch/debounce filtering for inputs. Configuring a mask
// supersedes whatever mode its pins held before; the hardware enforces
// this, nothing is tracked here.
//
// Returns an error wrapping ErrInvalidMode, without touching any register,
// if mode is ModeNotAPin or not a Mode constant at all.
func (pio *PIO) Configure(mode Mode, mask uint32, attr Attr) error {

	if ok, err := pio.valid(); !ok {
		return err
	}

	switch mode {
	case ModePeriphA, ModePeriphB, ModePeriphC, ModePeriphD:
		if err := pio.SetPeripheral(mode, mask); nil != err {
			return err
		}
		pio.DisableInterrupt(mask)
		pio.PullUp(mask, 0 != attr&AttrPullUp)

	case ModeInput:
		pio.SetInput(mask, attr)

	case ModeOutputLow, ModeOutputHigh:
		pio.SetOutput(mask, ModeOutputHigh == mode,
			0 != attr&AttrOpenDrain, 0 != attr&AttrPullUp)

	case ModeNotAPin:
		return fmt.Errorf("%w: %v", ErrInvalidMode, mode)

	default:
		return fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}

	return nil
}

// SetPeripheral hands every pin in mask to one of the four multiplexed
// peripheral functions. The two ABCD select registers hold one bit each
// per pin, encoding the function as a 2-bit pair:
//
//	function   ABCDSR[0]  ABCDSR[1]
//	   A           0          0
//	   B           1          0
//	   C           0          1
//	   D           1          1
//
// Interrupts on the mask are disabled before the multiplexer switches so a
// half-configured pin cannot fire, and the pins are removed from PIO
// control last.
//
// Returns an error wrapping ErrInvalidMode for any non-peripheral mode.
// The mode is validated before the first register write, so a rejected
// call has no side effect whatsoever, the interrupt disable included.
func (pio *PIO) SetPeripheral(mode Mode, mask uint32) error {

	if ok, err := pio.valid(); !ok {
		return err
	}

	var sel0, sel1 bool
	switch mode {
	case ModePeriphA:
		// both clear
	case ModePeriphB:
		sel0 = true
	case ModePeriphC:
		sel1 = true
	case ModePeriphD:
		sel0, sel1 = true, true
	default:
		return fmt.Errorf("%w: %v", ErrInvalidMode, mode)
	}

	pio.DisableInterrupt(mask)

	pio.regs.ABCDSR[0] = mergeBits(pio.regs.ABCDSR[0], mask, sel0)
	pio.regs.ABCDSR[1] = mergeBits(pio.regs.ABCDSR[1], mask, sel1)

	// Hand over the pins.
	pio.regs.PDR = mask

	return nil
}

// SetInput configures every pin in mask as a digital input. AttrPullUp
// enables the internal pull-up; AttrDeglitch or AttrDebounce selects the
// input filter, deglitch taking precedence if both are given. Selecting
// debounce here leaves the divider alone; call SetDebounceFilter to set
// the cutoff.
func (pio *PIO) SetInput(mask uint32, attr Attr) {

	pio.DisableInterrupt(mask)
	pio.PullUp(mask, 0 != attr&AttrPullUp)

	if 0 != attr&(AttrDeglitch|AttrDebounce) {
		pio.regs.IFER = mask
	} else {
		pio.regs.IFDR = mask
	}

	if 0 != attr&AttrDeglitch {
		pio.regs.IFSCDR = mask
	} else if 0 != attr&AttrDebounce {
		pio.regs.IFSCER = mask
	}

	// Input direction, then claim the pins for PIO control.
	pio.regs.ODR = mask
	pio.regs.PER = mask
}

// SetOutput configures every pin in mask as a digital output driving the
// given default level, optionally with multi-drive (open-drain) and the
// internal pull-up. The default level is latched before the driver is
// enabled so the pin never glitches through the wrong level when its
// direction flips.
func (pio *PIO) SetOutput(mask uint32, high bool, openDrain bool, pullUp bool) {

	pio.DisableInterrupt(mask)
	pio.PullUp(mask, pullUp)

	if openDrain {
		pio.regs.MDER = mask
	} else {
		pio.regs.MDDR = mask
	}

	if high {
		pio.regs.SODR = mask
	} else {
		pio.regs.CODR = mask
	}

	// Output direction, then claim the pins for PIO control.
	pio.regs.OER = mask
	pio.regs.PER = mask
}

// mergeBits returns reg with the masked bits all set or all cleared.
func mergeBits(reg uint32, mask uint32, set bool) uint32 {
	if set {
		return reg | mask
	}
	return reg &^ mask
}

// -- PIN CONFIGURATION ----------------------------------------------- [end] --
// -----------------------------------------------------------------------------

// -----------------------------------------------------------------------------
// -- LEVEL I/O ------------------------------------------------------ [start] --

// Set drives a high level on every pin in mask. Pins not currently
// configured as outputs are unaffected electrically, but the controller
// latches the value and applies it if they later become outputs.
func (pio *PIO) Set(mask uint32) {
	pio.regs.SODR = mask
}

// Clear drives a low level on every pin in mask, with the same latching
// behavior for non-outputs as Set.
func (pio *PIO) Clear(mask uint32) {
	pio.regs.CODR = mask
}

// Get reports whether any pin in mask reads high. For the output modes it
// returns the level the controller is driving (the latched output data);
// for every other mode it returns the actual electrical level sampled on
// the pins. Use GetOutputDataStatus to learn whether a pin is really
// driving its latched value.
func (pio *PIO) Get(mode Mode, mask uint32) bool {

	var reg uint32
	if ModeOutputLow == mode || ModeOutputHigh == mode {
		reg = pio.regs.ODSR
	} else {
		reg = pio.regs.PDSR
	}

	return 0 != reg&mask
}

// GetOutputDataStatus reports whether every pin in mask is both under PIO
// control and configured as an output, i.e. whether the latched output
// data is actually being driven on all of them.
func (pio *PIO) GetOutputDataStatus(mask uint32) bool {
	if mask != pio.regs.PSR&mask {
		return false
	}
	return mask == pio.regs.OSR&mask
}

// PullUp enables or disables the internal pull-up on every pin in mask.
func (pio *PIO) PullUp(mask uint32, enable bool) {
	if enable {
		pio.regs.PUER = mask
	} else {
		pio.regs.PUDR = mask
	}
}

// SetDebounceFilter selects debounce filtering for every pin in mask and
// programs the shared slow clock divider for the given cutoff frequency in
// Hz. Pulses shorter than one divided clock period are suppressed. The
// divider is common to the whole controller; the last call wins for all
// debouncing pins.
//
// A cutoff of zero is invalid and faults with a run-time divide-by-zero
// panic; callers must validate the cutoff beforehand.
func (pio *PIO) SetDebounceFilter(mask uint32, cutoff uint32) {
	pio.regs.IFSCER = mask
	pio.regs.SCDR = (SlowClockHz/(2*cutoff) - 1) & scdrMask
}

// -- LEVEL I/O -------------------------------------------------------- [end] --
// -----------------------------------------------------------------------------

// -----------------------------------------------------------------------------
// -- INTERRUPTS ----------------------------------------------------- [start] --

// EnableInterrupt enables input change interrupts on every pin in mask.
// Handling the resulting interrupt is outside this driver; only the mask
// is managed here.
func (pio *PIO) EnableInterrupt(mask uint32) {
	pio.regs.IER = mask
}

// DisableInterrupt disables input change interrupts on every pin in mask.
func (pio *PIO) DisableInterrupt(mask uint32) {
	pio.regs.IDR = mask
}

// InterruptMask returns the set of pins with input change interrupts
// enabled.
func (pio *PIO) InterruptMask() uint32 {
	return pio.regs.IMR
}

// InterruptStatus returns the set of pins with a pending input change
// since the last read. On hardware this read clears the register.
func (pio *PIO) InterruptStatus() uint32 {
	return pio.regs.ISR
}

// -- INTERRUPTS ------------------------------------------------------- [end] --
// -----------------------------------------------------------------------------

// -----------------------------------------------------------------------------
// -- WRITE PROTECT -------------------------------------------------- [start] --

// SetWriteProtect enables or disables write protection of the controller's
// configuration registers. While protected, configuration writes are
// ignored by the hardware and flagged in the write protect status.
func (pio *PIO) SetWriteProtect(enable bool) {
	if enable {
		pio.regs.WPMR = wpKey | 1
	} else {
		pio.regs.WPMR = wpKey
	}
}

// WriteProtectStatus reports whether a write protect violation occurred
// since the last read, and the register offset of the offending write.
func (pio *PIO) WriteProtectStatus() (violated bool, source uint16) {
	s := pio.regs.WPSR
	return 0 != s&1, uint16(s >> 8)
}

// -- WRITE PROTECT ---------------------------------------------------- [end] --
// -----------------------------------------------------------------------------
