package sampio

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestConfigurePeripheral(t *testing.T) {
	c := qt.New(t)

	const mask uint32 = 0x00000C00

	pio, regs := testPIO()
	c.Assert(pio.Configure(ModePeriphB, mask, AttrPullUp), qt.IsNil)
	c.Assert(regs.ABCDSR[0], qt.Equals, mask)
	c.Assert(regs.ABCDSR[1], qt.Equals, uint32(0))
	c.Assert(regs.PDR, qt.Equals, mask)
	c.Assert(regs.IDR, qt.Equals, mask)
	c.Assert(regs.PUER, qt.Equals, mask)
	c.Assert(regs.PUDR, qt.Equals, uint32(0))

	pio, regs = testPIO()
	c.Assert(pio.Configure(ModePeriphC, mask, AttrDefault), qt.IsNil)
	c.Assert(regs.ABCDSR[0], qt.Equals, uint32(0))
	c.Assert(regs.ABCDSR[1], qt.Equals, mask)
	c.Assert(regs.PUDR, qt.Equals, mask)
	c.Assert(regs.PUER, qt.Equals, uint32(0))
}

// Electrical levels seeded into the pin data status register read back
// through Get exactly.
func TestConfigureInputRoundTrip(t *testing.T) {
	c := qt.New(t)

	const mask uint32 = 0x00000030

	pio, regs := testPIO()
	c.Assert(pio.Configure(ModeInput, mask, AttrPullUp|AttrDebounce), qt.IsNil)

	c.Assert(pio.Get(ModeInput, mask), qt.IsFalse)
	regs.PDSR = mask
	c.Assert(pio.Get(ModeInput, mask), qt.IsTrue)
	regs.PDSR = 0x00000010 // any one masked pin high reads high
	c.Assert(pio.Get(ModeInput, mask), qt.IsTrue)
	regs.PDSR = ^mask
	c.Assert(pio.Get(ModeInput, mask), qt.IsFalse)
}

func TestConfigureOutputRoundTrip(t *testing.T) {
	c := qt.New(t)

	const mask uint32 = 0x00000002

	pio, regs := testPIO()
	c.Assert(pio.Configure(ModeOutputHigh, mask, AttrDefault), qt.IsNil)
	latchOutput(regs)
	c.Assert(pio.Get(ModeOutputHigh, mask), qt.IsTrue)

	c.Assert(pio.Configure(ModeOutputLow, mask, AttrOpenDrain), qt.IsNil)
	latchOutput(regs)
	c.Assert(pio.Get(ModeOutputLow, mask), qt.IsFalse)
	c.Assert(regs.MDER, qt.Equals, mask)
}

func TestConfigureNotAPin(t *testing.T) {
	c := qt.New(t)

	pio, regs := testPIO()
	err := pio.Configure(ModeNotAPin, 0x00000001, AttrDefault)
	c.Assert(err, qt.ErrorIs, ErrInvalidMode)
	c.Assert(*regs, qt.Equals, Registers{})

	err = pio.Configure(Mode(0x7F), 0x00000001, AttrDefault)
	c.Assert(err, qt.ErrorIs, ErrInvalidMode)
	c.Assert(*regs, qt.Equals, Registers{})
}
