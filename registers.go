package sampio

// Registers is the memory layout of a single PIO controller instance. Field
// order and padding reproduce the datasheet offsets exactly so that a pointer
// to this struct can overlay the live register block of one controller. A
// zero-value Registers also serves as a plain-memory stand-in for the
// hardware when no device is present (see the package tests).
//
// Registers suffixed ER/DR are write-only enable/disable pairs; writing a 1
// bit acts on the corresponding pin, writing 0 has no effect. The matching SR
// register reads back the resulting status.
type Registers struct {
	PER    uint32    // 0x0000 PIO enable
	PDR    uint32    // 0x0004 PIO disable (hand pin to peripheral)
	PSR    uint32    // 0x0008 PIO status
	_      uint32    // 0x000C
	OER    uint32    // 0x0010 output enable
	ODR    uint32    // 0x0014 output disable
	OSR    uint32    // 0x0018 output status
	_      uint32    // 0x001C
	IFER   uint32    // 0x0020 input filter enable
	IFDR   uint32    // 0x0024 input filter disable
	IFSR   uint32    // 0x0028 input filter status
	_      uint32    // 0x002C
	SODR   uint32    // 0x0030 set output data
	CODR   uint32    // 0x0034 clear output data
	ODSR   uint32    // 0x0038 output data status
	PDSR   uint32    // 0x003C pin data status
	IER    uint32    // 0x0040 interrupt enable
	IDR    uint32    // 0x0044 interrupt disable
	IMR    uint32    // 0x0048 interrupt mask
	ISR    uint32    // 0x004C interrupt status (clears on read)
	MDER   uint32    // 0x0050 multi-drive enable
	MDDR   uint32    // 0x0054 multi-drive disable
	MDSR   uint32    // 0x0058 multi-drive status
	_      uint32    // 0x005C
	PUDR   uint32    // 0x0060 pull-up disable
	PUER   uint32    // 0x0064 pull-up enable
	PUSR   uint32    // 0x0068 pull-up status
	_      uint32    // 0x006C
	ABCDSR [2]uint32 // 0x0070 peripheral ABCD select 1 and 2
	_      [2]uint32 // 0x0078
	IFSCDR uint32    // 0x0080 input filter slow clock disable (deglitch)
	IFSCER uint32    // 0x0084 input filter slow clock enable (debounce)
	IFSCSR uint32    // 0x0088 input filter slow clock status
	SCDR   uint32    // 0x008C slow clock divider (low 14 bits)
	PPDDR  uint32    // 0x0090 pad pull-down disable
	PPDER  uint32    // 0x0094 pad pull-down enable
	PPDSR  uint32    // 0x0098 pad pull-down status
	_      uint32    // 0x009C
	OWER   uint32    // 0x00A0 output write enable
	OWDR   uint32    // 0x00A4 output write disable
	OWSR   uint32    // 0x00A8 output write status
	_      uint32    // 0x00AC
	AIMER  uint32    // 0x00B0 additional interrupt modes enable
	AIMDR  uint32    // 0x00B4 additional interrupt modes disable
	AIMMR  uint32    // 0x00B8 additional interrupt modes mask
	_      uint32    // 0x00BC
	ESR    uint32    // 0x00C0 edge select
	LSR    uint32    // 0x00C4 level select
	ELSR   uint32    // 0x00C8 edge/level status
	_      uint32    // 0x00CC
	FELLSR uint32    // 0x00D0 falling edge/low level select
	REHLSR uint32    // 0x00D4 rising edge/high level select
	FRLHSR uint32    // 0x00D8 fall/rise - low/high status
	_      uint32    // 0x00DC
	LOCKSR uint32    // 0x00E0 lock status
	WPMR   uint32    // 0x00E4 write protect mode
	WPSR   uint32    // 0x00E8 write protect status
}

// Physical base addresses of the PIO controller instances on the SAM4S
// system bus. Pass one of these to Open to map the live register block.
const (
	BasePIOA uintptr = 0x400E0E00
	BasePIOB uintptr = 0x400E1000
	BasePIOC uintptr = 0x400E1200
)
