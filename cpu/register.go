package cpu

import (
	"fmt"
)

const (
	REGISTER_COUNT = 8
	REGISTER_MASK  = REGISTER_COUNT - 1
	REGISTER_SP    = 7    // R7 is the stack pointer.
	SP_INIT        = 0xf4 // Stack pointer at reset.
)

// Flags is the result of the most recent compare.
type Flags int

const (
	FLAG_NONE    = Flags(0) // No compare since reset.
	FLAG_EQUAL   = Flags(1)
	FLAG_GREATER = Flags(2)
	FLAG_LESS    = Flags(3)
)

// Bit-packed FL register layout, 0b00000LGE.
const (
	FL_E = uint8(0b001)
	FL_G = uint8(0b010)
	FL_L = uint8(0b100)
)

// Byte returns the bit-packed FL form used by traces.
func (fl Flags) Byte() uint8 {
	switch fl {
	case FLAG_EQUAL:
		return FL_E
	case FLAG_GREATER:
		return FL_G
	case FLAG_LESS:
		return FL_L
	}
	return 0
}

// FlagsFromByte converts a bit-packed FL value. Bytes with other than
// exactly one of L, G or E set decode as FLAG_NONE.
func FlagsFromByte(value uint8) Flags {
	switch value {
	case FL_E:
		return FLAG_EQUAL
	case FL_G:
		return FLAG_GREATER
	case FL_L:
		return FLAG_LESS
	}
	return FLAG_NONE
}

func (fl Flags) String() string {
	switch fl {
	case FLAG_NONE:
		return "-"
	case FLAG_EQUAL:
		return "E"
	case FLAG_GREATER:
		return "G"
	case FLAG_LESS:
		return "L"
	}
	return fmt.Sprintf("Flags(%d)", int(fl))
}

// RegisterFile holds the general registers, PC and FL. Register indexes
// are taken modulo REGISTER_COUNT.
type RegisterFile struct {
	reg [REGISTER_COUNT]uint8
	pc  uint8
	fl  Flags
}

// Get register index.
func (rf *RegisterFile) Get(index uint8) uint8 {
	return rf.reg[index&REGISTER_MASK]
}

// Set register index to value.
func (rf *RegisterFile) Set(index uint8, value uint8) {
	rf.reg[index&REGISTER_MASK] = value
}

func (rf *RegisterFile) Sp() uint8 {
	return rf.reg[REGISTER_SP]
}

func (rf *RegisterFile) SetSp(value uint8) {
	rf.reg[REGISTER_SP] = value
}

func (rf *RegisterFile) Pc() uint8 {
	return rf.pc
}

func (rf *RegisterFile) SetPc(value uint8) {
	rf.pc = value
}

func (rf *RegisterFile) Flags() Flags {
	return rf.fl
}

func (rf *RegisterFile) SetFlags(fl Flags) {
	rf.fl = fl
}

// Registers returns a copy of the general registers.
func (rf *RegisterFile) Registers() [REGISTER_COUNT]uint8 {
	return rf.reg
}

// Reset to power-on state: registers zeroed, SP at SP_INIT, PC 0, no flags.
func (rf *RegisterFile) Reset() {
	clear(rf.reg[:])
	rf.reg[REGISTER_SP] = SP_INIT
	rf.pc = 0
	rf.fl = FLAG_NONE
}
