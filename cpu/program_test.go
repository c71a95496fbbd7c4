package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"LDI", "R0", "8"}, Bytes: []uint8{0x82, 0x00, 0x08}},
			{LineNo: 2, Addr: 3, Words: []string{"PRN", "R0"}, Bytes: []uint8{0x47, 0x00}},
			{LineNo: 4, Addr: 5, Words: []string{"HLT"}, Bytes: []uint8{0x01}},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(0, dbg.Index)

	dbg = prog.Debug(2)
	assert.Equal(1, dbg.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(4)
	assert.Equal(2, dbg.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(5)
	assert.Equal(4, dbg.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	dbg := testProgram().Debug(10)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()
	assert.Equal(6, prog.Size())
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, prog.Binary())

	var addrs []int
	for addr := range prog.Bytes() {
		addrs = append(addrs, addr)
		if addr == 3 {
			break
		}
	}
	assert.Equal([]int{0, 1, 2, 3}, addrs)
}
