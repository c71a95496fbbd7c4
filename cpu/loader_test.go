package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad(t *testing.T) {
	assert := assert.New(t)

	source := []string{
		"# print8.ls8",
		"",
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"   01000111   # PRN R0",
		"00000000",
		"",
		"1 # HLT, short form",
	}

	prog, err := Load(strings.NewReader(strings.Join(source, "\n")))
	assert.NoError(err)
	assert.Equal([]uint8{0x82, 0x00, 0x08, 0x47, 0x00, 0x01}, prog.Binary())
	assert.Len(prog.Opcodes, 6)

	dbg := prog.Debug(3)
	assert.NotNil(dbg.Opcode)
	assert.Equal(6, dbg.LineNo)
	assert.Equal([]string{"PRN", "R0"}, dbg.Words)

	dbg = prog.Debug(5)
	assert.Equal(9, dbg.LineNo)
}

func TestLoad_Empty(t *testing.T) {
	assert := assert.New(t)

	prog, err := Load(strings.NewReader("# nothing\n\n"))
	assert.NoError(err)
	assert.Equal(0, prog.Size())
	assert.Empty(prog.Binary())
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		source string
		lineno int
		err    error
	}){
		{"digit", "00000001\n0000000x\n", 2, ErrBinaryDigits},
		{"decimal", "10000010\n12\n", 2, ErrBinaryDigits},
		{"wide", "100000000\n", 1, ErrBinaryDigits},
		{"size", strings.Repeat("00000001\n", MEMORY_SIZE+1), MEMORY_SIZE + 1, ErrProgramSize},
	}

	for _, entry := range table {
		_, err := Load(strings.NewReader(entry.source))
		assert.ErrorIs(err, entry.err, entry.name)

		var syntax ErrSyntax
		assert.True(errors.As(err, &syntax), entry.name)
		assert.Equal(entry.lineno, syntax.LineNo, entry.name)
	}
}

func TestLoad_Full(t *testing.T) {
	assert := assert.New(t)

	prog, err := Load(strings.NewReader(strings.Repeat("00000001\n", MEMORY_SIZE)))
	assert.NoError(err)
	assert.Equal(MEMORY_SIZE, prog.Size())
}

func TestProgram_WriteTo(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"LDI", "R0,", "8"}, Bytes: []uint8{0x82, 0x00, 0x08}},
			{LineNo: 2, Addr: 3, Words: []string{"PRN", "R0"}, Bytes: []uint8{0x47, 0x00}},
			{LineNo: 3, Addr: 5, Bytes: []uint8{0x01}},
		},
	}

	out := &bytes.Buffer{}
	n, err := prog.WriteTo(out)
	assert.NoError(err)
	assert.Equal(int64(out.Len()), n)

	expected := strings.Join([]string{
		"10000010 # LDI R0, 8",
		"00000000",
		"00001000",
		"01000111 # PRN R0",
		"00000000",
		"00000001",
		"",
	}, "\n")
	assert.Equal(expected, out.String())

	again, err := Load(out)
	assert.NoError(err)
	assert.Equal(prog.Binary(), again.Binary())
}
