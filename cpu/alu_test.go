package cpu

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAlu(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		op     CodeAluOp
		a, b   uint8
		result uint8
	}){
		{"add", ALU_OP_ADD, 8, 9, 17},
		{"add_wrap", ALU_OP_ADD, 250, 10, 4},
		{"add_max", ALU_OP_ADD, 255, 255, 254},
		{"sub", ALU_OP_SUB, 10, 3, 7},
		{"sub_wrap", ALU_OP_SUB, 3, 10, 249},
		{"sub_zero", ALU_OP_SUB, 0, 1, 255},
		{"mul", ALU_OP_MUL, 12, 10, 120},
		{"mul_wrap", ALU_OP_MUL, 16, 17, 16},
		{"mul_zero", ALU_OP_MUL, 0, 200, 0},
	}

	for _, entry := range table {
		cpu := NewCpu()
		cpu.Register.Set(2, entry.a)
		cpu.Register.Set(5, entry.b)

		err := cpu.Alu(entry.op, 2, 5)
		assert.NoError(err, entry.name)
		assert.Equal(entry.result, cpu.Register.Get(2), entry.name)
		assert.Equal(entry.b, cpu.Register.Get(5), entry.name)
		assert.Equal(FLAG_NONE, cpu.Register.Flags(), entry.name)
	}
}

func TestAlu_SameRegister(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register.Set(0, 100)

	assert.NoError(cpu.Alu(ALU_OP_ADD, 0, 0))
	assert.Equal(uint8(200), cpu.Register.Get(0))

	assert.NoError(cpu.Alu(ALU_OP_SUB, 0, 0))
	assert.Equal(uint8(0), cpu.Register.Get(0))
}

func TestAlu_Cmp(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		a, b uint8
		fl   Flags
	}){
		{5, 5, FLAG_EQUAL},
		{6, 5, FLAG_GREATER},
		{5, 6, FLAG_LESS},
		{0, 255, FLAG_LESS},
		{255, 0, FLAG_GREATER},
		{0, 0, FLAG_EQUAL},
		{200, 10, FLAG_GREATER},
	}

	// Run the comparisons back-to-back: no flag may survive from the
	// previous compare.
	cpu := NewCpu()
	for _, entry := range table {
		cpu.Register.Set(0, entry.a)
		cpu.Register.Set(1, entry.b)

		err := cpu.Alu(ALU_OP_CMP, 0, 1)
		assert.NoError(err)
		assert.Equal(entry.fl, cpu.Register.Flags(), "%d <=> %d", entry.a, entry.b)
		assert.Equal(1, bits.OnesCount8(cpu.Register.Flags().Byte()))
		assert.Equal(entry.a, cpu.Register.Get(0))
	}
}

func TestAlu_Unsupported(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu()
	cpu.Register.Set(0, 3)

	for _, op := range []CodeAluOp{3, 4, 5, 6, 8, 15} {
		err := cpu.Alu(op, 0, 0)
		assert.ErrorIs(err, ErrAluUnsupported, op.String())
		assert.Equal(uint8(3), cpu.Register.Get(0))
	}
}
