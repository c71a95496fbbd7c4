package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		code     Code
		mnemonic string
		operands int
		alu      bool
		setsPc   bool
	}){
		{CODE_HLT, "HLT", 0, false, false},
		{CODE_LDI, "LDI", 2, false, false},
		{CODE_PRN, "PRN", 1, false, false},
		{CODE_PUSH, "PUSH", 1, false, false},
		{CODE_POP, "POP", 1, false, false},
		{CODE_CALL, "CALL", 1, false, true},
		{CODE_RET, "RET", 0, false, true},
		{CODE_JMP, "JMP", 1, false, true},
		{CODE_JEQ, "JEQ", 1, false, true},
		{CODE_JNE, "JNE", 1, false, true},
		{CODE_ADD, "ADD", 2, true, false},
		{CODE_SUB, "SUB", 2, true, false},
		{CODE_MUL, "MUL", 2, true, false},
		{CODE_CMP, "CMP", 2, true, false},
	}

	for _, entry := range table {
		inst, err := entry.code.Decode()
		assert.NoError(err, entry.mnemonic)
		assert.Equal(entry.code, inst.Code, entry.mnemonic)
		assert.Equal(entry.operands, inst.Operands, entry.mnemonic)
		assert.Equal(entry.alu, inst.Alu, entry.mnemonic)
		assert.Equal(entry.setsPc, inst.SetsPc, entry.mnemonic)
		assert.Equal(entry.mnemonic, inst.Mnemonic())
		assert.Equal(entry.mnemonic, entry.code.String())
	}
}

func TestDecode_SharedIdentifier(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(CODE_HLT.Id(), CODE_RET.Id())

	hlt, err := CODE_HLT.Decode()
	assert.NoError(err)
	ret, err := CODE_RET.Decode()
	assert.NoError(err)

	assert.Equal(OP_HLT, hlt.Op)
	assert.Equal(OP_RET, ret.Op)
}

func TestDecode_Invalid(t *testing.T) {
	assert := assert.New(t)

	table := []Code{
		0b1111_1111, // three operands
		0b1100_0001, // three operands
		0b0000_0000,
		0b0000_0010,
		0b1000_0001,
		0b0100_1111,
		0b0010_0000, // ALU without operands
		0b1011_0000, // ALU setting the PC
	}

	for _, code := range table {
		_, err := code.Decode()
		assert.ErrorIs(err, ErrOpcodeDecode, "%08b", uint8(code))
		assert.Equal("?", code.String()[:1])
	}
}

func TestDecode_AluUnknown(t *testing.T) {
	assert := assert.New(t)

	inst, err := Code(0b1010_0011).Decode()
	assert.NoError(err)
	assert.True(inst.Alu)
	assert.Equal(CodeAluOp(3), inst.AluOp)
	assert.Equal("CodeAluOp(3)", inst.Mnemonic())
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("LDI R2, 200", CODE_LDI.Disassemble(2, 200))
	assert.Equal("ADD R0, R1", CODE_ADD.Disassemble(0, 1))
	assert.Equal("PRN R7", CODE_PRN.Disassemble(15))
	assert.Equal("RET", CODE_RET.Disassemble())
	assert.Equal("JMP", CODE_JMP.Disassemble())
	assert.Equal(".byte 0xff", Code(0xff).Disassemble(1, 2))
}
