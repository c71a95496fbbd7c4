package cpu

import (
	"fmt"
)

// Code is a single opcode byte.
//
//	bits 7-6: operand count
//	bit  5:   ALU operation
//	bit  4:   sets PC
//	bits 3-0: instruction identifier
type Code uint8

// Opcode bytes of the LS-8 instruction set.
const (
	CODE_HLT  = Code(0b0000_0001)
	CODE_LDI  = Code(0b1000_0010)
	CODE_PRN  = Code(0b0100_0111)
	CODE_PUSH = Code(0b0100_0101)
	CODE_POP  = Code(0b0100_0110)
	CODE_CALL = Code(0b0101_0000)
	CODE_RET  = Code(0b0001_0001)
	CODE_JMP  = Code(0b0101_0100)
	CODE_JEQ  = Code(0b0101_0101)
	CODE_JNE  = Code(0b0101_0110)

	CODE_ADD = Code(0b1010_0000)
	CODE_SUB = Code(0b1010_0001)
	CODE_MUL = Code(0b1010_0010)
	CODE_CMP = Code(0b1010_0111)
)

const (
	CODE_OPERANDS_SHIFT = 6
	CODE_ALU_BIT        = Code(1 << 5)
	CODE_SETS_PC_BIT    = Code(1 << 4)
	CODE_ID_MASK        = Code(0xf)
)

// CodeOp is a non-ALU instruction.
type CodeOp int

//go:generate go tool stringer -linecomment -type=CodeOp
const (
	OP_HLT  = CodeOp(0) // HLT
	OP_LDI  = CodeOp(1) // LDI
	OP_PRN  = CodeOp(2) // PRN
	OP_PUSH = CodeOp(3) // PUSH
	OP_POP  = CodeOp(4) // POP
	OP_CALL = CodeOp(5) // CALL
	OP_RET  = CodeOp(6) // RET
	OP_JMP  = CodeOp(7) // JMP
	OP_JEQ  = CodeOp(8) // JEQ
	OP_JNE  = CodeOp(9) // JNE
)

// CodeAluOp is an ALU operation, numbered by its identifier bits.
type CodeAluOp int

//go:generate go tool stringer -linecomment -type=CodeAluOp
const (
	ALU_OP_ADD = CodeAluOp(0) // ADD
	ALU_OP_SUB = CodeAluOp(1) // SUB
	ALU_OP_MUL = CodeAluOp(2) // MUL
	ALU_OP_CMP = CodeAluOp(7) // CMP
)

// Supported returns true if the ALU implements op.
func (op CodeAluOp) Supported() bool {
	switch op {
	case ALU_OP_ADD, ALU_OP_SUB, ALU_OP_MUL, ALU_OP_CMP:
		return true
	}
	return false
}

// Instruction is the decoded form of an opcode byte.
type Instruction struct {
	Code     Code
	Operands int       // Number of operand bytes following the opcode.
	Alu      bool      // Dispatched to the ALU.
	SetsPc   bool      // Handler may set the PC itself.
	Op       CodeOp    // Valid when !Alu.
	AluOp    CodeAluOp // Valid when Alu.
}

// Mnemonic returns the assembly name of the instruction.
func (inst Instruction) Mnemonic() string {
	if inst.Alu {
		return inst.AluOp.String()
	}
	return inst.Op.String()
}

// Operands returns the operand count from the opcode bits.
func (code Code) Operands() int {
	return int(code >> CODE_OPERANDS_SHIFT)
}

// IsAlu returns true if the opcode is an ALU operation.
func (code Code) IsAlu() bool {
	return (code & CODE_ALU_BIT) != 0
}

// SetsPc returns true if the opcode's handler is responsible for the PC.
func (code Code) SetsPc() bool {
	return (code & CODE_SETS_PC_BIT) != 0
}

// Id returns the instruction identifier bits.
func (code Code) Id() int {
	return int(code & CODE_ID_MASK)
}

// op maps a non-ALU opcode byte to its instruction. The identifier alone
// is not unique (HLT and RET share 1), so the whole byte is matched.
func (code Code) op() (op CodeOp, ok bool) {
	switch code {
	case CODE_HLT:
		return OP_HLT, true
	case CODE_LDI:
		return OP_LDI, true
	case CODE_PRN:
		return OP_PRN, true
	case CODE_PUSH:
		return OP_PUSH, true
	case CODE_POP:
		return OP_POP, true
	case CODE_CALL:
		return OP_CALL, true
	case CODE_RET:
		return OP_RET, true
	case CODE_JMP:
		return OP_JMP, true
	case CODE_JEQ:
		return OP_JEQ, true
	case CODE_JNE:
		return OP_JNE, true
	}

	return
}

// Decode classifies the opcode byte.
func (code Code) Decode() (inst Instruction, err error) {
	operands := code.Operands()
	if operands > 2 {
		err = ErrOpcodeDecode
		return
	}

	inst = Instruction{
		Code:     code,
		Operands: operands,
		Alu:      code.IsAlu(),
		SetsPc:   code.SetsPc(),
	}

	if inst.Alu {
		if operands != 2 || inst.SetsPc {
			err = ErrOpcodeDecode
			return
		}
		inst.AluOp = CodeAluOp(code.Id())
		return
	}

	op, ok := code.op()
	if !ok {
		err = ErrOpcodeDecode
		return
	}
	inst.Op = op

	return
}

// String returns the mnemonic, or a hex form for undecodable bytes.
func (code Code) String() string {
	inst, err := code.Decode()
	if err != nil {
		return fmt.Sprintf("?%02X", uint8(code))
	}

	return inst.Mnemonic()
}

// Disassemble renders an opcode and its operand bytes as assembly text.
func (code Code) Disassemble(operands ...uint8) (text string) {
	inst, err := code.Decode()
	if err != nil {
		return fmt.Sprintf(".byte 0x%02x", uint8(code))
	}

	text = inst.Mnemonic()
	for n := range min(inst.Operands, len(operands)) {
		sep := ", "
		if n == 0 {
			sep = " "
		}
		if !inst.Alu && inst.Op == OP_LDI && n == 1 {
			text += fmt.Sprintf("%v%d", sep, operands[n])
		} else {
			text += fmt.Sprintf("%vR%d", sep, operands[n]&REGISTER_MASK)
		}
	}

	return
}
