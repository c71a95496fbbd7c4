package cpu

// Alu performs op on registers a and b, leaving the result in a. CMP only
// updates the flags.
func (cpu *Cpu) Alu(op CodeAluOp, a, b uint8) (err error) {
	rf := &cpu.Register
	input := rf.Get(a)
	value := rf.Get(b)

	switch op {
	case ALU_OP_ADD:
		rf.Set(a, input+value)
	case ALU_OP_SUB:
		rf.Set(a, input-value)
	case ALU_OP_MUL:
		rf.Set(a, input*value)
	case ALU_OP_CMP:
		rf.SetFlags(compare(input, value))
	default:
		err = ErrAluUnsupported
	}

	return
}

// compare returns the single flag state describing a against b.
func compare(a, b uint8) Flags {
	switch {
	case a == b:
		return FLAG_EQUAL
	case a > b:
		return FLAG_GREATER
	default:
		return FLAG_LESS
	}
}
