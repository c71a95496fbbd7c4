package cpu

// The stack lives in Memory and grows downward from SP_INIT. Neither
// overflow nor underflow is checked; SP wraps like any other register.

// Push value onto the stack.
func (cpu *Cpu) Push(value uint8) {
	sp := cpu.Register.Sp() - 1
	cpu.Register.SetSp(sp)
	cpu.Memory.Write(sp, value)
}

// Pop a value off the stack.
func (cpu *Cpu) Pop() (value uint8) {
	sp := cpu.Register.Sp()
	value = cpu.Memory.Read(sp)
	cpu.Register.SetSp(sp + 1)
	return
}

// Peek returns the value at the top of the stack.
func (cpu *Cpu) Peek() uint8 {
	return cpu.Memory.Read(cpu.Register.Sp())
}

// Depth returns the number of bytes pushed since reset, modulo 256.
func (cpu *Cpu) Depth() int {
	return int(uint8(SP_INIT - cpu.Register.Sp()))
}
