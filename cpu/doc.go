// Package cpu implements the processor, loader and assembler for the LS-8
// system.
//
// The LS-8 is an 8-bit machine with 256 bytes of memory, eight 8-bit
// general-purpose registers (R0-R7, with R7 doubling as the stack pointer),
// a program counter (PC) and a flags register (FL) holding the result of
// the last compare. Every opcode carries its own shape in its upper bits:
// the operand count, whether it is an ALU operation, and whether it sets
// the PC itself.
//
// Programs are exchanged as text, one binary literal per line, and can be
// produced from mnemonic source by the Assembler.
package cpu
