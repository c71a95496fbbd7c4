package cpu

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

var _cpu_defines = map[string]string{
	"MEMORY_SIZE": fmt.Sprintf("%d", MEMORY_SIZE),
	"REGISTER_SP": fmt.Sprintf("%d", REGISTER_SP),
	"SP_INIT":     fmt.Sprintf("0x%x", SP_INIT),
	"FL_E":        fmt.Sprintf("0x%x", FL_E),
	"FL_G":        fmt.Sprintf("0x%x", FL_G),
	"FL_L":        fmt.Sprintf("0x%x", FL_L),
}

// Cpu is the simulation context for the LS-8 processor.
type Cpu struct {
	Verbose bool               // Set to enable verbose logging.
	Log     logrus.FieldLogger // Destination of verbose logging.
	Output  io.Writer          // PRN output.

	Memory   Memory       // Main memory.
	Register RegisterFile // Registers, PC and FL.
	Halted   bool         // Set by HLT.

	Ticks int // Instructions executed since reset.
}

// NewCpu creates a CPU in its reset state, printing to stdout.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Log:    logrus.StandardLogger(),
		Output: os.Stdout,
	}

	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU to power-on state.
// - Zeroes memory and registers.
// - Sets SP to SP_INIT, PC to 0, clears FL.
// - Clears the halt state and tick counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		cpu.logger().Debug("cpu: reset")
	}

	cpu.Memory.Reset()
	cpu.Register.Reset()
	cpu.Halted = false
	cpu.Ticks = 0
}

func (cpu *Cpu) logger() logrus.FieldLogger {
	if cpu.Log == nil {
		return logrus.StandardLogger()
	}
	return cpu.Log
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	rf := &cpu.Register
	regs := []string{
		"pc", "fl",
		"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
		"stack",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "pc":
			pc := rf.Pc()
			strval = fmt.Sprintf("%02X [%v]", pc, Code(cpu.Memory.Read(pc)))
		case "fl":
			fl := rf.Flags()
			strval = fmt.Sprintf("%08b (%v)", fl.Byte(), fl)
		case "r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7":
			val := rf.Get(reg[1] - '0')
			strval = fmt.Sprintf("%02X (%d)", val, val)
		case "stack":
			if cpu.Depth() == 0 {
				strval = "--"
			} else {
				strval = fmt.Sprintf("%02X depth %d", cpu.Peek(), cpu.Depth())
			}
		}
		text += fmt.Sprintf("% 5s: %v\n", reg, strval)
	}

	return
}

// Trace returns a single line with the PC, the three bytes at the PC and
// all of the registers, in hexadecimal.
func (cpu *Cpu) Trace() string {
	var sb strings.Builder

	pc := cpu.Register.Pc()
	fmt.Fprintf(&sb, "TRACE: %02X | %02X %02X %02X |", pc,
		cpu.Memory.Read(pc), cpu.Memory.Read(pc+1), cpu.Memory.Read(pc+2))

	for _, val := range cpu.Register.Registers() {
		fmt.Fprintf(&sb, " %02X", val)
	}

	return sb.String()
}

// Fetch reads the instruction at the PC and the operands it declares.
func (cpu *Cpu) Fetch() (inst Instruction, operands [2]uint8, err error) {
	pc := cpu.Register.Pc()
	code := Code(cpu.Memory.Read(pc))

	inst, err = code.Decode()
	if err != nil {
		err = errors.Join(ErrOpcode(code), err)
		return
	}

	for n := range inst.Operands {
		operands[n] = cpu.Memory.Read(pc + 1 + uint8(n))
	}

	return
}

// Tick executes a single CPU instruction cycle.
func (cpu *Cpu) Tick() (err error) {
	if cpu.Halted {
		err = ErrHalted
		return
	}

	inst, operands, err := cpu.Fetch()
	if err != nil {
		return
	}

	err = cpu.Execute(inst, operands[0], operands[1])

	return
}

// Run ticks until the CPU halts or faults.
func (cpu *Cpu) Run() (err error) {
	for !cpu.Halted {
		err = cpu.Tick()
		if err != nil {
			return
		}
	}

	return
}

// Execute executes a single decoded instruction. Unless the instruction
// reports that it set the PC, the PC advances past the instruction.
func (cpu *Cpu) Execute(inst Instruction, a, b uint8) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrOpcode(inst.Code), err)
		}
	}()

	rf := &cpu.Register
	pc := rf.Pc()

	if cpu.Verbose {
		cpu.logger().WithFields(logrus.Fields{
			"pc": fmt.Sprintf("%02x", pc),
			"sp": fmt.Sprintf("%02x", rf.Sp()),
			"fl": rf.Flags().String(),
			"op": inst.Code.Disassemble(a, b),
		}).Debug("cpu: execute")
	}

	var jumped bool
	if inst.Alu {
		err = cpu.Alu(inst.AluOp, a, b)
	} else {
		jumped, err = cpu.execute(inst.Op, a, b)
	}
	if err != nil {
		return
	}

	cpu.Ticks++

	if cpu.Halted {
		return
	}

	if !inst.SetsPc || !jumped {
		rf.SetPc(pc + uint8(inst.Operands) + 1)
	}

	return
}

// execute runs a non-ALU instruction, and reports whether it set the PC.
func (cpu *Cpu) execute(op CodeOp, a, b uint8) (jumped bool, err error) {
	rf := &cpu.Register

	switch op {
	case OP_HLT:
		cpu.Halted = true
		if cpu.Verbose {
			cpu.logger().WithField("ticks", cpu.Ticks).Debug("cpu: halt")
		}
	case OP_LDI:
		rf.Set(a, b)
	case OP_PRN:
		_, err = fmt.Fprintf(cpu.Output, "%d\n", rf.Get(a))
	case OP_PUSH:
		cpu.Push(rf.Get(a))
	case OP_POP:
		rf.Set(a, cpu.Pop())
	case OP_CALL:
		cpu.Push(rf.Pc() + 2)
		rf.SetPc(rf.Get(a))
		jumped = true
	case OP_RET:
		rf.SetPc(cpu.Pop())
		jumped = true
	case OP_JMP:
		rf.SetPc(rf.Get(a))
		jumped = true
	case OP_JEQ:
		if rf.Flags() == FLAG_EQUAL {
			rf.SetPc(rf.Get(a))
			jumped = true
		}
	case OP_JNE:
		if rf.Flags() != FLAG_EQUAL {
			rf.SetPc(rf.Get(a))
			jumped = true
		}
	default:
		err = ErrOpcodeDecode
	}

	return
}
