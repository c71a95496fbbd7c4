// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package emulator runs LS-8 programs on a cpu.Cpu.
package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/internal"
)

var _emulator_defines = map[string]string{
	"PROGRAM_BASE": "0",
	"PROGRAM_MAX":  fmt.Sprintf("%d", cpu.MEMORY_SIZE),
}

// Emulator state. CPU + program listing + diagnostics.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Trace io.Writer // If set, receives a trace line before every instruction.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Reset the CPU and load the program into memory.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	binary := emu.Program.Binary()
	if len(binary) > cpu.MEMORY_SIZE {
		err = cpu.ErrProgramSize
		return
	}

	emu.Cpu.Reset()
	emu.Cpu.Memory.Load(0, binary)

	return
}

// LineNo returns the source line number for the instruction at the PC.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Register.Pc())
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Register.Pc()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Addr: pc, LineNo: lineno, Err: err}
		}
	}()

	if emu.Trace != nil {
		_, err = fmt.Fprintln(emu.Trace, emu.Cpu.Trace())
		if err != nil {
			return
		}
	}

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalted) {
		err = nil
	}
	if err != nil {
		return
	}

	done = emu.Cpu.Halted

	return
}

// Run ticks the emulator until the program halts or faults.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
