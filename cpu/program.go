package cpu

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"strings"
)

// Opcode is a line of source with the bytes it produced.
type Opcode struct {
	LineNo    int      // Source line number.
	Addr      int      // Address of the first byte.
	Words     []string // Source words, for listings.
	Bytes     []uint8  // Opcode and operand bytes.
	LinkLabel string   // Label to resolve into the last byte.
}

// Program is an ordered listing of opcodes, loaded from address 0.
type Program struct {
	Opcodes []Opcode
}

type Debug struct {
	*Opcode
	Index int
}

// Debug locates the opcode that produced the byte at addr.
func (prog *Program) Debug(addr uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Addr && int(addr) < op.Addr+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Addr,
			}
			break
		}
	}

	return
}

// Size returns the number of bytes in the program.
func (prog *Program) Size() (size int) {
	for _, op := range prog.Opcodes {
		size = max(size, op.Addr+len(op.Bytes))
	}

	return
}

// Binary returns the memory image of the program.
func (prog *Program) Binary() (bins []uint8) {
	bins = make([]uint8, prog.Size())
	for addr, value := range prog.Bytes() {
		bins[addr] = value
	}

	return
}

// Bytes iterates over the address and value of every program byte.
func (prog *Program) Bytes() iter.Seq2[int, uint8] {
	return func(yield func(addr int, value uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, value := range op.Bytes {
				if !yield(op.Addr+n, value) {
					return
				}
			}
		}
	}
}

// WriteTo writes the program in bytecode text format, one binary literal
// per line, with the source text of each opcode as a comment.
func (prog *Program) WriteTo(w io.Writer) (n int64, err error) {
	bw := bufio.NewWriter(w)
	count := func(c int, err error) error {
		n += int64(c)
		return err
	}

	for _, op := range prog.Opcodes {
		for i, value := range op.Bytes {
			if i == 0 && len(op.Words) != 0 {
				err = count(fmt.Fprintf(bw, "%08b # %v\n", value, strings.Join(op.Words, " ")))
			} else {
				err = count(fmt.Fprintf(bw, "%08b\n", value))
			}
			if err != nil {
				return
			}
		}
	}

	err = bw.Flush()

	return
}
