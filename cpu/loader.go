package cpu

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Load parses bytecode text: one binary literal per line, '#' comments
// stripped, blank lines skipped. Bytes are placed from address 0.
func Load(input io.Reader) (prog *Program, err error) {
	scanner := bufio.NewScanner(input)

	var line string
	var lineno int

	defer func() {
		if err != nil {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: err}
		}
	}()

	prog = &Program{}
	addr := 0

	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		code, comment, _ := strings.Cut(text, "#")
		line = strings.TrimSpace(code)
		if len(line) == 0 {
			continue
		}

		var value uint64
		value, err = strconv.ParseUint(line, 2, 8)
		if err != nil {
			err = ErrBinaryDigits
			return
		}

		if addr >= MEMORY_SIZE {
			err = ErrProgramSize
			return
		}

		op := Opcode{
			LineNo: lineno,
			Addr:   addr,
			Words:  strings.Fields(comment),
			Bytes:  []uint8{uint8(value)},
		}
		prog.Opcodes = append(prog.Opcodes, op)
		addr++
	}

	line = ""
	err = scanner.Err()

	return
}
