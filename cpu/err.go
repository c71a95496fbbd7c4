package cpu

import (
	"errors"

	"github.com/ezrec/ls8/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalted         = errors.New(f("halted"))
	ErrOpcodeDecode   = errors.New(f("decode"))
	ErrAluUnsupported = errors.New(f("unsupported alu operation"))

	// Loader errors
	ErrProgramSize  = errors.New(f("program exceeds memory"))
	ErrBinaryDigits = errors.New(f("not a binary literal"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f(".equ syntax"))
	ErrEquateDuplicate    = errors.New(f(".equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrLabelInvalid       = errors.New(f("label invalid"))
	ErrMnemonicInvalid    = errors.New(f("mnemonic invalid"))
	ErrOperandCount       = errors.New(f("wrong operand count"))
	ErrRegisterInvalid    = errors.New(f("register invalid"))
	ErrImmediateRange     = errors.New(f("immediate out of range"))
	ErrDirectiveInvalid   = errors.New(f("directive invalid"))
	ErrByteValueMissing   = errors.New(f(".byte value missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrOpcode names the opcode byte that failed to execute.
type ErrOpcode Code

func (eo ErrOpcode) Error() string {
	return f("bad opcode 0b%08b (0x%02x) %v", uint8(eo), uint8(eo), Code(eo).String())
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}
