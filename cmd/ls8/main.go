// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"errors"
	"io"
	"io/fs"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/ls8/cpu"
	"github.com/ezrec/ls8/emulator"
	"github.com/ezrec/ls8/translate"
)

var f = translate.From

// Process exit codes.
const (
	EXIT_OK        = 0
	EXIT_FAILURE   = 1 // Bad invocation or faulting program.
	EXIT_NOT_FOUND = 2 // Program file missing.
)

var ErrUsage = errors.New(f("expected exactly one program file"))

// ErrFault is a runtime fault, with the machine state at the time.
type ErrFault struct {
	Err   error
	State string
}

func (err *ErrFault) Error() string {
	return err.Err.Error()
}

func (err *ErrFault) Unwrap() error {
	return err.Err
}

func newLogger(stderr io.Writer, verbose bool) (log *logrus.Logger) {
	log = logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	return
}

func newCommand(stdout, stderr io.Writer, log *logrus.Logger) (cmd *cobra.Command) {
	var trace bool
	var verbose bool

	cmd = &cobra.Command{
		Use:   "ls8 [flags] program.ls8",
		Short: "Run an LS-8 bytecode program",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return ErrUsage
			}
			return nil
		},
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}

			inf, err := os.Open(args[0])
			if err != nil {
				return
			}
			defer inf.Close()

			prog, err := cpu.Load(inf)
			if err != nil {
				return
			}

			emu := emulator.NewEmulator()
			emu.Program = prog
			emu.Verbose = verbose
			emu.Cpu.Output = stdout
			emu.Cpu.Log = log
			if trace {
				emu.Trace = stderr
			}

			err = emu.Reset()
			if err != nil {
				return
			}

			err = emu.Run()
			if err != nil {
				err = &ErrFault{Err: err, State: emu.Cpu.String()}
				return
			}

			log.WithField("ticks", emu.Cpu.Ticks).Debug("ls8: halted")

			return
		},
	}

	cmd.Flags().BoolVarP(&trace, "trace", "t", false, "Trace each instruction to stderr")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return
}

// run executes the command line, returning the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log := newLogger(stderr, false)

	cmd := newCommand(stdout, stderr, log)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return EXIT_OK
	}

	var pathErr *fs.PathError
	var fault *ErrFault

	switch {
	case errors.Is(err, fs.ErrNotExist) && errors.As(err, &pathErr):
		log.WithField("file", pathErr.Path).Error(f("ls8: file not found"))
		return EXIT_NOT_FOUND
	case errors.As(err, &fault):
		log.WithError(fault.Err).Error(f("ls8: runtime fault"))
		io.WriteString(stderr, fault.State)
		return EXIT_FAILURE
	case errors.Is(err, ErrUsage):
		log.WithError(err).Error(f("ls8: usage"))
		io.WriteString(stderr, cmd.UsageString())
		return EXIT_FAILURE
	default:
		log.WithError(err).Error("ls8")
		return EXIT_FAILURE
	}
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
