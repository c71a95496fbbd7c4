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

const (
	EXIT_OK        = 0
	EXIT_FAILURE   = 1
	EXIT_NOT_FOUND = 2
)

var ErrUsage = errors.New(f("expected exactly one source file"))

func newCommand(stdout, stderr io.Writer, log *logrus.Logger) (cmd *cobra.Command) {
	var output string
	var verbose bool

	cmd = &cobra.Command{
		Use:   "ls8asm [flags] source.asm",
		Short: "Assemble LS-8 source into bytecode",
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

			asm := &cpu.Assembler{Verbose: verbose, Log: log}
			for equ, value := range emulator.NewEmulator().Defines() {
				asm.Predefine(equ, value)
			}

			prog, err := asm.Parse(inf)
			if err != nil {
				return
			}

			var ouf io.Writer = stdout
			if output != "" && output != "-" {
				var file *os.File
				file, err = os.Create(output)
				if err != nil {
					return
				}
				defer func() {
					cerr := file.Close()
					if err == nil {
						err = cerr
					}
				}()
				ouf = file
			}

			_, err = prog.WriteTo(ouf)
			if err != nil {
				return
			}

			log.WithField("bytes", prog.Size()).Debug("ls8asm: assembled")

			return
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-", "Bytecode output file")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose mode")

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return
}

// run executes the command line, returning the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	cmd := newCommand(stdout, stderr, log)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return EXIT_OK
	}

	var pathErr *fs.PathError
	switch {
	case errors.Is(err, fs.ErrNotExist) && errors.As(err, &pathErr):
		log.WithField("file", pathErr.Path).Error(f("ls8asm: file not found"))
		return EXIT_NOT_FOUND
	case errors.Is(err, ErrUsage):
		log.WithError(err).Error(f("ls8asm: usage"))
		io.WriteString(stderr, cmd.UsageString())
	default:
		log.WithError(err).Error("ls8asm")
	}

	return EXIT_FAILURE
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
