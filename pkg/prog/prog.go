// Package prog provides the entry point of command-line programs. Its
// subpackages correspond to subprograms.
package prog

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/mattn/go-isatty"

	"src.elv.sh/cons/pkg/errutil"
	"src.elv.sh/cons/pkg/logutil"
)

var logger = logutil.GetLogger("[prog] ")

// Flags keeps command-line flags.
type Flags struct {
	Log string

	Help, Version, JSON bool

	// Flags of the conslist subprogram.
	Range, Map, Update, Fold, Init, Format, Color string
	Reverse, Len                                  bool
	// At is nil when -at is not given.
	At *int
}

func newFlagSet(name string, f *Flags) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	// Error and usage will be printed explicitly.
	fs.SetOutput(io.Discard)

	fs.StringVar(&f.Log, "log", "", "a file to write debug log to")
	fs.BoolVar(&f.Help, "help", false, "show usage help and quit")
	fs.BoolVar(&f.Version, "version", false, "show version and quit")
	fs.BoolVar(&f.JSON, "json", false, "show the output of -version in JSON")

	fs.StringVar(&f.Range, "range", "", "build the list FROM:TO[:STEP] instead of reading elements")
	fs.StringVar(&f.Map, "map", "", "replace each element x with the value of an expression")
	fs.BoolVar(&f.Reverse, "reverse", false, "reverse the list")
	fs.StringVar(&f.Update, "update", "", "replace the element at index I with an expression, given as I=EXPR")
	fs.Func("at", "print only the element at an index; negative indices count from the end", func(s string) error {
		i, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		f.At = &i
		return nil
	})
	fs.StringVar(&f.Fold, "fold", "", "fold the list from the left with an expression over acc and x")
	fs.StringVar(&f.Init, "init", "0", "initial accumulator for -fold, as an expression")
	fs.BoolVar(&f.Len, "len", false, "print the length of the list")
	fs.StringVar(&f.Format, "format", "plain", "output format: plain, json or yaml")
	fs.StringVar(&f.Color, "color", "auto", "colorize plain output: auto, always or never")

	return fs
}

func usage(out io.Writer, name string, fs *flag.FlagSet) {
	fmt.Fprintf(out, "Usage: %s [flags] [elem...]\n", name)
	fmt.Fprintln(out, "Supported flags:")
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// Run parses command-line flags and runs the first applicable subprogram. It
// returns the exit status of the program.
func Run(fds [3]*os.File, args []string, p Program) int {
	name := args[0]
	f := &Flags{}
	fs := newFlagSet(name, f)
	err := fs.Parse(args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			// (*flag.FlagSet).Parse returns ErrHelp when -h is requested but
			// not defined. Treat it like any other undefined flag.
			fmt.Fprintln(fds[2], "flag provided but not defined: -h")
		} else {
			fmt.Fprintln(fds[2], err)
		}
		usage(fds[2], name, fs)
		return 2
	}

	if f.Log != "" {
		if err := logutil.SetOutputFile(f.Log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	logger.Printf("running %s with args %q", name, fs.Args())

	if f.Help {
		usage(fds[1], name, fs)
		return 0
	}

	err = errutil.Multi(p.Run(fds, f, fs.Args()), logutil.SetOutput(io.Discard))
	if err == nil {
		return 0
	}
	if msg := err.Error(); msg != "" {
		fmt.Fprintln(fds[2], msg)
	}
	var badUsage badUsageError
	var exit exitError
	switch {
	case errors.As(err, &badUsage):
		usage(fds[2], name, fs)
	case errors.As(err, &exit):
		return exit.exit
	}
	return 2
}

// Composite returns a Program that tries each of the given programs,
// terminating at the first one that doesn't return ErrNotSuitable.
func Composite(programs ...Program) Program {
	return compositeProgram(programs)
}

type compositeProgram []Program

func (cp compositeProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	for _, p := range cp {
		err := p.Run(fds, f, args)
		if err != ErrNotSuitable {
			return err
		}
	}
	// If we have reached here, all subprograms have returned ErrNotSuitable.
	return ErrNotSuitable
}

// ErrNotSuitable is a special error that may be returned by Program.Run, to
// signify that this Program should not be run. It is useful when a Program is
// used in Composite.
var ErrNotSuitable = errors.New("internal error: no suitable subprogram")

// BadUsage returns a special error that may be returned by Program.Run. It
// causes the main function to print out a message, the usage information and
// exit with 2.
func BadUsage(msg string) error { return badUsageError{msg} }

type badUsageError struct{ msg string }

func (e badUsageError) Error() string { return e.msg }

// Exit returns a special error that may be returned by Program.Run. It causes
// the main function to exit with the given code without printing any error
// messages. Exit(0) returns nil.
func Exit(exit int) error {
	if exit == 0 {
		return nil
	}
	return exitError{exit}
}

type exitError struct{ exit int }

func (e exitError) Error() string { return "" }

// Program represents a subprogram.
type Program interface {
	// Run runs the subprogram.
	Run(fds [3]*os.File, f *Flags, args []string) error
}

// IsATTY determines whether the given file is a terminal.
func IsATTY(file *os.File) bool {
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
