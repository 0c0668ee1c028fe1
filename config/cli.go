package config

import (
	"flag"
	"fmt"
	"io"
)

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	err   error
}

func (e *UsageError) Error() string {
	if e.err == nil {
		return "invalid usage"
	}
	return e.err.Error()
}

func (e *UsageError) Unwrap() error {
	return e.err
}

// ShowUsage prints the usage text and the flag defaults to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	_, _ = fmt.Fprintf(w, "usage: i8080step [options] <program file>\n\n")
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	_, _ = fmt.Fprintln(w)
}

// ParseFlags parses the command line arguments, args[0] being the program
// name.
func ParseFlags(args []string) (Options, error) {
	flags := flag.NewFlagSet(args[0], flag.ContinueOnError)
	flags.SetOutput(io.Discard)
	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args[1:]); err != nil {
		return opts, &UsageError{flags: flags, err: err}
	}
	if opts.File == "" && flags.NArg() > 0 {
		opts.File = flags.Arg(0)
	}
	if err := opts.Validate(); err != nil {
		return opts, &UsageError{flags: flags, err: err}
	}
	return opts, nil
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	flags.StringVar(&opts.File, "f", "", "name of the program file to load")
	flags.BoolVar(&opts.Disassemble, "d", false, "disassemble the first n bytes of the file")
	flags.BoolVar(&opts.Emulate, "e", false, "execute n instructions starting at address 0")
	flags.BoolVar(&opts.CPM, "cpm", false, "run a CP/M .COM test program until it returns to CP/M")
	flags.BoolVar(&opts.Display, "display", false, "execute the program and show its video memory in a window")
	flags.BoolVar(&opts.Step, "step", false, "step through the program interactively")
	flags.IntVar(&opts.NumOps, "n", 10, "number of bytes to disassemble or instructions to execute, -1 for no limit")
	flags.BoolVar(&opts.Trace, "trace", false, "log every instruction before it is executed")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.StringVar(&opts.Breakpoints, "break", "", "comma separated hex addresses to stop execution at")
	flags.StringVar(&opts.Base, "base", "2400", "hex start address of video memory for -display")
	flags.IntVar(&opts.Scale, "scale", 2, "window scale factor for -display")
	flags.BoolVar(&opts.Overlay, "overlay", false, "tint the display like the Space Invaders cabinet")
	flags.IntVar(&opts.StepsPerFrame, "frame", 8000, "instructions executed per displayed frame")
}
