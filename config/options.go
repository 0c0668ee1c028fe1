package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/is386/i8080step/translate"
	"github.com/retroenv/retrogolib/set"
)

var f = translate.From

var (
	ErrNoMode        = errors.New(f("no mode selected, use one of -d, -e, -cpm, -display or -step"))
	ErrMultipleModes = errors.New(f("only one of -d, -e, -cpm, -display or -step can be used"))
	ErrNoFile        = errors.New(f("no program file given"))
)

// Mode selects what the program does with the loaded file.
type Mode int

const (
	ModeNone Mode = iota
	ModeDisassemble
	ModeEmulate
	ModeCPM
	ModeDisplay
	ModeStep
)

var modeNames = map[Mode]string{
	ModeNone:        "none",
	ModeDisassemble: "disassemble",
	ModeEmulate:     "emulate",
	ModeCPM:         "cpm",
	ModeDisplay:     "display",
	ModeStep:        "step",
}

func (m Mode) String() string {
	return modeNames[m]
}

// Options contains the command line options.
type Options struct {
	File string

	Disassemble bool
	Emulate     bool
	CPM         bool
	Display     bool
	Step        bool

	NumOps      int // bytes to disassemble or instructions to execute, negative for no limit
	Trace       bool
	Debug       bool
	Quiet       bool
	Breakpoints string

	// display options
	Base          string
	Scale         int
	Overlay       bool
	StepsPerFrame int
}

// Mode returns the single selected mode, ModeNone if no or several modes
// are selected.
func (o Options) Mode() Mode {
	selected := ModeNone
	count := 0
	for mode, enabled := range map[Mode]bool{
		ModeDisassemble: o.Disassemble,
		ModeEmulate:     o.Emulate,
		ModeCPM:         o.CPM,
		ModeDisplay:     o.Display,
		ModeStep:        o.Step,
	} {
		if enabled {
			selected = mode
			count++
		}
	}
	if count != 1 {
		return ModeNone
	}
	return selected
}

// DebugLogging reports whether Debug log events have to be shown. Trace
// lines are Debug events, so tracing enables them as well.
func (o Options) DebugLogging() bool {
	return o.Debug || o.Trace
}

// Validate checks that the options select exactly one mode and contain
// parsable values.
func (o Options) Validate() error {
	if o.File == "" {
		return ErrNoFile
	}
	if o.Mode() == ModeNone {
		if o.Disassemble || o.Emulate || o.CPM || o.Display || o.Step {
			return ErrMultipleModes
		}
		return ErrNoMode
	}
	if o.Disassemble && o.NumOps < 0 {
		return errors.New(f("disassembly length %d is negative", o.NumOps))
	}
	if o.Display {
		if o.Scale < 1 {
			return errors.New(f("display scale %d must be at least 1", o.Scale))
		}
		if _, err := o.BaseAddress(); err != nil {
			return err
		}
	}
	if _, err := o.BreakpointSet(); err != nil {
		return err
	}
	return nil
}

// BaseAddress returns the parsed start address of video RAM.
func (o Options) BaseAddress() (uint16, error) {
	addr, err := ParseAddress(o.Base)
	if err != nil {
		return 0, fmt.Errorf("parsing display base: %w", err)
	}
	return addr, nil
}

// BreakpointSet returns the parsed comma separated breakpoint addresses.
func (o Options) BreakpointSet() (set.Set[uint16], error) {
	breakpoints := set.New[uint16]()
	if strings.TrimSpace(o.Breakpoints) == "" {
		return breakpoints, nil
	}
	for _, s := range strings.Split(o.Breakpoints, ",") {
		addr, err := ParseAddress(s)
		if err != nil {
			return nil, fmt.Errorf("parsing breakpoint: %w", err)
		}
		breakpoints.Add(addr)
	}
	return breakpoints, nil
}

// ParseAddress parses a hexadecimal address with an optional 0x or $
// prefix.
func ParseAddress(s string) (uint16, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(strings.ToLower(s), "0x"), "$")
	addr, err := strconv.ParseUint(s, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return uint16(addr), nil
}
