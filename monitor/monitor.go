// Package monitor implements an interactive single stepping front end that
// reads one key per command from the terminal.
package monitor

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/is386/i8080step/i8080"
	"github.com/pkg/term"
	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/retrogolib/set"
)

const help = "keys: space/s step, c continue, r registers, h help, q quit\n"

// Monitor drives a CPU from single key commands.
type Monitor struct {
	cpu         *i8080.CPU
	logger      *log.Logger
	out         io.Writer
	breakpoints set.Set[uint16]
	budget      int // instructions executed by continue, negative for no limit
}

// New returns a monitor for cpu. Continue runs at most budget instructions
// or until one of the breakpoints is reached.
func New(logger *log.Logger, cpu *i8080.CPU, out io.Writer, breakpoints set.Set[uint16], budget int) *Monitor {
	return &Monitor{
		cpu:         cpu,
		logger:      logger,
		out:         out,
		breakpoints: breakpoints,
		budget:      budget,
	}
}

// OpenTerminal puts the controlling terminal into cbreak mode so that key
// presses are delivered without waiting for a newline. The caller must
// restore and close the returned terminal.
func OpenTerminal() (*term.Term, error) {
	t, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return nil, fmt.Errorf("opening terminal: %w", err)
	}
	return t, nil
}

// Run processes commands read from in until q is pressed, in is exhausted
// or ctx is cancelled.
func (m *Monitor) Run(ctx context.Context, in io.Reader) error {
	m.printf("%s", help)
	m.printLine()

	key := make([]byte, 1)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := in.Read(key)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("reading key: %w", err)
		}
		if n == 0 {
			continue
		}

		switch key[0] {
		case ' ', 's':
			m.step()
		case 'c':
			if err := m.continueRun(ctx); err != nil {
				return err
			}
		case 'r':
			m.printf("%s\n", m.cpu.State())
		case 'h', '?':
			m.printf("%s", help)
		case 'q':
			return nil
		case '\n', '\r':
		default:
			m.logger.Debug("Unknown monitor key", log.Hex("key", key[0]))
		}
	}
}

func (m *Monitor) step() {
	if m.cpu.Halted() {
		m.printf("halted at %04X\n", m.cpu.GetPC())
		return
	}
	m.cpu.Step()
	m.printLine()
}

func (m *Monitor) continueRun(ctx context.Context) error {
	executed, err := i8080.Run(ctx, m.cpu, m.budget, m.breakpoints)
	if err != nil {
		return fmt.Errorf("continuing execution: %w", err)
	}
	m.logger.Debug("Execution stopped",
		log.Int("instructions", executed),
		log.Hex("pc", m.cpu.GetPC()))
	m.printLine()
	return nil
}

// printLine shows the next instruction and the current register state.
func (m *Monitor) printLine() {
	code, _ := m.cpu.GetMemory().Disassemble(m.cpu.GetPC())
	m.printf("%04X  %-16s %s\n", m.cpu.GetPC(), code, m.cpu.State())
}

func (m *Monitor) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(m.out, format, args...)
}
