package i8080Test

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/is386/i8080step/i8080"
	"github.com/retroenv/retrogolib/log"
)

const (
	// ProgramStart is where CP/M loads .COM files.
	ProgramStart = 0x0100
	// bdosEntry is the address programs call for system services.
	bdosEntry = 0x0005
	warmBoot  = 0x0000
)

// BDOS functions selected by register C.
const (
	consoleOutput = 2
	printString   = 9
)

// TestMachine runs CP/M test programs such as TST8080.COM. Console output of
// the program is written to out.
type TestMachine struct {
	cpu        *i8080.CPU
	out        io.Writer
	logger     *log.Logger
	instrCount int
}

// NewTestMachine loads a .COM image at 0x0100 and patches the BDOS entry
// with a RET so that system calls return to the program after being
// serviced.
func NewTestMachine(logger *log.Logger, image []byte, out io.Writer, options ...i8080.Option) *TestMachine {
	options = append([]i8080.Option{i8080.WithLogger(logger)}, options...)
	cpu := i8080.NewCPU(ProgramStart, options...)
	cpu.LoadAt(image, ProgramStart)
	cpu.Write(bdosEntry, 0xc9)

	return &TestMachine{
		cpu:    cpu,
		out:    out,
		logger: logger,
	}
}

// LoadTestMachine reads a .COM file and returns a machine ready to run it.
func LoadTestMachine(logger *log.Logger, filename string, out io.Writer, options ...i8080.Option) (*TestMachine, error) {
	image, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("reading program: %w", err)
	}
	return NewTestMachine(logger, image, out, options...), nil
}

// CPU returns the processor of the machine.
func (tm *TestMachine) CPU() *i8080.CPU {
	return tm.cpu
}

// Instructions returns the number of instructions executed so far.
func (tm *TestMachine) Instructions() int {
	return tm.instrCount
}

// Run executes the program until it jumps to the warm boot vector, halts or
// ctx is cancelled.
func (tm *TestMachine) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		pc := tm.cpu.GetPC()
		switch {
		case pc == warmBoot:
			tm.logger.Debug("Warm boot reached", log.Int("instructions", tm.instrCount))
			return nil
		case tm.cpu.Halted():
			tm.logger.Debug("CPU halted", log.Hex("pc", pc))
			return nil
		case pc == bdosEntry:
			if err := tm.bdos(); err != nil {
				return err
			}
		}

		tm.cpu.Step()
		tm.instrCount++
	}
}

func (tm *TestMachine) bdos() error {
	reg := tm.cpu.GetRegisters()
	switch reg.C {
	case printString:
		mem := tm.cpu.GetMemory()
		var str []byte
		// the string may not run through the whole address space
		for offset := tm.cpu.GetDE(); len(str) < i8080.MemorySize; offset++ {
			char := mem.Read(offset)
			if char == '$' {
				break
			}
			str = append(str, char)
		}
		if _, err := tm.out.Write(str); err != nil {
			return fmt.Errorf("writing console output: %w", err)
		}

	case consoleOutput:
		if _, err := tm.out.Write([]byte{reg.E}); err != nil {
			return fmt.Errorf("writing console output: %w", err)
		}

	default:
		tm.logger.Debug("Unsupported BDOS function", log.Uint8("function", reg.C))
	}
	return nil
}
