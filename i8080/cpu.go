package i8080

import (
	"fmt"
	"os"

	"github.com/retroenv/retrogolib/log"
)

// CPU is the complete state of one 8080: registers, flags, memory and the
// interrupt enable latch. A CPU is only mutated by Step and is not safe for
// concurrent use; separate CPUs share nothing.
type CPU struct {
	mem       Memory
	reg       Registers
	flags     Flags
	pc        uint16
	sp        uint16
	intEnable bool
	halted    bool

	steps         uint64
	unimplemented uint64

	logger    *log.Logger
	trace     bool
	traceFunc TraceFunc
}

// TraceFunc receives the address, disassembly and register state of every
// instruction before it executes.
type TraceFunc func(pc uint16, code, state string)

// Option configures a CPU.
type Option func(*CPU)

// WithLogger sets the logger that receives unimplemented opcode and trace events.
func WithLogger(logger *log.Logger) Option {
	return func(c *CPU) {
		c.logger = logger
	}
}

// WithTrace logs every instruction with the register state before it executes.
func WithTrace(enabled bool) Option {
	return func(c *CPU) {
		c.trace = enabled
	}
}

// WithTraceFunc enables tracing and passes every trace line to fn instead
// of the logger.
func WithTraceFunc(fn TraceFunc) Option {
	return func(c *CPU) {
		c.trace = fn != nil
		c.traceFunc = fn
	}
}

// NewCPU returns a CPU with zeroed memory that starts executing at pcStart.
func NewCPU(pcStart uint16, options ...Option) *CPU {
	c := &CPU{pc: pcStart}
	for _, option := range options {
		option(c)
	}
	if c.logger == nil {
		c.logger = log.NewWithConfig(log.DefaultConfig())
	}
	return c
}

// Load replaces memory with image, zero padded or truncated to 64K.
func (c *CPU) Load(image []byte) {
	c.mem.Load(image)
}

// LoadAt copies image into memory at offset, leaving the rest untouched.
func (c *CPU) LoadAt(image []byte, offset uint16) {
	c.mem.LoadAt(image, offset)
}

// LoadRom reads a program image from disk and loads it at address 0.
func (c *CPU) LoadRom(filename string) error {
	rom, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("reading rom: %w", err)
	}
	c.Load(rom)
	return nil
}

func (c *CPU) Write(addr uint16, val uint8) {
	c.mem.Write(addr, val)
}

func (c *CPU) Read(addr uint16) uint8 {
	return c.mem.Read(addr)
}

func (c *CPU) GetMemory() *Memory {
	return &c.mem
}

func (c *CPU) GetRegisters() *Registers {
	return &c.reg
}

func (c *CPU) GetFlags() *Flags {
	return &c.flags
}

func (c *CPU) GetPC() uint16 {
	return c.pc
}

func (c *CPU) SetPC(pc uint16) {
	c.pc = pc
}

func (c *CPU) GetSP() uint16 {
	return c.sp
}

func (c *CPU) SetSP(sp uint16) {
	c.sp = sp
}

// GetAF returns the processor status word: accumulator high, flags low.
func (c *CPU) GetAF() uint16 {
	return Pair(c.reg.A, c.flags.Byte())
}

func (c *CPU) GetBC() uint16 {
	return c.reg.BC()
}

func (c *CPU) GetDE() uint16 {
	return c.reg.DE()
}

func (c *CPU) GetHL() uint16 {
	return c.reg.HL()
}

// InterruptsEnabled reports the state of the EI/DI latch.
func (c *CPU) InterruptsEnabled() bool {
	return c.intEnable
}

// Halted reports whether a HLT instruction has been executed.
func (c *CPU) Halted() bool {
	return c.halted
}

// Steps returns the number of instructions executed.
func (c *CPU) Steps() uint64 {
	return c.steps
}

// Unimplemented returns how many opcodes were skipped because they have no
// handler.
func (c *CPU) Unimplemented() uint64 {
	return c.unimplemented
}

func (c *CPU) fetchByte() uint8 {
	val := c.mem.Read(c.pc)
	c.pc++
	return val
}

// fetchWord reads a little-endian immediate from the instruction stream.
func (c *CPU) fetchWord() uint16 {
	low := c.fetchByte()
	high := c.fetchByte()
	return Pair(high, low)
}

// Step executes the instruction at the program counter. Opcodes without a
// handler are consumed and reported, execution continues after them.
func (c *CPU) Step() {
	if c.halted {
		return
	}
	if c.trace {
		c.traceOutput()
	}

	addr := c.pc
	opcode := c.fetchByte()
	c.steps++

	op := &opcodes[opcode]
	if op.exec == nil {
		c.unimplemented++
		c.logger.Warn("Skipping unimplemented opcode",
			log.Hex("opcode", opcode),
			log.Hex("address", addr))
		return
	}
	op.exec(c)
}

// State formats the registers the way the trace output shows them.
func (c *CPU) State() string {
	return fmt.Sprintf("a:%02X bc:%04X de:%04X hl:%04X pc:%04X sp:%04X %s",
		c.reg.A, c.reg.BC(), c.reg.DE(), c.reg.HL(), c.pc, c.sp, c.flags)
}

func (c *CPU) traceOutput() {
	code, _ := c.mem.Disassemble(c.pc)
	if c.traceFunc != nil {
		c.traceFunc(c.pc, code, c.State())
		return
	}
	c.logger.Debug(code,
		log.Hex("pc", c.pc),
		log.String("state", c.State()))
}
