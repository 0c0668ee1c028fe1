package i8080

import (
	"fmt"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

func newTestCPU(t *testing.T, program ...byte) *CPU {
	t.Helper()
	c := NewCPU(0, WithLogger(log.NewTestLogger(t)))
	c.Load(program)
	return c
}

func TestJump(t *testing.T) {
	c := newTestCPU(t, 0xc3, 0x11, 0x22)
	c.Step()
	assert.Equal(t, uint16(0x2211), c.GetPC())
}

func TestConditionalJump(t *testing.T) {
	// JZ $2211 with Z clear falls through without reading the operand.
	c := newTestCPU(t, 0xca, 0x11, 0x22)
	c.Step()
	assert.Equal(t, uint16(3), c.GetPC())

	c = newTestCPU(t, 0xca, 0x11, 0x22)
	c.flags.Z = true
	c.Step()
	assert.Equal(t, uint16(0x2211), c.GetPC())
}

func TestCallAndReturn(t *testing.T) {
	c := newTestCPU(t)
	c.LoadAt([]byte{0xcd, 0x11, 0x22}, 0x1234) // CALL $2211
	c.Write(0x2211, 0xc9)                      // RET
	c.SetPC(0x1234)
	c.SetSP(100)

	c.Step()
	assert.Equal(t, uint16(0x2211), c.GetPC())
	assert.Equal(t, uint16(98), c.GetSP())
	assert.Equal(t, uint8(0x12), c.Read(99))
	assert.Equal(t, uint8(0x37), c.Read(98))

	c.Step()
	assert.Equal(t, uint16(0x1237), c.GetPC())
	assert.Equal(t, uint16(100), c.GetSP())
}

func TestConditionalCallAndReturn(t *testing.T) {
	c := newTestCPU(t,
		0xdc, 0x00, 0x20, // CC $2000
		0x37,             // STC
		0xdc, 0x00, 0x20, // CC $2000
	)
	c.Write(0x2000, 0xd8) // RC
	c.SetSP(0x100)

	c.Step()
	assert.Equal(t, uint16(3), c.GetPC())
	assert.Equal(t, uint16(0x100), c.GetSP())

	c.Step()
	c.Step()
	assert.Equal(t, uint16(0x2000), c.GetPC())
	assert.Equal(t, uint16(0xfe), c.GetSP())

	c.Step()
	assert.Equal(t, uint16(7), c.GetPC())
	assert.Equal(t, uint16(0x100), c.GetSP())
}

func TestRestart(t *testing.T) {
	c := newTestCPU(t, 0x00, 0xef) // NOP, RST 5
	c.SetSP(0x100)
	c.Step()
	c.Step()
	assert.Equal(t, uint16(0x28), c.GetPC())
	assert.Equal(t, uint16(2), c.GetMemory().ReadWord(c.GetSP()))
}

func TestStoreHL(t *testing.T) {
	c := newTestCPU(t, 0x22, 0x00, 0x30) // SHLD $3000
	c.GetRegisters().SetHL(0xabcd)
	c.Step()
	assert.Equal(t, uint8(0xcd), c.Read(0x3000))
	assert.Equal(t, uint8(0xab), c.Read(0x3001))

	c = newTestCPU(t, 0x2a, 0x00, 0x30) // LHLD $3000
	c.Write(0x3000, 0x34)
	c.Write(0x3001, 0x12)
	c.Step()
	assert.Equal(t, uint16(0x1234), c.GetHL())
}

func TestMove(t *testing.T) {
	c := newTestCPU(t,
		0x06, 0x42,       // MVI B,#$42
		0x48,             // MOV C,B
		0x21, 0x00, 0x40, // LXI H,#$4000
		0x71,             // MOV M,C
		0x36, 0x99,       // MVI M,#$99
		0x7e,             // MOV A,M
	)
	for range 4 {
		c.Step()
	}
	assert.Equal(t, uint8(0x42), c.GetRegisters().C)
	assert.Equal(t, uint8(0x42), c.Read(0x4000))

	c.Step()
	c.Step()
	assert.Equal(t, uint8(0x99), c.Read(0x4000))
	assert.Equal(t, uint8(0x99), c.GetRegisters().A)
}

func TestAccumulatorIndirect(t *testing.T) {
	c := newTestCPU(t,
		0x01, 0x00, 0x50, // LXI B,#$5000
		0x3e, 0x77,       // MVI A,#$77
		0x02,             // STAX B
		0x32, 0x01, 0x50, // STA $5001
		0x3e, 0x00,       // MVI A,#$00
		0x0a,             // LDAX B
	)
	for range 6 {
		c.Step()
	}
	assert.Equal(t, uint8(0x77), c.Read(0x5000))
	assert.Equal(t, uint8(0x77), c.Read(0x5001))
	assert.Equal(t, uint8(0x77), c.GetRegisters().A)
}

func TestExchange(t *testing.T) {
	c := newTestCPU(t, 0xeb, 0xe3, 0xf9) // XCHG, XTHL, SPHL
	c.GetRegisters().SetHL(0x1111)
	c.GetRegisters().SetDE(0x2222)
	c.SetSP(0x8000)
	c.GetMemory().WriteWord(0x8000, 0x3333)

	c.Step()
	assert.Equal(t, uint16(0x2222), c.GetHL())
	assert.Equal(t, uint16(0x1111), c.GetDE())

	c.Step()
	assert.Equal(t, uint16(0x3333), c.GetHL())
	assert.Equal(t, uint16(0x2222), c.GetMemory().ReadWord(0x8000))

	c.Step()
	assert.Equal(t, uint16(0x3333), c.GetSP())
}

func TestPushPopPSW(t *testing.T) {
	c := newTestCPU(t, 0xf5, 0xaf, 0xf1) // PUSH PSW, XRA A, POP PSW
	c.SetSP(0x100)
	c.GetRegisters().A = 0x80
	c.flags = Flags{S: true, CY: true, AC: true}

	c.Step()
	assert.Equal(t, uint8(0x80), c.Read(0xff))
	assert.Equal(t, uint8(0x93), c.Read(0xfe))

	c.Step()
	assert.Equal(t, uint8(0), c.GetRegisters().A)
	assert.True(t, c.GetFlags().Z)

	c.Step()
	assert.Equal(t, uint16(0x8093), c.GetAF())
	assert.Equal(t, Flags{S: true, CY: true, AC: true}, *c.GetFlags())
	assert.Equal(t, uint16(0x100), c.GetSP())
}

func TestInterruptLatch(t *testing.T) {
	c := newTestCPU(t, 0xfb, 0xf3) // EI, DI
	c.Step()
	assert.True(t, c.InterruptsEnabled())
	c.Step()
	assert.False(t, c.InterruptsEnabled())
}

func TestPortsConsumeOperand(t *testing.T) {
	c := newTestCPU(t, 0x3e, 0x5a, 0xdb, 0x01, 0xd3, 0x02) // MVI A, IN 1, OUT 2
	for range 3 {
		c.Step()
	}
	assert.Equal(t, uint16(6), c.GetPC())
	assert.Equal(t, uint8(0x5a), c.GetRegisters().A)
}

func TestUnimplementedOpcode(t *testing.T) {
	c := newTestCPU(t, 0x08, 0x3c) // undocumented, INR A
	c.Step()
	assert.Equal(t, uint16(1), c.GetPC())
	assert.Equal(t, uint64(1), c.Unimplemented())
	assert.Equal(t, Registers{}, *c.GetRegisters())

	c.Step()
	assert.Equal(t, uint8(1), c.GetRegisters().A)
	assert.Equal(t, uint64(2), c.Steps())
}

func TestHalt(t *testing.T) {
	c := newTestCPU(t, 0x76, 0x3c) // HLT, INR A
	c.Step()
	assert.True(t, c.Halted())
	assert.Equal(t, uint16(1), c.GetPC())

	c.Step()
	assert.Equal(t, uint16(1), c.GetPC())
	assert.Equal(t, uint8(0), c.GetRegisters().A)
	assert.Equal(t, uint64(1), c.Steps())
}

func TestProgramCounterWraps(t *testing.T) {
	c := newTestCPU(t)
	c.SetPC(0xffff)
	c.Write(0xffff, 0x3e) // MVI A,#$21 with the operand at address 0
	c.Write(0x0000, 0x21)
	c.Step()
	assert.Equal(t, uint8(0x21), c.GetRegisters().A)
	assert.Equal(t, uint16(1), c.GetPC())
}

func TestTrace(t *testing.T) {
	var lines []string
	c := NewCPU(0, WithLogger(log.NewTestLogger(t)), WithTraceFunc(func(pc uint16, code, state string) {
		lines = append(lines, fmt.Sprintf("%04X %s | %s", pc, code, state))
	}))
	c.Load([]byte{0x3e, 0x01, 0x3c}) // MVI A,#$01, INR A
	c.Step()
	c.Step()

	assert.Equal(t, []string{
		"0000 MVI    A,#$01 | a:00 bc:0000 de:0000 hl:0000 pc:0000 sp:0000 .....",
		"0002 INR    A | a:01 bc:0000 de:0000 hl:0000 pc:0002 sp:0000 .....",
	}, lines)
	assert.Equal(t, uint8(2), c.GetRegisters().A)
}

func TestTraceDisabled(t *testing.T) {
	c := NewCPU(0, WithLogger(log.NewTestLogger(t)), WithTrace(true), WithTraceFunc(nil))
	c.Load([]byte{0x3c})
	c.Step()
	assert.False(t, c.trace)

	c = NewCPU(0, WithLogger(log.NewTestLogger(t)), WithTrace(true))
	c.Load([]byte{0x3c})
	c.Step()
	assert.True(t, c.trace)
	assert.Equal(t, uint8(1), c.GetRegisters().A)
}

func TestState(t *testing.T) {
	c := newTestCPU(t)
	c.GetRegisters().A = 0x12
	c.GetRegisters().SetBC(0x3456)
	c.SetSP(0xf000)
	c.flags.Z = true
	assert.Equal(t, "a:12 bc:3456 de:0000 hl:0000 pc:0000 sp:F000 .z...", c.State())
}
