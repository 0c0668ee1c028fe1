package i8080

import (
	"context"
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/set"
)

func TestRunSteps(t *testing.T) {
	c := newTestCPU(t) // all NOP
	executed, err := Run(context.Background(), c, 10, nil)
	assert.NoError(t, err)
	assert.Equal(t, 10, executed)
	assert.Equal(t, uint16(10), c.GetPC())
}

func TestRunStopsAtHalt(t *testing.T) {
	c := newTestCPU(t, 0x00, 0x00, 0x76, 0x00)
	executed, err := Run(context.Background(), c, -1, nil)
	assert.NoError(t, err)
	assert.Equal(t, 3, executed)
	assert.True(t, c.Halted())
}

func TestRunStopsAtBreakpoint(t *testing.T) {
	c := newTestCPU(t, 0x00, 0x00, 0xc3, 0x00, 0x00) // NOP, NOP, JMP $0000
	breakpoints := set.New[uint16]()
	breakpoints.Add(0x0002)

	executed, err := Run(context.Background(), c, 100, breakpoints)
	assert.NoError(t, err)
	assert.Equal(t, 2, executed)
	assert.Equal(t, uint16(2), c.GetPC())

	// resuming from a breakpoint executes the instruction at it
	executed, err = Run(context.Background(), c, 100, breakpoints)
	assert.NoError(t, err)
	assert.Equal(t, 3, executed)
	assert.Equal(t, uint16(2), c.GetPC())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newTestCPU(t)
	executed, err := Run(ctx, c, 10, nil)
	assert.True(t, errors.Is(err, context.Canceled))
	assert.Equal(t, 0, executed)
}
