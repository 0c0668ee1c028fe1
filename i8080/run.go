package i8080

import (
	"context"

	"github.com/retroenv/retrogolib/set"
)

// Run executes up to steps instructions. It stops early when the CPU halts,
// when the program counter reaches one of the breakpoints after at least one
// instruction ran, or when ctx is cancelled. A negative steps value runs
// until one of the other conditions occurs.
func Run(ctx context.Context, c *CPU, steps int, breakpoints set.Set[uint16]) (int, error) {
	executed := 0
	for steps < 0 || executed < steps {
		if err := ctx.Err(); err != nil {
			return executed, err
		}
		if c.Halted() {
			return executed, nil
		}
		if executed > 0 && breakpoints.Contains(c.GetPC()) {
			return executed, nil
		}
		c.Step()
		executed++
	}
	return executed, nil
}
