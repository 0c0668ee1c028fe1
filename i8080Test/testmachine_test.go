package i8080Test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/retrogolib/log"
)

var (
	TST8080 = "TST8080.COM"
)

var helloProgram = []byte{
	0x11, 0x12, 0x01, // LXI D,#$0112
	0x0e, 0x09,       // MVI C,#$09
	0xcd, 0x05, 0x00, // CALL $0005
	0x0e, 0x02,       // MVI C,#$02
	0x1e, '!',        // MVI E,#$21
	0xcd, 0x05, 0x00, // CALL $0005
	0xc3, 0x00, 0x00, // JMP $0000
	'8', '0', '8', '0', ' ', 'O', 'K', '$',
}

func TestConsoleOutput(t *testing.T) {
	var out bytes.Buffer
	tm := NewTestMachine(log.NewTestLogger(t), helloProgram, &out)

	assert.NoError(t, tm.Run(context.Background()))
	assert.Equal(t, "8080 OK!", out.String())
	assert.Equal(t, 9, tm.Instructions())
	assert.Equal(t, uint16(0), tm.CPU().GetPC())
}

func TestRunStopsOnHalt(t *testing.T) {
	var out bytes.Buffer
	tm := NewTestMachine(log.NewTestLogger(t), []byte{0x00, 0x76}, &out)

	assert.NoError(t, tm.Run(context.Background()))
	assert.Equal(t, 2, tm.Instructions())
	assert.True(t, tm.CPU().Halted())
	assert.Equal(t, "", out.String())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tm := NewTestMachine(log.NewTestLogger(t), []byte{0xc3, 0x00, 0x01}, &bytes.Buffer{})
	assert.True(t, errors.Is(tm.Run(ctx), context.Canceled))
}

func TestTST8080(t *testing.T) {
	if _, err := os.Stat(TST8080); err != nil {
		t.Skipf("%s not available", TST8080)
	}

	var out bytes.Buffer
	tm, err := LoadTestMachine(log.NewTestLogger(t), TST8080, &out)
	assert.NoError(t, err)
	assert.NoError(t, tm.Run(context.Background()))
	assert.Contains(t, out.String(), "CPU IS OPERATIONAL")
}
