package i8080

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestParity(t *testing.T) {
	tests := []struct {
		val  uint8
		even bool
	}{
		{0x00, true},
		{0x01, false},
		{0x03, true},
		{0x7f, false},
		{0xff, true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.even, Parity(tt.val))
	}
}

func TestFlagsUpdate(t *testing.T) {
	var fl Flags
	fl.update(0x100)
	assert.Equal(t, Flags{Z: true, P: true, CY: true}, fl)

	fl.update(0x80)
	assert.Equal(t, Flags{S: true}, fl)
}

func TestStatusWord(t *testing.T) {
	for b := range 256 {
		var fl Flags
		fl.SetByte(uint8(b))
		assert.Equal(t, uint8(b)&0xd5|0x02, fl.Byte())
	}

	fl := Flags{S: true, Z: true, AC: true, P: true, CY: true}
	assert.Equal(t, uint8(0xd7), fl.Byte())
	assert.Equal(t, "szapc", fl.String())
	assert.Equal(t, ".....", Flags{}.String())
}

func TestPairSplit(t *testing.T) {
	assert.Equal(t, uint16(0x1234), Pair(0x12, 0x34))
	high, low := Split(0xabcd)
	assert.Equal(t, uint8(0xab), high)
	assert.Equal(t, uint8(0xcd), low)

	var reg Registers
	reg.SetDE(0xbeef)
	assert.Equal(t, uint8(0xbe), reg.D)
	assert.Equal(t, uint8(0xef), reg.E)
	assert.Equal(t, uint16(0xbeef), reg.DE())
}
