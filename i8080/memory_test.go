package i8080

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMemoryLoad(t *testing.T) {
	var mem Memory
	mem.Write(0x10, 0xff)
	mem.Load([]byte{1, 2, 3})
	assert.Equal(t, uint8(3), mem.Read(2))
	assert.Equal(t, uint8(0), mem.Read(0x10))

	big := make([]byte, MemorySize+16)
	big[MemorySize-1] = 0x77
	big[MemorySize] = 0x88
	mem.Load(big)
	assert.Equal(t, uint8(0x77), mem.Read(0xffff))
	assert.Equal(t, uint8(0), mem.Read(0))
}

func TestMemoryLoadAt(t *testing.T) {
	var mem Memory
	mem.Write(0, 0xc9)
	mem.LoadAt([]byte{0xaa, 0xbb}, 0x100)
	assert.Equal(t, uint8(0xc9), mem.Read(0))
	assert.Equal(t, uint8(0xbb), mem.Read(0x101))
}

func TestMemoryWord(t *testing.T) {
	var mem Memory
	mem.WriteWord(0xffff, 0x1234)
	assert.Equal(t, uint8(0x34), mem.Read(0xffff))
	assert.Equal(t, uint8(0x12), mem.Read(0x0000))
	assert.Equal(t, uint16(0x1234), mem.ReadWord(0xffff))
}

func TestMemoryWindow(t *testing.T) {
	var mem Memory
	mem.Write(0xfffe, 0x01)
	mem.Write(0xffff, 0x02)

	data, err := mem.Window(0xfffe, 2)
	assert.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02}, data)

	tests := []struct {
		name   string
		start  int
		length int
		offset int
	}{
		{"negative start", -1, 1, -1},
		{"start past end", MemorySize, 1, MemorySize},
		{"length past end", 0xffff, 2, MemorySize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := mem.Window(tt.start, tt.length)
			assert.Error(t, err)
			assert.True(t, errors.Is(err, ErrAddressOutOfRange))

			var addrErr *AddressError
			assert.True(t, errors.As(err, &addrErr))
			assert.Equal(t, tt.offset, addrErr.Offset)
			assert.Equal(t, MemorySize, addrErr.Len)
		})
	}
}
