package i8080

import "math/bits"

// Flags are the 8080 condition codes.
type Flags struct {
	Z  bool // zero
	S  bool // sign, bit 7 of the result
	P  bool // parity, even number of set bits
	CY bool // carry or borrow out of the result
	AC bool // auxiliary carry out of bit 3
}

// Parity reports whether val has an even number of set bits.
func Parity(val uint8) bool {
	return bits.OnesCount8(val)%2 == 0
}

// update recomputes Z, S, P and CY from a result that was computed wider
// than 8 bits.
func (fl *Flags) update(result uint16) {
	fl.setZSP(uint8(result))
	fl.CY = result > 0xff
}

func (fl *Flags) setZSP(val uint8) {
	fl.Z = val == 0
	fl.S = val&0x80 != 0
	fl.P = Parity(val)
}

// PSW bit positions. Bit 1 always reads as 1, bits 3 and 5 as 0.
const (
	pswCarry  = 1 << 0
	pswOne    = 1 << 1
	pswParity = 1 << 2
	pswAux    = 1 << 4
	pswZero   = 1 << 6
	pswSign   = 1 << 7
)

// Byte packs the flags into the low byte of the processor status word.
func (fl Flags) Byte() uint8 {
	b := uint8(pswOne)
	if fl.CY {
		b |= pswCarry
	}
	if fl.P {
		b |= pswParity
	}
	if fl.AC {
		b |= pswAux
	}
	if fl.Z {
		b |= pswZero
	}
	if fl.S {
		b |= pswSign
	}
	return b
}

// SetByte unpacks a processor status word byte.
func (fl *Flags) SetByte(b uint8) {
	fl.CY = b&pswCarry != 0
	fl.P = b&pswParity != 0
	fl.AC = b&pswAux != 0
	fl.Z = b&pswZero != 0
	fl.S = b&pswSign != 0
}

// String renders the flags as "szapc", with a dot for each clear flag.
func (fl Flags) String() string {
	out := []byte(".....")
	if fl.S {
		out[0] = 's'
	}
	if fl.Z {
		out[1] = 'z'
	}
	if fl.AC {
		out[2] = 'a'
	}
	if fl.P {
		out[3] = 'p'
	}
	if fl.CY {
		out[4] = 'c'
	}
	return string(out)
}
