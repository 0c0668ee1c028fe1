package i8080

// Registers holds the accumulator and the six general purpose registers.
// B/C, D/E and H/L pair up into 16 bit values with the first register as the
// high byte.
type Registers struct {
	A uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8
}

// Pair joins two bytes into a 16 bit value.
func Pair(high, low uint8) uint16 {
	return (uint16(high) << 8) | uint16(low)
}

// Split returns the high and low bytes of a 16 bit value.
func Split(val uint16) (high, low uint8) {
	return uint8(val >> 8), uint8(val & 0xff)
}

func (r *Registers) BC() uint16 {
	return Pair(r.B, r.C)
}

func (r *Registers) DE() uint16 {
	return Pair(r.D, r.E)
}

func (r *Registers) HL() uint16 {
	return Pair(r.H, r.L)
}

func (r *Registers) SetBC(val uint16) {
	r.B, r.C = Split(val)
}

func (r *Registers) SetDE(val uint16) {
	r.D, r.E = Split(val)
}

func (r *Registers) SetHL(val uint16) {
	r.H, r.L = Split(val)
}

// register selects an 8 bit operand in the order used by the opcode
// encoding. regM is the byte addressed by HL.
type register uint8

const (
	regB register = iota
	regC
	regD
	regE
	regH
	regL
	regM
	regA
)

var registerNames = [...]string{"B", "C", "D", "E", "H", "L", "M", "A"}

func (r register) String() string {
	return registerNames[r]
}

// pair selects a 16 bit operand of LXI, INX, DCX, DAD, PUSH and POP.
type pair uint8

const (
	pairBC pair = iota
	pairDE
	pairHL
	pairSP
	pairPSW
)

var pairNames = [...]string{"B", "D", "H", "SP", "PSW"}

func (p pair) String() string {
	return pairNames[p]
}
