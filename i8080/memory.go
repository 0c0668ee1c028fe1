package i8080

// MemorySize is the size of the flat 8080 address space.
const MemorySize = 64 * 1024

// Memory is the complete 8080 address space. Indexing with a uint16 address
// can never leave the array, so all addressing is modulo 65536.
type Memory [MemorySize]uint8

// Load copies image to address 0 and zero fills the rest. Images larger than
// the address space are truncated.
func (m *Memory) Load(image []byte) {
	*m = Memory{}
	copy(m[:], image)
}

// LoadAt copies image to the given address without clearing other memory.
func (m *Memory) LoadAt(image []byte, offset uint16) {
	copy(m[offset:], image)
}

func (m *Memory) Read(addr uint16) uint8 {
	return m[addr]
}

func (m *Memory) Write(addr uint16, val uint8) {
	m[addr] = val
}

// ReadWord reads a little-endian 16 bit value.
func (m *Memory) ReadWord(addr uint16) uint16 {
	return Pair(m.Read(addr+1), m.Read(addr))
}

// WriteWord stores a 16 bit value little-endian.
func (m *Memory) WriteWord(addr uint16, val uint16) {
	high, low := Split(val)
	m.Write(addr, low)
	m.Write(addr+1, high)
}

// Window returns a read-only copy of length bytes starting at start.
func (m *Memory) Window(start, length int) ([]byte, error) {
	if start < 0 || start >= MemorySize {
		return nil, &AddressError{Offset: start, Len: MemorySize}
	}
	end := start + length
	if length < 0 || end > MemorySize {
		return nil, &AddressError{Offset: end - 1, Len: MemorySize}
	}
	out := make([]byte, length)
	copy(out, m[start:end])
	return out, nil
}
