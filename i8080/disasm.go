package i8080

import "fmt"

// Disassemble decodes the instruction at offset in buf and returns its
// text and length. An error is returned when offset or an operand byte lies
// outside buf.
func Disassemble(buf []byte, offset int) (string, int, error) {
	if offset < 0 || offset >= len(buf) {
		return "", 0, &AddressError{Offset: offset, Len: len(buf)}
	}
	op := OpcodeInfo(buf[offset])
	size := op.Size()
	if offset+size > len(buf) {
		return "", 0, &AddressError{Offset: offset + size - 1, Len: len(buf)}
	}
	return format(op, buf[offset:offset+size]), size, nil
}

// Disassemble decodes the instruction at addr. Operands that run past the
// end of memory wrap around to address 0.
func (m *Memory) Disassemble(addr uint16) (string, int) {
	op := OpcodeInfo(m.Read(addr))
	size := op.Size()
	code := make([]byte, size)
	for i := range code {
		code[i] = m.Read(addr + uint16(i))
	}
	return format(op, code), size
}

// format renders an instruction with its operand bytes as
// "MVI    B,#$0A", "LXI    H,#$2400" or "JMP    $18D4".
func format(op Opcode, code []byte) string {
	if !op.Implemented() {
		return dataByte(code[0])
	}

	var data string
	switch op.Mode {
	case Immediate:
		data = fmt.Sprintf("#$%02X", code[1])
	case Immediate16:
		data = fmt.Sprintf("#$%04X", Pair(code[2], code[1]))
	case Absolute:
		data = fmt.Sprintf("$%04X", Pair(code[2], code[1]))
	}

	operands := op.Operands
	switch {
	case operands == "":
		operands = data
	case data != "":
		operands += "," + data
	}
	if operands == "" {
		return op.Mnemonic
	}
	return fmt.Sprintf("%-7s%s", op.Mnemonic, operands)
}

// DisassembleRange decodes the instructions that start inside the first
// length bytes of buf, one line per instruction prefixed by its offset.
// An instruction cut short by the end of buf is listed as DB lines for the
// bytes that are present.
func DisassembleRange(buf []byte, length int) []string {
	if length > len(buf) {
		length = len(buf)
	}
	var lines []string
	for offset := 0; offset < length; {
		code, size, err := Disassemble(buf, offset)
		if err != nil {
			for ; offset < len(buf); offset++ {
				lines = append(lines, fmt.Sprintf("%04X  %s", offset, dataByte(buf[offset])))
			}
			break
		}
		lines = append(lines, fmt.Sprintf("%04X  %s", offset, code))
		offset += size
	}
	return lines
}

func dataByte(b byte) string {
	return fmt.Sprintf("%-7s$%02X", "DB", b)
}
