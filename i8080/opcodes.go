package i8080

// Mode describes the operand bytes that follow an opcode.
type Mode uint8

const (
	Implied     Mode = iota // no operand
	Immediate               // one byte of data
	Immediate16             // two bytes of data, little-endian
	Absolute                // two byte address, little-endian
)

// Opcode describes one entry of the instruction set. The same table drives
// execution and disassembly.
type Opcode struct {
	Mnemonic string
	Operands string // register or pair operands that are part of the opcode
	Mode     Mode
	exec     func(*CPU)
}

// Size returns the instruction length in bytes including the opcode.
func (op Opcode) Size() int {
	switch op.Mode {
	case Immediate:
		return 2
	case Immediate16, Absolute:
		return 3
	default:
		return 1
	}
}

// Implemented reports whether the CPU executes the opcode. Undocumented
// opcodes are skipped by Step and disassemble as data bytes.
func (op Opcode) Implemented() bool {
	return op.exec != nil
}

// OpcodeInfo returns a copy of the table entry for an opcode byte.
func OpcodeInfo(b byte) Opcode {
	return opcodes[b]
}

// opcodes contains all 256 opcodes of the 8080. It is never modified after
// package initialization.
var opcodes = [256]Opcode{
	0x00: {"NOP", "", Implied, func(*CPU) {}},
	0x01: {"LXI", "B", Immediate16, func(c *CPU) { c.lxi(pairBC) }},
	0x02: {"STAX", "B", Implied, func(c *CPU) { c.stax(pairBC) }},
	0x03: {"INX", "B", Implied, func(c *CPU) { c.incPair(pairBC) }},
	0x04: {"INR", "B", Implied, func(c *CPU) { c.incRegister(regB) }},
	0x05: {"DCR", "B", Implied, func(c *CPU) { c.decRegister(regB) }},
	0x06: {"MVI", "B", Immediate, func(c *CPU) { c.mvi(regB) }},
	0x07: {"RLC", "", Implied, func(c *CPU) { c.rlc() }},
	0x08: {Mnemonic: "DB"},
	0x09: {"DAD", "B", Implied, func(c *CPU) { c.dad(c.getPair(pairBC)) }},
	0x0A: {"LDAX", "B", Implied, func(c *CPU) { c.ldax(pairBC) }},
	0x0B: {"DCX", "B", Implied, func(c *CPU) { c.decPair(pairBC) }},
	0x0C: {"INR", "C", Implied, func(c *CPU) { c.incRegister(regC) }},
	0x0D: {"DCR", "C", Implied, func(c *CPU) { c.decRegister(regC) }},
	0x0E: {"MVI", "C", Immediate, func(c *CPU) { c.mvi(regC) }},
	0x0F: {"RRC", "", Implied, func(c *CPU) { c.rrc() }},
	0x10: {Mnemonic: "DB"},
	0x11: {"LXI", "D", Immediate16, func(c *CPU) { c.lxi(pairDE) }},
	0x12: {"STAX", "D", Implied, func(c *CPU) { c.stax(pairDE) }},
	0x13: {"INX", "D", Implied, func(c *CPU) { c.incPair(pairDE) }},
	0x14: {"INR", "D", Implied, func(c *CPU) { c.incRegister(regD) }},
	0x15: {"DCR", "D", Implied, func(c *CPU) { c.decRegister(regD) }},
	0x16: {"MVI", "D", Immediate, func(c *CPU) { c.mvi(regD) }},
	0x17: {"RAL", "", Implied, func(c *CPU) { c.ral() }},
	0x18: {Mnemonic: "DB"},
	0x19: {"DAD", "D", Implied, func(c *CPU) { c.dad(c.getPair(pairDE)) }},
	0x1A: {"LDAX", "D", Implied, func(c *CPU) { c.ldax(pairDE) }},
	0x1B: {"DCX", "D", Implied, func(c *CPU) { c.decPair(pairDE) }},
	0x1C: {"INR", "E", Implied, func(c *CPU) { c.incRegister(regE) }},
	0x1D: {"DCR", "E", Implied, func(c *CPU) { c.decRegister(regE) }},
	0x1E: {"MVI", "E", Immediate, func(c *CPU) { c.mvi(regE) }},
	0x1F: {"RAR", "", Implied, func(c *CPU) { c.rar() }},
	0x20: {Mnemonic: "DB"},
	0x21: {"LXI", "H", Immediate16, func(c *CPU) { c.lxi(pairHL) }},
	0x22: {"SHLD", "", Absolute, func(c *CPU) { c.shld() }},
	0x23: {"INX", "H", Implied, func(c *CPU) { c.incPair(pairHL) }},
	0x24: {"INR", "H", Implied, func(c *CPU) { c.incRegister(regH) }},
	0x25: {"DCR", "H", Implied, func(c *CPU) { c.decRegister(regH) }},
	0x26: {"MVI", "H", Immediate, func(c *CPU) { c.mvi(regH) }},
	0x27: {"DAA", "", Implied, func(c *CPU) { c.daa() }},
	0x28: {Mnemonic: "DB"},
	0x29: {"DAD", "H", Implied, func(c *CPU) { c.dad(c.getPair(pairHL)) }},
	0x2A: {"LHLD", "", Absolute, func(c *CPU) { c.lhld() }},
	0x2B: {"DCX", "H", Implied, func(c *CPU) { c.decPair(pairHL) }},
	0x2C: {"INR", "L", Implied, func(c *CPU) { c.incRegister(regL) }},
	0x2D: {"DCR", "L", Implied, func(c *CPU) { c.decRegister(regL) }},
	0x2E: {"MVI", "L", Immediate, func(c *CPU) { c.mvi(regL) }},
	0x2F: {"CMA", "", Implied, func(c *CPU) { c.cma() }},
	0x30: {Mnemonic: "DB"},
	0x31: {"LXI", "SP", Immediate16, func(c *CPU) { c.lxi(pairSP) }},
	0x32: {"STA", "", Absolute, func(c *CPU) { c.sta() }},
	0x33: {"INX", "SP", Implied, func(c *CPU) { c.incPair(pairSP) }},
	0x34: {"INR", "M", Implied, func(c *CPU) { c.incRegister(regM) }},
	0x35: {"DCR", "M", Implied, func(c *CPU) { c.decRegister(regM) }},
	0x36: {"MVI", "M", Immediate, func(c *CPU) { c.mvi(regM) }},
	0x37: {"STC", "", Implied, func(c *CPU) { c.stc() }},
	0x38: {Mnemonic: "DB"},
	0x39: {"DAD", "SP", Implied, func(c *CPU) { c.dad(c.getPair(pairSP)) }},
	0x3A: {"LDA", "", Absolute, func(c *CPU) { c.lda() }},
	0x3B: {"DCX", "SP", Implied, func(c *CPU) { c.decPair(pairSP) }},
	0x3C: {"INR", "A", Implied, func(c *CPU) { c.incRegister(regA) }},
	0x3D: {"DCR", "A", Implied, func(c *CPU) { c.decRegister(regA) }},
	0x3E: {"MVI", "A", Immediate, func(c *CPU) { c.mvi(regA) }},
	0x3F: {"CMC", "", Implied, func(c *CPU) { c.cmc() }},
	0x40: {"MOV", "B,B", Implied, func(c *CPU) { c.mov(regB, regB) }},
	0x41: {"MOV", "B,C", Implied, func(c *CPU) { c.mov(regB, regC) }},
	0x42: {"MOV", "B,D", Implied, func(c *CPU) { c.mov(regB, regD) }},
	0x43: {"MOV", "B,E", Implied, func(c *CPU) { c.mov(regB, regE) }},
	0x44: {"MOV", "B,H", Implied, func(c *CPU) { c.mov(regB, regH) }},
	0x45: {"MOV", "B,L", Implied, func(c *CPU) { c.mov(regB, regL) }},
	0x46: {"MOV", "B,M", Implied, func(c *CPU) { c.mov(regB, regM) }},
	0x47: {"MOV", "B,A", Implied, func(c *CPU) { c.mov(regB, regA) }},
	0x48: {"MOV", "C,B", Implied, func(c *CPU) { c.mov(regC, regB) }},
	0x49: {"MOV", "C,C", Implied, func(c *CPU) { c.mov(regC, regC) }},
	0x4A: {"MOV", "C,D", Implied, func(c *CPU) { c.mov(regC, regD) }},
	0x4B: {"MOV", "C,E", Implied, func(c *CPU) { c.mov(regC, regE) }},
	0x4C: {"MOV", "C,H", Implied, func(c *CPU) { c.mov(regC, regH) }},
	0x4D: {"MOV", "C,L", Implied, func(c *CPU) { c.mov(regC, regL) }},
	0x4E: {"MOV", "C,M", Implied, func(c *CPU) { c.mov(regC, regM) }},
	0x4F: {"MOV", "C,A", Implied, func(c *CPU) { c.mov(regC, regA) }},
	0x50: {"MOV", "D,B", Implied, func(c *CPU) { c.mov(regD, regB) }},
	0x51: {"MOV", "D,C", Implied, func(c *CPU) { c.mov(regD, regC) }},
	0x52: {"MOV", "D,D", Implied, func(c *CPU) { c.mov(regD, regD) }},
	0x53: {"MOV", "D,E", Implied, func(c *CPU) { c.mov(regD, regE) }},
	0x54: {"MOV", "D,H", Implied, func(c *CPU) { c.mov(regD, regH) }},
	0x55: {"MOV", "D,L", Implied, func(c *CPU) { c.mov(regD, regL) }},
	0x56: {"MOV", "D,M", Implied, func(c *CPU) { c.mov(regD, regM) }},
	0x57: {"MOV", "D,A", Implied, func(c *CPU) { c.mov(regD, regA) }},
	0x58: {"MOV", "E,B", Implied, func(c *CPU) { c.mov(regE, regB) }},
	0x59: {"MOV", "E,C", Implied, func(c *CPU) { c.mov(regE, regC) }},
	0x5A: {"MOV", "E,D", Implied, func(c *CPU) { c.mov(regE, regD) }},
	0x5B: {"MOV", "E,E", Implied, func(c *CPU) { c.mov(regE, regE) }},
	0x5C: {"MOV", "E,H", Implied, func(c *CPU) { c.mov(regE, regH) }},
	0x5D: {"MOV", "E,L", Implied, func(c *CPU) { c.mov(regE, regL) }},
	0x5E: {"MOV", "E,M", Implied, func(c *CPU) { c.mov(regE, regM) }},
	0x5F: {"MOV", "E,A", Implied, func(c *CPU) { c.mov(regE, regA) }},
	0x60: {"MOV", "H,B", Implied, func(c *CPU) { c.mov(regH, regB) }},
	0x61: {"MOV", "H,C", Implied, func(c *CPU) { c.mov(regH, regC) }},
	0x62: {"MOV", "H,D", Implied, func(c *CPU) { c.mov(regH, regD) }},
	0x63: {"MOV", "H,E", Implied, func(c *CPU) { c.mov(regH, regE) }},
	0x64: {"MOV", "H,H", Implied, func(c *CPU) { c.mov(regH, regH) }},
	0x65: {"MOV", "H,L", Implied, func(c *CPU) { c.mov(regH, regL) }},
	0x66: {"MOV", "H,M", Implied, func(c *CPU) { c.mov(regH, regM) }},
	0x67: {"MOV", "H,A", Implied, func(c *CPU) { c.mov(regH, regA) }},
	0x68: {"MOV", "L,B", Implied, func(c *CPU) { c.mov(regL, regB) }},
	0x69: {"MOV", "L,C", Implied, func(c *CPU) { c.mov(regL, regC) }},
	0x6A: {"MOV", "L,D", Implied, func(c *CPU) { c.mov(regL, regD) }},
	0x6B: {"MOV", "L,E", Implied, func(c *CPU) { c.mov(regL, regE) }},
	0x6C: {"MOV", "L,H", Implied, func(c *CPU) { c.mov(regL, regH) }},
	0x6D: {"MOV", "L,L", Implied, func(c *CPU) { c.mov(regL, regL) }},
	0x6E: {"MOV", "L,M", Implied, func(c *CPU) { c.mov(regL, regM) }},
	0x6F: {"MOV", "L,A", Implied, func(c *CPU) { c.mov(regL, regA) }},
	0x70: {"MOV", "M,B", Implied, func(c *CPU) { c.mov(regM, regB) }},
	0x71: {"MOV", "M,C", Implied, func(c *CPU) { c.mov(regM, regC) }},
	0x72: {"MOV", "M,D", Implied, func(c *CPU) { c.mov(regM, regD) }},
	0x73: {"MOV", "M,E", Implied, func(c *CPU) { c.mov(regM, regE) }},
	0x74: {"MOV", "M,H", Implied, func(c *CPU) { c.mov(regM, regH) }},
	0x75: {"MOV", "M,L", Implied, func(c *CPU) { c.mov(regM, regL) }},
	0x76: {"HLT", "", Implied, func(c *CPU) { c.hlt() }},
	0x77: {"MOV", "M,A", Implied, func(c *CPU) { c.mov(regM, regA) }},
	0x78: {"MOV", "A,B", Implied, func(c *CPU) { c.mov(regA, regB) }},
	0x79: {"MOV", "A,C", Implied, func(c *CPU) { c.mov(regA, regC) }},
	0x7A: {"MOV", "A,D", Implied, func(c *CPU) { c.mov(regA, regD) }},
	0x7B: {"MOV", "A,E", Implied, func(c *CPU) { c.mov(regA, regE) }},
	0x7C: {"MOV", "A,H", Implied, func(c *CPU) { c.mov(regA, regH) }},
	0x7D: {"MOV", "A,L", Implied, func(c *CPU) { c.mov(regA, regL) }},
	0x7E: {"MOV", "A,M", Implied, func(c *CPU) { c.mov(regA, regM) }},
	0x7F: {"MOV", "A,A", Implied, func(c *CPU) { c.mov(regA, regA) }},
	0x80: {"ADD", "B", Implied, func(c *CPU) { c.add(c.get(regB)) }},
	0x81: {"ADD", "C", Implied, func(c *CPU) { c.add(c.get(regC)) }},
	0x82: {"ADD", "D", Implied, func(c *CPU) { c.add(c.get(regD)) }},
	0x83: {"ADD", "E", Implied, func(c *CPU) { c.add(c.get(regE)) }},
	0x84: {"ADD", "H", Implied, func(c *CPU) { c.add(c.get(regH)) }},
	0x85: {"ADD", "L", Implied, func(c *CPU) { c.add(c.get(regL)) }},
	0x86: {"ADD", "M", Implied, func(c *CPU) { c.add(c.get(regM)) }},
	0x87: {"ADD", "A", Implied, func(c *CPU) { c.add(c.get(regA)) }},
	0x88: {"ADC", "B", Implied, func(c *CPU) { c.adc(c.get(regB)) }},
	0x89: {"ADC", "C", Implied, func(c *CPU) { c.adc(c.get(regC)) }},
	0x8A: {"ADC", "D", Implied, func(c *CPU) { c.adc(c.get(regD)) }},
	0x8B: {"ADC", "E", Implied, func(c *CPU) { c.adc(c.get(regE)) }},
	0x8C: {"ADC", "H", Implied, func(c *CPU) { c.adc(c.get(regH)) }},
	0x8D: {"ADC", "L", Implied, func(c *CPU) { c.adc(c.get(regL)) }},
	0x8E: {"ADC", "M", Implied, func(c *CPU) { c.adc(c.get(regM)) }},
	0x8F: {"ADC", "A", Implied, func(c *CPU) { c.adc(c.get(regA)) }},
	0x90: {"SUB", "B", Implied, func(c *CPU) { c.sub(c.get(regB)) }},
	0x91: {"SUB", "C", Implied, func(c *CPU) { c.sub(c.get(regC)) }},
	0x92: {"SUB", "D", Implied, func(c *CPU) { c.sub(c.get(regD)) }},
	0x93: {"SUB", "E", Implied, func(c *CPU) { c.sub(c.get(regE)) }},
	0x94: {"SUB", "H", Implied, func(c *CPU) { c.sub(c.get(regH)) }},
	0x95: {"SUB", "L", Implied, func(c *CPU) { c.sub(c.get(regL)) }},
	0x96: {"SUB", "M", Implied, func(c *CPU) { c.sub(c.get(regM)) }},
	0x97: {"SUB", "A", Implied, func(c *CPU) { c.sub(c.get(regA)) }},
	0x98: {"SBB", "B", Implied, func(c *CPU) { c.sbb(c.get(regB)) }},
	0x99: {"SBB", "C", Implied, func(c *CPU) { c.sbb(c.get(regC)) }},
	0x9A: {"SBB", "D", Implied, func(c *CPU) { c.sbb(c.get(regD)) }},
	0x9B: {"SBB", "E", Implied, func(c *CPU) { c.sbb(c.get(regE)) }},
	0x9C: {"SBB", "H", Implied, func(c *CPU) { c.sbb(c.get(regH)) }},
	0x9D: {"SBB", "L", Implied, func(c *CPU) { c.sbb(c.get(regL)) }},
	0x9E: {"SBB", "M", Implied, func(c *CPU) { c.sbb(c.get(regM)) }},
	0x9F: {"SBB", "A", Implied, func(c *CPU) { c.sbb(c.get(regA)) }},
	0xA0: {"ANA", "B", Implied, func(c *CPU) { c.ana(c.get(regB)) }},
	0xA1: {"ANA", "C", Implied, func(c *CPU) { c.ana(c.get(regC)) }},
	0xA2: {"ANA", "D", Implied, func(c *CPU) { c.ana(c.get(regD)) }},
	0xA3: {"ANA", "E", Implied, func(c *CPU) { c.ana(c.get(regE)) }},
	0xA4: {"ANA", "H", Implied, func(c *CPU) { c.ana(c.get(regH)) }},
	0xA5: {"ANA", "L", Implied, func(c *CPU) { c.ana(c.get(regL)) }},
	0xA6: {"ANA", "M", Implied, func(c *CPU) { c.ana(c.get(regM)) }},
	0xA7: {"ANA", "A", Implied, func(c *CPU) { c.ana(c.get(regA)) }},
	0xA8: {"XRA", "B", Implied, func(c *CPU) { c.xra(c.get(regB)) }},
	0xA9: {"XRA", "C", Implied, func(c *CPU) { c.xra(c.get(regC)) }},
	0xAA: {"XRA", "D", Implied, func(c *CPU) { c.xra(c.get(regD)) }},
	0xAB: {"XRA", "E", Implied, func(c *CPU) { c.xra(c.get(regE)) }},
	0xAC: {"XRA", "H", Implied, func(c *CPU) { c.xra(c.get(regH)) }},
	0xAD: {"XRA", "L", Implied, func(c *CPU) { c.xra(c.get(regL)) }},
	0xAE: {"XRA", "M", Implied, func(c *CPU) { c.xra(c.get(regM)) }},
	0xAF: {"XRA", "A", Implied, func(c *CPU) { c.xra(c.get(regA)) }},
	0xB0: {"ORA", "B", Implied, func(c *CPU) { c.ora(c.get(regB)) }},
	0xB1: {"ORA", "C", Implied, func(c *CPU) { c.ora(c.get(regC)) }},
	0xB2: {"ORA", "D", Implied, func(c *CPU) { c.ora(c.get(regD)) }},
	0xB3: {"ORA", "E", Implied, func(c *CPU) { c.ora(c.get(regE)) }},
	0xB4: {"ORA", "H", Implied, func(c *CPU) { c.ora(c.get(regH)) }},
	0xB5: {"ORA", "L", Implied, func(c *CPU) { c.ora(c.get(regL)) }},
	0xB6: {"ORA", "M", Implied, func(c *CPU) { c.ora(c.get(regM)) }},
	0xB7: {"ORA", "A", Implied, func(c *CPU) { c.ora(c.get(regA)) }},
	0xB8: {"CMP", "B", Implied, func(c *CPU) { c.cmp(c.get(regB)) }},
	0xB9: {"CMP", "C", Implied, func(c *CPU) { c.cmp(c.get(regC)) }},
	0xBA: {"CMP", "D", Implied, func(c *CPU) { c.cmp(c.get(regD)) }},
	0xBB: {"CMP", "E", Implied, func(c *CPU) { c.cmp(c.get(regE)) }},
	0xBC: {"CMP", "H", Implied, func(c *CPU) { c.cmp(c.get(regH)) }},
	0xBD: {"CMP", "L", Implied, func(c *CPU) { c.cmp(c.get(regL)) }},
	0xBE: {"CMP", "M", Implied, func(c *CPU) { c.cmp(c.get(regM)) }},
	0xBF: {"CMP", "A", Implied, func(c *CPU) { c.cmp(c.get(regA)) }},
	0xC0: {"RNZ", "", Implied, func(c *CPU) { c.conditionalRet(condNZ) }},
	0xC1: {"POP", "B", Implied, func(c *CPU) { c.popPair(pairBC) }},
	0xC2: {"JNZ", "", Absolute, func(c *CPU) { c.conditionalJump(condNZ) }},
	0xC3: {"JMP", "", Absolute, func(c *CPU) { c.jump() }},
	0xC4: {"CNZ", "", Absolute, func(c *CPU) { c.conditionalCall(condNZ) }},
	0xC5: {"PUSH", "B", Implied, func(c *CPU) { c.pushPair(pairBC) }},
	0xC6: {"ADI", "", Immediate, func(c *CPU) { c.add(c.fetchByte()) }},
	0xC7: {"RST", "0", Implied, func(c *CPU) { c.rst(0) }},
	0xC8: {"RZ", "", Implied, func(c *CPU) { c.conditionalRet(condZ) }},
	0xC9: {"RET", "", Implied, func(c *CPU) { c.ret() }},
	0xCA: {"JZ", "", Absolute, func(c *CPU) { c.conditionalJump(condZ) }},
	0xCB: {Mnemonic: "DB"},
	0xCC: {"CZ", "", Absolute, func(c *CPU) { c.conditionalCall(condZ) }},
	0xCD: {"CALL", "", Absolute, func(c *CPU) { c.call() }},
	0xCE: {"ACI", "", Immediate, func(c *CPU) { c.adc(c.fetchByte()) }},
	0xCF: {"RST", "1", Implied, func(c *CPU) { c.rst(1) }},
	0xD0: {"RNC", "", Implied, func(c *CPU) { c.conditionalRet(condNC) }},
	0xD1: {"POP", "D", Implied, func(c *CPU) { c.popPair(pairDE) }},
	0xD2: {"JNC", "", Absolute, func(c *CPU) { c.conditionalJump(condNC) }},
	0xD3: {"OUT", "", Immediate, func(c *CPU) { c.out() }},
	0xD4: {"CNC", "", Absolute, func(c *CPU) { c.conditionalCall(condNC) }},
	0xD5: {"PUSH", "D", Implied, func(c *CPU) { c.pushPair(pairDE) }},
	0xD6: {"SUI", "", Immediate, func(c *CPU) { c.sub(c.fetchByte()) }},
	0xD7: {"RST", "2", Implied, func(c *CPU) { c.rst(2) }},
	0xD8: {"RC", "", Implied, func(c *CPU) { c.conditionalRet(condC) }},
	0xD9: {Mnemonic: "DB"},
	0xDA: {"JC", "", Absolute, func(c *CPU) { c.conditionalJump(condC) }},
	0xDB: {"IN", "", Immediate, func(c *CPU) { c.in() }},
	0xDC: {"CC", "", Absolute, func(c *CPU) { c.conditionalCall(condC) }},
	0xDD: {Mnemonic: "DB"},
	0xDE: {"SBI", "", Immediate, func(c *CPU) { c.sbb(c.fetchByte()) }},
	0xDF: {"RST", "3", Implied, func(c *CPU) { c.rst(3) }},
	0xE0: {"RPO", "", Implied, func(c *CPU) { c.conditionalRet(condPO) }},
	0xE1: {"POP", "H", Implied, func(c *CPU) { c.popPair(pairHL) }},
	0xE2: {"JPO", "", Absolute, func(c *CPU) { c.conditionalJump(condPO) }},
	0xE3: {"XTHL", "", Implied, func(c *CPU) { c.xthl() }},
	0xE4: {"CPO", "", Absolute, func(c *CPU) { c.conditionalCall(condPO) }},
	0xE5: {"PUSH", "H", Implied, func(c *CPU) { c.pushPair(pairHL) }},
	0xE6: {"ANI", "", Immediate, func(c *CPU) { c.ana(c.fetchByte()) }},
	0xE7: {"RST", "4", Implied, func(c *CPU) { c.rst(4) }},
	0xE8: {"RPE", "", Implied, func(c *CPU) { c.conditionalRet(condPE) }},
	0xE9: {"PCHL", "", Implied, func(c *CPU) { c.pchl() }},
	0xEA: {"JPE", "", Absolute, func(c *CPU) { c.conditionalJump(condPE) }},
	0xEB: {"XCHG", "", Implied, func(c *CPU) { c.xchg() }},
	0xEC: {"CPE", "", Absolute, func(c *CPU) { c.conditionalCall(condPE) }},
	0xED: {Mnemonic: "DB"},
	0xEE: {"XRI", "", Immediate, func(c *CPU) { c.xra(c.fetchByte()) }},
	0xEF: {"RST", "5", Implied, func(c *CPU) { c.rst(5) }},
	0xF0: {"RP", "", Implied, func(c *CPU) { c.conditionalRet(condP) }},
	0xF1: {"POP", "PSW", Implied, func(c *CPU) { c.popPair(pairPSW) }},
	0xF2: {"JP", "", Absolute, func(c *CPU) { c.conditionalJump(condP) }},
	0xF3: {"DI", "", Implied, func(c *CPU) { c.intEnable = false }},
	0xF4: {"CP", "", Absolute, func(c *CPU) { c.conditionalCall(condP) }},
	0xF5: {"PUSH", "PSW", Implied, func(c *CPU) { c.pushPair(pairPSW) }},
	0xF6: {"ORI", "", Immediate, func(c *CPU) { c.ora(c.fetchByte()) }},
	0xF7: {"RST", "6", Implied, func(c *CPU) { c.rst(6) }},
	0xF8: {"RM", "", Implied, func(c *CPU) { c.conditionalRet(condM) }},
	0xF9: {"SPHL", "", Implied, func(c *CPU) { c.sphl() }},
	0xFA: {"JM", "", Absolute, func(c *CPU) { c.conditionalJump(condM) }},
	0xFB: {"EI", "", Implied, func(c *CPU) { c.intEnable = true }},
	0xFC: {"CM", "", Absolute, func(c *CPU) { c.conditionalCall(condM) }},
	0xFD: {Mnemonic: "DB"},
	0xFE: {"CPI", "", Immediate, func(c *CPU) { c.cmp(c.fetchByte()) }},
	0xFF: {"RST", "7", Implied, func(c *CPU) { c.rst(7) }},
}
