package i8080

// condition is one of the eight branch conditions in opcode encoding order.
type condition uint8

const (
	condNZ condition = iota
	condZ
	condNC
	condC
	condPO
	condPE
	condP
	condM
)

var conditionNames = [...]string{"NZ", "Z", "NC", "C", "PO", "PE", "P", "M"}

func (cc condition) String() string {
	return conditionNames[cc]
}

func (c *CPU) check(cc condition) bool {
	switch cc {
	case condNZ:
		return !c.flags.Z
	case condZ:
		return c.flags.Z
	case condNC:
		return !c.flags.CY
	case condC:
		return c.flags.CY
	case condPO:
		return !c.flags.P
	case condPE:
		return c.flags.P
	case condP:
		return !c.flags.S
	default:
		return c.flags.S
	}
}

// push stores a word below SP, high byte first, and moves SP down by two.
func (c *CPU) push(val uint16) {
	high, low := Split(val)
	c.mem.Write(c.sp-1, high)
	c.mem.Write(c.sp-2, low)
	c.sp -= 2
}

func (c *CPU) pop() uint16 {
	val := c.mem.ReadWord(c.sp)
	c.sp += 2
	return val
}

func (c *CPU) jump() {
	c.pc = c.fetchWord()
}

// conditionalJump skips the address operand without reading it when the
// condition does not hold.
func (c *CPU) conditionalJump(cc condition) {
	if c.check(cc) {
		c.jump()
		return
	}
	c.pc += 2
}

// call pushes the address of the instruction following the CALL.
func (c *CPU) call() {
	c.push(c.pc + 2)
	c.jump()
}

func (c *CPU) conditionalCall(cc condition) {
	if c.check(cc) {
		c.call()
		return
	}
	c.pc += 2
}

func (c *CPU) ret() {
	c.pc = c.pop()
}

func (c *CPU) conditionalRet(cc condition) {
	if c.check(cc) {
		c.ret()
	}
}

// rst calls the fixed vector n*8.
func (c *CPU) rst(n uint8) {
	c.push(c.pc)
	c.pc = uint16(n) * 8
}

func (c *CPU) pchl() {
	c.pc = c.reg.HL()
}
