package i8080

// get reads an 8 bit operand; M is the byte addressed by HL.
func (c *CPU) get(r register) uint8 {
	switch r {
	case regB:
		return c.reg.B
	case regC:
		return c.reg.C
	case regD:
		return c.reg.D
	case regE:
		return c.reg.E
	case regH:
		return c.reg.H
	case regL:
		return c.reg.L
	case regM:
		return c.mem.Read(c.reg.HL())
	default:
		return c.reg.A
	}
}

func (c *CPU) set(r register, val uint8) {
	switch r {
	case regB:
		c.reg.B = val
	case regC:
		c.reg.C = val
	case regD:
		c.reg.D = val
	case regE:
		c.reg.E = val
	case regH:
		c.reg.H = val
	case regL:
		c.reg.L = val
	case regM:
		c.mem.Write(c.reg.HL(), val)
	default:
		c.reg.A = val
	}
}

func (c *CPU) getPair(p pair) uint16 {
	switch p {
	case pairBC:
		return c.reg.BC()
	case pairDE:
		return c.reg.DE()
	case pairHL:
		return c.reg.HL()
	case pairSP:
		return c.sp
	default:
		return c.GetAF()
	}
}

func (c *CPU) setPair(p pair, val uint16) {
	switch p {
	case pairBC:
		c.reg.SetBC(val)
	case pairDE:
		c.reg.SetDE(val)
	case pairHL:
		c.reg.SetHL(val)
	case pairSP:
		c.sp = val
	default:
		a, psw := Split(val)
		c.reg.A = a
		c.flags.SetByte(psw)
	}
}

func carryIn(set bool) uint16 {
	if set {
		return 1
	}
	return 0
}

func (c *CPU) add(val uint8) {
	c.addCarry(val, 0)
}

func (c *CPU) adc(val uint8) {
	c.addCarry(val, carryIn(c.flags.CY))
}

func (c *CPU) addCarry(val uint8, cy uint16) {
	ans := uint16(c.reg.A) + uint16(val) + cy
	c.flags.update(ans)
	c.flags.AC = uint16(c.reg.A&0x0f)+uint16(val&0x0f)+cy > 0x0f
	c.reg.A = uint8(ans)
}

func (c *CPU) sub(val uint8) {
	c.reg.A = c.subBorrow(val, 0)
}

func (c *CPU) sbb(val uint8) {
	c.reg.A = c.subBorrow(val, carryIn(c.flags.CY))
}

func (c *CPU) cmp(val uint8) {
	c.subBorrow(val, 0)
}

// subBorrow computes A - val - borrow. The widened difference wraps above
// 0xff exactly when a borrow occurred, which is what CY reports. AC follows
// the two's complement addition the chip performs internally.
func (c *CPU) subBorrow(val uint8, borrow uint16) uint8 {
	ans := uint16(c.reg.A) - uint16(val) - borrow
	c.flags.update(ans)
	c.flags.AC = uint16(c.reg.A&0x0f)+uint16(^val&0x0f)+(1-borrow) > 0x0f
	return uint8(ans)
}

// dad adds a pair to HL. Only the carry flag is affected.
func (c *CPU) dad(val uint16) {
	ans := uint32(c.reg.HL()) + uint32(val)
	c.reg.SetHL(uint16(ans))
	c.flags.CY = ans > 0xffff
}

// inx increments a pair by carrying from the low into the high byte.
func inx(high, low uint8) (uint8, uint8) {
	low++
	if low == 0 {
		high++
	}
	return high, low
}

// dcx decrements a pair by borrowing from the high byte when the low byte
// wraps.
func dcx(high, low uint8) (uint8, uint8) {
	if low == 0 {
		high--
	}
	low--
	return high, low
}

func (c *CPU) inr(val uint8) uint8 {
	ans := uint16(val) + 1
	c.flags.update(ans)
	c.flags.AC = val&0x0f == 0x0f
	return uint8(ans)
}

// dcr decrements modulo 256; decrementing zero reports the flags of 0xff.
func (c *CPU) dcr(val uint8) uint8 {
	ans := (uint16(val) + 0xff) & 0xff
	c.flags.update(ans)
	c.flags.AC = val&0x0f != 0
	return uint8(ans)
}

func (c *CPU) daa() {
	cy := c.flags.CY
	lsb := c.reg.A & 0x0f
	msb := c.reg.A >> 4
	correction := uint8(0)

	if lsb > 9 || c.flags.AC {
		correction += 0x06
	}
	if cy || msb > 9 || (msb >= 9 && lsb > 9) {
		correction += 0x60
		cy = true
	}

	c.add(correction)
	c.flags.CY = cy
}
