package i8080

// ana ands into A. AC takes the OR of bit 3 of both operands.
func (c *CPU) ana(val uint8) {
	c.flags.AC = (c.reg.A|val)&0x08 != 0
	c.reg.A &= val
	c.logicFlags()
}

func (c *CPU) xra(val uint8) {
	c.reg.A ^= val
	c.flags.AC = false
	c.logicFlags()
}

func (c *CPU) ora(val uint8) {
	c.reg.A |= val
	c.flags.AC = false
	c.logicFlags()
}

func (c *CPU) logicFlags() {
	c.flags.setZSP(c.reg.A)
	c.flags.CY = false
}

func (c *CPU) rlc() {
	c.flags.CY = c.reg.A&0x80 != 0
	c.reg.A = c.reg.A<<1 | c.reg.A>>7
}

func (c *CPU) rrc() {
	c.flags.CY = c.reg.A&0x01 != 0
	c.reg.A = c.reg.A>>1 | c.reg.A<<7
}

// ral rotates left through carry: the old carry enters bit 0.
func (c *CPU) ral() {
	in := uint8(carryIn(c.flags.CY))
	c.flags.CY = c.reg.A&0x80 != 0
	c.reg.A = c.reg.A<<1 | in
}

// rar rotates right through carry: the old carry enters bit 7.
func (c *CPU) rar() {
	in := uint8(carryIn(c.flags.CY))
	c.flags.CY = c.reg.A&0x01 != 0
	c.reg.A = c.reg.A>>1 | in<<7
}

func (c *CPU) cma() {
	c.reg.A = ^c.reg.A
}

func (c *CPU) stc() {
	c.flags.CY = true
}

func (c *CPU) cmc() {
	c.flags.CY = !c.flags.CY
}
