package i8080

import "github.com/retroenv/retrogolib/log"

func (c *CPU) mov(dst, src register) {
	c.set(dst, c.get(src))
}

func (c *CPU) mvi(dst register) {
	c.set(dst, c.fetchByte())
}

func (c *CPU) lxi(p pair) {
	c.setPair(p, c.fetchWord())
}

func (c *CPU) stax(p pair) {
	c.mem.Write(c.getPair(p), c.reg.A)
}

func (c *CPU) ldax(p pair) {
	c.reg.A = c.mem.Read(c.getPair(p))
}

func (c *CPU) sta() {
	c.mem.Write(c.fetchWord(), c.reg.A)
}

func (c *CPU) lda() {
	c.reg.A = c.mem.Read(c.fetchWord())
}

// shld stores L at the operand address and H at the address after it.
func (c *CPU) shld() {
	c.mem.WriteWord(c.fetchWord(), c.reg.HL())
}

func (c *CPU) lhld() {
	c.reg.SetHL(c.mem.ReadWord(c.fetchWord()))
}

func (c *CPU) xchg() {
	c.reg.H, c.reg.D = c.reg.D, c.reg.H
	c.reg.L, c.reg.E = c.reg.E, c.reg.L
}

// xthl swaps HL with the word on top of the stack.
func (c *CPU) xthl() {
	top := c.mem.ReadWord(c.sp)
	c.mem.WriteWord(c.sp, c.reg.HL())
	c.reg.SetHL(top)
}

func (c *CPU) sphl() {
	c.sp = c.reg.HL()
}

func (c *CPU) pushPair(p pair) {
	c.push(c.getPair(p))
}

func (c *CPU) popPair(p pair) {
	c.setPair(p, c.pop())
}

func (c *CPU) incPair(p pair) {
	c.setPair(p, Pair(inx(Split(c.getPair(p)))))
}

func (c *CPU) decPair(p pair) {
	c.setPair(p, Pair(dcx(Split(c.getPair(p)))))
}

func (c *CPU) incRegister(r register) {
	c.set(r, c.inr(c.get(r)))
}

func (c *CPU) decRegister(r register) {
	c.set(r, c.dcr(c.get(r)))
}

// in consumes the port number. No devices are attached, A keeps its value.
func (c *CPU) in() {
	port := c.fetchByte()
	c.logger.Debug("IN from unattached port", log.Hex("port", port))
}

// out consumes the port number and discards the value.
func (c *CPU) out() {
	port := c.fetchByte()
	c.logger.Debug("OUT to unattached port",
		log.Hex("port", port),
		log.Hex("value", c.reg.A))
}

func (c *CPU) hlt() {
	c.halted = true
}
