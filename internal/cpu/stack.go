package cpu

// push16 stores the high byte at SP-1 and the low byte at SP-2.
func (c *CPU) push16(v uint16) {
	c.SP--
	c.write8(c.SP, highByte(v))
	c.SP--
	c.write8(c.SP, lowByte(v))
}

func (c *CPU) pop16() uint16 {
	lo := c.read8(c.SP)
	c.SP++
	hi := c.read8(c.SP)
	c.SP++
	return build16(hi, lo)
}

func (c *CPU) push(rr reg16) { c.push16(c.load16(rr)) }
func (c *CPU) pop(rr reg16) { c.store16(rr, c.pop16()) }
