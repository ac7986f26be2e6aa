package cpu

// highPage is the base of the LDH fast I/O page.
const highPage uint16 = 0xFF00

func (c *CPU) ld(dst, src reg8) { c.store8(dst, c.load8(src)) }

func (c *CPU) ldImm(dst reg8) { c.store8(dst, c.fetch8()) }

func (c *CPU) ldImm16(rr reg16) { c.store16(rr, c.fetch16()) }

// (BC)/(DE) <-> A

func (c *CPU) storeA(rr reg16) { c.write8(c.load16(rr), c.A) }
func (c *CPU) loadA(rr reg16) { c.A = c.read8(c.load16(rr)) }

// HL auto-increment/decrement forms. delta is +1 or -1 (as 0xFFFF).

func (c *CPU) storeAHL(delta uint16) {
	hl := c.HL()
	c.write8(hl, c.A)
	c.SetHL(hl + delta)
}

func (c *CPU) loadAHL(delta uint16) {
	hl := c.HL()
	c.A = c.read8(hl)
	c.SetHL(hl + delta)
}

func (c *CPU) ldhStore() { c.write8(highPage+uint16(c.fetch8()), c.A) }
func (c *CPU) ldhLoad() { c.A = c.read8(highPage + uint16(c.fetch8())) }
func (c *CPU) ldcStore() { c.write8(highPage+uint16(c.C), c.A) }
func (c *CPU) ldcLoad() { c.A = c.read8(highPage + uint16(c.C)) }

func (c *CPU) storeAAbs() { c.write8(c.fetch16(), c.A) }
func (c *CPU) loadAAbs() { c.A = c.read8(c.fetch16()) }

// storeSPAbs writes SP little-endian to the immediate address.
func (c *CPU) storeSPAbs() { c.write16(c.fetch16(), c.SP) }

func (c *CPU) ldSPHL() { c.SP = c.HL() }
func (c *CPU) ldHLSP() { c.SetHL(c.spOffset()) }
func (c *CPU) addSP() { c.SP = c.spOffset() }
