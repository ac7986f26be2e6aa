package cpu

// inc8 increments v; half-carry is taken from the value before the increment.
// Carry is left alone.
func (c *CPU) inc8(v byte) byte {
	res := v + 1
	c.F.Zero = res == 0
	c.F.Subtract = false
	c.F.HalfCarry = v&0x0F == 0x0F
	return res
}

func (c *CPU) dec8(v byte) byte {
	res := v - 1
	c.F.Zero = res == 0
	c.F.Subtract = true
	c.F.HalfCarry = v&0x0F == 0x00
	return res
}

// incReg and decReg are read-modify-write, so (HL) works through the bus.
func (c *CPU) incReg(r reg8) { c.store8(r, c.inc8(c.load8(r))) }
func (c *CPU) decReg(r reg8) { c.store8(r, c.dec8(c.load8(r))) }

// 16-bit INC/DEC wrap and never touch flags.
func (c *CPU) incPair(rr reg16) { c.store16(rr, c.load16(rr)+1) }
func (c *CPU) decPair(rr reg16) { c.store16(rr, c.load16(rr)-1) }

func (c *CPU) carryIn() byte { return boolBit(c.F.Carry) }

func (c *CPU) adc(v, carry byte) {
	a := c.A
	res := a + v + carry
	c.F.set(res == 0, false, halfCarryAdc8(a, v, carry), carryAdc8(a, v, carry))
	c.A = res
}

func (c *CPU) sbc(v, borrow byte) {
	a := c.A
	res := a - v - borrow
	c.F.set(res == 0, true, halfCarrySbc8(a, v, borrow), carrySbc8(a, v, borrow))
	c.A = res
}

// ALU entry points share the func(*CPU, byte) shape used by the dispatch tables.

func (c *CPU) addA(v byte) { c.adc(v, 0) }
func (c *CPU) adcA(v byte) { c.adc(v, c.carryIn()) }
func (c *CPU) subA(v byte) { c.sbc(v, 0) }
func (c *CPU) sbcA(v byte) { c.sbc(v, c.carryIn()) }

// cpA is SUB with the result discarded.
func (c *CPU) cpA(v byte) {
	c.F.set(c.A == v, true, halfCarrySub8(c.A, v), carrySub8(c.A, v))
}

// addHL leaves Z untouched.
func (c *CPU) addHL(v uint16) {
	hl := c.HL()
	c.F.Subtract = false
	c.F.HalfCarry = halfCarryAdd16(hl, v)
	c.F.Carry = carryAdd16(hl, v)
	c.SetHL(hl + v)
}

// spOffset computes SP+e for ADD SP,e and LD HL,SP+e. H and C come from the
// unsigned add of the low byte of SP and the raw offset byte; Z and N clear.
func (c *CPU) spOffset() uint16 {
	e := c.fetch8()
	sp := c.SP
	c.F.set(false, false, halfCarryAdd8(lowByte(sp), e), carryAdd8(lowByte(sp), e))
	return sp + uint16(int8(e))
}

// daa corrects A after a BCD add or subtract using N, H and C as left by the
// previous instruction.
func (c *CPU) daa() {
	a := c.A
	carry := c.F.Carry
	if !c.F.Subtract {
		if carry || a > 0x99 {
			a += 0x60
			carry = true
		}
		if c.F.HalfCarry || a&0x0F > 0x09 {
			a += 0x06
		}
	} else {
		if carry {
			a -= 0x60
		}
		if c.F.HalfCarry {
			a -= 0x06
		}
	}
	c.A = a
	c.F.Zero = a == 0
	c.F.HalfCarry = false
	c.F.Carry = carry
}
