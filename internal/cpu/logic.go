package cpu

// AND sets H; OR and XOR clear it. N and C always clear.

func (c *CPU) andA(v byte) {
	c.A &= v
	c.F.set(c.A == 0, false, true, false)
}

func (c *CPU) xorA(v byte) {
	c.A ^= v
	c.F.set(c.A == 0, false, false, false)
}

func (c *CPU) orA(v byte) {
	c.A |= v
	c.F.set(c.A == 0, false, false, false)
}

// Accumulator rotates (RLCA, RRCA, RLA, RRA) always clear Z, unlike their
// CB-prefixed counterparts.

func (c *CPU) rlca() { c.A = c.rlc(c.A); c.F.Zero = false }
func (c *CPU) rrca() { c.A = c.rrc(c.A); c.F.Zero = false }
func (c *CPU) rla() { c.A = c.rl(c.A); c.F.Zero = false }
func (c *CPU) rra() { c.A = c.rr(c.A); c.F.Zero = false }

// cpl leaves Z and C untouched.
func (c *CPU) cpl() {
	c.A = ^c.A
	c.F.Subtract = true
	c.F.HalfCarry = true
}

func (c *CPU) scf() {
	c.F.Subtract, c.F.HalfCarry = false, false
	c.F.Carry = true
}

func (c *CPU) ccf() {
	c.F.Subtract, c.F.HalfCarry = false, false
	c.F.Carry = !c.F.Carry
}

// Rotate/shift primitives for the 0xCB space. Each sets Z from the result,
// clears N and H, and puts the bit shifted out into C.

func (c *CPU) rlc(v byte) byte {
	out := v >> 7
	res := v<<1 | out
	c.F.set(res == 0, false, false, out == 1)
	return res
}

func (c *CPU) rrc(v byte) byte {
	out := v & 1
	res := v>>1 | out<<7
	c.F.set(res == 0, false, false, out == 1)
	return res
}

func (c *CPU) rl(v byte) byte {
	out := v >> 7
	res := v<<1 | c.carryIn()
	c.F.set(res == 0, false, false, out == 1)
	return res
}

func (c *CPU) rr(v byte) byte {
	out := v & 1
	res := v>>1 | c.carryIn()<<7
	c.F.set(res == 0, false, false, out == 1)
	return res
}

func (c *CPU) sla(v byte) byte {
	out := v >> 7
	res := v << 1
	c.F.set(res == 0, false, false, out == 1)
	return res
}

// sra keeps bit 7.
func (c *CPU) sra(v byte) byte {
	out := v & 1
	res := v>>1 | v&0x80
	c.F.set(res == 0, false, false, out == 1)
	return res
}

func (c *CPU) swap(v byte) byte {
	res := v<<4 | v>>4
	c.F.set(res == 0, false, false, false)
	return res
}

func (c *CPU) srl(v byte) byte {
	out := v & 1
	res := v >> 1
	c.F.set(res == 0, false, false, out == 1)
	return res
}

// bit tests bit n of v: Z set if the bit is clear, N clear, H set, C kept.
func (c *CPU) bit(n uint, v byte) {
	c.F.Zero = v&(1<<n) == 0
	c.F.Subtract = false
	c.F.HalfCarry = true
}
