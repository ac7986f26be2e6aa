package cpu

// cond is a branch condition in opcode encoding order (bits 4-3).
type cond byte

const (
	condNZ cond = iota
	condZ
	condNC
	condC
)

var condNames = [4]string{"NZ", "Z", "NC", "C"}

func (cc cond) String() string { return condNames[cc&3] }

func (c *CPU) check(cc cond) bool {
	switch cc {
	case condNZ:
		return !c.F.Zero
	case condZ:
		return c.F.Zero
	case condNC:
		return !c.F.Carry
	default:
		return c.F.Carry
	}
}

// jr reads the signed offset and applies it relative to the PC after the operand.
func (c *CPU) jr() {
	off := int8(c.fetch8())
	c.PC += uint16(off)
}

// jrIf always consumes the offset. 3 cycles taken, 2 not taken.
func (c *CPU) jrIf(cc cond) int {
	off := int8(c.fetch8())
	if !c.check(cc) {
		return 2
	}
	c.PC += uint16(off)
	return 3
}

func (c *CPU) jp() { c.PC = c.fetch16() }

// jpIf always consumes the 2-byte address. 4 cycles taken, 3 not taken.
func (c *CPU) jpIf(cc cond) int {
	addr := c.fetch16()
	if !c.check(cc) {
		return 3
	}
	c.PC = addr
	return 4
}

func (c *CPU) jpHL() { c.PC = c.HL() }

// call pushes the address of the instruction after the operand.
func (c *CPU) call() {
	addr := c.fetch16()
	c.push16(c.PC)
	c.PC = addr
}

// callIf: 6 cycles taken, 3 not taken.
func (c *CPU) callIf(cc cond) int {
	addr := c.fetch16()
	if !c.check(cc) {
		return 3
	}
	c.push16(c.PC)
	c.PC = addr
	return 6
}

func (c *CPU) ret() { c.PC = c.pop16() }

// retIf: 5 cycles taken, 2 not taken.
func (c *CPU) retIf(cc cond) int {
	if !c.check(cc) {
		return 2
	}
	c.PC = c.pop16()
	return 5
}

func (c *CPU) reti() {
	c.PC = c.pop16()
	c.bus.EnableInterrupts()
}

func (c *CPU) rst(target uint16) {
	c.push16(c.PC)
	c.PC = target
}
