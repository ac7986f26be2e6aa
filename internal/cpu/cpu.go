package cpu

// Bus is the memory/IO space the CPU reads and writes through. Address
// 0xFFFF reflects the interrupt-enable bit toggled by EnableInterrupts and
// DisableInterrupts.
type Bus interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
	EnableInterrupts()
	DisableInterrupts()
}

// CPU is the SM83 execution engine. It owns the register file and borrows the
// bus for every access; it never touches the bus outside Step.
type CPU struct {
	Registers

	bus    Bus
	cycles uint64

	halted  bool
	stopped bool

	// set by the unimplemented-opcode handler, consumed by Step
	fault *OpcodeError
}

// New creates a CPU with SP at the top of HRAM and PC at 0.
func New(b Bus) *CPU {
	c := &CPU{bus: b}
	c.SP = 0xFFFE
	return c
}

// SetPC allows tests or a boot stub to set the program counter.
func (c *CPU) SetPC(pc uint16) { c.PC = pc }

// Bus exposes the underlying bus for tests/tools.
func (c *CPU) Bus() Bus { return c.bus }

// Cycles returns the total M-cycles executed since power-on.
func (c *CPU) Cycles() uint64 { return c.cycles }

// Halted reports whether HALT has been executed and not yet resumed.
func (c *CPU) Halted() bool { return c.halted }

// Stopped reports whether STOP has been executed and not yet resumed.
func (c *CPU) Stopped() bool { return c.stopped }

// Resume leaves the halted/stopped state.
func (c *CPU) Resume() { c.halted, c.stopped = false, false }

// ResetNoBoot sets registers to typical DMG post-boot state.
// Useful when running without a boot ROM.
func (c *CPU) ResetNoBoot() {
	c.A, c.F = 0x01, FlagsFromByte(0xB0)
	c.SetBC(0x0013)
	c.SetDE(0x00D8)
	c.SetHL(0x014D)
	c.SP = 0xFFFE
	c.halted = false
	c.stopped = false
}

// Step executes exactly one instruction, including operand fetches, and
// returns the M-cycles it took. A halted or stopped CPU idles for one cycle.
//
// If the opcode has no implementation Step returns an *OpcodeError and leaves
// every register, including PC, as it was before the fetch.
func (c *CPU) Step() (int, error) {
	if c.halted || c.stopped {
		c.cycles++
		return 1, nil
	}
	pc := c.PC
	cycles := baseTable[c.fetch8()].Exec(c)
	if c.fault != nil {
		err := c.fault
		c.fault = nil
		err.PC = pc
		c.PC = pc
		return 0, err
	}
	c.cycles += uint64(cycles)
	return cycles, nil
}

// Tick is Step without the cycle count; the count stays visible via Cycles.
func (c *CPU) Tick() error {
	_, err := c.Step()
	return err
}

// Peek returns the mnemonic of the instruction at PC without executing it.
func (c *CPU) Peek() string {
	op := c.read8(c.PC)
	if op == 0xCB {
		return prefixedTable[c.read8(c.PC+1)].Name
	}
	return baseTable[op].Name
}

func (c *CPU) read8(addr uint16) byte { return c.bus.Read(addr) }
func (c *CPU) write8(addr uint16, v byte) { c.bus.Write(addr, v) }

// fetch8 reads the byte at PC and advances PC, wrapping at 0xFFFF.
func (c *CPU) fetch8() byte {
	b := c.read8(c.PC)
	c.PC++
	return b
}

// fetch16 reads a little-endian immediate.
func (c *CPU) fetch16() uint16 {
	lo := c.fetch8()
	hi := c.fetch8()
	return build16(hi, lo)
}

func (c *CPU) write16(addr uint16, v uint16) {
	c.write8(addr, lowByte(v))
	c.write8(addr+1, highByte(v))
}
