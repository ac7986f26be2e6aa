package cpu

// State is a snapshot of everything Step reads besides the bus.
type State struct {
	Registers
	Cycles  uint64
	Halted  bool
	Stopped bool
}

func (c *CPU) SaveState() State {
	return State{Registers: c.Registers, Cycles: c.cycles, Halted: c.halted, Stopped: c.stopped}
}

func (c *CPU) LoadState(s State) {
	c.Registers = s.Registers
	c.cycles = s.Cycles
	c.halted, c.stopped = s.Halted, s.Stopped
	c.fault = nil
}
