package emu

import "fmt"

// Status is a printable view of the CPU between instructions.
type Status struct {
	AF, BC, DE, HL uint16
	SP, PC         uint16
	Flags          string // "ZNHC" with '-' for clear bits
	IE             bool
	Cycles         uint64
	Next           string // mnemonic at PC
	State          string // running, halted or stopped
}

func (m *Machine) Status() Status {
	c := m.cpu
	flags := []byte("----")
	for i, on := range []bool{c.F.Zero, c.F.Subtract, c.F.HalfCarry, c.F.Carry} {
		if on {
			flags[i] = "ZNHC"[i]
		}
	}
	state := "running"
	switch {
	case c.Halted():
		state = "halted"
	case c.Stopped():
		state = "stopped"
	}
	return Status{
		AF: c.AF(), BC: c.BC(), DE: c.DE(), HL: c.HL(),
		SP: c.SP, PC: c.PC,
		Flags:  string(flags),
		IE:     m.bus.InterruptsEnabled(),
		Cycles: c.Cycles(),
		Next:   c.Peek(),
		State:  state,
	}
}

// Lines renders the status as short lines for a debug overlay or terminal.
func (s Status) Lines() []string {
	ie := 0
	if s.IE {
		ie = 1
	}
	return []string{
		fmt.Sprintf("AF=%04X BC=%04X", s.AF, s.BC),
		fmt.Sprintf("DE=%04X HL=%04X", s.DE, s.HL),
		fmt.Sprintf("SP=%04X PC=%04X", s.SP, s.PC),
		fmt.Sprintf("F=%s IE=%d", s.Flags, ie),
		fmt.Sprintf("CYC=%d", s.Cycles),
		fmt.Sprintf("NEXT %s", s.Next),
		fmt.Sprintf("STATE %s", s.State),
	}
}
