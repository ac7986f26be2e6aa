package emu

import (
	"fmt"
	"io"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/cpu"
)

// writeTrace prints one executed instruction with the register file after it.
func writeTrace(w io.Writer, pc uint16, op byte, cyc int, name string, c *cpu.CPU, ie bool) {
	fmt.Fprintf(w, "PC=%04X OP=%02X cyc=%d A=%02X F=%02X B=%02X C=%02X D=%02X E=%02X H=%02X L=%02X SP=%04X IE=%t %s\n",
		pc, op, cyc, c.A, c.F.Byte(), c.B, c.C, c.D, c.E, c.H, c.L, c.SP, ie, name)
}
