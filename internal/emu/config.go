package emu

import (
	"io"
	"os"
)

// Config contains settings that affect how the machine is driven.
type Config struct {
	Trace    bool      // log CPU instructions
	TraceOut io.Writer // trace destination
	MaxSteps int       // step limit used when Run gets maxSteps <= 0; 0 means unlimited
	StartPC  uint16    // PC after the post-boot reset; 0 means 0x0100
}

// Defaults fills missing fields with reasonable defaults.
func (c *Config) Defaults() {
	if c.TraceOut == nil {
		c.TraceOut = os.Stdout
	}
	if c.StartPC == 0 {
		c.StartPC = 0x0100
	}
}
