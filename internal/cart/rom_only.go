package cart

// ROMOnly implements a simple cartridge without MBC or external RAM.
type ROMOnly struct {
	rom []byte
}

func NewROMOnly(rom []byte) *ROMOnly {
	return &ROMOnly{rom: rom}
}

// Read returns ROM bytes; anything past the image or in the external RAM
// window reads as 0.
func (c *ROMOnly) Read(addr uint16) byte {
	if addr < 0x8000 && int(addr) < len(c.rom) {
		return c.rom[addr]
	}
	return 0
}

// Write is ignored: ROM-only carts have no registers and no RAM.
func (c *ROMOnly) Write(addr uint16, value byte) {}
