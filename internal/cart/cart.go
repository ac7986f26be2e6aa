package cart

import (
	"os"

	"github.com/pkg/errors"
)

// Cartridge is what the bus needs from a cartridge. Addresses are CPU
// addresses: ROM (0x0000–0x7FFF) and external RAM (0xA000–0xBFFF).
type Cartridge interface {
	Read(addr uint16) byte
	Write(addr uint16, value byte)
}

// NewCartridge returns the cartridge for a ROM image. Bank switching is not
// emulated, so every header type gets the fixed ROM-only view of the first 32KB.
func NewCartridge(rom []byte) Cartridge { return NewROMOnly(rom) }

// Load reads the whole cartridge file into memory.
func Load(path string) ([]byte, error) {
	rom, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read cartridge %s", path)
	}
	if len(rom) == 0 {
		return nil, errors.Errorf("cartridge %s is empty", path)
	}
	return rom, nil
}
