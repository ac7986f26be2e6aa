package bus

import "github.com/FabianRolfMatthiasNoll/gbcore/internal/cart"

// Region boundaries of the DMG address space.
const (
	vramStart = 0x8000
	vramEnd   = 0x9FFF
	extStart  = 0xA000
	extEnd    = 0xBFFF
	wramStart = 0xC000
	wramEnd   = 0xDFFF
	echoStart = 0xE000
	echoEnd   = 0xFDFF
	oamStart  = 0xFE00
	oamEnd    = 0xFE9F
	hramStart = 0xFF80
	hramEnd   = 0xFFFE

	// IE mirrors the interrupt-enable bit.
	IE = 0xFFFF
)

// Bus is the DMG system bus: cartridge ROM/RAM windows plus the internal
// memories. Peripheral registers are not mapped; unmapped reads return 0 and
// unmapped writes are dropped.
type Bus struct {
	cart cart.Cartridge

	vram [0x2000]byte // 8KB video RAM
	wram [0x2000]byte // 8KB internal RAM
	oam  [0xA0]byte
	hram [0x7F]byte

	interruptsEnabled bool
}

// New wires a bus to the given cartridge. A nil cartridge reads as empty.
func New(c cart.Cartridge) *Bus {
	if c == nil {
		c = cart.NewROMOnly(nil)
	}
	return &Bus{cart: c}
}

// NewFromROM is a convenience for tests and tools that only have ROM bytes.
func NewFromROM(rom []byte) *Bus { return New(cart.NewROMOnly(rom)) }

func (b *Bus) Read(addr uint16) byte {
	switch {
	case addr < vramStart: // ROM area
		return b.cart.Read(addr)
	case addr <= vramEnd:
		return b.vram[addr-vramStart]
	case addr <= extEnd:
		return b.cart.Read(addr)
	case addr <= wramEnd:
		return b.wram[addr-wramStart]
	case addr <= echoEnd: // mirrors C000–DDFF
		return b.wram[addr-echoStart]
	case addr <= oamEnd:
		return b.oam[addr-oamStart]
	case addr >= hramStart && addr <= hramEnd:
		return b.hram[addr-hramStart]
	case addr == IE:
		if b.interruptsEnabled {
			return 1
		}
		return 0
	default:
		return 0 // unmapped
	}
}

func (b *Bus) Write(addr uint16, value byte) {
	switch {
	case addr < vramStart:
		b.cart.Write(addr, value)
	case addr <= vramEnd:
		b.vram[addr-vramStart] = value
	case addr >= extStart && addr <= extEnd:
		b.cart.Write(addr, value)
	case addr <= wramEnd:
		b.wram[addr-wramStart] = value
	case addr <= echoEnd:
		b.wram[addr-echoStart] = value
	case addr <= oamEnd:
		b.oam[addr-oamStart] = value
	case addr >= hramStart && addr <= hramEnd:
		b.hram[addr-hramStart] = value
	case addr == IE:
		b.interruptsEnabled = value&1 != 0
	}
}

func (b *Bus) EnableInterrupts() { b.interruptsEnabled = true }
func (b *Bus) DisableInterrupts() { b.interruptsEnabled = false }

// InterruptsEnabled reports the IE bit.
func (b *Bus) InterruptsEnabled() bool { return b.interruptsEnabled }

// Cartridge returns the cartridge the bus was built with.
func (b *Bus) Cartridge() cart.Cartridge { return b.cart }
