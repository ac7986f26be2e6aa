package cpu

// Flag bit positions in the packed F register.
const (
	flagZ byte = 1 << 7
	flagN byte = 1 << 6
	flagH byte = 1 << 5
	flagC byte = 1 << 4
)

// Flags holds the four SM83 condition flags.
type Flags struct {
	Zero      bool
	Subtract  bool
	HalfCarry bool
	Carry     bool
}

// Byte packs the flags into the top nibble; the low nibble is always zero.
func (f Flags) Byte() byte {
	var v byte
	if f.Zero {
		v |= flagZ
	}
	if f.Subtract {
		v |= flagN
	}
	if f.HalfCarry {
		v |= flagH
	}
	if f.Carry {
		v |= flagC
	}
	return v
}

// FlagsFromByte unpacks F. Bits 3-0 are ignored.
func FlagsFromByte(v byte) Flags {
	return Flags{
		Zero:      v&flagZ != 0,
		Subtract:  v&flagN != 0,
		HalfCarry: v&flagH != 0,
		Carry:     v&flagC != 0,
	}
}

// set replaces all four flags at once.
func (f *Flags) set(z, n, h, cy bool) {
	f.Zero, f.Subtract, f.HalfCarry, f.Carry = z, n, h, cy
}

// Registers is the SM83 register file. BC, DE, HL and AF are views over the
// 8-bit fields, not separate storage.
type Registers struct {
	A, B, C, D, E, H, L byte
	F                   Flags

	SP uint16
	PC uint16
}

func (r *Registers) AF() uint16 { return build16(r.A, r.F.Byte()) }
func (r *Registers) SetAF(v uint16) { r.A, r.F = highByte(v), FlagsFromByte(lowByte(v)) }
func (r *Registers) BC() uint16 { return build16(r.B, r.C) }
func (r *Registers) SetBC(v uint16) { r.B, r.C = highByte(v), lowByte(v) }
func (r *Registers) DE() uint16 { return build16(r.D, r.E) }
func (r *Registers) SetDE(v uint16) { r.D, r.E = highByte(v), lowByte(v) }
func (r *Registers) HL() uint16 { return build16(r.H, r.L) }
func (r *Registers) SetHL(v uint16) { r.H, r.L = highByte(v), lowByte(v) }

// reg8 selects an 8-bit operand in the standard SM83 encoding order.
// regHLInd is the byte addressed by HL.
type reg8 byte

const (
	regB reg8 = iota
	regC
	regD
	regE
	regH
	regL
	regHLInd
	regA
)

var reg8Names = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

func (r reg8) String() string { return reg8Names[r&7] }

// reg16 selects a register pair. The encoding of bits 5-4 picks from
// BC/DE/HL/SP for loads and arithmetic and from BC/DE/HL/AF for push/pop.
type reg16 byte

const (
	regBC reg16 = iota
	regDE
	regHL
	regSP
	regAF
)

var reg16Names = [5]string{"BC", "DE", "HL", "SP", "AF"}

func (r reg16) String() string { return reg16Names[r] }

func (c *CPU) load8(r reg8) byte {
	switch r {
	case regB:
		return c.B
	case regC:
		return c.C
	case regD:
		return c.D
	case regE:
		return c.E
	case regH:
		return c.H
	case regL:
		return c.L
	case regHLInd:
		return c.read8(c.HL())
	default:
		return c.A
	}
}

func (c *CPU) store8(r reg8, v byte) {
	switch r {
	case regB:
		c.B = v
	case regC:
		c.C = v
	case regD:
		c.D = v
	case regE:
		c.E = v
	case regH:
		c.H = v
	case regL:
		c.L = v
	case regHLInd:
		c.write8(c.HL(), v)
	default:
		c.A = v
	}
}

func (c *CPU) load16(r reg16) uint16 {
	switch r {
	case regBC:
		return c.BC()
	case regDE:
		return c.DE()
	case regHL:
		return c.HL()
	case regSP:
		return c.SP
	default:
		return c.AF()
	}
}

func (c *CPU) store16(r reg16, v uint16) {
	switch r {
	case regBC:
		c.SetBC(v)
	case regDE:
		c.SetDE(v)
	case regHL:
		c.SetHL(v)
	case regSP:
		c.SP = v
	default:
		c.SetAF(v)
	}
}
