package cpu

import "testing"

var illegalOpcodes = map[byte]bool{
	0xD3: true, 0xDB: true, 0xDD: true, 0xE3: true, 0xE4: true, 0xEB: true,
	0xEC: true, 0xED: true, 0xF4: true, 0xFC: true, 0xFD: true,
}

func TestTables_EveryOpcodeHasAnEntry(t *testing.T) {
	for i := 0; i < 256; i++ {
		base := Lookup(byte(i))
		if base.Exec == nil || base.Name == "" {
			t.Fatalf("base opcode %02X has no entry", i)
		}
		if (base.Name == "UNIMPLEMENTED") != illegalOpcodes[byte(i)] {
			t.Fatalf("base opcode %02X name %q, illegal=%v", i, base.Name, illegalOpcodes[byte(i)])
		}
		pre := LookupPrefixed(byte(i))
		if pre.Exec == nil || pre.Name == "" || pre.Name == "UNIMPLEMENTED" {
			t.Fatalf("prefixed opcode %02X has no handler (%q)", i, pre.Name)
		}
	}
}

func TestTables_FixedCostEntriesReportTheirCost(t *testing.T) {
	for i := 0; i < 256; i++ {
		code := byte(i)
		in := Lookup(code)
		if in.Dynamic || illegalOpcodes[code] || code == 0xCB {
			continue
		}
		c, b := newCPUWithCode(code, 0x00, 0xC0)
		c.SetHL(0xC000)
		c.SP = 0xD000
		b.mem[0xD000], b.mem[0xD001] = 0x00, 0x01
		if got, err := c.Step(); err != nil || got != in.Cycles {
			t.Fatalf("%02X %s got %d cycles (err %v) want %d", code, in.Name, got, err, in.Cycles)
		}
	}
	for i := 0; i < 256; i++ {
		in := LookupPrefixed(byte(i))
		c, _ := newCPUWithCode(0xCB, byte(i))
		c.SetHL(0xC000)
		if got, _ := c.Step(); got != in.Cycles {
			t.Fatalf("CB %02X %s got %d cycles want %d", i, in.Name, got, in.Cycles)
		}
	}
}

func TestTables_Mnemonics(t *testing.T) {
	cases := map[byte]string{
		0x00: "NOP", 0x01: "LD BC,d16", 0x06: "LD B,d8", 0x36: "LD (HL),d8",
		0x41: "LD B,C", 0x76: "HALT", 0x7E: "LD A,(HL)", 0x86: "ADD A,(HL)",
		0x90: "SUB B", 0x9F: "SBC A,A", 0xBF: "CP A", 0xC5: "PUSH BC", 0xF1: "POP AF",
		0x20: "JR NZ,r8", 0xDA: "JP C,a16", 0xCC: "CALL Z,a16", 0xD0: "RET NC",
		0xFF: "RST 38H", 0xCB: "PREFIX CB", 0xFE: "CP d8",
	}
	for code, want := range cases {
		if got := Lookup(code).Name; got != want {
			t.Errorf("%02X got %q want %q", code, got, want)
		}
	}
	prefixed := map[byte]string{
		0x00: "RLC B", 0x0E: "RRC (HL)", 0x37: "SWAP A", 0x3F: "SRL A",
		0x46: "BIT 0,(HL)", 0x87: "RES 0,A", 0xFF: "SET 7,A",
	}
	for code, want := range prefixed {
		if got := LookupPrefixed(code).Name; got != want {
			t.Errorf("CB %02X got %q want %q", code, got, want)
		}
	}
}

func TestFlags_ByteRoundTrip(t *testing.T) {
	for v := 0; v < 256; v++ {
		if got := FlagsFromByte(byte(v)).Byte(); got != byte(v)&0xF0 {
			t.Fatalf("pack(unpack(%02X)) got %02X", v, got)
		}
	}
	for i := 0; i < 16; i++ {
		f := Flags{Zero: i&8 != 0, Subtract: i&4 != 0, HalfCarry: i&2 != 0, Carry: i&1 != 0}
		if got := FlagsFromByte(f.Byte()); got != f {
			t.Fatalf("unpack(pack(%+v)) got %+v", f, got)
		}
	}
}

func TestRegisters_PairRoundTrip(t *testing.T) {
	var r Registers
	for v := 0; v < 0x10000; v++ {
		r.SetBC(uint16(v))
		r.SetDE(uint16(v))
		r.SetHL(uint16(v))
		if r.BC() != uint16(v) || r.DE() != uint16(v) || r.HL() != uint16(v) {
			t.Fatalf("pair round trip %04X got BC=%04X DE=%04X HL=%04X", v, r.BC(), r.DE(), r.HL())
		}
		// F only stores the top nibble
		r.SetAF(uint16(v))
		if r.AF() != uint16(v)&0xFFF0 {
			t.Fatalf("AF round trip %04X got %04X", v, r.AF())
		}
	}
}

func TestRegisters_PairIsAView(t *testing.T) {
	var r Registers
	r.SetHL(0xABCD)
	if r.H != 0xAB || r.L != 0xCD {
		t.Fatalf("SetHL got H=%02X L=%02X", r.H, r.L)
	}
	r.B, r.C = 0x12, 0x34
	if r.BC() != 0x1234 {
		t.Fatalf("BC got %04X", r.BC())
	}
}
