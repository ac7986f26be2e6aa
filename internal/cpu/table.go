package cpu

import "fmt"

// Instruction is one dispatch table entry. Name is diagnostic only.
// Exec runs the instruction (the opcode byte has already been fetched) and
// returns the M-cycles it took.
type Instruction struct {
	Name string
	// Cycles is the fixed cost for entries that always take the same time.
	// Dynamic entries report their cost per call and leave this zero.
	Cycles  int
	Dynamic bool
	Exec    func(c *CPU) int
}

// Table is a full opcode space, indexed by opcode byte.
type Table [256]Instruction

var (
	baseTable     Table
	prefixedTable Table
)

func init() {
	buildBase(&baseTable)
	buildPrefixed(&prefixedTable)
}

// Lookup returns the base-space entry for op.
func Lookup(op byte) Instruction { return baseTable[op] }

// LookupPrefixed returns the 0xCB-space entry for op.
func LookupPrefixed(op byte) Instruction { return prefixedTable[op] }

// op binds a fixed-cost handler.
func op(name string, cycles int, fn func(c *CPU)) Instruction {
	return Instruction{Name: name, Cycles: cycles, Exec: func(c *CPU) int {
		fn(c)
		return cycles
	}}
}

// dyn binds a handler that reports its own cost.
func dyn(name string, fn func(c *CPU) int) Instruction {
	return Instruction{Name: name, Dynamic: true, Exec: fn}
}

// unimplemented marks a slot with no handler. It records the fault for Step
// and mutates nothing.
func unimplemented(code byte, prefixed bool) Instruction {
	return Instruction{Name: "UNIMPLEMENTED", Exec: func(c *CPU) int {
		c.fault = &OpcodeError{Opcode: code, Prefixed: prefixed}
		return 0
	}}
}

// cost picks the register or (HL) cycle count for an operand.
func cost(r reg8, reg, hl int) int {
	if r == regHLInd {
		return hl
	}
	return reg
}

var aluOps = [8]struct {
	name string
	fn   func(c *CPU, v byte)
}{
	{"ADD A,", (*CPU).addA},
	{"ADC A,", (*CPU).adcA},
	{"SUB ", (*CPU).subA},
	{"SBC A,", (*CPU).sbcA},
	{"AND ", (*CPU).andA},
	{"XOR ", (*CPU).xorA},
	{"OR ", (*CPU).orA},
	{"CP ", (*CPU).cpA},
}

func buildBase(t *Table) {
	for i := range t {
		t[i] = unimplemented(byte(i), false)
	}

	t[0x00] = op("NOP", 1, func(c *CPU) {})
	t[0x10] = op("STOP", 1, func(c *CPU) {
		c.fetch8()
		c.stopped = true
	})
	t[0x76] = op("HALT", 1, func(c *CPU) { c.halted = true })
	t[0xF3] = op("DI", 1, func(c *CPU) { c.bus.DisableInterrupts() })
	t[0xFB] = op("EI", 1, func(c *CPU) { c.bus.EnableInterrupts() })
	t[0xCB] = dyn("PREFIX CB", func(c *CPU) int {
		return prefixedTable[c.fetch8()].Exec(c)
	})

	// Register-pair group: rows 0x00-0x30 select BC, DE, HL, SP.
	for i, rr := range [4]reg16{regBC, regDE, regHL, regSP} {
		rr := rr
		row := byte(i) << 4
		t[row|0x01] = op("LD "+rr.String()+",d16", 3, func(c *CPU) { c.ldImm16(rr) })
		t[row|0x03] = op("INC "+rr.String(), 2, func(c *CPU) { c.incPair(rr) })
		t[row|0x09] = op("ADD HL,"+rr.String(), 2, func(c *CPU) { c.addHL(c.load16(rr)) })
		t[row|0x0B] = op("DEC "+rr.String(), 2, func(c *CPU) { c.decPair(rr) })
	}

	t[0x02] = op("LD (BC),A", 2, func(c *CPU) { c.storeA(regBC) })
	t[0x12] = op("LD (DE),A", 2, func(c *CPU) { c.storeA(regDE) })
	t[0x22] = op("LD (HL+),A", 2, func(c *CPU) { c.storeAHL(1) })
	t[0x32] = op("LD (HL-),A", 2, func(c *CPU) { c.storeAHL(0xFFFF) })
	t[0x0A] = op("LD A,(BC)", 2, func(c *CPU) { c.loadA(regBC) })
	t[0x1A] = op("LD A,(DE)", 2, func(c *CPU) { c.loadA(regDE) })
	t[0x2A] = op("LD A,(HL+)", 2, func(c *CPU) { c.loadAHL(1) })
	t[0x3A] = op("LD A,(HL-)", 2, func(c *CPU) { c.loadAHL(0xFFFF) })

	// INC r, DEC r, LD r,d8 in columns 4, 5, 6.
	for r := regB; r <= regA; r++ {
		r := r
		col := byte(r) << 3
		t[0x04|col] = op("INC "+r.String(), cost(r, 1, 3), func(c *CPU) { c.incReg(r) })
		t[0x05|col] = op("DEC "+r.String(), cost(r, 1, 3), func(c *CPU) { c.decReg(r) })
		t[0x06|col] = op("LD "+r.String()+",d8", cost(r, 2, 3), func(c *CPU) { c.ldImm(r) })
	}

	t[0x07] = op("RLCA", 1, (*CPU).rlca)
	t[0x0F] = op("RRCA", 1, (*CPU).rrca)
	t[0x17] = op("RLA", 1, (*CPU).rla)
	t[0x1F] = op("RRA", 1, (*CPU).rra)
	t[0x27] = op("DAA", 1, (*CPU).daa)
	t[0x2F] = op("CPL", 1, (*CPU).cpl)
	t[0x37] = op("SCF", 1, (*CPU).scf)
	t[0x3F] = op("CCF", 1, (*CPU).ccf)

	t[0x08] = op("LD (a16),SP", 5, (*CPU).storeSPAbs)
	t[0x18] = op("JR r8", 3, (*CPU).jr)

	conds := [4]cond{condNZ, condZ, condNC, condC}
	for i, cc := range conds {
		cc := cc
		col := byte(i) << 3
		t[0x20|col] = dyn("JR "+cc.String()+",r8", func(c *CPU) int { return c.jrIf(cc) })
		t[0xC0|col] = dyn("RET "+cc.String(), func(c *CPU) int { return c.retIf(cc) })
		t[0xC2|col] = dyn("JP "+cc.String()+",a16", func(c *CPU) int { return c.jpIf(cc) })
		t[0xC4|col] = dyn("CALL "+cc.String()+",a16", func(c *CPU) int { return c.callIf(cc) })
	}

	// LD r,r' block. 0x76 would be LD (HL),(HL); it is HALT.
	for dst := regB; dst <= regA; dst++ {
		dst := dst
		for src := regB; src <= regA; src++ {
			src := src
			code := 0x40 | byte(dst)<<3 | byte(src)
			if code == 0x76 {
				continue
			}
			cycles := 1
			if dst == regHLInd || src == regHLInd {
				cycles = 2
			}
			t[code] = op("LD "+dst.String()+","+src.String(), cycles, func(c *CPU) { c.ld(dst, src) })
		}
	}

	// ALU block with register operands, and the d8 column at 0xC6.
	for i, alu := range aluOps {
		alu := alu
		row := byte(i) << 3
		for r := regB; r <= regA; r++ {
			r := r
			t[0x80|row|byte(r)] = op(alu.name+r.String(), cost(r, 1, 2), func(c *CPU) { alu.fn(c, c.load8(r)) })
		}
		t[0xC6|row] = op(alu.name+"d8", 2, func(c *CPU) { alu.fn(c, c.fetch8()) })
	}

	for i, rr := range [4]reg16{regBC, regDE, regHL, regAF} {
		rr := rr
		row := byte(i) << 4
		t[0xC1|row] = op("POP "+rr.String(), 3, func(c *CPU) { c.pop(rr) })
		t[0xC5|row] = op("PUSH "+rr.String(), 4, func(c *CPU) { c.push(rr) })
	}

	for i := 0; i < 8; i++ {
		target := uint16(i) << 3
		t[0xC7|byte(i)<<3] = op(rstName(target), 4, func(c *CPU) { c.rst(target) })
	}

	t[0xC3] = op("JP a16", 4, (*CPU).jp)
	t[0xC9] = op("RET", 4, (*CPU).ret)
	t[0xCD] = op("CALL a16", 6, (*CPU).call)
	t[0xD9] = op("RETI", 4, (*CPU).reti)
	t[0xE9] = op("JP HL", 1, (*CPU).jpHL)

	t[0xE0] = op("LDH (a8),A", 3, (*CPU).ldhStore)
	t[0xF0] = op("LDH A,(a8)", 3, (*CPU).ldhLoad)
	t[0xE2] = op("LD (C),A", 2, (*CPU).ldcStore)
	t[0xF2] = op("LD A,(C)", 2, (*CPU).ldcLoad)
	t[0xEA] = op("LD (a16),A", 4, (*CPU).storeAAbs)
	t[0xFA] = op("LD A,(a16)", 4, (*CPU).loadAAbs)
	t[0xE8] = op("ADD SP,r8", 4, (*CPU).addSP)
	t[0xF8] = op("LD HL,SP+r8", 3, (*CPU).ldHLSP)
	t[0xF9] = op("LD SP,HL", 2, (*CPU).ldSPHL)
}

var shiftOps = [8]struct {
	name string
	fn   func(c *CPU, v byte) byte
}{
	{"RLC", (*CPU).rlc},
	{"RRC", (*CPU).rrc},
	{"RL", (*CPU).rl},
	{"RR", (*CPU).rr},
	{"SLA", (*CPU).sla},
	{"SRA", (*CPU).sra},
	{"SWAP", (*CPU).swap},
	{"SRL", (*CPU).srl},
}

// buildPrefixed fills the 0xCB space. Costs include the prefix fetch.
func buildPrefixed(t *Table) {
	for i := range t {
		t[i] = unimplemented(byte(i), true)
	}

	for i, sh := range shiftOps {
		sh := sh
		row := byte(i) << 3
		for r := regB; r <= regA; r++ {
			r := r
			t[row|byte(r)] = op(sh.name+" "+r.String(), cost(r, 2, 4), func(c *CPU) {
				c.store8(r, sh.fn(c, c.load8(r)))
			})
		}
	}

	for n := uint(0); n < 8; n++ {
		n := n
		row := byte(n) << 3
		mask := byte(1) << n
		for r := regB; r <= regA; r++ {
			r := r
			suffix := fmt.Sprintf("%d,%s", n, r)
			t[0x40|row|byte(r)] = op("BIT "+suffix, cost(r, 2, 3), func(c *CPU) { c.bit(n, c.load8(r)) })
			t[0x80|row|byte(r)] = op("RES "+suffix, cost(r, 2, 4), func(c *CPU) { c.store8(r, c.load8(r)&^mask) })
			t[0xC0|row|byte(r)] = op("SET "+suffix, cost(r, 2, 4), func(c *CPU) { c.store8(r, c.load8(r)|mask) })
		}
	}
}

func rstName(target uint16) string { return fmt.Sprintf("RST %02XH", target) }
