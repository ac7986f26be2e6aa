package cpu

// Carry helpers. All operands are widened before comparing so none of these
// can overflow.

func halfCarryAdd8(a, b byte) bool { return halfCarryAdc8(a, b, 0) }
func carryAdd8(a, b byte) bool { return carryAdc8(a, b, 0) }

func halfCarryAdc8(a, b, carryIn byte) bool {
	return (a&0x0F)+(b&0x0F)+carryIn > 0x0F
}

func carryAdc8(a, b, carryIn byte) bool {
	return uint16(a)+uint16(b)+uint16(carryIn) > 0xFF
}

func halfCarrySub8(a, b byte) bool { return halfCarrySbc8(a, b, 0) }
func carrySub8(a, b byte) bool { return carrySbc8(a, b, 0) }

func halfCarrySbc8(a, b, borrowIn byte) bool {
	return a&0x0F < (b&0x0F)+borrowIn
}

func carrySbc8(a, b, borrowIn byte) bool {
	return uint16(a) < uint16(b)+uint16(borrowIn)
}

// 16-bit variants carry out of bit 11 (half) and bit 15 (full).

func halfCarryAdd16(a, b uint16) bool { return (a&0x0FFF)+(b&0x0FFF) > 0x0FFF }
func carryAdd16(a, b uint16) bool { return uint32(a)+uint32(b) > 0xFFFF }
func halfCarrySub16(a, b uint16) bool { return a&0x0FFF < b&0x0FFF }
func carrySub16(a, b uint16) bool { return a < b }

func highByte(v uint16) byte { return byte(v >> 8) }
func lowByte(v uint16) byte { return byte(v) }
func build16(hi, lo byte) uint16 { return uint16(hi)<<8 | uint16(lo) }
func setHighByte(v uint16, hi byte) uint16 { return v&0x00FF | uint16(hi)<<8 }
func setLowByte(v uint16, lo byte) uint16 { return v&0xFF00 | uint16(lo) }

func boolBit(b bool) byte {
	if b {
		return 1
	}
	return 0
}
