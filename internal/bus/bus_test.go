package bus

import "testing"

func TestBus_ROMAndRAM(t *testing.T) {
	rom := make([]byte, 0x8000)
	rom[0x0100] = 0x42
	b := NewFromROM(rom)

	if got := b.Read(0x0100); got != 0x42 {
		t.Fatalf("ROM read got %02x, want 42", got)
	}

	// ROM is read-only
	b.Write(0x0100, 0x99)
	if got := b.Read(0x0100); got != 0x42 {
		t.Fatalf("ROM write went through: got %02x", got)
	}

	// RAM write+read
	b.Write(0xC000, 0x99)
	if got := b.Read(0xC000); got != 0x99 {
		t.Fatalf("RAM read got %02x, want 99", got)
	}
	b.Write(0xDFFF, 0x11)
	if got := b.Read(0xDFFF); got != 0x11 {
		t.Fatalf("RAM top byte got %02x, want 11", got)
	}

	// Echo RAM mirrors C000–DDFF
	b.Write(0xE000, 0x55)
	if got := b.Read(0xC000); got != 0x55 {
		t.Fatalf("Echo write did not mirror to WRAM: got %02x", got)
	}
	b.Write(0xC123, 0x66)
	if got := b.Read(0xE123); got != 0x66 {
		t.Fatalf("WRAM write not visible through echo: got %02x", got)
	}

	// HRAM read/write
	b.Write(0xFF80, 0x07)
	if got := b.Read(0xFF80); got != 0x07 {
		t.Fatalf("HRAM read got %02x, want 07", got)
	}

	// ROM-only cart has no external RAM
	if got := b.Read(0xA123); got != 0x00 {
		t.Fatalf("Ext RAM (ROM-only) got %02x, want 00", got)
	}
}

func TestBus_VRAM_OAM(t *testing.T) {
	b := NewFromROM(make([]byte, 0x8000))

	b.Write(0x8000, 0x11)
	if got := b.Read(0x8000); got != 0x11 {
		t.Fatalf("VRAM read got %02x, want 11", got)
	}
	b.Write(0xFE00, 0x22)
	if got := b.Read(0xFE00); got != 0x22 {
		t.Fatalf("OAM read got %02x, want 22", got)
	}
}

func TestBus_UnmappedReadsZero(t *testing.T) {
	b := NewFromROM(make([]byte, 0x100)) // ROM shorter than its window
	for _, addr := range []uint16{0x4000, 0xFEA0, 0xFEFF, 0xFF00, 0xFF0F, 0xFF7F} {
		b.Write(addr, 0xAB)
		if got := b.Read(addr); got != 0 {
			t.Fatalf("unmapped %04X got %02x, want 00", addr, got)
		}
	}
}

func TestBus_InterruptEnable(t *testing.T) {
	b := New(nil)
	if b.InterruptsEnabled() || b.Read(IE) != 0 {
		t.Fatalf("interrupts should start disabled")
	}
	b.Write(IE, 1)
	if !b.InterruptsEnabled() || b.Read(IE) != 1 {
		t.Fatalf("write FFFF=1 did not enable interrupts")
	}
	b.DisableInterrupts()
	if b.Read(IE) != 0 {
		t.Fatalf("DisableInterrupts not reflected at FFFF")
	}
	b.EnableInterrupts()
	if b.Read(IE) != 1 {
		t.Fatalf("EnableInterrupts not reflected at FFFF")
	}
	b.Write(IE, 0)
	if b.InterruptsEnabled() {
		t.Fatalf("write FFFF=0 did not disable interrupts")
	}
}

func TestBus_SaveLoadState(t *testing.T) {
	b := NewFromROM(nil)
	b.Write(0x8001, 0x11)
	b.Write(0xC002, 0x22)
	b.Write(0xFE03, 0x33)
	b.Write(0xFF84, 0x44)
	b.EnableInterrupts()
	snap := b.SaveState()

	b.Write(0xC002, 0x00)
	b.DisableInterrupts()
	if err := b.LoadState(snap); err != nil {
		t.Fatalf("LoadState: %v", err)
	}
	if b.Read(0x8001) != 0x11 || b.Read(0xC002) != 0x22 || b.Read(0xFE03) != 0x33 || b.Read(0xFF84) != 0x44 {
		t.Fatalf("memories not restored")
	}
	if !b.InterruptsEnabled() {
		t.Fatalf("IE not restored")
	}

	if err := b.LoadState([]byte("garbage")); err == nil {
		t.Fatalf("expected decode error")
	}
	if b.Read(0xC002) != 0x22 {
		t.Fatalf("failed load changed memory")
	}
}
