package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/cpu"
)

func writeROM(t *testing.T, code ...byte) string {
	t.Helper()
	rom := make([]byte, 0x8000)
	copy(rom[0x0100:], code)
	path := filepath.Join(t.TempDir(), "test.gb")
	if err := os.WriteFile(path, rom, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestWriteOpcodes(t *testing.T) {
	var out bytes.Buffer
	writeOpcodes(&out, "", cpu.Lookup)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 256 {
		t.Fatalf("got %d lines want 256", len(lines))
	}
	if !strings.HasPrefix(lines[0x00], "00  NOP") || !strings.HasSuffix(lines[0x20], "var") {
		t.Fatalf("unexpected rows %q / %q", lines[0x00], lines[0x20])
	}

	out.Reset()
	writeOpcodes(&out, "CB ", cpu.LookupPrefixed)
	if !strings.HasPrefix(out.String(), "CB 00  RLC B") {
		t.Fatalf("prefixed table starts with %q", strings.SplitN(out.String(), "\n", 2)[0])
	}
}

func TestStepLoop(t *testing.T) {
	mf := machineFlags{startPC: 0x0100}
	// INC A; INC A; JR -2
	m, err := mf.load(writeROM(t, 0x3C, 0x3C, 0x18, 0xFE), false)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := stepLoop(m, strings.NewReader("nnxc"), &out, 10); err != nil {
		t.Fatalf("stepLoop: %v", err)
	}
	if m.CPU().A != 0x03 {
		t.Fatalf("A got %02x want 03", m.CPU().A)
	}
	if !strings.Contains(out.String(), "ran 10 steps (30 cycles): step limit reached") {
		t.Fatalf("missing continue summary:\n%s", out.String())
	}
}

func TestStepLoopQuit(t *testing.T) {
	mf := machineFlags{}
	m, err := mf.load(writeROM(t), false)
	if err != nil {
		t.Fatal(err)
	}
	var out bytes.Buffer
	if err := stepLoop(m, strings.NewReader("qn"), &out, 10); err != nil {
		t.Fatalf("stepLoop: %v", err)
	}
	if m.CPU().Cycles() != 0 {
		t.Fatalf("stepped after quit")
	}
}
