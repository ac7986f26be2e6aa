package bus

import (
	"bytes"
	"encoding/gob"

	"github.com/pkg/errors"
)

type busState struct {
	VRAM [0x2000]byte
	WRAM [0x2000]byte
	OAM  [0xA0]byte
	HRAM [0x7F]byte
	IE   bool
}

// SaveState snapshots the internal memories and the IE bit. Cartridge ROM is
// not part of the snapshot.
func (b *Bus) SaveState() []byte {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	_ = enc.Encode(busState{VRAM: b.vram, WRAM: b.wram, OAM: b.oam, HRAM: b.hram, IE: b.interruptsEnabled})
	return buf.Bytes()
}

// LoadState restores a snapshot taken by SaveState. On error the bus is left
// untouched.
func (b *Bus) LoadState(data []byte) error {
	var s busState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return errors.Wrap(err, "decode bus state")
	}
	b.vram, b.wram, b.oam, b.hram = s.VRAM, s.WRAM, s.OAM, s.HRAM
	b.interruptsEnabled = s.IE
	return nil
}
