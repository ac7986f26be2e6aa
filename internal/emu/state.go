package emu

import (
	"bytes"
	"encoding/gob"
	"os"

	"github.com/pkg/errors"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/cpu"
)

// --- Save/Load state ---
type machineState struct {
	Bus []byte
	CPU cpu.State
}

func (m *Machine) SaveState() []byte {
	var buf bytes.Buffer
	enc := gob.NewEncoder(&buf)
	_ = enc.Encode(machineState{Bus: m.bus.SaveState(), CPU: m.cpu.SaveState()})
	return buf.Bytes()
}

func (m *Machine) LoadState(data []byte) error {
	var s machineState
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&s); err != nil {
		return errors.Wrap(err, "decode machine state")
	}
	if err := m.bus.LoadState(s.Bus); err != nil {
		return err
	}
	m.cpu.LoadState(s.CPU)
	return nil
}

func (m *Machine) SaveStateToFile(path string) error {
	return errors.Wrap(os.WriteFile(path, m.SaveState(), 0644), "write state")
}

func (m *Machine) LoadStateFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrap(err, "read state")
	}
	return m.LoadState(data)
}
