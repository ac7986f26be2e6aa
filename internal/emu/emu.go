package emu

import (
	"context"
	"log"

	"github.com/pkg/errors"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/bus"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/cart"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/cpu"
)

var _ cpu.Bus = (*bus.Bus)(nil)

// Reasons a Run ends without an error.
var (
	ErrHalted    = errors.New("cpu halted")
	ErrStopped   = errors.New("cpu stopped")
	ErrStepLimit = errors.New("step limit reached")
)

// ctxCheckInterval is how many instructions Run executes between context checks.
const ctxCheckInterval = 1024

// Machine wires a cartridge, the system bus and the CPU together.
type Machine struct {
	cfg     Config
	bus     *bus.Bus
	cpu     *cpu.CPU
	header  *cart.Header
	romPath string
}

// New creates a machine with an empty cartridge slot. Reads from the slot
// return 0, so an unloaded machine executes NOPs.
func New(cfg Config) *Machine {
	cfg.Defaults()
	m := &Machine{cfg: cfg}
	m.attach(bus.New(nil))
	return m
}

func (m *Machine) attach(b *bus.Bus) {
	m.bus = b
	m.cpu = cpu.New(b)
	m.ResetPostBoot()
}

// LoadCartridge parses the header, inserts a ROM-only cartridge and resets the
// CPU to the post-boot state.
func (m *Machine) LoadCartridge(rom []byte) error {
	h, err := cart.ParseHeader(rom)
	if err != nil {
		return errors.Wrap(err, "load cartridge")
	}
	log.Printf("cart: title=%q type=%s rom=%dKB (%d banks) ram=%dKB", h.Title, h.CartTypeStr, h.ROMSizeBytes/1024, h.ROMBanks, h.RAMSizeBytes/1024)
	if !h.LogoOK {
		log.Printf("cart: logo mismatch")
	}
	if !cart.HeaderChecksumOK(rom) {
		log.Printf("cart: header checksum mismatch (%02X)", h.HeaderChecksum)
	}
	if h.ROMBanks > 2 || h.RAMSizeBytes > 0 {
		log.Printf("cart: bank switching and external RAM are not emulated; only the first 32KB is visible")
	}
	m.header = h
	m.attach(bus.New(cart.NewCartridge(rom)))
	return nil
}

// LoadROMFromFile reads a ROM from disk and loads it.
func (m *Machine) LoadROMFromFile(path string) error {
	data, err := cart.Load(path)
	if err != nil {
		return err
	}
	if err := m.LoadCartridge(data); err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	m.romPath = path
	return nil
}

// ROMPath returns the currently loaded ROM file path, if any.
func (m *Machine) ROMPath() string { return m.romPath }

// Header returns the parsed header of the loaded cartridge, nil when none.
func (m *Machine) Header() *cart.Header { return m.header }

// ResetPostBoot puts the CPU in the DMG post-boot register state at StartPC.
// Memory is left as is.
func (m *Machine) ResetPostBoot() {
	m.cpu.ResetNoBoot()
	m.cpu.SetPC(m.cfg.StartPC)
}

func (m *Machine) CPU() *cpu.CPU { return m.cpu }
func (m *Machine) Bus() *bus.Bus { return m.bus }

// Step executes one instruction and writes a trace line when tracing is on.
func (m *Machine) Step() (int, error) {
	if !m.cfg.Trace {
		return m.cpu.Step()
	}
	pc := m.cpu.PC
	op := m.bus.Read(pc)
	name := m.cpu.Peek()
	cyc, err := m.cpu.Step()
	if err != nil {
		return cyc, err
	}
	writeTrace(m.cfg.TraceOut, pc, op, cyc, name, m.cpu, m.bus.InterruptsEnabled())
	return cyc, nil
}

// RunResult summarizes a call to Run.
type RunResult struct {
	Steps  int
	Cycles uint64 // M-cycles spent in this run
	Reason error  // ErrHalted, ErrStopped, ErrStepLimit or the context error
}

// Run steps the CPU until it halts or stops, maxSteps instructions have run,
// ctx is done, or an instruction fails. maxSteps <= 0 falls back to
// Config.MaxSteps, and 0 there means no limit.
//
// Only an instruction failure is returned as an error; every other way out is
// reported through RunResult.Reason.
func (m *Machine) Run(ctx context.Context, maxSteps int) (RunResult, error) {
	if maxSteps <= 0 {
		maxSteps = m.cfg.MaxSteps
	}
	start := m.cpu.Cycles()
	var res RunResult
	finish := func(reason error) (RunResult, error) {
		res.Cycles = m.cpu.Cycles() - start
		res.Reason = reason
		return res, nil
	}
	for {
		if res.Steps%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return finish(err)
			}
		}
		switch {
		case m.cpu.Halted():
			return finish(ErrHalted)
		case m.cpu.Stopped():
			return finish(ErrStopped)
		case maxSteps > 0 && res.Steps >= maxSteps:
			return finish(ErrStepLimit)
		}
		if _, err := m.Step(); err != nil {
			res.Cycles = m.cpu.Cycles() - start
			return res, errors.Wrapf(err, "step %d", res.Steps)
		}
		res.Steps++
	}
}
