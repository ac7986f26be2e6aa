package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/emu"
)

// machineFlags are shared by every subcommand that runs a ROM.
type machineFlags struct {
	steps   int
	startPC uint16
}

func (mf *machineFlags) bind(fs *pflag.FlagSet, defSteps int) {
	fs.IntVar(&mf.steps, "steps", defSteps, "max CPU steps to run (0 = no limit)")
	fs.Uint16Var(&mf.startPC, "pc", 0x0100, "initial PC value")
}

// load builds a machine for romPath. trace enables per-instruction output on stdout.
func (mf *machineFlags) load(romPath string, trace bool) (*emu.Machine, error) {
	m := emu.New(emu.Config{Trace: trace, TraceOut: os.Stdout, MaxSteps: mf.steps, StartPC: mf.startPC})
	if err := m.LoadROMFromFile(romPath); err != nil {
		return nil, err
	}
	return m, nil
}

func main() {
	log.SetFlags(0)
	root := &cobra.Command{
		Use:          "cpurunner",
		Short:        "Headless SM83 diagnostics",
		SilenceUsage: true,
	}
	root.AddCommand(traceCmd(), stepCmd(), opcodesCmd(), memvizCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
