package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/emu"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/statsview"
	"github.com/FabianRolfMatthiasNoll/gbcore/internal/ui"
)

type CLIFlags struct {
	Steps     int
	StartPC   uint16
	Trace     bool
	Window    bool
	Scale     int
	Title     string
	Paused    bool
	StatsView string
}

func bindFlags(fs *pflag.FlagSet, f *CLIFlags) {
	fs.IntVar(&f.Steps, "steps", 0, "max CPU steps to run (0 = until halt/stop)")
	fs.Uint16Var(&f.StartPC, "pc", 0x0100, "initial PC value")
	fs.BoolVar(&f.Trace, "trace", false, "CPU trace log")
	fs.BoolVar(&f.Window, "window", false, "open the register monitor window")
	fs.IntVar(&f.Scale, "scale", 3, "window scale")
	fs.StringVar(&f.Title, "title", "gbcore", "window title")
	fs.BoolVar(&f.Paused, "paused", false, "start the monitor paused")
	fs.StringVar(&f.StatsView, "statsview", "", "serve runtime stats at this address (needs -tags statsview)")
}

func main() {
	var f CLIFlags
	root := &cobra.Command{
		Use:          "gbemu <rom.gb>",
		Short:        "Run a Game Boy cartridge on the SM83 core",
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], f)
		},
	}
	bindFlags(root.Flags(), &f)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(romPath string, f CLIFlags) error {
	if f.StatsView != "" {
		statsview.Launch(f.StatsView, os.Stderr)
	}
	m := emu.New(emu.Config{Trace: f.Trace, MaxSteps: f.Steps, StartPC: f.StartPC})
	if err := m.LoadROMFromFile(romPath); err != nil {
		log.Fatalf("load rom: %v", err)
	}

	if f.Window {
		app := ui.NewApp(ui.Config{Title: f.Title, Scale: f.Scale, StartPaused: f.Paused}, m)
		return app.Run()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	start := time.Now()
	res, err := m.Run(ctx, 0)
	log.Printf("done: steps=%d cycles=%d reason=%v elapsed=%s",
		res.Steps, res.Cycles, res.Reason, time.Since(start).Truncate(time.Millisecond))
	return err
}
