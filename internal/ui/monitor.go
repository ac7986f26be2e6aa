package ui

import (
	"context"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/emu"
)

const (
	screenW = 200
	screenH = 144
	lineH   = 14
)

var background = color.RGBA{0x0f, 0x38, 0x0f, 0xff}

// App is a register monitor: it drives the machine from ebiten's update loop
// and prints the CPU state every frame.
type App struct {
	cfg    Config
	m      *emu.Machine
	paused bool
	help   bool
	msg    string // last status message (errors, save/load results)
}

func NewApp(cfg Config, m *emu.Machine) *App {
	cfg.Defaults()
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(screenW*cfg.Scale, screenH*cfg.Scale)
	return &App{cfg: cfg, m: m, paused: cfg.StartPaused}
}

func (a *App) Run() error { return ebiten.RunGame(a) }

func (a *App) Update() error {
	// Pause toggle (P)
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		a.paused = !a.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) { // post-boot reset
		a.m.ResetPostBoot()
		a.msg = "reset"
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		a.help = !a.help
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		a.report(a.m.SaveStateToFile(a.cfg.StatePath), "saved "+a.cfg.StatePath)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) {
		a.report(a.m.LoadStateFromFile(a.cfg.StatePath), "loaded "+a.cfg.StatePath)
	}

	// Instruction-step when paused (N)
	if a.paused && inpututil.IsKeyJustPressed(ebiten.KeyN) {
		a.run(1)
	}
	if !a.paused {
		a.run(a.cfg.StepsPerFrame)
	}
	return nil
}

func (a *App) run(steps int) {
	res, err := a.m.Run(context.Background(), steps)
	if err != nil {
		a.paused = true
		a.report(err, "")
		return
	}
	if res.Reason == emu.ErrHalted || res.Reason == emu.ErrStopped {
		a.paused = true
		a.msg = res.Reason.Error()
	}
}

func (a *App) report(err error, ok string) {
	if err != nil {
		log.Printf("monitor: %v", err)
		a.msg = err.Error()
		return
	}
	a.msg = ok
}

func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(background)
	if a.help {
		lines := []string{
			"P: pause/resume",
			"N: step (paused)",
			"R: reset",
			"F5: save  F9: load",
			"Esc: close help",
		}
		for i, s := range lines {
			ebitenutil.DebugPrintAt(screen, s, 8, 8+i*lineH)
		}
		return
	}
	lines := a.m.Status().Lines()
	mode := "RUN"
	if a.paused {
		mode = "PAUSE"
	}
	lines = append(lines, fmt.Sprintf("[%s] %s", mode, a.msg))
	for i, s := range lines {
		ebitenutil.DebugPrintAt(screen, s, 8, 4+i*lineH)
	}
}

func (a *App) Layout(outW, outH int) (int, int) { return screenW, screenH }
