package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/emu"
)

const stepHelp = "n/space: step  c: continue  r: reset  q: quit"

func stepCmd() *cobra.Command {
	var mf machineFlags
	cmd := &cobra.Command{
		Use:   "step <rom.gb>",
		Short: "Single-step a ROM from the keyboard",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mf.load(args[0], false)
			if err != nil {
				return err
			}
			fd := int(os.Stdin.Fd())
			if !term.IsTerminal(fd) {
				return errors.New("step needs an interactive terminal")
			}
			// Raw mode so a single keypress steps without Enter.
			old, err := term.MakeRaw(fd)
			if err != nil {
				return errors.Wrap(err, "raw mode")
			}
			defer term.Restore(fd, old)
			return stepLoop(m, os.Stdin, os.Stdout, mf.steps)
		},
	}
	mf.bind(cmd.Flags(), 100_000)
	return cmd
}

// stepLoop reads one key at a time from in and prints the machine status to
// out. "c" runs up to burst instructions.
func stepLoop(m *emu.Machine, in io.Reader, out io.Writer, burst int) error {
	show := func(msg string) {
		lines := m.Status().Lines()
		if msg != "" {
			lines = append(lines, msg)
		}
		// raw mode needs explicit carriage returns
		fmt.Fprint(out, strings.Join(lines, "\r\n")+"\r\n\r\n")
	}
	fmt.Fprint(out, stepHelp+"\r\n\r\n")
	show("")
	buf := make([]byte, 1)
	for {
		if _, err := in.Read(buf); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, "read key")
		}
		steps := 0
		switch buf[0] {
		case 'n', ' ':
			steps = 1
		case 'c':
			steps = burst
		case 'r':
			m.ResetPostBoot()
			show("reset")
			continue
		case 'q', 3: // 3 is Ctrl-C in raw mode
			return nil
		default:
			continue
		}
		res, err := m.Run(context.Background(), steps)
		if err != nil {
			show(err.Error())
			continue
		}
		show(fmt.Sprintf("ran %d steps (%d cycles): %v", res.Steps, res.Cycles, res.Reason))
	}
}
