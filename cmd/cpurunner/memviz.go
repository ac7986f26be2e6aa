package main

import (
	"context"
	"os"

	"github.com/bradleyjkemp/memviz"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func memvizCmd() *cobra.Command {
	var (
		mf  machineFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "memviz <rom.gb>",
		Short: "Run a ROM and write the CPU state as a graphviz .dot file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mf.load(args[0], false)
			if err != nil {
				return err
			}
			if _, err := m.Run(context.Background(), 0); err != nil {
				return err
			}
			f, err := os.Create(out)
			if err != nil {
				return errors.Wrap(err, "create dot file")
			}
			defer f.Close()
			state := m.CPU().SaveState()
			memviz.Map(f, &state)
			return nil
		},
	}
	mf.bind(cmd.Flags(), 1000)
	cmd.Flags().StringVarP(&out, "out", "o", "cpu.dot", "output .dot path")
	return cmd
}
