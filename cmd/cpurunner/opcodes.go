package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/FabianRolfMatthiasNoll/gbcore/internal/cpu"
)

func opcodesCmd() *cobra.Command {
	var prefixed bool
	cmd := &cobra.Command{
		Use:   "opcodes",
		Short: "List the dispatch table with mnemonics and cycle costs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lookup, prefix := cpu.Lookup, ""
			if prefixed {
				lookup, prefix = cpu.LookupPrefixed, "CB "
			}
			writeOpcodes(cmd.OutOrStdout(), prefix, lookup)
			return nil
		},
	}
	cmd.Flags().BoolVar(&prefixed, "cb", false, "list the 0xCB-prefixed table")
	return cmd
}

func writeOpcodes(w io.Writer, prefix string, lookup func(byte) cpu.Instruction) {
	for i := 0; i < 256; i++ {
		in := lookup(byte(i))
		cyc := fmt.Sprint(in.Cycles)
		if in.Dynamic {
			cyc = "var"
		}
		fmt.Fprintf(w, "%s%02X  %-14s %s\n", prefix, i, in.Name, cyc)
	}
}
