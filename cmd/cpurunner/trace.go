package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func traceCmd() *cobra.Command {
	var (
		mf      machineFlags
		quiet   bool
		timeout time.Duration
	)
	cmd := &cobra.Command{
		Use:   "trace <rom.gb>",
		Short: "Run a ROM headless, printing one line per instruction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := mf.load(args[0], !quiet)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, timeout)
				defer cancel()
			}
			start := time.Now()
			res, err := m.Run(ctx, 0)
			fmt.Fprintf(cmd.OutOrStdout(), "\nDone: steps=%d cycles=%d reason=%v elapsed=%s\n",
				res.Steps, res.Cycles, res.Reason, time.Since(start).Truncate(time.Millisecond))
			return err
		},
	}
	mf.bind(cmd.Flags(), 5_000_000)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the summary")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "optional wall-clock timeout (e.g. 30s, 2m); 0 disables")
	return cmd
}
