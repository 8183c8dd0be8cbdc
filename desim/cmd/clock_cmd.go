package cmd

import (
	"context"
	"io"

	"github.com/sarchlab/desim/examples/printtime"
	"github.com/sarchlab/desim/sim"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var clockCmd = &cobra.Command{
	Use:   "clock",
	Short: "Print the wall clock in Unix seconds",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := sim.Instance[int64]()
		atexit.Register(s.Shutdown)

		return runClock(cmd.Context(), s, cfg, cmd.OutOrStdout())
	},
}

func init() {
	clockCmd.Flags().Int("count", 0, "number of prints, 0 prints until interrupted")
	clockCmd.Flags().Duration("interval", 0, "wall-clock delay between prints (default 1s)")

	rootCmd.AddCommand(clockCmd)
}

func runClock(
	ctx context.Context,
	s *sim.Scheduler[int64],
	c Config,
	out io.Writer,
) error {
	s.Submit(printtime.NewWallClock(s, out, c.ClockInterval, c.ClockCount))

	stop := context.AfterFunc(ctx, s.Shutdown)
	defer stop()

	return s.Run()
}
