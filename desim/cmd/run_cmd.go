package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/pkg/browser"
	"github.com/rs/xid"
	"github.com/sarchlab/desim/examples/printtime"
	"github.com/sarchlab/desim/monitoring"
	"github.com/sarchlab/desim/sim"
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Print the simulated time every step until the duration is reached",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s := sim.Instance[sim.VTimeInSec]()
		atexit.Register(s.Shutdown)

		fmt.Fprintf(cmd.ErrOrStderr(), "Run ID: %s\n", xid.New())

		if cfg.Monitor {
			m := startMonitor(s, cfg)
			atexit.Register(func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				defer cancel()
				_ = m.StopServer(ctx)
			})
		}

		return runScenario(cmd.Context(), s, cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
	},
}

func init() {
	runCmd.Flags().Float64("duration", 10, "simulated seconds to print for")
	runCmd.Flags().Float64("step", 1, "simulated seconds between prints")
	runCmd.Flags().Duration("shutdown-after", 0,
		"wall-clock delay after which a producer goroutine requests a shutdown")
	runCmd.Flags().Bool("monitor", false, "serve the monitoring API")
	runCmd.Flags().Int("monitor-port", 0, "port of the monitoring API")
	runCmd.Flags().Bool("open-browser", false, "open the monitoring API in a browser")
	runCmd.Flags().Bool("log-actions", false, "log every action to stderr")

	rootCmd.AddCommand(runCmd)
}

// runScenario submits the print-time scenario to s and runs it until it shuts
// itself down, the producer requests a shutdown or ctx is done.
func runScenario(
	ctx context.Context,
	s *sim.Scheduler[sim.VTimeInSec],
	c Config,
	out, errOut io.Writer,
) error {
	if c.LogActions {
		s.AcceptHook(sim.NewActionLogger(log.New(errOut, "", 0)))
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	s.Submit(printtime.NewPrint(1.0, out))
	s.Submit(printtime.NewPrintForNSeconds(
		sim.VTimeInSec(c.Duration), sim.VTimeInSec(c.Step), 0, s, out))

	if c.ShutdownAfter > 0 {
		printtime.ShutdownAfter(ctx, s, out, c.ShutdownAfter)
	}

	stop := context.AfterFunc(ctx, s.Shutdown)
	defer stop()

	return s.Run()
}

func startMonitor(s *sim.Scheduler[sim.VTimeInSec], c Config) *monitoring.Monitor {
	m := monitoring.NewMonitor()
	if c.MonitorPort > 0 {
		m.WithPortNumber(c.MonitorPort)
	}
	m.RegisterScheduler(s)

	bar := m.CreateProgressBar("print-time", uint64(c.Duration/c.Step)+1)
	s.AcceptHook(sim.HookFunc(func(ctx sim.HookCtx) {
		if ctx.Pos != sim.HookPosAfterAction {
			return
		}

		if _, ok := ctx.Item.(*printtime.PrintForNSeconds); ok {
			bar.IncrementFinished(1)
		}
	}))

	url := m.StartServer()
	if c.OpenBrowser {
		if err := browser.OpenURL(url + "/api/status"); err != nil {
			log.Printf("cannot open browser: %v", err)
		}
	}

	return m
}
