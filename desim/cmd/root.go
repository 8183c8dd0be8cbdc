// Package cmd provides the command-line interface for desim.
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	envFile string
	cfg     Config
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "desim",
	Short: "desim runs discrete event scenarios on the process-wide scheduler.",
	Long: `desim runs discrete event scenarios on the process-wide scheduler. ` +
		`The run command prints the simulated time until a duration is reached, ` +
		`and the clock command prints the wall clock.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		loaded, err := LoadConfig(envFile)
		if err != nil {
			return err
		}

		applyFlags(cmd.Flags(), &loaded)

		if err := loaded.Validate(); err != nil {
			return err
		}

		cfg = loaded

		return nil
	},
}

func init() {
	defaultEnvFile := ".env"
	if f, ok := os.LookupEnv("DESIM_ENV_FILE"); ok {
		defaultEnvFile = f
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", defaultEnvFile,
		"file to load DESIM_* variables from, overridden by DESIM_ENV_FILE")
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Interrupt and terminate signals cancel the command context.
func Execute() error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return rootCmd.ExecuteContext(ctx)
}

// applyFlags overrides the configuration with the flags set on the command
// line.
func applyFlags(flags *pflag.FlagSet, c *Config) {
	if flags.Changed("duration") {
		c.Duration, _ = flags.GetFloat64("duration")
	}

	if flags.Changed("step") {
		c.Step, _ = flags.GetFloat64("step")
	}

	if flags.Changed("shutdown-after") {
		c.ShutdownAfter, _ = flags.GetDuration("shutdown-after")
	}

	if flags.Changed("monitor") {
		c.Monitor, _ = flags.GetBool("monitor")
	}

	if flags.Changed("monitor-port") {
		c.MonitorPort, _ = flags.GetInt("monitor-port")
	}

	if flags.Changed("open-browser") {
		c.OpenBrowser, _ = flags.GetBool("open-browser")
	}

	if flags.Changed("log-actions") {
		c.LogActions, _ = flags.GetBool("log-actions")
	}

	if flags.Changed("count") {
		c.ClockCount, _ = flags.GetInt("count")
	}

	if flags.Changed("interval") {
		c.ClockInterval, _ = flags.GetDuration("interval")
	}
}
