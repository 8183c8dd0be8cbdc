package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings of the driver. Values come from the environment,
// optionally seeded from a .env file, and are overridden by flags.
type Config struct {
	Duration      float64       `env:"DESIM_DURATION" envDefault:"10"`
	Step          float64       `env:"DESIM_STEP" envDefault:"1"`
	ShutdownAfter time.Duration `env:"DESIM_SHUTDOWN_AFTER" envDefault:"0s"`

	Monitor     bool `env:"DESIM_MONITOR"`
	MonitorPort int  `env:"DESIM_MONITOR_PORT"`
	OpenBrowser bool `env:"DESIM_OPEN_BROWSER"`
	LogActions  bool `env:"DESIM_LOG_ACTIONS"`

	ClockCount    int           `env:"DESIM_CLOCK_COUNT" envDefault:"0"`
	ClockInterval time.Duration `env:"DESIM_CLOCK_INTERVAL" envDefault:"1s"`
}

// LoadConfig reads envFile into the environment, if it exists, and parses the
// configuration from the environment. Variables already set are not
// overwritten by the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load env file %s: %w", envFile, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate reports settings that cannot drive a run.
func (c Config) Validate() error {
	if c.Step <= 0 {
		return fmt.Errorf("step must be positive, got %v", c.Step)
	}

	if c.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %v", c.Duration)
	}

	if c.ShutdownAfter < 0 {
		return fmt.Errorf("shutdown-after must not be negative, got %v", c.ShutdownAfter)
	}

	if c.ClockInterval < 0 {
		return fmt.Errorf("interval must not be negative, got %v", c.ClockInterval)
	}

	if !c.Monitor && (c.MonitorPort != 0 || c.OpenBrowser) {
		return errors.New("monitor port and browser require the monitor to be enabled")
	}

	return nil
}
