package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds the environment-driven configuration of a simulation.
type Settings struct {
	ConfigDir     string        `env:"MONTECARLO_CONFIG_DIR"     envDefault:"config"`
	Scenario      string        `env:"MONTECARLO_SCENARIO"       envDefault:"default"`
	Seed          *uint64       `env:"MONTECARLO_SEED"`
	Trials        *int          `env:"MONTECARLO_TRIALS"`
	WatchInterval time.Duration `env:"MONTECARLO_WATCH_INTERVAL" envDefault:"2s"`
}

// Load loads configuration from environment variables.
func Load() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if s.Trials != nil && *s.Trials < 1 {
		return Settings{}, fmt.Errorf("MONTECARLO_TRIALS must be >= 1, got %d", *s.Trials)
	}
	if s.WatchInterval <= 0 {
		return Settings{}, fmt.Errorf("MONTECARLO_WATCH_INTERVAL must be positive, got %s", s.WatchInterval)
	}
	return s, nil
}
