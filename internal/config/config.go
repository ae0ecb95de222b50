// Package config loads application configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds tunables for the star field scenes. Values come from
// LS_STARFIELD_* environment variables; CLI flags override them.
type Config struct {
	// CatalogPath points at a JSON star catalog. Empty means the built-in
	// bright star catalog.
	CatalogPath string `env:"LS_STARFIELD_CATALOG"`

	// GalaxyCap is the number of nearest catalog records kept for the
	// galaxy scene.
	GalaxyCap int `env:"LS_STARFIELD_GALAXY_CAP" envDefault:"250"`

	// ShellMin and ShellMax bound the visible shell the remapper projects
	// star positions onto, in scene units.
	ShellMin float64 `env:"LS_STARFIELD_SHELL_MIN" envDefault:"20"`
	ShellMax float64 `env:"LS_STARFIELD_SHELL_MAX" envDefault:"85"`

	// GridStep is the placement snap size in the constellation scene.
	GridStep float64 `env:"LS_STARFIELD_GRID_STEP" envDefault:"1"`

	// LogLevel and LogFile control diagnostics. An empty LogFile discards
	// logs during interactive runs (the TUI owns stderr).
	LogLevel string `env:"LS_STARFIELD_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LS_STARFIELD_LOG_FILE"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	if c.GalaxyCap <= 0 {
		return fmt.Errorf("galaxy cap must be positive, got %d", c.GalaxyCap)
	}
	if c.ShellMin <= 0 || c.ShellMax <= c.ShellMin {
		return fmt.Errorf("invalid shell bounds [%g, %g]", c.ShellMin, c.ShellMax)
	}
	if c.GridStep <= 0 {
		return fmt.Errorf("grid step must be positive, got %g", c.GridStep)
	}
	return nil
}
