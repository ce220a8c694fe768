// Package config loads degree-audit settings from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/brequin/brequin/audit/audit"
)

type Config struct {
	// DatabaseURL selects a PostgreSQL catalog store.
	DatabaseURL string `env:"DATABASE_CONNECTION_STRING"`
	// SQLitePath selects a SQLite catalog store.
	SQLitePath string `env:"DEGREE_AUDIT_DB"`

	FirstTermCeiling float64 `env:"DEGREE_AUDIT_FIRST_TERM_CEILING" envDefault:"17"`
	TermCeiling      float64 `env:"DEGREE_AUDIT_TERM_CEILING" envDefault:"19"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FirstTermCeiling < 0 || cfg.TermCeiling < 0 {
		return Config{}, fmt.Errorf("term ceilings must not be negative")
	}
	return cfg, nil
}

func (c Config) Ceilings() audit.Ceilings {
	return audit.Ceilings{First: c.FirstTermCeiling, Default: c.TermCeiling}
}
