// SPDX-License-Identifier: MIT

// Package config loads sqmatrix command settings from SQMATRIX_* environment
// variables. Command-line flags override whatever is loaded here.
package config

import (
	"fmt"
	"io"
	"strings"

	"github.com/kelseyhightower/envconfig"

	"github.com/wojino/sqmatrix/matrix"
)

// Prefix is prepended (with an underscore) to every variable name.
const Prefix = "SQMATRIX"

// Output formats.
const (
	FormatText  = "text"
	FormatLaTeX = "latex"
	FormatYAML  = "yaml"
)

// Config holds all command configuration. The groups are embedded so that
// envconfig keeps their variables directly under Prefix (SQMATRIX_LOG_LEVEL,
// not SQMATRIX_LOGGING_LOG_LEVEL).
type Config struct {
	LogConfig
	OutputConfig
	KernelConfig
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"warn"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// OutputConfig selects how factors are printed.
type OutputConfig struct {
	Format string `envconfig:"FORMAT" default:"text"`
}

// KernelConfig holds the default algorithm choices.
type KernelConfig struct {
	Pivoting string `envconfig:"PIVOTING" default:"partial"`
	Method   string `envconfig:"METHOD" default:"doolittle"`
}

// Load loads configuration from environment variables and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case FormatText, FormatLaTeX, FormatYAML:
	default:
		return fmt.Errorf("config: unknown output format %q", c.Format)
	}
	if _, err := matrix.ParsePivoting(c.Pivoting); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := matrix.ParseMethod(c.Method); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Usage writes the recognized variables with their defaults to w.
func Usage(w io.Writer) error {
	var cfg Config
	return envconfig.Usagef(Prefix, &cfg, w, envconfig.DefaultTableFormat)
}
