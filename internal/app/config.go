package app

import (
	"errors"
	"log/slog"
)

// Config holds the full, immutable set of parsed command-line input for one
// invocation. It is constructed once by the CLI layer and never mutated.
type Config struct {
	// ProjectPath is the bundle path given as the positional argument.
	ProjectPath string

	// Target selects the generator; validated against the registry keys.
	Target string

	// Overrides are the raw -K key=value pairs, in command-line order.
	Overrides []string

	// OutputDir is where the generator writes artifacts.
	OutputDir string

	DryRun  bool
	Release bool
	CI      bool
	Layout  string
	Command string

	// Flags are opaque pass-through strings for generator-specific use.
	Flags []string

	LogLevel  slog.Level
	LogFormat string
}

// NewConfig validates and freezes a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" {
		return nil, errors.New("ProjectPath is a required configuration field and cannot be empty")
	}
	if cfg.Target == "" {
		return nil, errors.New("Target is a required configuration field and cannot be empty")
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	return &cfg, nil
}
