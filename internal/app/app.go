package app

import (
	"io"
	"log/slog"

	"github.com/divvun/kbdgen/internal/gen"
)

// Version is the version string baked into diagnostics and --version
// output. Overridden at build time via -ldflags.
var Version = "dev"

// App encapsulates one invocation's dependencies: the configured logger,
// the generator registry, and the frozen configuration.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	registry *gen.Registry
	config   *Config
}

// NewApp is the constructor for the application. It builds an isolated
// logger from the configuration and takes the registry the CLI schema was
// validated against. A nil registry selects the built-in generators.
func NewApp(outW io.Writer, config *Config, registry *gen.Registry) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	if registry == nil {
		registry = DefaultRegistry()
	}

	return &App{
		outW:     outW,
		logger:   logger,
		registry: registry,
		config:   config,
	}
}

// Registry returns the application's generator registry. Primarily for
// testing.
func (a *App) Registry() *gen.Registry {
	return a.registry
}
