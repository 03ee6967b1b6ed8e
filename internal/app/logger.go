package app

import (
	"fmt"
	"io"
	"log/slog"
)

// Two levels beyond slog's built-in four, mirroring the CLI's logging
// enumeration: trace sits below debug, critical above error.
const (
	LevelTrace    = slog.LevelDebug - 4
	LevelCritical = slog.LevelError + 4
)

// levelNames maps the CLI's --logging values onto slog levels. The numeric
// ordering follows the conventional 50..5 severity scale.
var levelNames = map[string]slog.Level{
	"critical": LevelCritical, // 50
	"error":    slog.LevelError,
	"warning":  slog.LevelWarn,
	"info":     slog.LevelInfo,
	"debug":    slog.LevelDebug,
	"trace":    LevelTrace, // 5
}

// ParseLevel translates a --logging value into a slog level. Unrecognized
// names are a schema-validation failure at argument-parse time.
func ParseLevel(name string) (slog.Level, error) {
	level, ok := levelNames[name]
	if !ok {
		return 0, fmt.Errorf("invalid logging level %q: must be one of 'critical', 'error', 'warning', 'info', 'debug', 'trace'", name)
	}
	return level, nil
}

// newLogger creates and configures a new slog.Logger instance. It does not
// set the global logger, allowing for isolated logger instances.
func newLogger(level slog.Level, formatStr string, outW io.Writer) *slog.Logger {
	handlerOpts := &slog.HandlerOptions{
		Level: level,
		// Render the two custom levels under their own names instead of
		// slog's "DEBUG-4" / "ERROR+4" notation.
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey {
				return a
			}
			switch a.Value.Any() {
			case LevelTrace:
				a.Value = slog.StringValue("TRACE")
			case LevelCritical:
				a.Value = slog.StringValue("CRITICAL")
			}
			return a
		},
	}

	var handler slog.Handler
	if formatStr == "json" {
		handler = slog.NewJSONHandler(outW, handlerOpts)
	} else {
		handler = slog.NewTextHandler(outW, handlerOpts)
	}

	return slog.New(handler)
}
