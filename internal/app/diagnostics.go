package app

import (
	"context"
	"os"
	"runtime"

	"github.com/google/uuid"

	"github.com/divvun/kbdgen/internal/ctxlog"
)

// logDiagnostics dumps the runtime environment for post-mortem debugging.
// It runs once, unconditionally, before any parsing or loading work, so the
// record exists even when a later stage fails immediately.
func (a *App) logDiagnostics(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Runtime diagnostics.",
		"run_id", uuid.NewString(),
		"version", Version,
		"go_version", runtime.Version(),
		"platform", runtime.GOOS+"/"+runtime.GOARCH,
	)
	logger.Log(ctx, LevelTrace, "Process environment.", "env", os.Environ())
}
