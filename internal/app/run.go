package app

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/divvun/kbdgen/internal/bundle"
	"github.com/divvun/kbdgen/internal/ctxlog"
	"github.com/divvun/kbdgen/internal/errs"
	"github.com/divvun/kbdgen/internal/gen"
	"github.com/divvun/kbdgen/internal/overrides"
)

// Run executes one invocation end to end. Any failure from the pipeline is
// classified and reported here, at the single boundary around the
// load/dispatch sequence; nothing is retried and partial progress is
// discarded.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logDiagnostics(ctx)

	if err := a.dispatch(ctx); err != nil {
		return a.report(ctx, err)
	}
	return nil
}

// dispatch walks the pipeline: overlay → load → resolve → construct →
// generate. Each stage's failure short-circuits the rest. At most one
// generator instance is ever constructed, and Generate is invoked at most
// once per process run.
func (a *App) dispatch(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx)

	overlay, err := overrides.Parse(a.config.Overrides)
	if err != nil {
		return errs.Wrap(errs.KindUser, err, "")
	}

	project, err := bundle.Load(ctx, a.config.ProjectPath, overlay)
	if err != nil {
		return err
	}
	// The loader contract forbids an empty result; treat it as a defect,
	// not a user mistake.
	if project == nil {
		return errs.Internal("project parser returned empty project")
	}

	if a.config.DryRun {
		logger.Info("Dry run requested, stopping after validation.", "bundle", project.Name)
		return nil
	}

	construct, ok := a.registry.Lookup(a.config.Target)
	if !ok {
		// The CLI schema already restricts --target to registry keys, but
		// the dispatcher re-checks before constructing anything.
		return errs.User("'%s' is not a valid target.\nValid targets: %s",
			a.config.Target, strings.Join(a.registry.Keys(), ", "))
	}

	outputDir, err := filepath.Abs(a.config.OutputDir)
	if err != nil {
		return errs.Wrap(errs.KindInternal, err, "resolving output directory")
	}

	generator, err := construct(project, gen.Options{
		Target:    a.config.Target,
		OutputDir: outputDir,
		Release:   a.config.Release,
		CI:        a.config.CI,
		Layout:    a.config.Layout,
		Command:   a.config.Command,
		Flags:     a.config.Flags,
	})
	if err != nil {
		return errs.Wrap(errs.KindInternal, err, "constructing generator")
	}
	if generator == nil {
		return errs.Internal("generator constructor for '%s' returned nil", a.config.Target)
	}

	logger.Info("Generating.", "target", a.config.Target, "bundle", project.DisplayName(), "output_dir", generator.OutputDir())
	if err := generator.Generate(ctx, generator.OutputDir()); err != nil {
		var buildErr *gen.BuildError
		if errors.As(err, &buildErr) {
			return errs.Wrap(errs.KindUser, err, "")
		}
		if _, classified := errs.KindOf(err); classified {
			return err
		}
		return errs.Wrap(errs.KindInternal, err, "generation failed")
	}

	logger.Info("Generation finished.", "target", a.config.Target)
	return nil
}

// report logs a classified failure at critical severity and returns it so
// the process exits non-zero. Internal errors additionally instruct the
// user how to capture a verbose trace for a bug report.
func (a *App) report(ctx context.Context, err error) error {
	logger := ctxlog.FromContext(ctx)

	kind, classified := errs.KindOf(err)
	if !classified {
		kind = errs.KindInternal
	}
	logger.Log(ctx, LevelCritical, err.Error())

	if kind == errs.KindInternal {
		logger.Log(ctx, LevelCritical, "You should not be seeing this error. Please report this as a bug.")
		logger.Log(ctx, LevelCritical, "To receive a more detailed trace, add '--logging trace' to your build command and submit it with your bug report.")
		logger.Log(ctx, LevelCritical, "URL: <https://github.com/divvun/kbdgen/issues/>")
	}
	return err
}
