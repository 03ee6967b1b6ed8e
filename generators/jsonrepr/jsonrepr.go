// Package jsonrepr implements the 'json' target: a machine-readable dump of
// the merged, validated bundle, mainly useful for debugging override and
// merge behavior.
package jsonrepr

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/divvun/kbdgen/internal/bundle"
	"github.com/divvun/kbdgen/internal/ctxlog"
	"github.com/divvun/kbdgen/internal/gen"
)

// Module implements the gen.Module interface for this package.
type Module struct{}

// Register wires the json target into the registry.
func (m *Module) Register(r *gen.Registry) {
	r.Register("json", New)
}

// New constructs the json generator. It performs no I/O.
func New(b *bundle.Bundle, opts gen.Options) (gen.Generator, error) {
	return &generator{bundle: b, opts: opts}, nil
}

type generator struct {
	bundle *bundle.Bundle
	opts   gen.Options
}

// OutputDir returns the directory this instance writes into.
func (g *generator) OutputDir() string {
	return g.opts.OutputDir
}

// Generate writes <bundle>.json into outputDir.
func (g *generator) Generate(ctx context.Context, outputDir string) error {
	logger := ctxlog.FromContext(ctx)

	layouts, err := gen.SelectLayouts(g.bundle, g.opts)
	if err != nil {
		return err
	}

	doc := map[string]any{
		"name":    g.bundle.Name,
		"project": g.bundle.Project,
		"layouts": layouts,
		"targets": g.bundle.Targets,
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(outputDir, g.bundle.Name+".json")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	logger.Info("Wrote bundle representation.", "path", path)
	return nil
}
