// Package xkb implements the 'xkb' target: one X11 symbols file per layout,
// written to <output>/<layout>/linux.xkb.
package xkb

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/divvun/kbdgen/internal/bundle"
	"github.com/divvun/kbdgen/internal/ctxlog"
	"github.com/divvun/kbdgen/internal/gen"
)

// Module implements the gen.Module interface for this package.
type Module struct{}

// Register wires the xkb target into the registry.
func (m *Module) Register(r *gen.Registry) {
	r.Register("xkb", New)
}

// New constructs the xkb generator. It performs no I/O.
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

// Generate writes a symbols file for every selected layout.
func (g *generator) Generate(ctx context.Context, outputDir string) error {
	logger := ctxlog.FromContext(ctx)

	layouts, err := gen.SelectLayouts(g.bundle, g.opts)
	if err != nil {
		return err
	}

	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		layout := layouts[name]
		symbols, err := layoutToSymbols(name, layout)
		if err != nil {
			return err
		}

		path := filepath.Join(outputDir, name, "linux.xkb")
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(symbols), 0o644); err != nil {
			return err
		}
		logger.Info("Wrote xkb symbols.", "layout", name, "path", path)
	}
	return nil
}

// desktopPlatform picks the platform a symbols file is rendered from: a
// dedicated linux key map when present, the windows one otherwise. Both
// modes must come from the same platform so levels stay consistent.
func desktopPlatform(layout *bundle.Layout) (string, bool) {
	for _, platform := range []string{"linux", "win"} {
		if layout.KeyRows(platform, "default") != nil {
			return platform, true
		}
	}
	return "", false
}

// layoutToSymbols renders one xkb_symbols block. Keys are addressed by row
// and column; the shift level is paired with the default level by position
// where present.
func layoutToSymbols(name string, layout *bundle.Layout) (string, error) {
	platform, ok := desktopPlatform(layout)
	if !ok {
		return "", gen.Buildf("layout '%s' has no linux or win key maps", name)
	}
	defaultRows := layout.KeyRows(platform, "default")
	shiftRows := layout.KeyRows(platform, "shift")

	var sb strings.Builder
	fmt.Fprintf(&sb, "default partial alphanumeric_keys\n")
	fmt.Fprintf(&sb, "xkb_symbols \"basic\" {\n")
	fmt.Fprintf(&sb, "    name[Group1]= %q;\n\n", layout.DisplayName("en", name))

	for r, row := range defaultRows {
		for c, key := range row {
			levels := []string{key}
			if r < len(shiftRows) && c < len(shiftRows[r]) {
				levels = append(levels, shiftRows[r][c])
			}
			fmt.Fprintf(&sb, "    key <R%dC%d> { [ %s ] };\n", r+1, c+1, strings.Join(levels, ", "))
		}
	}

	fmt.Fprintf(&sb, "};\n")
	return sb.String(), nil
}
