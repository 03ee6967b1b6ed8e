// Package svg implements the 'svg' target: a simple SVG rendering of every
// layout that carries a desktop key map, plus an HTML index linking them.
package svg

import (
	"context"
	"fmt"
	"html"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/divvun/kbdgen/internal/bundle"
	"github.com/divvun/kbdgen/internal/ctxlog"
	"github.com/divvun/kbdgen/internal/gen"
)

// desktopPlatforms are the key map platforms an SVG can be rendered from,
// in preference order.
var desktopPlatforms = []string{"linux", "win", "mac", "chrome", "desktop"}

const (
	keySize    = 48
	keyPadding = 4
)

// Module implements the gen.Module interface for this package.
type Module struct{}

// Register wires the svg target into the registry.
func (m *Module) Register(r *gen.Registry) {
	r.Register("svg", New)
}

// New constructs the svg generator. It performs no I/O.
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

// supportedLayouts filters the selection down to layouts that have at least
// one desktop key map.
func (g *generator) supportedLayouts() (map[string]*bundle.Layout, error) {
	selected, err := gen.SelectLayouts(g.bundle, g.opts)
	if err != nil {
		return nil, err
	}
	supported := map[string]*bundle.Layout{}
	for name, layout := range selected {
		if rows := desktopRows(layout); rows != nil {
			supported[name] = layout
		}
	}
	return supported, nil
}

// Generate writes one SVG per supported layout and a layout.html index.
func (g *generator) Generate(ctx context.Context, outputDir string) error {
	logger := ctxlog.FromContext(ctx)

	layouts, err := g.supportedLayouts()
	if err != nil {
		return err
	}
	if len(layouts) == 0 {
		return gen.Buildf("bundle '%s' has no layouts with desktop key maps", g.bundle.Name)
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return err
	}

	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		path := filepath.Join(outputDir, name+".svg")
		if err := os.WriteFile(path, []byte(renderSVG(desktopRows(layouts[name]))), 0o644); err != nil {
			return err
		}
		logger.Info("Wrote layout rendering.", "layout", name, "path", path)
	}

	indexPath := filepath.Join(outputDir, "layout.html")
	if err := os.WriteFile(indexPath, []byte(g.renderIndex(names, layouts)), 0o644); err != nil {
		return err
	}
	logger.Info("Wrote layout index.", "path", indexPath)
	return nil
}

// desktopRows returns the first desktop default key map a layout defines.
func desktopRows(layout *bundle.Layout) [][]string {
	for _, platform := range desktopPlatforms {
		if rows := layout.KeyRows(platform, "default"); rows != nil {
			return rows
		}
	}
	return nil
}

// renderSVG draws the key rows as a grid of captioned squares.
func renderSVG(rows [][]string) string {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d">`,
		width*(keySize+keyPadding), len(rows)*(keySize+keyPadding))
	sb.WriteString("\n")
	for r, row := range rows {
		for c, key := range row {
			x := c * (keySize + keyPadding)
			y := r * (keySize + keyPadding)
			fmt.Fprintf(&sb, `  <rect x="%d" y="%d" width="%d" height="%d" rx="4" fill="none" stroke="black"/>`,
				x, y, keySize, keySize)
			sb.WriteString("\n")
			fmt.Fprintf(&sb, `  <text x="%d" y="%d" text-anchor="middle" font-size="16">%s</text>`,
				x+keySize/2, y+keySize/2+6, html.EscapeString(key))
			sb.WriteString("\n")
		}
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

// renderIndex builds the layout.html page linking every rendered layout.
func (g *generator) renderIndex(names []string, layouts map[string]*bundle.Layout) string {
	var sb strings.Builder
	sb.WriteString("<!doctype html>\n<html>\n<head>\n")
	fmt.Fprintf(&sb, "  <title>%s</title>\n", html.EscapeString(g.bundle.DisplayName()))
	sb.WriteString("</head>\n<body>\n")
	fmt.Fprintf(&sb, "  <h1>%s</h1>\n", html.EscapeString(g.bundle.DisplayName()))
	for _, name := range names {
		display := layouts[name].DisplayName("en", name)
		fmt.Fprintf(&sb, "  <p><a href=\"%s.svg\">%s</a></p>\n", name, html.EscapeString(display))
	}
	sb.WriteString("</body>\n</html>\n")
	return sb.String()
}
