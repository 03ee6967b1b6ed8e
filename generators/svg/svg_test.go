package svg

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/divvun/kbdgen/internal/bundle"
	"github.com/divvun/kbdgen/internal/gen"
)

func testBundle() *bundle.Bundle {
	return &bundle.Bundle{
		Name: "smj",
		Project: bundle.ProjectMeta{
			Locales: map[string]bundle.ProjectDesc{"en": {Name: "Julev Sámi Keyboard"}},
			Author:  "Example Person",
			Email:   "person@example.com",
		},
		Layouts: map[string]*bundle.Layout{
			"smj": {
				DisplayNames: map[string]string{"en": "Julev Sámi"},
				Modes: map[string]map[string]string{
					"win": {"default": "á w e\na s d\n"},
				},
			},
			"mobile-only": {
				Modes: map[string]map[string]string{
					"ios": {"default": "a b c\n"},
				},
			},
		},
	}
}

func TestGenerate_WritesSVGAndIndex(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	outDir := t.TempDir()
	g, err := New(testBundle(), gen.Options{Target: "svg", OutputDir: outDir})
	require.NoError(t, err)

	// --- Act ---
	require.NoError(t, g.Generate(context.Background(), outDir))

	// --- Assert ---
	svgData, err := os.ReadFile(filepath.Join(outDir, "smj.svg"))
	require.NoError(t, err)
	require.Contains(t, string(svgData), `<svg xmlns="http://www.w3.org/2000/svg"`)
	require.Contains(t, string(svgData), ">á</text>")

	_, err = os.Stat(filepath.Join(outDir, "mobile-only.svg"))
	require.True(t, os.IsNotExist(err), "layouts without desktop key maps are skipped")

	index, err := os.ReadFile(filepath.Join(outDir, "layout.html"))
	require.NoError(t, err)
	require.Contains(t, string(index), "<h1>Julev Sámi Keyboard</h1>")
	require.Contains(t, string(index), `<a href="smj.svg">Julev Sámi</a>`)
}

func TestGenerate_NoDesktopLayoutsIsBuildError(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	b := testBundle()
	delete(b.Layouts, "smj")
	g, err := New(b, gen.Options{OutputDir: t.TempDir()})
	require.NoError(t, err)

	// --- Act ---
	err = g.Generate(context.Background(), g.OutputDir())

	// --- Assert ---
	var buildErr *gen.BuildError
	require.ErrorAs(t, err, &buildErr)
	require.Contains(t, err.Error(), "no layouts with desktop key maps")
}

func TestGenerate_LayoutRestriction(t *testing.T) {
	t.Parallel()

	outDir := t.TempDir()
	g, err := New(testBundle(), gen.Options{OutputDir: outDir, Layout: "smj"})
	require.NoError(t, err)

	require.NoError(t, g.Generate(context.Background(), outDir))

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	require.ElementsMatch(t, []string{"smj.svg", "layout.html"}, names)
}
