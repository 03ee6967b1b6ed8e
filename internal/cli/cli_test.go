package cli

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/divvun/kbdgen/internal/app"
)

var testTargets = []string{"json", "svg", "xkb"}

func TestParse_FullInvocation(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	args := []string{
		"--target", "svg",
		"-K", "project.author=Someone",
		"-K", "targets.win.version=1.2.0",
		"--output", "build/out",
		"--dry-run",
		"-f", "debug-grid",
		"--logging", "debug",
		"smj.kbdgen",
	}
	out := &bytes.Buffer{}

	// --- Act ---
	config, shouldExit, err := Parse(args, out, testTargets)

	// --- Assert ---
	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "smj.kbdgen", config.ProjectPath)
	assert.Equal(t, "svg", config.Target)
	assert.Equal(t, []string{"project.author=Someone", "targets.win.version=1.2.0"}, config.Overrides)
	assert.Equal(t, "build/out", config.OutputDir)
	assert.True(t, config.DryRun)
	assert.Equal(t, []string{"debug-grid"}, config.Flags)
	assert.Equal(t, slog.LevelDebug, config.LogLevel)
}

func TestParse_ShorthandFlags(t *testing.T) {
	t.Parallel()

	args := []string{"-t", "xkb", "-o", "out", "-D", "-R", "-l", "smj", "smj.kbdgen"}

	config, shouldExit, err := Parse(args, &bytes.Buffer{}, testTargets)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "xkb", config.Target)
	assert.Equal(t, "out", config.OutputDir)
	assert.True(t, config.DryRun)
	assert.True(t, config.Release)
	assert.Equal(t, "smj", config.Layout)
}

func TestParse_MissingProject(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-t", "svg"}, &bytes.Buffer{}, testTargets)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "PROJECT")
}

func TestParse_MissingTarget(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"smj.kbdgen"}, &bytes.Buffer{}, testTargets)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "--target")
}

func TestParse_InvalidTargetListsValidOnes(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-t", "amiga", "smj.kbdgen"}, &bytes.Buffer{}, testTargets)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "'amiga' is not a valid target")
	assert.Contains(t, exitErr.Message, "json, svg, xkb")
}

func TestParse_InvalidLoggingLevel(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-t", "svg", "--logging", "verbose", "smj.kbdgen"}, &bytes.Buffer{}, testTargets)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
	assert.Contains(t, exitErr.Message, "invalid logging level")
}

func TestParse_UnknownFlag(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"--bogus", "smj.kbdgen"}, &bytes.Buffer{}, testTargets)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 1, exitErr.Code)
}

func TestParse_ExtraPositionalArguments(t *testing.T) {
	t.Parallel()

	_, _, err := Parse([]string{"-t", "svg", "one.kbdgen", "two.kbdgen"}, &bytes.Buffer{}, testTargets)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Message, "two.kbdgen")
}

func TestParse_Help(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, shouldExit, err := Parse([]string{"-h"}, out, testTargets)

	require.NoError(t, err)
	require.True(t, shouldExit)
	assert.Contains(t, out.String(), "Usage:")
	assert.Contains(t, out.String(), "Valid targets: json, svg, xkb")
}

func TestParse_Version(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}

	_, shouldExit, err := Parse([]string{"--version"}, out, testTargets)

	require.NoError(t, err)
	require.True(t, shouldExit)
	assert.Contains(t, out.String(), "kbdgen "+app.Version)
}
