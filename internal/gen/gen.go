package gen

import (
	"context"
	"fmt"

	"github.com/divvun/kbdgen/internal/bundle"
)

// Options is the merged set of command-line flags handed verbatim to a
// generator constructor. It is passed by value and never mutated after
// argument parsing.
type Options struct {
	// Target is the identifier the generator was resolved under.
	Target string

	// OutputDir is where artifacts are written. Always absolute by the time
	// a generator sees it.
	OutputDir string

	// Release selects release-mode builds where the platform distinguishes.
	Release bool

	// CI marks a continuous-integration build.
	CI bool

	// Layout restricts generation to a single named layout when non-empty.
	Layout string

	// Command is an auxiliary command line some generators shell out to.
	Command string

	// Flags are opaque generator-specific strings, uninterpreted by the
	// core.
	Flags []string
}

// Generator produces platform-specific build artifacts from a validated
// bundle. A generator instance lives for exactly one invocation.
type Generator interface {
	// OutputDir returns the directory this instance will write into.
	OutputDir() string

	// Generate writes the artifacts. A deliberate, user-reportable failure
	// is returned as a *BuildError; anything else is treated as a defect.
	Generate(ctx context.Context, outputDir string) error
}

// Constructor builds a generator instance for one run. Construction performs
// no I/O; it must not fail except through a contract violation.
type Constructor func(b *bundle.Bundle, opts Options) (Generator, error)

// BuildError is the recognized domain build failure a generator raises
// deliberately. The dispatcher reports it as a user-class message without a
// stack trace.
type BuildError struct {
	Message string
}

// Error implements the error interface.
func (e *BuildError) Error() string {
	return e.Message
}

// Buildf constructs a BuildError from a format string.
func Buildf(format string, args ...any) *BuildError {
	return &BuildError{Message: fmt.Sprintf(format, args...)}
}

// SelectLayouts returns the layouts a run applies to, honoring the --layout
// restriction. Naming a layout the bundle does not contain is a deliberate
// build failure.
func SelectLayouts(b *bundle.Bundle, opts Options) (map[string]*bundle.Layout, error) {
	if opts.Layout == "" {
		return b.Layouts, nil
	}
	layout, ok := b.Layouts[opts.Layout]
	if !ok {
		return nil, Buildf("layout '%s' does not exist in this bundle", opts.Layout)
	}
	return map[string]*bundle.Layout{opts.Layout: layout}, nil
}
