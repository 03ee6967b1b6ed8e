package app

import (
	"github.com/divvun/kbdgen/generators/jsonrepr"
	"github.com/divvun/kbdgen/generators/svg"
	"github.com/divvun/kbdgen/generators/xkb"
	"github.com/divvun/kbdgen/internal/gen"
)

// coreModules is the definitive list of generator modules compiled into the
// kbdgen binary. The registry this produces is fixed for the process
// lifetime; unknown targets cannot be registered afterward.
var coreModules = []gen.Module{
	&svg.Module{},
	&xkb.Module{},
	&jsonrepr.Module{},
}

// DefaultRegistry builds the registry of built-in generators. The CLI layer
// uses its keys to validate --target before the dispatcher ever runs.
func DefaultRegistry() *gen.Registry {
	registry := gen.NewRegistry()
	for _, mod := range coreModules {
		mod.Register(registry)
	}
	return registry
}
