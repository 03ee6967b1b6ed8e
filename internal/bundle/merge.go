package bundle

import "github.com/divvun/kbdgen/internal/overrides"

// applyOverlay writes the overlay into the raw configuration in place.
// Scalars replace whatever sits at their path; where both sides hold a
// mapping the merge recurses. This runs before typed decoding, so an
// override can supply a value the bundle's own files omit.
func applyOverlay(raw map[string]any, overlay overrides.Tree) {
	for key, val := range overlay {
		switch v := val.(type) {
		case overrides.Tree:
			sub, ok := raw[key].(map[string]any)
			if !ok {
				sub = map[string]any{}
				raw[key] = sub
			}
			applyOverlay(sub, v)
		case string:
			raw[key] = v
		}
	}
}
