package overrides

import (
	"fmt"
	"strings"
)

// Tree is a nested overlay: each value is either a string scalar or a
// child Tree. An empty Tree applies no overrides.
type Tree map[string]any

// MalformedError reports a -K entry that does not follow path=value form.
type MalformedError struct {
	Pair   string
	Reason string
}

// Error implements the error interface.
func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed override %q: %s", e.Pair, e.Reason)
}

// Parse builds an overlay from raw key=value pairs, in command-line order.
// Each pair is split on the first '=' only; the key is split on '.' into
// path segments. Later pairs win over earlier ones at every conflict point:
// a scalar already present at a path is replaced even when the new insertion
// continues further down the same path, and a subtree is discarded when a
// later pair assigns a scalar to its root.
func Parse(pairs []string) (Tree, error) {
	tree := Tree{}
	for _, pair := range pairs {
		path, value, found := strings.Cut(pair, "=")
		if !found {
			return nil, &MalformedError{Pair: pair, Reason: "missing '='"}
		}
		segments := strings.Split(path, ".")
		for _, seg := range segments {
			if seg == "" {
				return nil, &MalformedError{Pair: pair, Reason: "empty path segment"}
			}
		}
		tree.insert(segments, value)
	}
	return tree, nil
}

func (t Tree) insert(segments []string, value string) {
	node := t
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(Tree)
		if !ok {
			// Missing, or a scalar written by an earlier pair: the later
			// write wins and the scalar is discarded.
			child = Tree{}
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// Flatten re-flattens the tree into dotted-path form. It is the inverse of
// Parse for conflict-free input and exposes the conflict resolution for
// inspection otherwise.
func (t Tree) Flatten() map[string]string {
	flat := map[string]string{}
	t.flattenInto("", flat)
	return flat
}

func (t Tree) flattenInto(prefix string, flat map[string]string) {
	for key, val := range t {
		path := key
		if prefix != "" {
			path = prefix + "." + key
		}
		switch v := val.(type) {
		case Tree:
			v.flattenInto(path, flat)
		case string:
			flat[path] = v
		}
	}
}
