package overrides

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParse_Empty(t *testing.T) {
	t.Parallel()

	tree, err := Parse(nil)

	require.NoError(t, err)
	require.Empty(t, tree, "no pairs must yield an empty overlay")
}

func TestParse_NestedPaths(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	pairs := []string{
		"targets.win.version=1.2.0",
		"targets.win.uuid=0ed9",
		"project.author=Example Person",
	}

	// --- Act ---
	tree, err := Parse(pairs)

	// --- Assert ---
	require.NoError(t, err)
	want := Tree{
		"targets": Tree{
			"win": Tree{
				"version": "1.2.0",
				"uuid":    "0ed9",
			},
		},
		"project": Tree{
			"author": "Example Person",
		},
	}
	if diff := cmp.Diff(want, tree); diff != "" {
		t.Fatalf("overlay mismatch (-want +got):\n%s", diff)
	}
}

func TestParse_SplitsOnFirstEqualsOnly(t *testing.T) {
	t.Parallel()

	tree, err := Parse([]string{"a.b=x=y"})

	require.NoError(t, err)
	require.Equal(t, map[string]string{"a.b": "x=y"}, tree.Flatten())
}

func TestParse_LastWriteWinsForIdenticalPath(t *testing.T) {
	t.Parallel()

	tree, err := Parse([]string{"a.b=1", "a.b=2"})

	require.NoError(t, err)
	require.Equal(t, map[string]string{"a.b": "2"}, tree.Flatten())
}

// Pins the resolution when a path is both assigned a scalar and extended
// further: the later pair wins at the conflict point, in both directions.
func TestParse_ScalarThenNested(t *testing.T) {
	t.Parallel()

	tree, err := Parse([]string{"a=1", "a.b=2"})

	require.NoError(t, err)
	require.Equal(t, map[string]string{"a.b": "2"}, tree.Flatten(),
		"the earlier scalar assignment to 'a' must be discarded")
}

func TestParse_NestedThenScalar(t *testing.T) {
	t.Parallel()

	tree, err := Parse([]string{"a.b=2", "a=1"})

	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "1"}, tree.Flatten(),
		"the earlier subtree under 'a' must be discarded")
}

func TestParse_EmptyValueIsAllowed(t *testing.T) {
	t.Parallel()

	tree, err := Parse([]string{"project.copyright="})

	require.NoError(t, err)
	require.Equal(t, map[string]string{"project.copyright": ""}, tree.Flatten())
}

func TestParse_Malformed(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		pair string
	}{
		{"missing separator", "target.thing.foo"},
		{"empty path", "=42"},
		{"empty middle segment", "a..b=1"},
		{"leading dot", ".a=1"},
		{"trailing dot", "a.=1"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]string{tc.pair})

			var malformed *MalformedError
			require.ErrorAs(t, err, &malformed)
			require.Equal(t, tc.pair, malformed.Pair)
		})
	}
}

func TestParse_PureOverInput(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	pairs := []string{"a.b=1"}

	// --- Act ---
	_, err := Parse(pairs)
	require.NoError(t, err)
	_, err = Parse(pairs)
	require.NoError(t, err)

	// --- Assert ---
	require.Equal(t, []string{"a.b=1"}, pairs, "input slice must not be mutated")
}
