package bundle

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/divvun/kbdgen/internal/ctxlog"
	"github.com/divvun/kbdgen/internal/errs"
	"github.com/divvun/kbdgen/internal/overrides"
)

// rawBundle mirrors the on-disk layout as one mergeable tree. The overlay
// addresses it by top-level section: project.*, layouts.*, targets.*.
type rawBundle = map[string]any

// typedBundle is the schema the merged tree is decoded into.
type typedBundle struct {
	Project ProjectMeta               `yaml:"project"`
	Layouts map[string]*Layout        `yaml:"layouts"`
	Targets map[string]map[string]any `yaml:"targets"`
}

// Load reads the bundle at path, merges the overlay into the raw
// configuration, then decodes and validates the result. Overlay application
// happens strictly before validation, so overrides can make an otherwise
// invalid bundle valid.
func Load(ctx context.Context, path string, overlay overrides.Tree) (*Bundle, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(path)
	if err != nil {
		return nil, errs.User("cannot open bundle %q: %v", path, err)
	}
	if !info.IsDir() {
		return nil, errs.User("bundle %q is not a directory", path)
	}

	raw, err := readRaw(path)
	if err != nil {
		return nil, err
	}

	applyOverlay(raw, overlay)
	logger.Debug("Overlay merged into raw configuration.", "overrides", len(overlay.Flatten()))

	buf, err := yaml.Marshal(raw)
	if err != nil {
		return nil, errs.Wrap(errs.KindInternal, err, "re-encoding merged configuration")
	}
	var typed typedBundle
	if err := yaml.Unmarshal(buf, &typed); err != nil {
		return nil, errs.Wrap(errs.KindUser, err, "merged configuration does not match the bundle schema")
	}

	b := &Bundle{
		Path:    path,
		Name:    strings.TrimSuffix(filepath.Base(filepath.Clean(path)), ".kbdgen"),
		Project: typed.Project,
		Layouts: typed.Layouts,
		Targets: typed.Targets,
	}
	if b.Targets == nil {
		b.Targets = map[string]map[string]any{}
	}
	if err := validate(b); err != nil {
		return nil, err
	}

	logger.Debug("Bundle loaded.", "name", b.Name, "layouts", len(b.Layouts))
	return b, nil
}

// readRaw assembles the bundle's files into a single raw tree without any
// typed decoding.
func readRaw(path string) (rawBundle, error) {
	project, err := readYAMLFile(filepath.Join(path, "project.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.User("bundle %q has no project.yaml", path)
		}
		return nil, err
	}

	layouts, err := readYAMLDir(filepath.Join(path, "layouts"))
	if err != nil {
		return nil, err
	}
	targets, err := readYAMLDir(filepath.Join(path, "targets"))
	if err != nil {
		return nil, err
	}

	return rawBundle{
		"project": project,
		"layouts": layouts,
		"targets": targets,
	}, nil
}

// readYAMLDir decodes every .yaml file in dir, keyed by file name without
// extension. A missing directory yields an empty map; whether that is
// acceptable is for validation to decide.
func readYAMLDir(dir string) (map[string]any, error) {
	out := map[string]any{}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return nil, errs.Wrap(errs.KindInternal, err, "reading bundle directory")
	}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".yaml") {
			continue
		}
		node, err := readYAMLFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		out[strings.TrimSuffix(name, ".yaml")] = node
	}
	return out, nil
}

// readYAMLFile decodes one file into an untyped tree. Syntax errors become
// parse errors naming the file; yaml.v3 embeds the line marker in its
// message.
func readYAMLFile(file string) (map[string]any, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	var node map[string]any
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, errs.Parse(file, err)
	}
	return node, nil
}

// validate enforces the bundle's semantic requirements. It runs only after
// the overlay has been merged.
func validate(b *Bundle) error {
	if len(b.Project.Locales) == 0 {
		return errs.User("bundle %q: project.yaml defines no locales", b.Path)
	}
	if _, ok := b.Project.Locales["en"]; !ok {
		return errs.User("bundle %q: project.yaml must define the \"en\" locale", b.Path)
	}
	if b.Project.Author == "" {
		return errs.User("bundle %q: project.yaml is missing the author field", b.Path)
	}
	if b.Project.Email == "" {
		return errs.User("bundle %q: project.yaml is missing the email field", b.Path)
	}
	if len(b.Layouts) == 0 {
		return errs.User("bundle %q contains no layouts", b.Path)
	}
	return nil
}
