package bundle

import "strings"

// ProjectDesc is the localized name and description of a project. For
// mobile keyboards the name doubles as the app title.
type ProjectDesc struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// ProjectMeta is the metadata stored in the bundle's project.yaml.
type ProjectMeta struct {
	// Locales maps a language code to the project description in that
	// language. The "en" locale is required.
	Locales map[string]ProjectDesc `yaml:"locales"`

	Author       string `yaml:"author"`
	Email        string `yaml:"email"`
	Copyright    string `yaml:"copyright"`
	Organisation string `yaml:"organisation"`
}

// Layout is one keyboard layout, loaded from layouts/<name>.yaml.
type Layout struct {
	// DisplayNames maps a language code to the layout's name in that
	// language.
	DisplayNames map[string]string `yaml:"displayNames"`

	// Modes maps a platform identifier ("win", "mac", "ios", ...) to that
	// platform's key maps. Each key map is a block of text where every line
	// is one key row and keys are separated by whitespace.
	Modes map[string]map[string]string `yaml:"modes"`

	// Strings carried onto some OS keyboards, such as the space and return
	// key captions.
	Strings map[string]string `yaml:"strings,omitempty"`
}

// KeyRows splits the named mode of the named platform into rows of keys.
// It returns nil when the platform or mode is absent.
func (l *Layout) KeyRows(platform, mode string) [][]string {
	modes, ok := l.Modes[platform]
	if !ok {
		return nil
	}
	block, ok := modes[mode]
	if !ok {
		return nil
	}
	var rows [][]string
	for _, line := range strings.Split(strings.TrimRight(block, "\n"), "\n") {
		if keys := strings.Fields(line); len(keys) > 0 {
			rows = append(rows, keys)
		}
	}
	return rows
}

// DisplayName returns the layout's name for a locale, falling back to "en"
// and then to the provided default.
func (l *Layout) DisplayName(locale, fallback string) string {
	if name, ok := l.DisplayNames[locale]; ok {
		return name
	}
	if name, ok := l.DisplayNames["en"]; ok {
		return name
	}
	return fallback
}

// Bundle is a fully loaded and validated project bundle with the overlay
// already merged in.
type Bundle struct {
	// Path is the bundle directory as given on the command line.
	Path string

	// Name is the bundle directory's base name without the .kbdgen suffix.
	Name string

	Project ProjectMeta
	Layouts map[string]*Layout

	// Targets holds the per-target configuration blocks from
	// targets/<name>.yaml, opaque to the core and consumed by generators.
	Targets map[string]map[string]any
}

// DisplayName returns the English project name, or the bundle name when the
// project carries no usable locale entry.
func (b *Bundle) DisplayName() string {
	if desc, ok := b.Project.Locales["en"]; ok && desc.Name != "" {
		return desc.Name
	}
	return b.Name
}
