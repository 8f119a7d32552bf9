package cldr

import (
	"fmt"
	"sort"
)

// DisplayNames is a per-locale bundle of human-readable labels, keyed by
// display category and then by subtag code. Bundles are built once and never
// mutated; callers must treat the maps as read-only.
type DisplayNames struct {
	Languages   map[string]string `yaml:"languages"`
	Scripts     map[string]string `yaml:"scripts"`
	Territories map[string]string `yaml:"territories"`
}

// Entry pairs a known locale name with its display-name bundle. Entries are
// the unit of data exchanged between the loader, the table builders, and the
// code generator.
type Entry struct {
	Name         string       `yaml:"name"`
	DisplayNames DisplayNames `yaml:"display_names"`
}

// Table resolves a known locale name to its display-name bundle.
// Implementations are read-only after construction and safe for unlimited
// concurrent readers.
type Table interface {
	// Lookup returns the bundle for name. The second return value reports
	// whether name is a member of the known-locale set.
	Lookup(name string) (DisplayNames, bool)

	// Names returns all known locale names in lexical order. The returned
	// slice must not be modified.
	Names() []string
}

type staticTable struct {
	bundles map[string]DisplayNames
	names   []string
}

// NewStaticTable builds a frozen Table from the given entries.
//
// A duplicate name signals a corrupt data source and aborts construction
// with ErrDuplicateLocale; entries are never silently deduplicated.
func NewStaticTable(entries ...Entry) (Table, error) {
	if len(entries) == 0 {
		return nil, ErrNoLocaleData
	}

	bundles := make(map[string]DisplayNames, len(entries))
	names := make([]string, 0, len(entries))

	for _, entry := range entries {
		if entry.Name == "" {
			return nil, ErrEmptyLocaleName
		}
		if _, exists := bundles[entry.Name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateLocale, entry.Name)
		}
		bundles[entry.Name] = entry.DisplayNames
		names = append(names, entry.Name)
	}

	sort.Strings(names)

	return &staticTable{bundles: bundles, names: names}, nil
}

func (t *staticTable) Lookup(name string) (DisplayNames, bool) {
	bundle, ok := t.bundles[name]
	return bundle, ok
}

func (t *staticTable) Names() []string {
	return t.names
}
