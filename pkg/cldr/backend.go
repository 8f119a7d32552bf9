package cldr

import (
	"fmt"
	"maps"
)

// Backend bundles a locale table with the auxiliary data resolver operations
// need. All state is fixed during New and read-only afterward, so a single
// Backend may serve unlimited concurrent callers. Multiple independently
// configured backends can coexist; nothing in this package is ambient
// global state.
type Backend struct {
	table     Table
	tzAliases map[string]string
	known     map[string]struct{}
}

// Option configures the Backend during construction.
type Option func(*Backend) error

// New creates a Backend. Without options it serves the locale table compiled
// into the binary and the built-in CLDR timezone alias set.
func New(opts ...Option) (*Backend, error) {
	b := &Backend{
		table:     DefaultTable(),
		tzAliases: defaultTimezoneAliases,
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	names := b.table.Names()
	b.known = make(map[string]struct{}, len(names))
	for _, name := range names {
		b.known[name] = struct{}{}
	}

	return b, nil
}

// WithTable replaces the backend's locale table.
func WithTable(table Table) Option {
	return func(b *Backend) error {
		if table == nil {
			return ErrNilTable
		}
		b.table = table
		return nil
	}
}

// WithEntries replaces the backend's locale table with a static table built
// from the given entries. Duplicate names abort construction.
func WithEntries(entries ...Entry) Option {
	return func(b *Backend) error {
		table, err := NewStaticTable(entries...)
		if err != nil {
			return err
		}
		b.table = table
		return nil
	}
}

// WithTimezoneAliases overlays the built-in timezone alias table with the
// given short-code to IANA zone ID mappings.
func WithTimezoneAliases(aliases map[string]string) Option {
	return func(b *Backend) error {
		merged := make(map[string]string, len(defaultTimezoneAliases)+len(aliases))
		maps.Copy(merged, defaultTimezoneAliases)
		maps.Copy(merged, aliases)
		b.tzAliases = merged
		return nil
	}
}

// KnownNames returns all known locale names in lexical order.
// The returned slice must not be modified.
func (b *Backend) KnownNames() []string {
	return b.table.Names()
}

// Knows reports whether name is a member of the backend's known-locale set.
func (b *Backend) Knows(name string) bool {
	_, ok := b.known[name]
	return ok
}
