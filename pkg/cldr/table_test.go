package cldr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/localekit/localekit/pkg/cldr"
)

func testEntries() []cldr.Entry {
	return []cldr.Entry{
		{
			Name: "en",
			DisplayNames: cldr.DisplayNames{
				Languages:   map[string]string{"en": "English", "de": "German"},
				Scripts:     map[string]string{"Latn": "Latin"},
				Territories: map[string]string{"US": "United States", "GB": "United Kingdom"},
			},
		},
		{
			Name: "de",
			DisplayNames: cldr.DisplayNames{
				Languages:   map[string]string{"en": "Englisch", "de": "Deutsch"},
				Scripts:     map[string]string{"Latn": "Lateinisch"},
				Territories: map[string]string{"US": "Vereinigte Staaten", "GB": "Vereinigtes Königreich"},
			},
		},
	}
}

func TestNewStaticTable(t *testing.T) {
	t.Parallel()

	t.Run("returns exact bundle for every known name", func(t *testing.T) {
		t.Parallel()
		entries := testEntries()
		table, err := cldr.NewStaticTable(entries...)
		require.NoError(t, err)

		for _, entry := range entries {
			bundle, ok := table.Lookup(entry.Name)
			require.True(t, ok, "name %q", entry.Name)
			require.Equal(t, entry.DisplayNames, bundle)
		}
	})

	t.Run("reports unknown names", func(t *testing.T) {
		t.Parallel()
		table, err := cldr.NewStaticTable(testEntries()...)
		require.NoError(t, err)

		for _, name := range []string{"", "fr", "en-US", "not a locale"} {
			_, ok := table.Lookup(name)
			require.False(t, ok, "name %q", name)
		}
	})

	t.Run("sorts names lexically", func(t *testing.T) {
		t.Parallel()
		table, err := cldr.NewStaticTable(testEntries()...)
		require.NoError(t, err)
		assert.Equal(t, []string{"de", "en"}, table.Names())
	})

	t.Run("rejects duplicate names", func(t *testing.T) {
		t.Parallel()
		entries := testEntries()
		entries = append(entries, cldr.Entry{Name: "en"})

		_, err := cldr.NewStaticTable(entries...)
		require.Error(t, err)
		require.ErrorIs(t, err, cldr.ErrDuplicateLocale)
		require.ErrorContains(t, err, `"en"`)
	})

	t.Run("rejects empty names", func(t *testing.T) {
		t.Parallel()
		_, err := cldr.NewStaticTable(cldr.Entry{Name: ""})
		require.Error(t, err)
		require.ErrorIs(t, err, cldr.ErrEmptyLocaleName)
	})

	t.Run("rejects empty entry set", func(t *testing.T) {
		t.Parallel()
		_, err := cldr.NewStaticTable()
		require.Error(t, err)
		require.ErrorIs(t, err, cldr.ErrNoLocaleData)
	})
}

func TestDefaultTable(t *testing.T) {
	t.Parallel()

	t.Run("serves every listed name", func(t *testing.T) {
		t.Parallel()
		table := cldr.DefaultTable()
		for _, name := range table.Names() {
			bundle, ok := table.Lookup(name)
			require.True(t, ok, "name %q", name)
			require.NotEmpty(t, bundle.Languages, "name %q", name)
			require.NotEmpty(t, bundle.Territories, "name %q", name)
		}
	})

	t.Run("dispatch constructs a fresh bundle per call", func(t *testing.T) {
		t.Parallel()
		table := cldr.DefaultTable()

		first, ok := table.Lookup("en")
		require.True(t, ok)
		first.Territories["GB"] = "mutated"

		second, ok := table.Lookup("en")
		require.True(t, ok)
		assert.Equal(t, "United Kingdom", second.Territories["GB"])
	})
}
