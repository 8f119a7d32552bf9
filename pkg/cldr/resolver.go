package cldr

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"

	"github.com/localekit/localekit/pkg/localeid"
)

// regionOverrideSuffix is the fixed padding the "rg" extension keyword
// appends to a region code ("gbzzzz" carries region "GB").
const regionOverrideSuffix = "zzzz"

// ParseLocale parses input and annotates the resulting identifier with the
// known-locale name it maps to, if any. Parse errors propagate unchanged.
func (b *Backend) ParseLocale(input string) (localeid.Identifier, error) {
	id, err := localeid.Parse(input)
	if err != nil {
		return localeid.Identifier{}, err
	}
	id.CanonicalName = b.canonicalName(id)
	return id, nil
}

// Territory parses the locale string and resolves its territory.
// See TerritoryOf for the resolution order.
func (b *Backend) Territory(locale string) (language.Region, error) {
	id, err := localeid.Parse(locale)
	if err != nil {
		return language.Region{}, err
	}
	return b.TerritoryOf(id)
}

// TerritoryOf resolves the territory of an already-parsed identifier.
//
// The "rg" extension keyword wins over the identifier's own region subtag;
// an identifier carrying neither fails with ErrNoTerritory. There is no
// fallback to a default or world territory.
func (b *Backend) TerritoryOf(id localeid.Identifier) (language.Region, error) {
	if override, ok := id.Keyword("rg"); ok {
		region, err := decodeRegionOverride(override)
		if err != nil {
			return language.Region{}, fmt.Errorf("%w: region override %q in %q", ErrNoTerritory, override, id.Raw())
		}
		return region, nil
	}

	if id.Region != "" {
		region, err := language.ParseRegion(id.Region)
		if err == nil {
			return region, nil
		}
	}

	return language.Region{}, fmt.Errorf("%w: %q", ErrNoTerritory, id.Raw())
}

// Timezone parses the locale string and resolves its time zone.
// See TimezoneOf for the resolution rules.
func (b *Backend) Timezone(locale string) (string, error) {
	id, err := localeid.Parse(locale)
	if err != nil {
		return "", err
	}
	return b.TimezoneOf(id)
}

// TimezoneOf resolves the IANA time zone ID of an already-parsed identifier.
//
// The only source is the "tz" extension keyword mapped through the backend's
// alias table ("ausyd" resolves to "Australia/Sydney"). A missing keyword or
// an unmapped short code fails with ErrNoTimezone; a resolvable territory
// never implies a zone.
func (b *Backend) TimezoneOf(id localeid.Identifier) (string, error) {
	code, ok := id.Keyword("tz")
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNoTimezone, id.Raw())
	}

	zone, ok := b.tzAliases[code]
	if !ok {
		return "", fmt.Errorf("%w: unmapped short code %q in %q", ErrNoTimezone, code, id.Raw())
	}
	return zone, nil
}

// DisplayNames returns the display-name bundle of a known locale. The input
// is treated as a literal name candidate and dispatched without parsing.
func (b *Backend) DisplayNames(name string) (DisplayNames, error) {
	if bundle, ok := b.table.Lookup(name); ok {
		return bundle, nil
	}
	return DisplayNames{}, fmt.Errorf("%w: %q", ErrUnknownLocale, name)
}

// DisplayNamesOf returns the display-name bundle of the known locale the
// identifier maps to. An identifier with no resolvable canonical name fails
// with ErrUnknownLocale carrying the caller's original input.
func (b *Backend) DisplayNamesOf(id localeid.Identifier) (DisplayNames, error) {
	name := id.CanonicalName
	if name == "" {
		name = b.canonicalName(id)
	}
	if name != "" {
		if bundle, ok := b.table.Lookup(name); ok {
			return bundle, nil
		}
	}
	return DisplayNames{}, fmt.Errorf("%w: %q", ErrUnknownLocale, id.Raw())
}

// canonicalName maps an identifier to a member of the known-locale set by
// trying progressively less specific forms: language-script-region,
// language-region, language-script, then bare language. Variants and
// extensions never participate in the match.
func (b *Backend) canonicalName(id localeid.Identifier) string {
	candidates := []string{
		joinSubtags(id.Language, id.Script, id.Region),
		joinSubtags(id.Language, id.Region),
		joinSubtags(id.Language, id.Script),
		id.Language,
	}

	for _, candidate := range candidates {
		if candidate == "" {
			continue
		}
		if _, ok := b.known[candidate]; ok {
			return candidate
		}
	}
	return ""
}

// decodeRegionOverride decodes an "rg" keyword value: a 2-letter region code
// padded with a fixed "zzzz" suffix. The decoded code must be a member of
// the closed region set.
func decodeRegionOverride(value string) (language.Region, error) {
	if len(value) != 6 || !strings.HasSuffix(value, regionOverrideSuffix) {
		return language.Region{}, fmt.Errorf("malformed region override %q", value)
	}
	return language.ParseRegion(strings.ToUpper(value[:2]))
}

func joinSubtags(subtags ...string) string {
	parts := subtags[:0:0]
	for _, s := range subtags {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) < 2 {
		return ""
	}
	return strings.Join(parts, "-")
}
