package localeid

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// Identifier is a parsed BCP 47 locale identifier.
// All fields hold canonicalized subtags as produced by x/text.
type Identifier struct {
	// Language is the primary language subtag (e.g. "en"). Never empty for
	// a parsed identifier; "und" when the input carried no language.
	Language string

	// Script is the ISO 15924 script subtag (e.g. "Latn"), or empty.
	Script string

	// Region is the ISO 3166-1 region subtag (e.g. "US"), or empty.
	Region string

	// Variants holds registered variant subtags in their original order.
	Variants []string

	// Extensions maps Unicode (-u-) extension keyword keys to their subtag
	// values, e.g. "rg" -> ["gbzzzz"]. Keys and values are lowercase.
	Extensions map[string][]string

	// CanonicalName is the known-locale name this identifier resolved to.
	// It is empty until annotated by a resolver that owns a known-locale
	// set; when set, it is guaranteed to be a member of that set.
	CanonicalName string

	raw string
}

// Parse parses a BCP 47 locale identifier string.
//
// Well-formed identifiers with unregistered subtags parse successfully;
// only syntactically malformed input fails with ErrInvalidIdentifier.
func Parse(input string) (Identifier, error) {
	if input == "" {
		return Identifier{}, ErrEmptyIdentifier
	}

	tag, err := language.Parse(input)
	if err != nil {
		// A ValueError flags well-formed but unregistered subtags; the
		// returned tag is still usable. Anything else is a syntax error.
		var verr language.ValueError
		if !errors.As(err, &verr) {
			return Identifier{}, fmt.Errorf("%w: %q: %v", ErrInvalidIdentifier, input, err)
		}
	}

	id := FromTag(tag)
	id.raw = input
	return id, nil
}

// FromTag converts an already-parsed language tag into an Identifier.
func FromTag(tag language.Tag) Identifier {
	id := Identifier{}

	canonical := tag.String()
	main := canonical
	if i := strings.Index(canonical, "-x-"); i >= 0 {
		main = canonical[:i]
	}

	parts := strings.Split(main, "-")
	id.Language = parts[0]

	i := 1
	if i < len(parts) && len(parts[i]) == 4 && isAlpha(parts[i]) {
		id.Script = parts[i]
		i++
	}
	if i < len(parts) && isRegionSubtag(parts[i]) {
		id.Region = parts[i]
		i++
	}
	for ; i < len(parts) && len(parts[i]) > 1; i++ {
		id.Variants = append(id.Variants, parts[i])
	}

	for _, ext := range tag.Extensions() {
		s := ext.String()
		if !strings.HasPrefix(s, "u-") {
			continue
		}
		id.Extensions = parseUnicodeKeywords(strings.Split(s, "-")[1:])
		break
	}

	return id
}

// Keyword returns the value of a Unicode extension keyword such as "rg" or
// "tz". Multi-subtag values are joined with "-".
func (id Identifier) Keyword(key string) (string, bool) {
	values, ok := id.Extensions[key]
	if !ok || len(values) == 0 {
		return "", false
	}
	return strings.Join(values, "-"), true
}

// Raw returns the original input string the identifier was parsed from,
// falling back to the canonical form for identifiers built by hand.
// Error paths use it to report the caller's input verbatim.
func (id Identifier) Raw() string {
	if id.raw != "" {
		return id.raw
	}
	return id.String()
}

// String returns the canonical string form of the identifier, excluding the
// CanonicalName annotation.
func (id Identifier) String() string {
	parts := make([]string, 0, 4+len(id.Variants))
	lang := id.Language
	if lang == "" {
		lang = "und"
	}
	parts = append(parts, lang)
	if id.Script != "" {
		parts = append(parts, id.Script)
	}
	if id.Region != "" {
		parts = append(parts, id.Region)
	}
	parts = append(parts, id.Variants...)

	if len(id.Extensions) > 0 {
		keys := make([]string, 0, len(id.Extensions))
		for key := range id.Extensions {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		parts = append(parts, "u")
		for _, key := range keys {
			parts = append(parts, key)
			parts = append(parts, id.Extensions[key]...)
		}
	}

	return strings.Join(parts, "-")
}

// parseUnicodeKeywords splits the token list of a -u- extension into a
// keyword map. Tokens of length 2 start a new keyword; everything after a
// keyword up to the next one is its value. Leading attribute tokens (which
// precede the first keyword) are not keyword data and are skipped.
func parseUnicodeKeywords(tokens []string) map[string][]string {
	keywords := make(map[string][]string)
	key := ""
	for _, tok := range tokens {
		if len(tok) == 2 {
			key = tok
			if _, exists := keywords[key]; !exists {
				keywords[key] = nil
			}
			continue
		}
		if key != "" {
			keywords[key] = append(keywords[key], tok)
		}
	}
	if len(keywords) == 0 {
		return nil
	}
	return keywords
}

func isAlpha(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if (c < 'a' || c > 'z') && (c < 'A' || c > 'Z') {
			return false
		}
	}
	return true
}

func isRegionSubtag(s string) bool {
	if len(s) == 2 && isAlpha(s) {
		return true
	}
	if len(s) != 3 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
