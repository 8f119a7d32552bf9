// Package localeid parses BCP 47 locale identifiers into a structured,
// immutable representation suitable for attribute resolution.
//
// The package is a thin adapter over golang.org/x/text/language: parsing,
// canonicalization, and subtag validation are delegated to x/text, while the
// resulting Identifier exposes the pieces resolvers care about: language,
// script, region, variants, and the Unicode (-u-) extension keywords that
// carry per-request overrides such as a region ("rg") or time zone ("tz").
//
// # Usage
//
//	id, err := localeid.Parse("en-US-u-rg-gbzzzz-tz-ausyd")
//	if err != nil {
//		// malformed identifier
//	}
//
//	id.Language          // "en"
//	id.Region            // "US"
//	id.Keyword("rg")     // "gbzzzz", true
//	id.Keyword("tz")     // "ausyd", true
//
// Identifiers that are well-formed but contain unregistered subtags (for
// example "xx-unknown") parse successfully; whether they map to a known
// locale is decided later by the resolver that owns the known-locale set.
// Only syntactically malformed input fails with ErrInvalidIdentifier.
//
// Identifier values are plain data: they carry no hidden state, are never
// mutated after Parse returns, and are safe to copy and share between
// goroutines.
package localeid
