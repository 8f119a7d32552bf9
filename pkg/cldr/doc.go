// Package cldr resolves locale attributes (territory, time zone, and
// display names) against a fixed set of known locale records.
//
// All data is assembled once, during construction or code generation, and is
// read-only afterward. Resolver operations are pure synchronous lookups over
// immutable state: no locks, no I/O, no logging, and no limit on concurrent
// callers.
//
// # Backends
//
// A Backend bundles a locale table with a timezone alias table. The zero
// configuration serves the table compiled into the binary:
//
//	backend, err := cldr.New()
//	if err != nil {
//		// invalid configuration
//	}
//
//	region, err := backend.Territory("en-US-u-rg-gbzzzz") // GB
//	zone, err := backend.Timezone("en-US-u-tz-ausyd")     // "Australia/Sydney"
//	names, err := backend.DisplayNames("en-GB")
//
// Backends with independent data sets coexist freely; construct one per
// data set instead of sharing mutable globals:
//
//	table, err := cldr.NewStaticTable(entries...)
//	backend, err := cldr.New(cldr.WithTable(table))
//
// # Resolution order
//
// Territory resolution honors the Unicode "rg" extension keyword before the
// identifier's own region subtag: "en-US-u-rg-gbzzzz" resolves to GB, not
// US. Time zones come exclusively from the "tz" keyword; a locale without
// one fails with ErrNoTimezone even when its territory is resolvable.
//
// Every operation accepts either a raw identifier string or an
// already-parsed localeid.Identifier (the *Of variants), so callers reuse
// whichever form they hold. Failures are ordinary typed errors; branch
// with errors.Is on ErrUnknownLocale, ErrNoTerritory, and ErrNoTimezone.
//
// # Tables
//
// The known-locale set is closed at build time. Tables come in two forms
// with identical contracts: a frozen in-memory table (NewStaticTable) and a
// generated source file with one dispatch arm per known locale, produced by
// the cldrgen tool from YAML locale data (LoadEntries). Duplicate locale
// names are fatal in both paths: they signal a corrupt data source and are
// never silently deduplicated.
package cldr
