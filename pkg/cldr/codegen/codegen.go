// Package codegen renders a set of locale entries into Go source: a locale
// table with one dispatch arm per known name, compiled into the importing
// binary. The cldrgen command is the usual frontend; the package is exported
// so build pipelines can embed generation directly.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"sort"
	"strconv"
	"strings"

	"github.com/localekit/localekit/pkg/cldr"
)

// cldrImportPath is emitted when generating for a package other than cldr.
const cldrImportPath = "github.com/localekit/localekit/pkg/cldr"

// Options control the shape of the generated source file.
type Options struct {
	// PackageName of the emitted file. Defaults to "cldr"; any other value
	// makes the file import and qualify the cldr package.
	PackageName string

	// FuncName of the emitted table constructor. Defaults to "DefaultTable".
	FuncName string
}

// Generate renders Go source for a compiled locale table. Output is
// gofmt-formatted and deterministic: the same entry set always produces the
// same bytes, regardless of input order.
//
// A duplicate or empty locale name signals a corrupt data source and aborts
// generation; entries are never silently deduplicated.
func Generate(entries []cldr.Entry, opts Options) ([]byte, error) {
	if len(entries) == 0 {
		return nil, cldr.ErrNoLocaleData
	}
	if opts.PackageName == "" {
		opts.PackageName = "cldr"
	}
	if opts.FuncName == "" {
		opts.FuncName = "DefaultTable"
	}

	sorted := make([]cldr.Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	for i, entry := range sorted {
		if entry.Name == "" {
			return nil, cldr.ErrEmptyLocaleName
		}
		if i > 0 && sorted[i-1].Name == entry.Name {
			return nil, fmt.Errorf("%w: %q", cldr.ErrDuplicateLocale, entry.Name)
		}
	}

	qual := ""
	prefix := lowerFirst(opts.FuncName)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by cldrgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", opts.PackageName)
	if opts.PackageName != "cldr" {
		fmt.Fprintf(&buf, "import %q\n\n", cldrImportPath)
		qual = "cldr."
	}

	fmt.Fprintf(&buf, "// %sNames holds the known locale names in lexical order.\n", prefix)
	fmt.Fprintf(&buf, "var %sNames = []string{\n", prefix)
	for _, entry := range sorted {
		fmt.Fprintf(&buf, "%s,\n", strconv.Quote(entry.Name))
	}
	fmt.Fprintf(&buf, "}\n\n")

	fmt.Fprintf(&buf, "type %sType struct{}\n\n", prefix)

	fmt.Fprintf(&buf, "// %s returns the locale table compiled into the binary.\n", opts.FuncName)
	fmt.Fprintf(&buf, "func %s() %sTable { return %sType{} }\n\n", opts.FuncName, qual, prefix)

	fmt.Fprintf(&buf, "func (%sType) Names() []string { return %sNames }\n\n", prefix, prefix)

	fmt.Fprintf(&buf, "func (%sType) Lookup(name string) (%sDisplayNames, bool) {\n", prefix, qual)
	fmt.Fprintf(&buf, "switch name {\n")
	for _, entry := range sorted {
		fmt.Fprintf(&buf, "case %s:\n", strconv.Quote(entry.Name))
		fmt.Fprintf(&buf, "return %sDisplayNames{\n", qual)
		writeCategory(&buf, "Languages", entry.DisplayNames.Languages)
		writeCategory(&buf, "Scripts", entry.DisplayNames.Scripts)
		writeCategory(&buf, "Territories", entry.DisplayNames.Territories)
		fmt.Fprintf(&buf, "}, true\n")
	}
	fmt.Fprintf(&buf, "}\n")
	fmt.Fprintf(&buf, "return %sDisplayNames{}, false\n", qual)
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("codegen: format generated source: %w", err)
	}
	return src, nil
}

func writeCategory(buf *bytes.Buffer, field string, labels map[string]string) {
	if len(labels) == 0 {
		return
	}

	keys := make([]string, 0, len(labels))
	for key := range labels {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	fmt.Fprintf(buf, "%s: map[string]string{\n", field)
	for _, key := range keys {
		fmt.Fprintf(buf, "%s: %s,\n", strconv.Quote(key), strconv.Quote(labels[key]))
	}
	fmt.Fprintf(buf, "},\n")
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
