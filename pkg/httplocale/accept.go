package httplocale

import (
	"cmp"
	"slices"
	"strconv"
	"strings"
)

// maxAcceptLanguageLength caps header processing to bound work on oversized
// Accept-Language headers.
const maxAcceptLanguageLength = 4096

type weightedTag struct {
	tag     string
	quality float64
}

// Negotiate returns the available locale name best matching the
// Accept-Language header, or "" when nothing matches. An exact
// (case-insensitive) tag match always beats a base-language match;
// within each class, higher quality values win.
//
// Example header: "en-GB,en;q=0.9,de;q=0.8" against ["de", "en-GB", "fr"]
// returns "en-GB".
func Negotiate(header string, available []string) string {
	if header == "" || len(available) == 0 {
		return ""
	}

	tags := parseAcceptLanguage(header)
	if len(tags) == 0 {
		return ""
	}

	exact := make(map[string]string, len(available))
	for _, name := range available {
		exact[strings.ToLower(name)] = name
	}

	for _, tag := range tags {
		if name, ok := exact[tag.tag]; ok {
			return name
		}
	}

	for _, tag := range tags {
		base := baseLanguage(tag.tag)
		for _, name := range available {
			if baseLanguage(strings.ToLower(name)) == base {
				return name
			}
		}
	}

	return ""
}

// parseAcceptLanguage splits an Accept-Language header into tags ordered by
// descending quality. Malformed quality values default to 1; wildcard
// entries are dropped.
func parseAcceptLanguage(header string) []weightedTag {
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	var tags []weightedTag
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		langPart, qPart, hasQuality := strings.Cut(part, ";")
		langPart = strings.TrimSpace(langPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if q, ok := strings.CutPrefix(qPart, "q="); ok {
				if parsed, err := strconv.ParseFloat(q, 64); err == nil && parsed >= 0 && parsed <= 1 {
					quality = parsed
				}
			}
		}

		if langPart == "" || langPart == "*" {
			continue
		}

		tags = append(tags, weightedTag{
			tag:     strings.ToLower(langPart),
			quality: quality,
		})
	}

	slices.SortStableFunc(tags, func(a, b weightedTag) int {
		return cmp.Compare(b.quality, a.quality)
	})

	return tags
}

func baseLanguage(tag string) string {
	if i := strings.IndexByte(tag, '-'); i > 0 {
		return tag[:i]
	}
	return tag
}
