// Package transform provides the row and column transformations applied
// to the literature-review tables before figure generation.
package transform

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// TrimLower removes leading whitespace from each part and, when lower is
// set, lowercases it. Trailing whitespace is kept.
func TrimLower(parts []string, lower bool) []string {
	out := make([]string, len(parts))
	for i, p := range parts {
		p = strings.TrimLeftFunc(p, unicode.IsSpace)
		if lower {
			p = strings.ToLower(p)
		}
		out[i] = p
	}
	return out
}

// NormalizeText applies NFKC normalization, trims surrounding whitespace,
// and strips control characters. Used on header names coming out of
// spreadsheet exports, which tend to pick up stray formatting.
func NormalizeText(text string) string {
	normed := norm.NFKC.String(text)
	normed = strings.TrimSpace(normed)
	normed = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, normed)
	return normed
}
