// Package unicodeinfo classifies individual code points: their named Unicode
// range, script family, case, accentuation and the handful of "safe
// character" classes the mess detector cares about. The Unicode character
// database itself (general category, script membership, canonical
// decomposition) is treated as an external, assumed-available collaborator —
// here backed by the standard library's unicode package and
// golang.org/x/text/unicode/norm, rather than reimplemented.
package unicodeinfo

import (
	"unicode"

	"github.com/badu/normalizer/assets"
)

// Range returns the named Unicode block containing r (e.g. "Basic Latin",
// "Cyrillic"), or "" if r does not fall in any assigned block.
func Range(r rune) string {
	return classify(r).rangeName
}

// IsUnicodeRangeSecondary reports whether a range name is "non-diagnostic"
// for language inference: a diacritical supplement, a presentation-forms
// block, a symbol block, and so on.
func IsUnicodeRangeSecondary(rangeName string) bool {
	for _, kw := range assets.SecondaryRangeKeywords {
		if containsFold(rangeName, kw) {
			return true
		}
	}
	return false
}

func rangeOf(r rune) (string, bool) {
	for name, table := range unicode.Blocks {
		if unicode.Is(table, r) {
			return name, true
		}
	}
	return "", false
}
