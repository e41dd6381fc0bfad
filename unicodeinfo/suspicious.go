package unicodeinfo

import (
	"strings"

	"github.com/badu/normalizer/assets"
)

// IsSuspiciousSuccessiveRange reports whether two adjacent characters'
// Unicode range names are an unlikely pairing — mixed scripts placed side
// by side with no whitespace between them — with exceptions carved out for
// identical ranges, two Latin ranges, a Latin range next to its combining
// diacritical supplement, and the handful of legitimate Japanese/CJK/Hangul
// pairings real text produces. A missing range on either side (hasA/hasB
// false) is always "true" (suspicious), matching the conservative default
// used when a code point falls outside any assigned block.
func IsSuspiciousSuccessiveRange(rangeA string, hasA bool, rangeB string, hasB bool) bool {
	if !hasA || !hasB {
		return true
	}

	if rangeA == rangeB ||
		(strings.Contains(rangeA, "Latin") && strings.Contains(rangeB, "Latin")) ||
		strings.Contains(rangeA, "Emoticons") || strings.Contains(rangeB, "Emoticons") {
		return false
	}

	if (strings.Contains(rangeA, "Latin") || strings.Contains(rangeB, "Latin")) &&
		(strings.Contains(rangeA, "Combining") || strings.Contains(rangeB, "Combining")) {
		return false
	}

	setA := strings.Fields(rangeA)
	setB := strings.Fields(rangeB)
	for _, elem := range intersectWords(setA, setB) {
		if !isSecondaryKeyword(elem) {
			return false
		}
	}

	isJPRange := func(r string) bool { return r == "Hiragana" || r == "Katakana" }
	hasJPA := isJPRange(rangeA)
	hasJPB := isJPRange(rangeB)
	hasCJK := strings.Contains(rangeA, "CJK") || strings.Contains(rangeB, "CJK")
	hasHangul := strings.Contains(rangeA, "Hangul") || strings.Contains(rangeB, "Hangul")
	hasPunctOrForms := strings.Contains(rangeA, "Punctuation") || strings.Contains(rangeB, "Punctuation") ||
		strings.Contains(rangeA, "Forms") || strings.Contains(rangeB, "Forms")
	isAnyBasicLatin := rangeA == "Basic Latin" || rangeB == "Basic Latin"

	switch {
	case hasJPA && hasJPB:
		return false
	case (hasJPA || hasJPB) && hasCJK:
		return false
	case hasCJK && hasHangul:
		return false
	case hasCJK && hasPunctOrForms:
		return false
	case hasHangul && isAnyBasicLatin:
		return false
	}

	return true
}

func intersectWords(a, b []string) []string {
	set := make(map[string]bool, len(b))
	for _, v := range b {
		set[v] = true
	}
	var out []string
	for _, v := range a {
		if set[v] {
			out = append(out, v)
		}
	}
	return out
}

func isSecondaryKeyword(keyword string) bool {
	for _, kw := range assets.SecondaryRangeKeywords {
		if kw == keyword {
			return true
		}
	}
	return false
}
