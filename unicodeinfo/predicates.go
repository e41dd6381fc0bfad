package unicodeinfo

import (
	"strings"
	"unicode"

	"github.com/badu/normalizer/assets"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func isLatinRune(r rune) bool { return unicode.Is(unicode.Latin, r) }

func isCJKRune(r rune, rangeName string) bool {
	if unicode.Is(unicode.Han, r) {
		return true
	}
	return containsFold(rangeName, "CJK")
}

func isHangulRune(r rune) bool   { return unicode.Is(unicode.Hangul, r) }
func isKatakanaRune(r rune) bool { return unicode.Is(unicode.Katakana, r) }
func isHiraganaRune(r rune) bool { return unicode.Is(unicode.Hiragana, r) }
func isThaiRune(r rune) bool     { return unicode.Is(unicode.Thai, r) }

func isCaseVariableRune(r rune) bool { return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r) }
func isLowerRune(r rune) bool        { return unicode.IsLower(r) }
func isUpperRune(r rune) bool        { return unicode.IsUpper(r) }
func isNumericRune(r rune) bool      { return unicode.IsDigit(r) || unicode.IsNumber(r) }

func isPunctuationRune(r rune, rangeName string) bool {
	if unicode.IsPunct(r) {
		return true
	}
	return containsFold(rangeName, "Punctuation")
}

func isSymbolRune(r rune, rangeName string) bool {
	if unicode.IsSymbol(r) {
		return true
	}
	return containsFold(rangeName, "Forms") || containsFold(rangeName, "Symbols")
}

func isSeparatorRune(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	switch r {
	case '｜', '+', '<', '>':
		return true
	}
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp, unicode.Pd, unicode.Pc)
}

func isUnprintableRune(r rune, rangeName string, isSeparator bool) bool {
	if isSeparator {
		return false
	}
	if r == 0x1A || r == 0xFEFF {
		return false
	}
	if r >= 0x20 && r < 0x7F {
		return false
	}
	if unicode.Is(unicode.Cc, r) {
		return true
	}
	return containsFold(rangeName, "Control character")
}

func isCommonSafeRune(r rune) bool {
	return strings.ContainsRune(assets.CommonSafeCharacters, r)
}

func isWeirdSafeRune(r rune) bool {
	return strings.ContainsRune(assets.WeirdSafeCharacters, r)
}
