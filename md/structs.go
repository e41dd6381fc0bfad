// Package md implements the mess detector: a battery of independent
// heuristics, each scoring one kind of "this text looks garbled" evidence,
// summed into a single chaos ratio per decoded candidate string.
package md

import (
	"unicode"

	"github.com/badu/normalizer/unicodeinfo"
)

// char is a single decoded rune plus its precomputed classification flags —
// built once per character and handed to every plugin, so no plugin
// re-derives the same category tests. Field layout mirrors the mutually
// exclusive classification chain a real char goes through once: whitespace,
// then (numeric xor alphabetic xor unprintable), with punctuation/symbol/
// script/accent layered on independently.
type char struct {
	r rune

	isASCII         bool
	isASCIIGraphic  bool
	isASCIIAlphabetic bool
	isASCIIDigit    bool

	isWhitespace bool
	isCommonSafe bool
	isWeirdSafe  bool

	isNumeric     bool
	isAlphabetic  bool
	isLowercase   bool
	isUppercase   bool
	isCaseVariable bool
	isUnprintable bool

	isEmoticon  bool
	isSeparator bool

	isPunctuation bool
	isSymbol      bool

	isLatin    bool
	isCJK      bool
	isHangul   bool
	isKatakana bool
	isHiragana bool
	isThai     bool

	isAccentuated bool

	rangeName string
	hasRange  bool
}

func newChar(r rune) char {
	c := char{r: r}

	c.isASCII = r < 128
	if c.isASCII {
		c.isASCIIGraphic = r >= 0x20 && r < 0x7F
		if c.isASCIIGraphic {
			switch {
			case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
				c.isASCIIAlphabetic = true
			case r >= '0' && r <= '9':
				c.isASCIIDigit = true
			}
		}
	}

	c.rangeName = unicodeinfo.Range(r)
	c.hasRange = unicodeinfo.HasRange(r)

	if isWhitespaceRune(r) {
		c.isWhitespace = true
		c.isSeparator = true
	} else {
		c.isCommonSafe = unicodeinfo.IsCommonSafe(r)
		c.isWeirdSafe = unicodeinfo.IsWeirdSafe(r)

		switch {
		case c.isASCIIDigit || unicodeinfo.IsNumeric(r):
			c.isNumeric = true
		case c.isASCIIAlphabetic || isUnicodeAlphabetic(r):
			c.isAlphabetic = true
			if unicodeinfo.IsLower(r) {
				c.isLowercase = true
				c.isCaseVariable = true
			} else if unicodeinfo.IsUpper(r) {
				c.isUppercase = true
				c.isCaseVariable = true
			}
		case !c.isASCIIGraphic && r != 0x1A && r != 0xFEFF && unicodeinfo.IsUnprintable(r):
			c.isUnprintable = true
		}

		c.isEmoticon = unicodeinfo.IsEmoticon(r)
		if !c.isSeparator {
			c.isSeparator = unicodeinfo.IsSeparator(r)
		}
	}

	c.isPunctuation = unicodeinfo.IsPunctuation(r)
	c.isSymbol = unicodeinfo.IsSymbol(r)

	if unicodeinfo.IsLatin(r) {
		c.isLatin = true
	} else {
		c.isCJK = unicodeinfo.IsCJK(r)
		c.isHangul = unicodeinfo.IsHangul(r)
		c.isKatakana = unicodeinfo.IsKatakana(r)
		c.isHiragana = unicodeinfo.IsHiragana(r)
		c.isThai = unicodeinfo.IsThai(r)
	}

	c.isAccentuated = unicodeinfo.IsAccentuated(r)

	return c
}

func isWhitespaceRune(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', 0x85, 0xA0:
		return true
	}
	return false
}

func isUnicodeAlphabetic(r rune) bool {
	return unicode.IsLetter(r)
}
