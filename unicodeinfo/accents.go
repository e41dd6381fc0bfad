package unicodeinfo

import (
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// isAccentuatedRune reports whether r's canonical (NFD) decomposition
// contains a combining mark — substituting for a Unicode names lookup
// ("LATIN SMALL LETTER E WITH ACUTE" etc.), which the standard library does
// not expose, with the decomposition the library does expose.
func isAccentuatedRune(r rune) bool {
	decomposed := norm.NFD.String(string(r))
	if len([]rune(decomposed)) < 2 {
		return false
	}
	for _, d := range decomposed {
		if unicode.Is(unicode.Mn, d) {
			return true
		}
	}
	return false
}

// RemoveAccent strips combining marks from r's canonical decomposition and
// returns the base letter. Runes with no accent are returned unchanged.
func RemoveAccent(r rune) rune {
	decomposed := norm.NFD.String(string(r))
	for _, d := range decomposed {
		if !unicode.Is(unicode.Mn, d) {
			return d
		}
	}
	return r
}
