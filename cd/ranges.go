// Package cd implements the coherence detector: given a decoded candidate
// string, infer which natural language(s) it is plausibly written in by
// comparing its character-frequency profile against a table of known
// per-language alphabets.
package cd

import (
	"errors"
	"sort"

	"github.com/badu/normalizer/assets"
	gonormencoding "github.com/badu/normalizer/encoding"
	"github.com/badu/normalizer/unicodeinfo"
)

// ErrMultiByteEncoding is returned by EncodingUnicodeRange for a multi-byte
// encoding, which has no meaningful single-byte-to-range mapping.
var ErrMultiByteEncoding = errors.New("cd: function not supported on multi-byte encoding")

// EncodingUnicodeRange returns the Unicode ranges a single-byte encoding's
// upper half (0x40-0xFE) decodes into, keeping only ranges that cover at
// least 15% of the decodable code points and are not "secondary" ranges
// (diacritical supplements, symbol blocks, and the like).
func EncodingUnicodeRange(ianaName string) ([]string, error) {
	entry, ok := gonormencoding.Lookup(ianaName)
	if !ok || entry.Codec == nil {
		return nil, ErrMultiByteEncoding
	}
	if entry.MultiByte {
		return nil, ErrMultiByteEncoding
	}

	counts := make(map[string]int)
	var characterCount int

	for i := 0x40; i < 0xFF; i++ {
		decoded, err := entry.Codec.NewDecoder().Bytes([]byte{byte(i)})
		if err != nil || len(decoded) == 0 {
			continue
		}
		r := []rune(string(decoded))[0]
		rangeName := unicodeinfo.Range(r)
		if rangeName == "" || unicodeinfo.IsUnicodeRangeSecondary(rangeName) {
			continue
		}
		counts[rangeName]++
		characterCount++
	}

	const threshold = 0.15
	var result []string
	for name, count := range counts {
		if characterCount > 0 && float64(count)/float64(characterCount) >= threshold {
			result = append(result, name)
		}
	}
	sort.Strings(result)
	return result, nil
}

// UnicodeRangeLanguages returns every language in the frequency table whose
// alphabet contains a character belonging to primaryRange.
func UnicodeRangeLanguages(primaryRange string) []assets.Language {
	var out []assets.Language
	for _, entry := range assets.Languages {
		for _, r := range entry.Alphabet {
			if unicodeinfo.Range(r) == primaryRange {
				out = append(out, entry.Language)
				break
			}
		}
	}
	return out
}
