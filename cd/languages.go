package cd

import (
	"sort"
	"strings"

	"github.com/badu/normalizer/assets"
	"github.com/badu/normalizer/internal/cache"
	"github.com/badu/normalizer/unicodeinfo"
)

var encodingLanguagesCache = cache.New(128)

// EncodingLanguages returns the languages a single-byte encoding is most
// associated with, by finding the first non-Latin range its upper half
// covers and looking up which languages use that range. Falls back to
// assets.Unknown when no non-Latin range is found (the common case for
// pure-Latin code pages, which carry no distinguishing signal on their
// own).
func EncodingLanguages(ianaName string) []assets.Language {
	if v, ok := encodingLanguagesCache.Get(ianaName); ok {
		return v.([]assets.Language)
	}
	result := computeEncodingLanguages(ianaName)
	encodingLanguagesCache.Set(ianaName, result)
	return result
}

func computeEncodingLanguages(ianaName string) []assets.Language {
	ranges, err := EncodingUnicodeRange(ianaName)
	if err != nil {
		return []assets.Language{assets.Unknown}
	}
	for _, r := range ranges {
		if !strings.Contains(r, "Latin") {
			return UnicodeRangeLanguages(r)
		}
	}
	return []assets.Language{assets.Unknown}
}

// MbEncodingLanguages returns the single language a multi-byte encoding is
// tightly coupled to, per assets.EncodingToLanguage, or nil if none is
// known.
func MbEncodingLanguages(ianaName string) []assets.Language {
	if lang, ok := assets.EncodingToLanguage[strings.ToLower(ianaName)]; ok {
		return []assets.Language{lang}
	}
	return nil
}

// AlphabetLanguages returns every language in the frequency table whose
// alphabet shares at least 20% of its characters with the given character
// set, ranked by overlap ratio descending. When ignoreNonLatin is true,
// only pure-Latin languages are considered; when the source text contains
// accented characters, languages with no accents in their own alphabet are
// skipped (an accented source can't plausibly be an unaccented language).
func AlphabetLanguages(characters []rune, ignoreNonLatin bool) []assets.Language {
	sourceSet := make(map[rune]bool, len(characters))
	sourceHasAccents := false
	for _, r := range characters {
		sourceSet[r] = true
		if unicodeinfo.IsAccentuated(r) {
			sourceHasAccents = true
		}
	}

	type scored struct {
		language assets.Language
		ratio    float64
	}
	var candidates []scored

	for _, entry := range assets.Languages {
		if ignoreNonLatin && !entry.PureLatin {
			continue
		}
		if !entry.HasAccents && sourceHasAccents {
			continue
		}

		languageSet := make(map[rune]bool)
		for _, r := range entry.Alphabet {
			languageSet[r] = true
		}
		if len(languageSet) == 0 {
			continue
		}

		var shared int
		for r := range languageSet {
			if sourceSet[r] {
				shared++
			}
		}
		ratio := float64(shared) / float64(len(languageSet))
		if ratio >= 0.2 {
			candidates = append(candidates, scored{entry.Language, ratio})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool { return candidates[i].ratio > candidates[j].ratio })

	out := make([]assets.Language, len(candidates))
	for i, c := range candidates {
		out[i] = c.language
	}
	return out
}
