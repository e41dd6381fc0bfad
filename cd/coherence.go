package cd

import (
	"fmt"
	"sort"

	"github.com/badu/normalizer/assets"
	"github.com/badu/normalizer/internal/cache"
)

// CharactersPopularityCompare scores how well ordered_characters (letters of
// a decoded text, ordered most-to-least frequent) matches language's own
// frequency-ordered alphabet, as a Jaro similarity in [0, 1]. Returns an
// error if language isn't in the frequency table.
func CharactersPopularityCompare(language assets.Language, orderedCharacters string) (float32, error) {
	entry, ok := assets.LanguageByName(language)
	if !ok {
		return 0, fmt.Errorf("cd: language %q not found", language)
	}
	return jaroSimilarity(orderedCharacters, entry.Alphabet), nil
}

// FilterAltCoherenceMatches keeps only the single best score per language —
// a coherence pass commonly surfaces "English" (or "Japanese") more than
// once across layers, and only the strongest showing should count.
func FilterAltCoherenceMatches(results Matches) Matches {
	best := make(map[assets.Language]float32, len(results))
	for _, r := range results {
		if r.Score > best[r.Language] {
			best[r.Language] = r.Score
		}
	}
	out := make(Matches, 0, len(best))
	for lang, score := range best {
		out = append(out, Match{Language: lang, Score: score})
	}
	return out
}

// MergeCoherenceRatios averages the score of each language across several
// independent CoherenceRatio results, returning the combined list sorted by
// score descending.
func MergeCoherenceRatios(results []Matches) Matches {
	sums := make(map[assets.Language]float32)
	counts := make(map[assets.Language]int)
	for _, batch := range results {
		for _, m := range batch {
			sums[m.Language] += m.Score
			counts[m.Language]++
		}
	}
	merged := make(Matches, 0, len(sums))
	for lang, sum := range sums {
		merged = append(merged, Match{Language: lang, Score: sum / float32(counts[lang])})
	}
	sort.SliceStable(merged, func(i, j int) bool { return merged[i].Score > merged[j].Score })
	return merged
}

var coherenceRatioCache = cache.New(2048)

// CoherenceRatio is the main entry point: it layers decodedSequence by
// script, scores each layer's character-frequency profile against every
// candidate language (or just includeLanguages, if given), and returns the
// combined, deduplicated, score-sorted result. threshold discards matches
// scoring below it; the scan stops early once 3 (layer, language) scores of
// at least 0.8 have been recorded, whether from one layer or several.
func CoherenceRatio(decodedSequence string, threshold float32, includeLanguages []assets.Language) Matches {
	cacheKey := fmt.Sprintf("%s\x00%.6f\x00%v", decodedSequence, threshold, includeLanguages)
	if v, ok := coherenceRatioCache.Get(cacheKey); ok {
		return v.(Matches)
	}
	result := computeCoherenceRatio(decodedSequence, threshold, includeLanguages)
	coherenceRatioCache.Set(cacheKey, result)
	return result
}

func computeCoherenceRatio(decodedSequence string, threshold float32, includeLanguages []assets.Language) Matches {
	ignoreNonLatin := len(includeLanguages) == 1 && includeLanguages[0] == assets.Unknown
	if ignoreNonLatin {
		includeLanguages = nil
	}

	var results Matches
	var sufficientMatchCount int

	const tooSmallSequence = 32

layerLoop:
	for _, layer := range AlphaUnicodeSplit(decodedSequence) {
		runes := []rune(layer)
		if len(runes) <= tooSmallSequence {
			continue
		}

		ordered := mostCommonOrdered(runes)

		languages := includeLanguages
		if len(languages) == 0 {
			languages = AlphabetLanguages(ordered, ignoreNonLatin)
		}

		orderedString := string(ordered)

		for _, language := range languages {
			ratio, err := CharactersPopularityCompare(language, orderedString)
			if err != nil {
				continue
			}
			if ratio < threshold {
				continue
			}
			if ratio >= 0.8 {
				sufficientMatchCount++
			}
			results = append(results, Match{Language: language, Score: ratio})
			if sufficientMatchCount >= 3 {
				break layerLoop
			}
		}
	}

	results = FilterAltCoherenceMatches(results)
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	return results
}

// mostCommonOrdered returns the distinct runes of text ordered by
// occurrence count descending, breaking ties by the rune's own natural
// order (ascending) for deterministic output.
func mostCommonOrdered(runes []rune) []rune {
	counts := make(map[rune]int, len(runes))
	for _, r := range runes {
		counts[r]++
	}
	distinct := make([]rune, 0, len(counts))
	for r := range counts {
		distinct = append(distinct, r)
	}
	sort.Slice(distinct, func(i, j int) bool {
		if counts[distinct[i]] != counts[distinct[j]] {
			return counts[distinct[i]] > counts[distinct[j]]
		}
		return distinct[i] < distinct[j]
	})
	return distinct
}
