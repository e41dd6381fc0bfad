package normalizer

import (
	"sort"

	"github.com/badu/normalizer/assets"
	"github.com/badu/normalizer/cd"
	"github.com/badu/normalizer/encoding"
	"github.com/badu/normalizer/md"
)

func lookupEncoding(name string) (string, bool) {
	e, ok := encoding.Lookup(name)
	if !ok {
		return "", false
	}
	return e.Name, true
}

// buildCandidateOrder returns prioritized (deduplicated, in order) followed
// by every remaining registered encoding in registration order.
func buildCandidateOrder(prioritized []string) []string {
	seen := make(map[string]bool, len(prioritized))
	order := make([]string, 0, len(prioritized)+32)
	for _, p := range prioritized {
		if !seen[p] {
			seen[p] = true
			order = append(order, p)
		}
	}
	for _, e := range encoding.All() {
		if !seen[e.Name] {
			seen[e.Name] = true
			order = append(order, e.Name)
		}
	}
	return order
}

func strPtr(s string) *string { return &s }

type fallbackCandidate struct {
	match    *CharsetMatch
	category int // 0 = declared/BOM, 1 = utf-8, 2 = ascii
}

// FromBytes runs the probe pipeline over data, returning every encoding
// that decoded it under the chaos threshold, ranked most relevant first. If
// settings is nil, DefaultSettings is used. The returned Matches is never
// nil; an empty input yields a single default utf-8 match, and a pathological
// input that matches nothing yields an empty Matches when fallback is
// disabled.
func FromBytes(data []byte, settings *Settings) (*Matches, error) {
	if settings == nil {
		settings = DefaultSettings()
	}
	include := normalizedLabels(settings.IncludeEncodings)
	exclude := normalizedLabels(settings.ExcludeEncodings)

	result := &Matches{}

	if len(data) == 0 {
		m, err := NewCharsetMatch(data, "utf-8", 0, false, cd.Matches{}, strPtr(""))
		if err != nil {
			return result, nil
		}
		result.Append(m)
		return result, nil
	}

	length := len(data)
	steps := settings.Steps
	if steps < 1 {
		steps = 1
	}
	chunkSize := settings.ChunkSize
	if chunkSize < 1 || chunkSize > length {
		chunkSize = length
	}
	if length < steps*chunkSize {
		steps = 1
		chunkSize = length
	} else if steps > 1 && length/steps < chunkSize {
		chunkSize = length / steps
	}
	isTooLarge := length > TooBigSequence

	var prioritized []string
	var bomEncoding string
	var bomLen int

	if settings.PreemptiveBehaviour {
		prefixLen := 4096
		if prefixLen > length {
			prefixLen = length
		}
		if hint := assets.ExtractDeclaredEncoding(string(data[:prefixLen])); hint != "" {
			if canon, ok := lookupEncoding(hint); ok {
				prioritized = append(prioritized, canon)
			}
		}
	}
	if name, n := encoding.IdentifyBOM(data); name != "" {
		if canon, ok := lookupEncoding(name); ok {
			prioritized = append(prioritized, canon)
			bomEncoding = canon
			bomLen = n
		}
	}
	prioritized = append(prioritized, "ascii", "utf-8")

	prioritizedSet := make(map[string]bool, len(prioritized))
	for _, p := range prioritized {
		prioritizedSet[p] = true
	}

	order := buildCandidateOrder(prioritized)

	var fallbacks []fallbackCandidate
	var softFailures []string

	for _, encName := range order {
		if len(include) > 0 && !include[encName] {
			continue
		}
		if exclude[encName] {
			continue
		}

		entry, ok := encoding.Lookup(encName)
		if !ok {
			continue
		}

		if encName == "utf-16le" || encName == "utf-16be" {
			if bomEncoding != encName {
				continue
			}
		}

		skipBOM := 0
		isBOMMatch := encName == bomEncoding
		if isBOMMatch {
			skipBOM = bomLen
		}

		end := length
		if isTooLarge && !entry.MultiByte && end > MaxProcessedBytes {
			end = MaxProcessedBytes
		}
		if skipBOM > end {
			continue
		}

		fastDecoded, err := encoding.Decode(data[skipBOM:end], encName)
		if err != nil {
			continue
		}

		skipDueToSimilarity := false
		for _, s := range softFailures {
			if encoding.CPSimilar(s, encName) {
				skipDueToSimilarity = true
				break
			}
		}
		if skipDueToSimilarity {
			continue
		}

		runes := []rune(fastDecoded)
		seqLen := len(runes)
		if seqLen == 0 {
			seqLen = end - skipBOM
		}
		delta := seqLen / steps
		if delta < 1 {
			delta = 1
		}
		maxChunkGaveUp := steps / 4
		if maxChunkGaveUp < 2 {
			maxChunkGaveUp = 2
		}

		var mdRatios []float32
		var chunkTexts []string
		var earlyStopCount int

		for start := 0; start < len(runes); start += delta {
			stop := start + chunkSize
			if stop > len(runes) {
				stop = len(runes)
			}
			if start >= stop {
				break
			}
			chunk := string(runes[start:stop])
			ratio := md.MessRatio(chunk, settings.Threshold)
			mdRatios = append(mdRatios, ratio)
			chunkTexts = append(chunkTexts, chunk)
			if ratio >= settings.Threshold {
				earlyStopCount++
			}
			if earlyStopCount >= maxChunkGaveUp {
				break
			}
		}

		if isTooLarge && !entry.MultiByte && end < length {
			if _, err := encoding.Decode(data[end:], encName); err != nil {
				continue
			}
		}

		var meanMess float32
		if len(mdRatios) > 0 {
			var sum float32
			for _, r := range mdRatios {
				sum += r
			}
			meanMess = sum / float32(len(mdRatios))
		}

		if meanMess >= settings.Threshold || earlyStopCount >= maxChunkGaveUp {
			softFailures = append(softFailures, encName)
			if settings.EnableFallback && prioritizedSet[encName] {
				category := 0
				switch encName {
				case "utf-8":
					category = 1
				case "ascii":
					category = 2
				}
				if m, merr := NewCharsetMatch(data[skipBOM:end], encName, meanMess, isBOMMatch, cd.Matches{}, nil); merr == nil {
					fallbacks = append(fallbacks, fallbackCandidate{m, category})
				}
			}
			continue
		}

		var merged cd.Matches
		if encName != "ascii" {
			var candidateLangs []assets.Language
			if entry.MultiByte {
				candidateLangs = cd.MbEncodingLanguages(encName)
			} else {
				candidateLangs = cd.EncodingLanguages(encName)
			}
			var batches []cd.Matches
			for _, chunk := range chunkTexts {
				batches = append(batches, cd.CoherenceRatio(chunk, settings.LanguageThreshold, candidateLangs))
			}
			merged = cd.MergeCoherenceRatios(batches)
		}

		match, merr := NewCharsetMatch(data[skipBOM:end], encName, meanMess, isBOMMatch, merged, nil)
		if merr != nil {
			continue
		}

		result.Append(match)

		if (meanMess < 0.1 && prioritizedSet[encName]) || isBOMMatch {
			return result, nil
		}
	}

	if result.Len() == 0 && settings.EnableFallback && len(fallbacks) > 0 {
		sort.SliceStable(fallbacks, func(i, j int) bool { return fallbacks[i].category < fallbacks[j].category })
		result.Append(fallbacks[0].match)
	}

	return result, nil
}
