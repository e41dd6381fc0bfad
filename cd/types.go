package cd

import "github.com/badu/normalizer/assets"

// Match pairs an inferred language with its coherence score in [0, 1].
type Match struct {
	Language assets.Language
	Score    float32
}

// Matches is a list of Match, typically sorted by Score descending.
type Matches []Match

// Languages returns just the language component of each match, preserving
// order.
func (m Matches) Languages() []assets.Language {
	out := make([]assets.Language, len(m))
	for i, match := range m {
		out[i] = match.Language
	}
	return out
}

// Best returns the highest-scoring match, or (Match{}, false) if empty.
func (m Matches) Best() (Match, bool) {
	if len(m) == 0 {
		return Match{}, false
	}
	best := m[0]
	for _, match := range m[1:] {
		if match.Score > best.Score {
			best = match
		}
	}
	return best, true
}
