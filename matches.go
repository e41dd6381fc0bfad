package normalizer

import "sort"

// Matches is an ordered collection of CharsetMatch, sorted most-relevant
// first. Use Append to add a candidate respecting submatch folding; the
// zero value is an empty, usable Matches.
type Matches struct {
	items []*CharsetMatch
}

// Len returns the number of distinct matches (submatches are not counted).
func (ms *Matches) Len() int { return len(ms.items) }

// At returns the match at position i.
func (ms *Matches) At(i int) *CharsetMatch { return ms.items[i] }

// Append inserts m, resorting the collection. If m's payload is at most
// TooBigSequence bytes and an existing peer has the same decoded string and
// chaos (within epsilon), m is folded into that peer as a submatch instead
// of kept as a distinct entry.
func (ms *Matches) Append(m *CharsetMatch) {
	if m.payloadLen <= TooBigSequence {
		for _, peer := range ms.items {
			if peer.sameAs(m) {
				peer.submatches = append(peer.submatches, m)
				return
			}
		}
	}
	ms.items = append(ms.items, m)
	sort.SliceStable(ms.items, func(i, j int) bool { return ms.items[i].less(ms.items[j]) })
}

// GetBest returns the single most relevant match, or false if empty.
func (ms *Matches) GetBest() (*CharsetMatch, bool) {
	if len(ms.items) == 0 {
		return nil, false
	}
	return ms.items[0], true
}

// GetByEncoding returns the match whose encoding (or one of its
// submatches') is label, case-sensitively on the canonical name.
func (ms *Matches) GetByEncoding(label string) (*CharsetMatch, bool) {
	for _, m := range ms.items {
		for _, e := range m.SuitableEncodings() {
			if e == label {
				return m, true
			}
		}
	}
	return nil, false
}

// All returns every distinct match, most relevant first.
func (ms *Matches) All() []*CharsetMatch { return ms.items }
