package normalizer

import (
	"sort"
	"strings"

	"github.com/badu/normalizer/assets"
	"github.com/badu/normalizer/cd"
	"github.com/badu/normalizer/encoding"
	"github.com/badu/normalizer/unicodeinfo"
)

// CharsetMatch is one candidate result of the probe pipeline: an encoding
// that decoded the input with an acceptable chaos ratio, along with its
// coherence scoring and any other encoding that produced an identical
// decoded string at the same chaos (its submatches).
type CharsetMatch struct {
	encoding         string
	raw              []byte
	payloadLen       int
	charCount        int
	chaos            float32
	bomOrSig         bool
	coherenceMatches cd.Matches
	decoded          string
	submatches       []*CharsetMatch
}

// NewCharsetMatch builds a CharsetMatch for payload decoded (or to be
// decoded) as encName. If decoded is nil, payload is chunk-decoded via the
// encoding registry and any leading U+FEFF is stripped.
func NewCharsetMatch(payload []byte, encName string, chaos float32, bom bool, coherenceMatches cd.Matches, decoded *string) (*CharsetMatch, error) {
	var text string
	if decoded != nil {
		text = *decoded
	} else {
		d, _, _, err := encoding.DecodeChunk(payload, encName, 3)
		if err != nil {
			return nil, err
		}
		text = d
	}
	text = strings.TrimPrefix(text, "﻿")

	return &CharsetMatch{
		encoding:         encName,
		raw:              payload,
		payloadLen:       len(payload),
		charCount:        len([]rune(text)),
		chaos:            chaos,
		bomOrSig:         bom,
		coherenceMatches: coherenceMatches,
		decoded:          text,
	}, nil
}

// Encoding returns the canonical encoding name this match was decoded as.
func (m *CharsetMatch) Encoding() string { return m.encoding }

// EncodingAliases returns the aliases this match's encoding is also known
// by.
func (m *CharsetMatch) EncodingAliases() []string { return encoding.Aliases(m.encoding) }

// BOM reports whether a byte-order-mark or signature identified this
// encoding.
func (m *CharsetMatch) BOM() bool { return m.bomOrSig }

// Chaos returns the mean chaos (mess) ratio in [0, 1] (approximately).
func (m *CharsetMatch) Chaos() float32 { return m.chaos }

// ChaosPercents returns Chaos as a percentage.
func (m *CharsetMatch) ChaosPercents() float32 { return m.chaos * 100 }

// Coherence returns the best coherence score recorded for this match, or 0
// if none was recorded.
func (m *CharsetMatch) Coherence() float32 {
	if best, ok := m.coherenceMatches.Best(); ok {
		return best.Score
	}
	return 0
}

// CoherencePercents returns Coherence as a percentage.
func (m *CharsetMatch) CoherencePercents() float32 { return m.Coherence() * 100 }

// MultiByteUsage reports how much of the decoded text's byte length was
// spent on multi-byte sequences: 1 - chars/bytes.
func (m *CharsetMatch) MultiByteUsage() float32 {
	if m.payloadLen == 0 {
		return 0
	}
	return 1 - float32(m.charCount)/float32(m.payloadLen)
}

// DecodedPayload returns the decoded text.
func (m *CharsetMatch) DecodedPayload() string { return m.decoded }

// Raw returns the original, untouched byte payload this match was decoded
// from.
func (m *CharsetMatch) Raw() []byte { return m.raw }

// Submatch returns the other encodings that produced this exact decoded
// string at this exact chaos.
func (m *CharsetMatch) Submatch() []*CharsetMatch { return m.submatches }

// SuitableEncodings returns this match's encoding followed by each
// submatch's encoding.
func (m *CharsetMatch) SuitableEncodings() []string {
	out := make([]string, 0, 1+len(m.submatches))
	out = append(out, m.encoding)
	for _, s := range m.submatches {
		out = append(out, s.encoding)
	}
	return out
}

// Languages returns the distinct languages this match's coherence scoring
// surfaced, highest-scoring first.
func (m *CharsetMatch) Languages() []assets.Language { return m.coherenceMatches.Languages() }

// MostProbablyLanguage infers a single dominant language: the best
// coherence match if any; else English if ascii is among the suitable
// encodings; else the language mapped from a multi-byte encoding; else the
// first language encoding_languages infers for this encoding; else Unknown.
func (m *CharsetMatch) MostProbablyLanguage() assets.Language {
	if best, ok := m.coherenceMatches.Best(); ok {
		return best.Language
	}
	for _, e := range m.SuitableEncodings() {
		if e == "ascii" {
			return assets.English
		}
	}
	if e, ok := encoding.Lookup(m.encoding); ok && e.MultiByte {
		if langs := cd.MbEncodingLanguages(m.encoding); len(langs) > 0 {
			return langs[0]
		}
	}
	if langs := cd.EncodingLanguages(m.encoding); len(langs) > 0 {
		return langs[0]
	}
	return assets.Unknown
}

// UnicodeRanges returns the distinct Unicode range names present in the
// decoded text, alphabetically sorted.
func (m *CharsetMatch) UnicodeRanges() []string {
	seen := make(map[string]bool)
	for _, r := range m.decoded {
		if unicodeinfo.HasRange(r) {
			seen[unicodeinfo.Range(r)] = true
		}
	}
	out := make([]string, 0, len(seen))
	for name := range seen {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

const floatEpsilon = 1e-6

// less implements the total order over matches: ascending means "more
// relevant first". Matches within 0.01 chaos of each other are instead
// ranked by coherence, then by multi-byte usage; otherwise lower chaos
// wins.
func (m *CharsetMatch) less(other *CharsetMatch) bool {
	deltaMess := m.chaos - other.chaos
	if deltaMess < 0 {
		deltaMess = -deltaMess
	}
	if deltaMess < 0.01 {
		deltaCoherence := m.Coherence() - other.Coherence()
		if deltaCoherence < 0 {
			deltaCoherence = -deltaCoherence
		}
		if deltaCoherence > 0.02 {
			return m.Coherence() > other.Coherence()
		}
		deltaMB := m.MultiByteUsage() - other.MultiByteUsage()
		if deltaMB < 0 {
			deltaMB = -deltaMB
		}
		if deltaMB > floatEpsilon {
			return m.MultiByteUsage() > other.MultiByteUsage()
		}
		return false
	}
	return m.chaos < other.chaos
}

// sameAs reports whether other is a candidate for folding into m as a
// submatch: an identical decoded string at a chaos within floatEpsilon.
func (m *CharsetMatch) sameAs(other *CharsetMatch) bool {
	if m.decoded != other.decoded {
		return false
	}
	delta := m.chaos - other.chaos
	if delta < 0 {
		delta = -delta
	}
	return delta < floatEpsilon
}
