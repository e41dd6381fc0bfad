package normalizer

import (
	"testing"

	"github.com/badu/normalizer/cd"
	"gotest.tools/v3/assert"
)

func TestNewCharsetMatchStripsLeadingBOM(t *testing.T) {
	m, err := NewCharsetMatch(nil, "utf-8", 0, false, cd.Matches{}, strPtr("﻿hello"))
	assert.NilError(t, err)
	assert.Equal(t, m.DecodedPayload(), "hello")
}

func TestCharsetMatchSuitableEncodingsIncludesSubmatches(t *testing.T) {
	m := &CharsetMatch{encoding: "utf-8"}
	m.submatches = append(m.submatches, &CharsetMatch{encoding: "ascii"})
	enc := m.SuitableEncodings()
	assert.DeepEqual(t, enc, []string{"utf-8", "ascii"})
}

func TestCharsetMatchLessPrefersLowerChaos(t *testing.T) {
	a := &CharsetMatch{chaos: 0.1}
	b := &CharsetMatch{chaos: 0.5}
	assert.Assert(t, a.less(b))
	assert.Assert(t, !b.less(a))
}

func TestCharsetMatchLessPrefersHigherCoherenceWhenChaosClose(t *testing.T) {
	a := &CharsetMatch{chaos: 0.10, coherenceMatches: cd.Matches{{Score: 0.9}}}
	b := &CharsetMatch{chaos: 0.105, coherenceMatches: cd.Matches{{Score: 0.2}}}
	assert.Assert(t, a.less(b))
}
