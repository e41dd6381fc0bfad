package md

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestMessRatioCleanEnglishIsLow(t *testing.T) {
	ratio := MessRatio("The quick brown fox jumps over the lazy dog.", 1.0)
	assert.Assert(t, ratio < 0.2, ratio)
}

func TestMessRatioGarbageIsHigh(t *testing.T) {
	garbage := "\x01\x02\x03\x04\x05\x06\x07\x08aaaa\x01\x02\x03\x04"
	ratio := MessRatio(garbage, 1.0)
	assert.Assert(t, ratio > 0.2, ratio)
}

func TestMessRatioEmptyIsZero(t *testing.T) {
	ratio := MessRatio("", 1.0)
	assert.Equal(t, ratio, float32(0))
}

func TestMessRatioIsMemoized(t *testing.T) {
	text := strings.Repeat("hello world ", 20)
	a := MessRatio(text, 0.2)
	b := MessRatio(text, 0.2)
	assert.Equal(t, a, b)
}

func TestMessRatioStopsEarlyAtThreshold(t *testing.T) {
	garbage := strings.Repeat("\x01\x02\x03\x04", 500)
	ratio := MessRatio(garbage, 0.05)
	assert.Assert(t, ratio >= 0.05)
}
