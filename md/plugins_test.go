package md

import (
	"testing"

	"gotest.tools/v3/assert"
)

func feedAll(p plugin, s string) {
	runes := []rune(s)
	for _, r := range runes {
		c := newChar(r)
		if p.eligible(c) {
			p.feed(c)
		}
	}
	c := newChar('\n')
	if p.eligible(c) {
		p.feed(c)
	}
}

func TestTooManySymbolOrPunctuationPluginFlagsHeavyPunctuation(t *testing.T) {
	p := &tooManySymbolOrPunctuationPlugin{}
	feedAll(p, "!@#$%^&*()_+-={}[]|\\:;")
	assert.Assert(t, p.ratio() > 0)
}

func TestTooManySymbolOrPunctuationPluginIgnoresCommonPunctuation(t *testing.T) {
	p := &tooManySymbolOrPunctuationPlugin{}
	feedAll(p, "Hello, world! This is fine; really.")
	assert.Equal(t, p.ratio(), float32(0))
}

func TestUnprintablePluginFlagsControlCharacters(t *testing.T) {
	p := &unprintablePlugin{}
	feedAll(p, "abc\x01\x02\x03def")
	assert.Assert(t, p.ratio() > 0)
}

func TestCjkInvalidStopPluginNeedsEnoughCJK(t *testing.T) {
	p := &cjkInvalidStopPlugin{}
	feedAll(p, "丅丄")
	assert.Equal(t, p.ratio(), float32(0))
}

func TestArchaicUpperLowerPluginFlagsAlternatingCase(t *testing.T) {
	p := newArchaicUpperLowerPlugin()
	// Runs made only of ASCII letters are exempt, so the sample is Cyrillic.
	feedAll(p, "пРиВеТ мИр")
	assert.Assert(t, p.ratio() > 0)
}
