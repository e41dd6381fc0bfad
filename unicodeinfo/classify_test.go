package unicodeinfo

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestRangeBasicLatin(t *testing.T) {
	name := Range('A')
	assert.Equal(t, name, "Basic Latin")
}

func TestRangeCyrillic(t *testing.T) {
	name := Range('Ш')
	assert.Equal(t, name, "Cyrillic")
}

func TestIsLatin(t *testing.T) {
	assert.Assert(t, IsLatin('e'))
	assert.Assert(t, !IsLatin('Ш'))
}

func TestIsCJK(t *testing.T) {
	assert.Assert(t, IsCJK('字'))
	assert.Assert(t, !IsCJK('a'))
}

func TestIsAccentuated(t *testing.T) {
	assert.Assert(t, IsAccentuated('é'))
	assert.Assert(t, IsAccentuated('ü'))
	assert.Assert(t, !IsAccentuated('e'))
}

func TestRemoveAccent(t *testing.T) {
	assert.Equal(t, RemoveAccent('é'), 'e')
	assert.Equal(t, RemoveAccent('ç'), 'c')
	assert.Equal(t, RemoveAccent('x'), 'x')
}

func TestIsSeparator(t *testing.T) {
	assert.Assert(t, IsSeparator(' '))
	assert.Assert(t, IsSeparator('-'))
	assert.Assert(t, !IsSeparator('a'))
}

func TestIsUnprintable(t *testing.T) {
	assert.Assert(t, IsUnprintable(rune(0x01)))
	assert.Assert(t, !IsUnprintable(rune(0x1A)))
	assert.Assert(t, !IsUnprintable('a'))
}

func TestIsUnicodeRangeSecondary(t *testing.T) {
	assert.Assert(t, IsUnicodeRangeSecondary("Latin Extended-A"))
	assert.Assert(t, IsUnicodeRangeSecondary("General Punctuation"))
	assert.Assert(t, !IsUnicodeRangeSecondary("Basic Latin"))
}
