package encoding

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestLookupCanonical(t *testing.T) {
	e, ok := Lookup("ISO8859-1")
	assert.Assert(t, ok)
	assert.Equal(t, e.Name, "iso8859-1")
}

func TestLookupAlias(t *testing.T) {
	e, ok := Lookup("latin1")
	assert.Assert(t, ok)
	assert.Equal(t, e.Name, "iso8859-1")

	e, ok = Lookup("SJIS")
	assert.Assert(t, ok)
	assert.Equal(t, e.Name, "shift_jis")
}

func TestLookupUnknown(t *testing.T) {
	_, ok := Lookup("not-a-real-encoding")
	assert.Assert(t, !ok)
}

func TestMultiByteNamesIncludesEastAsianCodecs(t *testing.T) {
	names := MultiByteNames()
	want := map[string]bool{"big5": true, "gbk": true, "euc-jp": true, "euc-kr": true, "shift_jis": true}
	got := make(map[string]bool, len(names))
	for _, n := range names {
		got[n] = true
	}
	for n := range want {
		assert.Assert(t, got[n], n)
	}
}

func TestAliases(t *testing.T) {
	aliases := Aliases("iso8859-9")
	assert.Assert(t, len(aliases) > 0)
}
