package cd

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestEncodingUnicodeRangeRejectsMultiByte(t *testing.T) {
	_, err := EncodingUnicodeRange("big5")
	assert.ErrorIs(t, err, ErrMultiByteEncoding)
}

func TestEncodingUnicodeRangeLatin1(t *testing.T) {
	ranges, err := EncodingUnicodeRange("iso8859-1")
	assert.NilError(t, err)
	assert.Assert(t, len(ranges) > 0)
}

func TestUnicodeRangeLanguagesCyrillic(t *testing.T) {
	langs := UnicodeRangeLanguages("Cyrillic")
	assert.Assert(t, len(langs) > 0)
}

func TestEncodingLanguagesMemoized(t *testing.T) {
	a := EncodingLanguages("iso8859-7")
	b := EncodingLanguages("iso8859-7")
	assert.Equal(t, len(a), len(b))
}

func TestMbEncodingLanguagesKnown(t *testing.T) {
	langs := MbEncodingLanguages("euc-kr")
	assert.Equal(t, len(langs), 1)
}

func TestMbEncodingLanguagesUnknown(t *testing.T) {
	langs := MbEncodingLanguages("not-a-real-encoding")
	assert.Equal(t, len(langs), 0)
}
