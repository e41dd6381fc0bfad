package encoding

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestDecodeUTF8(t *testing.T) {
	s, err := Decode([]byte("héllo"), "utf-8")
	assert.NilError(t, err)
	assert.Equal(t, s, "héllo")
}

func TestDecodeUTF8Invalid(t *testing.T) {
	_, err := Decode([]byte{0xFF, 0xFE, 0xFD}, "utf-8")
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestDecodeASCIIRejectsHighBit(t *testing.T) {
	_, err := Decode([]byte{0x80}, "ascii")
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestDecodeLatin1RoundTrip(t *testing.T) {
	encoded, err := Encode("café", "iso8859-1", true)
	assert.NilError(t, err)

	decoded, err := Decode(encoded, "iso8859-1")
	assert.NilError(t, err)
	assert.Equal(t, decoded, "café")
}

func TestEncodeStrictRejectsUnencodable(t *testing.T) {
	_, err := Encode("日本語", "iso8859-1", true)
	assert.ErrorIs(t, err, ErrInvalidSequence)
}

func TestEncodeNonStrictSubstitutes(t *testing.T) {
	encoded, err := Encode("日本語", "iso8859-1", false)
	assert.NilError(t, err)
	assert.Assert(t, len(encoded) > 0)
}

func TestIdentifyBOMUTF8Sig(t *testing.T) {
	name, n := IdentifyBOM([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	assert.Equal(t, name, "utf-8")
	assert.Equal(t, n, 3)
}

func TestIdentifyBOMUTF32LEBeforeUTF16LE(t *testing.T) {
	name, n := IdentifyBOM([]byte{0xFF, 0xFE, 0x00, 0x00})
	assert.Equal(t, name, "utf-32le")
	assert.Equal(t, n, 4)
}

func TestIdentifyBOMNone(t *testing.T) {
	name, n := IdentifyBOM([]byte("plain text"))
	assert.Equal(t, name, "")
	assert.Equal(t, n, 0)
}

func TestCPSimilarIdentical(t *testing.T) {
	assert.Assert(t, CPSimilar("iso8859-1", "iso8859-1"))
}

func TestCPSimilarUnrelated(t *testing.T) {
	assert.Assert(t, !CPSimilar("iso8859-1", "iso8859-7"))
}
