package normalizer

import (
	"testing"

	"golang.org/x/text/encoding/simplifiedchinese"
	"gotest.tools/v3/assert"
)

func TestFromBytesEmptyInput(t *testing.T) {
	matches, err := FromBytes(nil, nil)
	assert.NilError(t, err)
	best, ok := matches.GetBest()
	assert.Assert(t, ok)
	assert.Equal(t, best.Encoding(), "utf-8")
	assert.Equal(t, best.DecodedPayload(), "")
	assert.Equal(t, best.BOM(), false)
}

func TestFromBytesUTF16LEBom(t *testing.T) {
	matches, err := FromBytes([]byte{0xFF, 0xFE}, nil)
	assert.NilError(t, err)
	best, ok := matches.GetBest()
	assert.Assert(t, ok)
	assert.Equal(t, best.Encoding(), "utf-16le")
	assert.Equal(t, best.BOM(), true)
}

func TestFromBytesGB18030Bom(t *testing.T) {
	matches, err := FromBytes([]byte{0x84, 0x31, 0x95, 0x33}, nil)
	assert.NilError(t, err)
	best, ok := matches.GetBest()
	assert.Assert(t, ok)
	assert.Equal(t, best.Encoding(), "gb18030")
	assert.Equal(t, best.BOM(), true)
}

func TestFromBytesPlainEnglishUTF8(t *testing.T) {
	matches, err := FromBytes([]byte("héllo world!\n"), nil)
	assert.NilError(t, err)
	best, ok := matches.GetBest()
	assert.Assert(t, ok)
	assert.Equal(t, best.Encoding(), "utf-8")
}

func TestFromBytesGB18030BOMStrippedLeadingChar(t *testing.T) {
	encoded, err := simplifiedchinese.GB18030.NewEncoder().String("﻿我没有埋怨")
	assert.NilError(t, err)
	matches, ferr := FromBytes([]byte(encoded), nil)
	assert.NilError(t, ferr)
	best, ok := matches.GetBest()
	assert.Assert(t, ok)
	assert.Assert(t, len(best.DecodedPayload()) > 0)
	first := []rune(best.DecodedPayload())[0]
	assert.Equal(t, first, '我')
}

func TestFromBytesAsciiAboveTooBigSequence(t *testing.T) {
	data := make([]byte, TooBigSequence+1)
	for i := range data {
		data[i] = 'a'
	}
	matches, err := FromBytes(data, nil)
	assert.NilError(t, err)
	best, ok := matches.GetBest()
	assert.Assert(t, ok)
	assert.Equal(t, best.Encoding(), "ascii")
	assert.Equal(t, best.BOM(), false)
}
