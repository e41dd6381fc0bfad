package normalizer

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestMatchesAppendFoldsIdenticalDecodeIntoSubmatch(t *testing.T) {
	var ms Matches
	a := &CharsetMatch{encoding: "iso8859-1", decoded: "abc", chaos: 0.1, payloadLen: 3}
	b := &CharsetMatch{encoding: "iso8859-9", decoded: "abc", chaos: 0.1, payloadLen: 3}
	ms.Append(a)
	ms.Append(b)
	assert.Equal(t, ms.Len(), 1)
	assert.DeepEqual(t, ms.At(0).SuitableEncodings(), []string{"iso8859-1", "iso8859-9"})
}

func TestMatchesAppendKeepsDistinctDecodesAsPeers(t *testing.T) {
	var ms Matches
	a := &CharsetMatch{encoding: "utf-8", decoded: "abc", chaos: 0.1, payloadLen: 3}
	b := &CharsetMatch{encoding: "ascii", decoded: "xyz", chaos: 0.2, payloadLen: 3}
	ms.Append(a)
	ms.Append(b)
	assert.Equal(t, ms.Len(), 2)
}

func TestMatchesGetByEncodingFindsSubmatch(t *testing.T) {
	var ms Matches
	a := &CharsetMatch{encoding: "iso8859-1", decoded: "abc", chaos: 0.1, payloadLen: 3}
	b := &CharsetMatch{encoding: "iso8859-9", decoded: "abc", chaos: 0.1, payloadLen: 3}
	ms.Append(a)
	ms.Append(b)
	found, ok := ms.GetByEncoding("iso8859-9")
	assert.Assert(t, ok)
	assert.Equal(t, found.Encoding(), "iso8859-1")
}

func TestMatchesGetBestEmpty(t *testing.T) {
	var ms Matches
	_, ok := ms.GetBest()
	assert.Assert(t, !ok)
}
