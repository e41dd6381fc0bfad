package cd

import (
	"testing"

	"github.com/badu/normalizer/assets"
	"gotest.tools/v3/assert"
)

func TestJaroSimilarityIdentical(t *testing.T) {
	assert.Equal(t, jaroSimilarity("abc", "abc"), float32(1))
}

func TestJaroSimilarityEmpty(t *testing.T) {
	assert.Equal(t, jaroSimilarity("", ""), float32(1))
	assert.Equal(t, jaroSimilarity("abc", ""), float32(0))
}

func TestJaroSimilarityCloseMatch(t *testing.T) {
	s := jaroSimilarity("martha", "marhta")
	assert.Assert(t, s > 0.9, s)
}

func TestAlphaUnicodeSplitSeparatesScripts(t *testing.T) {
	layers := AlphaUnicodeSplit("helloПривет")
	assert.Equal(t, len(layers), 2)
}

func TestAlphaUnicodeSplitIgnoresNonLetters(t *testing.T) {
	layers := AlphaUnicodeSplit("123 456!!!")
	assert.Equal(t, len(layers), 0)
}

func TestCharactersPopularityCompareUnknownLanguage(t *testing.T) {
	_, err := CharactersPopularityCompare(assets.Language("Klingon"), "abc")
	assert.ErrorContains(t, err, "not found")
}

func TestFilterAltCoherenceMatchesKeepsBestPerLanguage(t *testing.T) {
	in := Matches{
		{Language: assets.English, Score: 0.5},
		{Language: assets.English, Score: 0.9},
		{Language: assets.French, Score: 0.3},
	}
	out := FilterAltCoherenceMatches(in)
	assert.Equal(t, len(out), 2)
	for _, m := range out {
		if m.Language == assets.English {
			assert.Equal(t, m.Score, float32(0.9))
		}
	}
}

func TestCoherenceRatioDetectsEnglish(t *testing.T) {
	text := `The quick brown fox jumps over the lazy dog again and again while the
	sun sets slowly behind the distant mountains every single evening without fail`
	matches := CoherenceRatio(text, 0.1, nil)
	best, ok := matches.Best()
	assert.Assert(t, ok)
	assert.Equal(t, best.Language, assets.English)
}

func TestCoherenceRatioEmptyIsEmpty(t *testing.T) {
	matches := CoherenceRatio("", 0.1, nil)
	assert.Equal(t, len(matches), 0)
}
