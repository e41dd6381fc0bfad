package assets

// EncodingToLanguage associates a multi-byte encoding with the single
// language it overwhelmingly carries. Used by cd.MbEncodingLanguages: some
// code pages are so tightly coupled to one language that coherence scoring
// can compare against that language alone instead of every table entry.
var EncodingToLanguage = map[string]Language{
	"euc-kr":      Korean,
	"big5":        Chinese,
	"hz":          Chinese, // optional: not every codec table carries hz
	"gbk":         Chinese,
	"gb18030":     Chinese,
	"euc-jp":      Japanese,
	"iso-2022-jp": Japanese,
	"shift_jis":   Japanese,
}
