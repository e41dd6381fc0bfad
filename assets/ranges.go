package assets

// SecondaryRangeKeywords names the substrings that, when present in a named
// Unicode block/range, mark it as non-diagnostic for language inference
// (diacritical supplements, presentation forms, symbol blocks and the like).
var SecondaryRangeKeywords = []string{
	"Supplement",
	"Extended",
	"Extensions",
	"Modifier",
	"Marks",
	"Punctuation",
	"Symbols",
	"Forms",
	"Operators",
	"Miscellaneous",
	"Drawing",
	"Block",
	"Shapes",
	"Supplemental",
}

// CommonSafeCharacters are punctuation/whitespace characters so common across
// scripts that the mess detector never counts them as suspicious.
const CommonSafeCharacters = " ,;:!?./-\"'()[]{}"

// WeirdSafeCharacters are symbols tolerated inside a SuperWeirdWord buffer
// without marking the word bad (markup-ish characters common in real text).
const WeirdSafeCharacters = "<>-=~|_"
