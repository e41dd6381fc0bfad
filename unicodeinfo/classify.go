package unicodeinfo

import "sync"

// info is the packed classification record for a single code point. It is
// computed once per distinct rune and cached; real text reuses the same
// handful of runes many times over; a multi-megabyte document would
// otherwise re-run the same dozen category tests per character.
type info struct {
	rangeName      string
	hasRange       bool
	isLatin        bool
	isCJK          bool
	isHangul       bool
	isKatakana     bool
	isHiragana     bool
	isThai         bool
	isAccentuated  bool
	isCaseVariable bool
	isLower        bool
	isUpper        bool
	isNumeric      bool
	isPunctuation  bool
	isSymbol       bool
	isSeparator    bool
	isUnprintable  bool
	isEmoticon     bool
	isCommonSafe   bool
	isWeirdSafe    bool
}

var (
	cacheMu sync.RWMutex
	cache   = make(map[rune]*info, 4096)

	// asciiCache short-circuits the 0-127 fast path without touching the
	// shared map or its lock; ASCII runs dominate most real documents.
	asciiCache [128]*info
	asciiOnce  sync.Once
)

func classify(r rune) *info {
	if r >= 0 && r < 128 {
		asciiOnce.Do(initASCIICache)
		return asciiCache[r]
	}

	cacheMu.RLock()
	c, ok := cache[r]
	cacheMu.RUnlock()
	if ok {
		return c
	}

	c = compute(r)

	cacheMu.Lock()
	cache[r] = c
	cacheMu.Unlock()
	return c
}

func initASCIICache() {
	for r := rune(0); r < 128; r++ {
		asciiCache[r] = compute(r)
	}
}

func compute(r rune) *info {
	name, has := rangeOf(r)
	c := &info{
		rangeName:      name,
		hasRange:       has,
		isLatin:        isLatinRune(r),
		isCJK:          isCJKRune(r, name),
		isHangul:       isHangulRune(r),
		isKatakana:     isKatakanaRune(r),
		isHiragana:     isHiraganaRune(r),
		isThai:         isThaiRune(r),
		isAccentuated:  isAccentuatedRune(r),
		isCaseVariable: isCaseVariableRune(r),
		isLower:        isLowerRune(r),
		isUpper:        isUpperRune(r),
		isNumeric:      isNumericRune(r),
		isPunctuation:  isPunctuationRune(r, name),
		isSymbol:       isSymbolRune(r, name),
		isSeparator:    isSeparatorRune(r),
		isEmoticon:     containsFold(name, "Emoticons"),
		isCommonSafe:   isCommonSafeRune(r),
		isWeirdSafe:    isWeirdSafeRune(r),
	}
	c.isUnprintable = isUnprintableRune(r, name, c.isSeparator)
	return c
}
