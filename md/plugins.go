package md

import "github.com/badu/normalizer/unicodeinfo"

// plugin is the mess-detection contract: eligible characters are fed one by
// one, and ratio reports the chaos evidence accumulated so far. Must never
// go below 0; no upper bound.
type plugin interface {
	eligible(c char) bool
	feed(c char)
	ratio() float32
	name() string
}

func newPlugins() []plugin {
	return []plugin{
		&tooManySymbolOrPunctuationPlugin{},
		&tooManyAccentuatedPlugin{},
		&unprintablePlugin{},
		&suspiciousRangePlugin{},
		&suspiciousDuplicateAccentPlugin{},
		&superWeirdWordPlugin{},
		&cjkInvalidStopPlugin{},
		newArchaicUpperLowerPlugin(),
	}
}

// --- TooManySymbolOrPunctuationPlugin ---

type tooManySymbolOrPunctuationPlugin struct {
	punctuationCount  uint64
	symbolCount       uint64
	characterCount    uint64
	lastPrintable     char
	hasLastPrintable  bool
}

func (p *tooManySymbolOrPunctuationPlugin) name() string { return "TooManySymbolOrPunctuationPlugin" }
func (p *tooManySymbolOrPunctuationPlugin) eligible(c char) bool { return !c.isUnprintable }
func (p *tooManySymbolOrPunctuationPlugin) feed(c char) {
	p.characterCount++
	if (!p.hasLastPrintable || p.lastPrintable.r != c.r) && !c.isCommonSafe {
		if c.isPunctuation {
			p.punctuationCount++
		} else if !c.isNumeric && c.isSymbol && !c.isEmoticon {
			p.symbolCount += 2
		}
	}
	p.lastPrintable = c
	p.hasLastPrintable = true
}
func (p *tooManySymbolOrPunctuationPlugin) ratio() float32 {
	if p.characterCount == 0 {
		return 0
	}
	r := float32(p.punctuationCount+p.symbolCount) / float32(p.characterCount)
	if r >= 0.3 {
		return r
	}
	return 0
}

// --- TooManyAccentuatedPlugin ---

type tooManyAccentuatedPlugin struct {
	characterCount   uint64
	accentuatedCount uint64
}

func (p *tooManyAccentuatedPlugin) name() string         { return "TooManyAccentuatedPlugin" }
func (p *tooManyAccentuatedPlugin) eligible(c char) bool { return c.isAlphabetic }
func (p *tooManyAccentuatedPlugin) feed(c char) {
	p.characterCount++
	if c.isAccentuated {
		p.accentuatedCount++
	}
}
func (p *tooManyAccentuatedPlugin) ratio() float32 {
	if p.characterCount < 8 {
		return 0
	}
	r := float32(p.accentuatedCount) / float32(p.characterCount)
	if r >= 0.35 {
		return r
	}
	return 0
}

// --- UnprintablePlugin ---

type unprintablePlugin struct {
	characterCount   uint64
	unprintableCount uint64
}

func (p *unprintablePlugin) name() string         { return "UnprintablePlugin" }
func (p *unprintablePlugin) eligible(c char) bool { return true }
func (p *unprintablePlugin) feed(c char) {
	if c.isUnprintable {
		p.unprintableCount++
	}
	p.characterCount++
}
func (p *unprintablePlugin) ratio() float32 {
	if p.characterCount == 0 {
		return 0
	}
	return float32(p.unprintableCount) * 8.0 / float32(p.characterCount)
}

// --- SuspiciousDuplicateAccentPlugin ---

type suspiciousDuplicateAccentPlugin struct {
	characterCount   uint64
	successiveCount  uint64
	lastLatin        char
	hasLastLatin     bool
}

func (p *suspiciousDuplicateAccentPlugin) name() string { return "SuspiciousDuplicateAccentPlugin" }
func (p *suspiciousDuplicateAccentPlugin) eligible(c char) bool {
	return c.isAlphabetic && c.isLatin
}
func (p *suspiciousDuplicateAccentPlugin) feed(c char) {
	p.characterCount++
	if p.hasLastLatin && c.isAccentuated && p.lastLatin.isAccentuated {
		if c.isUppercase && p.lastLatin.isUppercase {
			p.successiveCount++
		}
		if unicodeinfo.RemoveAccent(c.r) == unicodeinfo.RemoveAccent(p.lastLatin.r) {
			p.successiveCount++
		}
	}
	p.lastLatin = c
	p.hasLastLatin = true
}
func (p *suspiciousDuplicateAccentPlugin) ratio() float32 {
	if p.characterCount == 0 {
		return 0
	}
	return float32(p.successiveCount) * 2.0 / float32(p.characterCount)
}

// --- SuspiciousRangePlugin ---

type suspiciousRangePlugin struct {
	characterCount                 uint64
	suspiciousSuccessiveRangeCount  uint64
	lastPrintable                   char
	hasLastPrintable                bool
}

func (p *suspiciousRangePlugin) name() string         { return "SuspiciousRangePlugin" }
func (p *suspiciousRangePlugin) eligible(c char) bool { return !c.isUnprintable }
func (p *suspiciousRangePlugin) feed(c char) {
	p.characterCount++

	if c.isWhitespace || c.isPunctuation || c.isCommonSafe {
		p.hasLastPrintable = false
		return
	}

	if !p.hasLastPrintable {
		p.lastPrintable = c
		p.hasLastPrintable = true
		return
	}

	if isSuspiciousSuccessiveRange(p.lastPrintable, c) {
		p.suspiciousSuccessiveRangeCount++
	}

	p.lastPrintable = c
	p.hasLastPrintable = true
}
func (p *suspiciousRangePlugin) ratio() float32 {
	if p.characterCount == 0 {
		return 0
	}
	r := float32(p.suspiciousSuccessiveRangeCount) * 2.0 / float32(p.characterCount)
	if r >= 0.1 {
		return r
	}
	return 0
}

// --- SuperWeirdWordPlugin ---

type superWeirdWordPlugin struct {
	characterCount      uint64
	wordCount            uint64
	badWordCount         uint64
	foreignLongCount     uint64
	isCurrentWordBad     bool
	foreignLongWatch     bool
	badCharacterCount    uint64
	bufferAccentCount    uint64
	buffer               []char
}

func (p *superWeirdWordPlugin) name() string         { return "SuperWeirdWordPlugin" }
func (p *superWeirdWordPlugin) eligible(c char) bool { return true }
func (p *superWeirdWordPlugin) feed(c char) {
	if c.isASCIIAlphabetic {
		p.buffer = append(p.buffer, c)
		if c.isAccentuated {
			p.bufferAccentCount++
		}
		if (!c.isLatin || c.isAccentuated) && !c.isCJK && !c.isHangul && !c.isKatakana && !c.isHiragana && !c.isThai {
			p.foreignLongWatch = true
		}
		return
	}
	if len(p.buffer) == 0 {
		return
	}

	if c.isWhitespace || c.isPunctuation || c.isSeparator {
		p.wordCount++
		bufferLength := uint64(len(p.buffer))
		p.characterCount += bufferLength

		if bufferLength >= 4 {
			if float32(p.bufferAccentCount)/float32(bufferLength) > 0.34 {
				p.isCurrentWordBad = true
			}
			last := p.buffer[len(p.buffer)-1]
			if last.isAccentuated && last.isUppercase {
				p.foreignLongCount++
				p.isCurrentWordBad = true
			}
		}
		if bufferLength >= 24 && p.foreignLongWatch {
			var upperCount int
			for _, bc := range p.buffer {
				if bc.isUppercase {
					upperCount++
				}
			}
			probableCamelCased := upperCount > 0 && float32(upperCount)/float32(bufferLength) <= 0.3
			if !probableCamelCased {
				p.foreignLongCount++
				p.isCurrentWordBad = true
			}
		}

		if p.isCurrentWordBad {
			p.badWordCount++
			p.badCharacterCount += uint64(len(p.buffer))
			p.isCurrentWordBad = false
		}

		p.foreignLongWatch = false
		p.buffer = p.buffer[:0]
		p.bufferAccentCount = 0
	} else if !c.isWeirdSafe && !c.isASCIIDigit && c.isSymbol {
		p.isCurrentWordBad = true
		p.buffer = append(p.buffer, c)
	}
}
func (p *superWeirdWordPlugin) ratio() float32 {
	if p.wordCount <= 10 && p.foreignLongCount == 0 {
		return 0
	}
	if p.characterCount == 0 {
		return 0
	}
	return float32(p.badCharacterCount) / float32(p.characterCount)
}

// --- CjkInvalidStopPlugin ---
//
// GB(Chinese)-based encodings often render the stop incorrectly when
// content overflows, and this is easily detected by watching for the
// overuse of the two bogus "stop" glyphs below.
type cjkInvalidStopPlugin struct {
	wrongStopCount   uint64
	cjkCharacterCount uint64
}

func (p *cjkInvalidStopPlugin) name() string         { return "CjkInvalidStopPlugin" }
func (p *cjkInvalidStopPlugin) eligible(c char) bool { return true }
func (p *cjkInvalidStopPlugin) feed(c char) {
	if c.r == '丅' || c.r == '丄' {
		p.wrongStopCount++
		return
	}
	if c.isCJK {
		p.cjkCharacterCount++
	}
}
func (p *cjkInvalidStopPlugin) ratio() float32 {
	if p.cjkCharacterCount < 16 {
		return 0
	}
	return float32(p.wrongStopCount) / float32(p.cjkCharacterCount)
}

// --- ArchaicUpperLowerPlugin ---

type archaicUpperLowerPlugin struct {
	buf                              bool
	currentASCIIOnly                bool
	characterCountSinceLastSep      uint64
	successiveUpperLowerCount       uint64
	successiveUpperLowerCountFinal  uint64
	characterCount                  uint64
	lastAlphaSeen                    char
	hasLastAlphaSeen                 bool
}

func newArchaicUpperLowerPlugin() *archaicUpperLowerPlugin {
	return &archaicUpperLowerPlugin{currentASCIIOnly: true}
}

func (p *archaicUpperLowerPlugin) name() string         { return "ArchaicUpperLowerPlugin" }
func (p *archaicUpperLowerPlugin) eligible(c char) bool { return true }
func (p *archaicUpperLowerPlugin) feed(c char) {
	if !(c.isAlphabetic && c.isCaseVariable) && p.characterCountSinceLastSep > 0 {
		if p.characterCountSinceLastSep <= 64 && !c.isASCIIDigit && !p.currentASCIIOnly {
			p.successiveUpperLowerCountFinal += p.successiveUpperLowerCount
		}

		p.successiveUpperLowerCount = 0
		p.characterCountSinceLastSep = 0
		p.hasLastAlphaSeen = false
		p.buf = false
		p.characterCount++
		p.currentASCIIOnly = true
		return
	}

	p.currentASCIIOnly = p.currentASCIIOnly && c.isASCII

	if p.hasLastAlphaSeen {
		tmp := p.lastAlphaSeen
		if (c.isUppercase && tmp.isLowercase) || (c.isLowercase && tmp.isUppercase) {
			if p.buf {
				p.successiveUpperLowerCount += 2
				p.buf = false
			} else {
				p.buf = true
			}
		} else {
			p.buf = false
		}
	}

	p.characterCount++
	p.characterCountSinceLastSep++
	p.lastAlphaSeen = c
	p.hasLastAlphaSeen = true
}
func (p *archaicUpperLowerPlugin) ratio() float32 {
	if p.characterCount == 0 {
		return 0
	}
	return float32(p.successiveUpperLowerCountFinal) / float32(p.characterCount)
}
