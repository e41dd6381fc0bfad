package unicodeinfo

// IsLatin, IsCJK, IsHangul, IsKatakana, IsHiragana and IsThai report the
// script family of r.
func IsLatin(r rune) bool    { return classify(r).isLatin }
func IsCJK(r rune) bool      { return classify(r).isCJK }
func IsHangul(r rune) bool   { return classify(r).isHangul }
func IsKatakana(r rune) bool { return classify(r).isKatakana }
func IsHiragana(r rune) bool { return classify(r).isHiragana }
func IsThai(r rune) bool     { return classify(r).isThai }

// IsAccentuated reports whether r decomposes to a base letter plus a
// combining mark.
func IsAccentuated(r rune) bool { return classify(r).isAccentuated }

// IsCaseVariable reports whether r participates in upper/lower/titlecase.
func IsCaseVariable(r rune) bool { return classify(r).isCaseVariable }
func IsLower(r rune) bool        { return classify(r).isLower }
func IsUpper(r rune) bool        { return classify(r).isUpper }

// IsNumeric reports whether r is a digit or other numeric character.
func IsNumeric(r rune) bool { return classify(r).isNumeric }

// IsPunctuation and IsSymbol report whether r belongs to those general
// categories, folding in a few range-name heuristics the pure category
// tables miss (presentation forms, symbol blocks).
func IsPunctuation(r rune) bool { return classify(r).isPunctuation }
func IsSymbol(r rune) bool      { return classify(r).isSymbol }

// IsSeparator reports whether r is whitespace or a separator/dash-like
// punctuation character.
func IsSeparator(r rune) bool { return classify(r).isSeparator }

// IsUnprintable reports whether r is a control character (excluding the a
// small set of meaningful exceptions: SUB, BOM) that is not also whitespace.
func IsUnprintable(r rune) bool { return classify(r).isUnprintable }

// IsEmoticon reports whether r falls in an "Emoticons" Unicode block.
func IsEmoticon(r rune) bool { return classify(r).isEmoticon }

// IsCommonSafe and IsWeirdSafe report whether r is one of the punctuation
// characters the mess detector always tolerates.
func IsCommonSafe(r rune) bool { return classify(r).isCommonSafe }
func IsWeirdSafe(r rune) bool  { return classify(r).isWeirdSafe }

// HasRange reports whether Range(r) found an assigned Unicode block.
func HasRange(r rune) bool { return classify(r).hasRange }
