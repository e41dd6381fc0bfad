package assets

import "regexp"

// DeclaredEncodingPattern matches a declarative encoding hint in an
// ASCII-decoded prefix of a document: charset="...", encoding="...",
// coding:... or coding=.... Quoting and surrounding whitespace are optional.
var DeclaredEncodingPattern = regexp.MustCompile(
	`(?i)(?:charset|encoding)\s*=\s*"?\s*([a-zA-Z0-9_\-:.]+)\s*"?|coding\s*[:=]\s*"?\s*([a-zA-Z0-9_\-:.]+)\s*"?`,
)

// ExtractDeclaredEncoding returns the raw label captured by
// DeclaredEncodingPattern in text, or "" if no hint is present. Resolving the
// label to a canonical encoding is the caller's job (via the encoding
// registry's by-name lookup).
func ExtractDeclaredEncoding(text string) string {
	m := DeclaredEncodingPattern.FindStringSubmatch(text)
	if m == nil {
		return ""
	}
	if m[1] != "" {
		return m[1]
	}
	return m[2]
}
