package cd

import (
	"strings"
	"unicode"

	"github.com/badu/normalizer/unicodeinfo"
)

// layerKey identifies a discovered Unicode range layer.
type layerKey struct {
	rangeName string
	hasRange  bool
}

// AlphaUnicodeSplit splits decodedSequence into per-script layers: a text
// containing English with a little Hebrew mixed in returns two strings,
// one holding only the Latin letters (lowercased) and one holding only the
// Hebrew letters.
func AlphaUnicodeSplit(decodedSequence string) []string {
	layers := make(map[layerKey]*strings.Builder)
	var order []layerKey

	for _, r := range decodedSequence {
		if !unicode.IsLetter(r) {
			continue
		}
		key := layerKey{unicodeinfo.Range(r), unicodeinfo.HasRange(r)}

		target := key
		for _, discovered := range order {
			if !unicodeinfo.IsSuspiciousSuccessiveRange(discovered.rangeName, discovered.hasRange, key.rangeName, key.hasRange) {
				target = discovered
				break
			}
		}

		b, ok := layers[target]
		if !ok {
			b = &strings.Builder{}
			layers[target] = b
			order = append(order, target)
		}
		b.WriteString(strings.ToLower(string(r)))
	}

	out := make([]string, 0, len(layers))
	for _, k := range order {
		out = append(out, layers[k].String())
	}
	return out
}
