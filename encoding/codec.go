package encoding

import (
	"bytes"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/badu/normalizer/assets"
)

// iso88599 patches the Turkish-specific code points ISO8859-1 gets wrong;
// golang.org/x/text/encoding/charmap has no ISO8859-9 table of its own.
var iso88599 = &overlayCodec{Patch: map[byte]rune{
	0xD0: 'Ğ',
	0xDD: 'İ',
	0xDE: 'Ş',
	0xF0: 'ğ',
	0xFD: 'ı',
	0xFE: 'ş',
}}

func init() { iso88599.Init() }

var (
	// ErrUnknownEncoding is returned by Decode/Encode when name does not
	// resolve to a registered encoding.
	ErrUnknownEncoding = errors.New("encoding: unknown encoding")
	// ErrInvalidSequence is returned when the input cannot be decoded (or
	// round-tripped, for strict Encode) without substitution.
	ErrInvalidSequence = errors.New("encoding: invalid byte sequence for encoding")
)

// IsUTF8 and IsASCII report whether name resolves to one of the two
// encodings this package special-cases rather than routing through
// golang.org/x/text (utf-8 passes through unchanged; ascii is a 1:1 subset
// of it).
func IsUTF8(name string) bool {
	e, ok := Lookup(name)
	return ok && e.Name == "utf-8"
}

func IsASCII(name string) bool {
	e, ok := Lookup(name)
	return ok && e.Name == "ascii"
}

// Decode decodes data as name, failing with ErrInvalidSequence if any byte
// sequence would require lossy substitution — the registered x/text codecs
// substitute U+FFFD rather than erroring, so a successful decode containing
// a replacement rune is treated as a failed one.
func Decode(data []byte, name string) (string, error) {
	if IsUTF8(name) {
		if !utf8.Valid(data) {
			return "", ErrInvalidSequence
		}
		return string(data), nil
	}
	if IsASCII(name) {
		for _, b := range data {
			if b >= 0x80 {
				return "", ErrInvalidSequence
			}
		}
		return string(data), nil
	}

	e, ok := Lookup(name)
	if !ok || e.Codec == nil {
		return "", ErrUnknownEncoding
	}

	decoded, err := e.Codec.NewDecoder().Bytes(data)
	if err != nil {
		return "", ErrInvalidSequence
	}
	if bytes.ContainsRune(decoded, utf8.RuneError) {
		return "", ErrInvalidSequence
	}
	return string(decoded), nil
}

// DecodeChunk behaves like Decode, but on failure retries after shaving up
// to maxShave bytes off either end of data, returning the first successful
// decode and the number of bytes trimmed from the front and back
// respectively. This approximates the original decoder's byte-accurate
// consumed-offset bisection without x/text exposing consumed-byte counts on
// decode failure.
func DecodeChunk(data []byte, name string, maxShave int) (decoded string, frontTrim, backTrim int, err error) {
	if decoded, err = Decode(data, name); err == nil {
		return decoded, 0, 0, nil
	}
	for trim := 1; trim <= maxShave; trim++ {
		if trim < len(data) {
			if decoded, err = Decode(data[trim:], name); err == nil {
				return decoded, trim, 0, nil
			}
		}
		if len(data)-trim > 0 {
			if decoded, err = Decode(data[:len(data)-trim], name); err == nil {
				return decoded, 0, trim, nil
			}
		}
		for back := 1; back <= maxShave && trim+back < len(data); back++ {
			if decoded, err = Decode(data[trim:len(data)-back], name); err == nil {
				return decoded, trim, back, nil
			}
		}
	}
	return "", 0, 0, ErrInvalidSequence
}

// Encode encodes s as name. When strict is true, the result is round-trip
// decoded and compared against s, failing with ErrInvalidSequence on any
// mismatch (x/text codecs substitute a replacement byte on encode rather
// than erroring, so a silent lossy encode must be caught by round-tripping).
func Encode(s string, name string, strict bool) ([]byte, error) {
	if IsUTF8(name) {
		return []byte(s), nil
	}
	if IsASCII(name) {
		for _, r := range s {
			if r >= 0x80 {
				if strict {
					return nil, ErrInvalidSequence
				}
			}
		}
		return []byte(s), nil
	}

	e, ok := Lookup(name)
	if !ok || e.Codec == nil {
		return nil, ErrUnknownEncoding
	}

	encoded, err := e.Codec.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, ErrInvalidSequence
	}
	if strict {
		roundTripped, decErr := Decode(encoded, name)
		if decErr != nil || roundTripped != s {
			return nil, ErrInvalidSequence
		}
	}
	return encoded, nil
}

// IdentifyBOM scans the start of data against the known byte-order-mark and
// signature table, returning the longest matching signature's encoding name
// and its byte length, or ("", 0) if none match.
func IdentifyBOM(data []byte) (name string, length int) {
	for _, mark := range assets.BOMMarks {
		if bytes.HasPrefix(data, mark.Bytes) {
			return mark.Name, len(mark.Bytes)
		}
	}
	return "", 0
}

// cpSimilar reports whether two registered single-byte encodings decode at
// least 80% of the 256 byte values identically. The probe pipeline uses it
// to skip a candidate that is similar to one that already failed the chaos
// threshold.
var similarityCache = make(map[[2]string]bool)

func cpSimilar(a, b string) bool {
	if a == b {
		return true
	}
	key := [2]string{a, b}
	if key[0] > key[1] {
		key[0], key[1] = key[1], key[0]
	}
	if v, ok := similarityCache[key]; ok {
		return v
	}
	v := computeCPSimilar(a, b)
	similarityCache[key] = v
	return v
}

// CPSimilar exports cpSimilar for use outside the package (the probe
// pipeline's similarity pruning of candidate encodings).
func CPSimilar(a, b string) bool { return cpSimilar(a, b) }

func computeCPSimilar(a, b string) bool {
	ea, ok := Lookup(a)
	if !ok || ea.Codec == nil || ea.MultiByte {
		return false
	}
	eb, ok := Lookup(b)
	if !ok || eb.Codec == nil || eb.MultiByte {
		return false
	}
	var shared, total int
	for c := 0; c < 256; c++ {
		da, errA := ea.Codec.NewDecoder().Bytes([]byte{byte(c)})
		db, errB := eb.Codec.NewDecoder().Bytes([]byte{byte(c)})
		if errA != nil || errB != nil {
			continue
		}
		total++
		if string(da) == string(db) {
			shared++
		}
	}
	if total == 0 {
		return false
	}
	return float64(shared)/float64(total) >= 0.8
}

// NormalizeName lowercases and trims an encoding label the way the registry
// keys are stored, without resolving aliases. Useful for comparing a raw
// declared-encoding hint before a registry lookup.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
