package encoding

import (
	"sync"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// overlayCodec builds a stateless 1:1 single-byte codec from a sparse patch
// table: bytes absent from Patch fall back to the identity mapping (ISO8859-1
// numerics), so a codec that only disagrees with ISO8859-1 on a handful of
// code points — Turkish's ISO8859-9, say — only has to list those few bytes
// rather than all 256. Not suitable for multi-byte or shift-state code pages.
type overlayCodec struct {
	transform.NopResetter
	toByte map[rune]byte
	toRune [256][]byte
	once   sync.Once

	// Patch maps specific bytes to runes that diverge from the ISO8859-1
	// identity assumption. utf8.RuneError marks a byte as invalid for this
	// code page. ReplacementChar substitutes unmapped runes on encode; it
	// defaults to encoding.ASCIISub when every byte below 128 stays ASCII.
	Patch           map[byte]rune
	ReplacementChar byte
}

type overlayDecoder struct {
	transform.NopResetter
	toRune [256][]byte
}

type overlayEncoder struct {
	transform.NopResetter
	toByte  map[rune]byte
	replace byte
}

// Init builds the forward/reverse tables once, ahead of first use.
func (c *overlayCodec) Init() {
	c.once.Do(c.build)
}

func (c *overlayCodec) build() {
	c.toByte = make(map[rune]byte)
	asciiClean := true

	for i := 0; i < 256; i++ {
		r, overridden := c.Patch[byte(i)]
		if !overridden {
			r = rune(i)
		}
		if r < 128 && r != rune(i) {
			asciiClean = false
		}
		if r != utf8.RuneError {
			c.toByte[r] = byte(i)
		}
		buf := make([]byte, utf8.RuneLen(r))
		utf8.EncodeRune(buf, r)
		c.toRune[i] = buf
	}
	if asciiClean && c.ReplacementChar == 0 {
		c.ReplacementChar = encoding.ASCIISub
	}
}

// NewDecoder converts bytes in this code page to UTF-8; unmapped bytes decode
// to the replacement rune baked into toRune at build time.
func (c *overlayCodec) NewDecoder() *encoding.Decoder {
	c.Init()
	return &encoding.Decoder{Transformer: &overlayDecoder{toRune: c.toRune}}
}

// NewEncoder converts UTF-8 to this code page; runes with no entry in toByte
// fall back to ReplacementChar.
func (c *overlayCodec) NewEncoder() *encoding.Encoder {
	c.Init()
	return &encoding.Encoder{
		Transformer: &overlayEncoder{
			toByte:  c.toByte,
			replace: c.ReplacementChar,
		},
	}
}

func (d *overlayDecoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int

	for _, b := range src {
		enc := d.toRune[b]
		if nDst+len(enc) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], enc)
		nSrc++
	}
	return nDst, nSrc, nil
}

func (d *overlayEncoder) Transform(dst, src []byte, atEOF bool) (int, int, error) {
	var nDst, nSrc int

	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}

		r, sz := utf8.DecodeRune(src[nSrc:])
		if r == utf8.RuneError && sz == 1 && !atEOF && !utf8.FullRune(src[nSrc:]) {
			return nDst, nSrc, transform.ErrShortSrc
		}

		if b, ok := d.toByte[r]; ok {
			dst[nDst] = b
		} else {
			dst[nDst] = d.replace
		}
		nSrc += sz
		nDst++
	}

	return nDst, nSrc, nil
}
