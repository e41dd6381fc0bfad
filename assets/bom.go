package assets

// BOMMark is a byte-order-mark or declarative signature that uniquely
// identifies an encoding by its leading bytes.
type BOMMark struct {
	Name  string
	Bytes []byte
}

// BOMMarks is ordered longest-prefix-first: utf-32le ("FF FE 00 00") must be
// matched before utf-16le ("FF FE"), and gb18030's 4-byte signature before
// any shorter mark that happens to share a leading byte. Not every named
// signature here resolves through the encoding registry (utf-7 and utf-32
// are recognized as signatures but are not registry-supported codecs); such
// a signature is still reported with its length by BOM/SIG detection, but
// the probe pipeline ignores it and skips no bytes for it.
var BOMMarks = []BOMMark{
	{"utf-32be", []byte{0x00, 0x00, 0xFE, 0xFF}},
	{"utf-32le", []byte{0xFF, 0xFE, 0x00, 0x00}},
	{"gb18030", []byte{0x84, 0x31, 0x95, 0x33}},
	{"utf-8", []byte{0xEF, 0xBB, 0xBF}},
	{"utf-7", []byte{0x2B, 0x2F, 0x76, 0x38, 0x2D}},
	{"utf-7", []byte{0x2B, 0x2F, 0x76, 0x38}},
	{"utf-7", []byte{0x2B, 0x2F, 0x76, 0x39}},
	{"utf-7", []byte{0x2B, 0x2F, 0x76, 0x2B}},
	{"utf-7", []byte{0x2B, 0x2F, 0x76, 0x2F}},
	{"utf-16be", []byte{0xFE, 0xFF}},
	{"utf-16le", []byte{0xFF, 0xFE}},
}
