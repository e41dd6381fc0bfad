// Package encoding adapts golang.org/x/text/encoding into a small registry
// of canonical names, aliases and multi-byte flags, plus strict decode/encode
// helpers that fail rather than silently substitute on invalid input.
package encoding

import (
	"strings"
	"sync"

	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// Entry describes one registered encoding: its canonical name, the aliases
// it is known by, whether it is a multi-byte encoding (the UTF-8/UTF-16 forms
// and the East Asian code pages), and the
// x/text codec implementing it. Codec is nil for utf-8 and us-ascii, which
// this package handles natively rather than through a golang.org/x/text
// Encoding (see IsUTF8/IsASCII in codec.go).
type Entry struct {
	Name      string
	Aliases   []string
	MultiByte bool
	Codec     xencoding.Encoding
}

var (
	registryOnce sync.Once
	byName       map[string]*Entry
	all          []*Entry
)

func buildRegistry() {
	all = []*Entry{
		{Name: "utf-8", Aliases: []string{"utf8", "u8", "cp65001"}, MultiByte: true},
		{Name: "ascii", Aliases: []string{"us-ascii", "646", "iso646", "iso-ir-6"}},

		{Name: "utf-16", Aliases: []string{"utf16", "u16"}, MultiByte: true,
			Codec: unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM)},
		{Name: "utf-16be", Aliases: []string{"unicodebigunmarked"}, MultiByte: true,
			Codec: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)},
		{Name: "utf-16le", Aliases: []string{"unicodelittleunmarked"}, MultiByte: true,
			Codec: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)},

		{Name: "iso8859-1", Aliases: []string{"latin1", "l1", "8859-1", "iso-8859-1", "cp819"},
			Codec: charmap.ISO8859_1},
		{Name: "iso8859-2", Aliases: []string{"latin2", "l2", "8859-2", "iso-8859-2"},
			Codec: charmap.ISO8859_2},
		{Name: "iso8859-3", Aliases: []string{"latin3", "l3", "8859-3", "iso-8859-3"},
			Codec: charmap.ISO8859_3},
		{Name: "iso8859-4", Aliases: []string{"latin4", "l4", "8859-4", "iso-8859-4"},
			Codec: charmap.ISO8859_4},
		{Name: "iso8859-5", Aliases: []string{"cyrillic", "8859-5", "iso-8859-5"},
			Codec: charmap.ISO8859_5},
		{Name: "iso8859-6", Aliases: []string{"arabic", "8859-6", "iso-8859-6"},
			Codec: charmap.ISO8859_6},
		{Name: "iso8859-7", Aliases: []string{"greek", "8859-7", "iso-8859-7"},
			Codec: charmap.ISO8859_7},
		{Name: "iso8859-8", Aliases: []string{"hebrew", "8859-8", "iso-8859-8"},
			Codec: charmap.ISO8859_8},
		{Name: "iso8859-9", Aliases: []string{"latin5", "l5", "8859-9", "iso-8859-9"},
			Codec: iso88599},
		{Name: "iso8859-10", Aliases: []string{"latin6", "l6", "8859-10", "iso-8859-10"},
			Codec: charmap.ISO8859_10},
		{Name: "iso8859-13", Aliases: []string{"latin7", "l7", "8859-13", "iso-8859-13"},
			Codec: charmap.ISO8859_13},
		{Name: "iso8859-14", Aliases: []string{"latin8", "l8", "8859-14", "iso-8859-14"},
			Codec: charmap.ISO8859_14},
		{Name: "iso8859-15", Aliases: []string{"latin9", "l9", "8859-15", "iso-8859-15"},
			Codec: charmap.ISO8859_15},
		{Name: "iso8859-16", Aliases: []string{"latin10", "l10", "8859-16", "iso-8859-16"},
			Codec: charmap.ISO8859_16},

		{Name: "koi8-r", Aliases: []string{"koi8r"}, Codec: charmap.KOI8R},
		{Name: "koi8-u", Aliases: []string{"koi8u"}, Codec: charmap.KOI8U},

		{Name: "cp037", Aliases: []string{"ibm037", "ebcdic-cp-us"}, Codec: charmap.CodePage037},
		{Name: "cp437", Aliases: []string{"ibm437", "437"}, Codec: charmap.CodePage437},
		{Name: "cp850", Aliases: []string{"ibm850", "850"}, Codec: charmap.CodePage850},
		{Name: "cp852", Aliases: []string{"ibm852", "852"}, Codec: charmap.CodePage852},
		{Name: "cp855", Aliases: []string{"ibm855", "855"}, Codec: charmap.CodePage855},
		{Name: "cp858", Aliases: []string{"ibm858", "858"}, Codec: charmap.CodePage858},
		{Name: "cp860", Aliases: []string{"ibm860", "860"}, Codec: charmap.CodePage860},
		{Name: "cp862", Aliases: []string{"ibm862", "862"}, Codec: charmap.CodePage862},
		{Name: "cp863", Aliases: []string{"ibm863", "863"}, Codec: charmap.CodePage863},
		{Name: "cp865", Aliases: []string{"ibm865", "865"}, Codec: charmap.CodePage865},
		{Name: "cp866", Aliases: []string{"ibm866", "866"}, Codec: charmap.CodePage866},
		{Name: "cp1047", Aliases: []string{"ibm1047"}, Codec: charmap.CodePage1047},
		{Name: "cp1140", Aliases: []string{"ibm1140"}, Codec: charmap.CodePage1140},

		{Name: "windows-1250", Aliases: []string{"cp1250"}, Codec: charmap.Windows1250},
		{Name: "windows-1251", Aliases: []string{"cp1251"}, Codec: charmap.Windows1251},
		{Name: "windows-1252", Aliases: []string{"cp1252"}, Codec: charmap.Windows1252},
		{Name: "windows-1253", Aliases: []string{"cp1253"}, Codec: charmap.Windows1253},
		{Name: "windows-1254", Aliases: []string{"cp1254"}, Codec: charmap.Windows1254},
		{Name: "windows-1255", Aliases: []string{"cp1255"}, Codec: charmap.Windows1255},
		{Name: "windows-1256", Aliases: []string{"cp1256"}, Codec: charmap.Windows1256},
		{Name: "windows-1257", Aliases: []string{"cp1257"}, Codec: charmap.Windows1257},
		{Name: "windows-1258", Aliases: []string{"cp1258"}, Codec: charmap.Windows1258},
		{Name: "windows-874", Aliases: []string{"cp874"}, Codec: charmap.Windows874},

		{Name: "macintosh", Aliases: []string{"mac-roman", "macroman"}, Codec: charmap.Macintosh},
		{Name: "x-mac-cyrillic", Aliases: []string{"mac-cyrillic", "maccyrillic"}, Codec: charmap.MacintoshCyrillic},

		{Name: "euc-jp", Aliases: []string{"eucjp", "ujis"}, MultiByte: true, Codec: japanese.EUCJP},
		{Name: "shift_jis", Aliases: []string{"sjis", "shift-jis"}, MultiByte: true, Codec: japanese.ShiftJIS},
		{Name: "iso-2022-jp", Aliases: []string{"iso2022jp", "2022-jp"}, MultiByte: true, Codec: japanese.ISO2022JP},

		{Name: "euc-kr", Aliases: []string{"euckr"}, MultiByte: true, Codec: korean.EUCKR},

		{Name: "gb18030", Aliases: []string{}, MultiByte: true, Codec: simplifiedchinese.GB18030},
		{Name: "gbk", Aliases: []string{}, MultiByte: true, Codec: simplifiedchinese.GBK},
		{Name: "hz", Aliases: []string{"hz-gb-2312", "gb2312"}, MultiByte: true, Codec: simplifiedchinese.HZGB2312},

		{Name: "big5", Aliases: []string{"big5-tw", "cn-big5"}, MultiByte: true, Codec: traditionalchinese.Big5},
	}

	byName = make(map[string]*Entry, len(all)*2)
	for _, e := range all {
		byName[e.Name] = e
		for _, a := range e.Aliases {
			byName[strings.ToLower(a)] = e
		}
	}
}

func registry() map[string]*Entry {
	registryOnce.Do(buildRegistry)
	return byName
}

// All returns every registered encoding, in registration order.
func All() []*Entry {
	registryOnce.Do(buildRegistry)
	return all
}

// Lookup resolves name (case-insensitive, matching canonical name or any
// alias) to its registry entry.
func Lookup(name string) (*Entry, bool) {
	e, ok := registry()[strings.ToLower(strings.TrimSpace(name))]
	return e, ok
}

// Aliases returns the alias list registered for a canonical encoding name,
// or nil if the name is unregistered.
func Aliases(name string) []string {
	if e, ok := Lookup(name); ok {
		return e.Aliases
	}
	return nil
}

// MultiByteNames returns the canonical names of every registered multi-byte
// (non-1:1) encoding.
func MultiByteNames() []string {
	var out []string
	for _, e := range All() {
		if e.MultiByte {
			out = append(out, e.Name)
		}
	}
	return out
}
