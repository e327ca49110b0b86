// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package codepage resolves the legacy $DWGCODEPAGE names used by DXF
// files written before AC1021 (2007, the first UTF-8 version) to a
// golang.org/x/text decoder, and detects/strips a UTF-8 BOM on files that
// are already UTF-8.
package codepage

import (
	"bytes"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
)

// Fallback is used whenever a codepage name is not recognized.
var Fallback = charmap.Windows1252

// table maps the DXF $DWGCODEPAGE value to an x/text encoding. The DXF
// reference lists roughly forty named codepages; this covers the ones in
// common circulation plus the handful of CJK pages that need a dedicated
// decoder rather than a single-byte charmap.
var table = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_932":  japanese.ShiftJIS,
	"ANSI_936":  simplifiedchinese.GBK,
	"ANSI_949":  korean.EUCKR,
	"ANSI_950":  traditionalchinese.Big5,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"ANSI_28591": charmap.ISO8859_1,
	"ANSI_28592": charmap.ISO8859_2,
	"ANSI_28593": charmap.ISO8859_3,
	"ANSI_28594": charmap.ISO8859_4,
	"ANSI_28595": charmap.ISO8859_5,
	"ANSI_28596": charmap.ISO8859_6,
	"ANSI_28597": charmap.ISO8859_7,
	"ANSI_28598": charmap.ISO8859_8,
	"ANSI_28599": charmap.ISO8859_9,
	"ANSI_20866": charmap.KOI8R,
	"ANSI_21866": charmap.KOI8U,
	"DOS437":     charmap.CodePage437,
	"DOS850":     charmap.CodePage850,
	"DOS852":     charmap.CodePage852,
	"DOS855":     charmap.CodePage855,
	"DOS858":     charmap.CodePage858,
	"DOS860":     charmap.CodePage860,
	"DOS862":     charmap.CodePage862,
	"DOS863":     charmap.CodePage863,
	"DOS865":     charmap.CodePage865,
	"DOS866":     charmap.CodePage866,
	"MACINTOSH":  charmap.Macintosh,
}

// Lookup returns the encoding for the named legacy codepage. ok is false
// when name is not recognized; Lookup then returns Fallback, and the
// caller emits an encoding-fallback Warning notification (§6.2).
func Lookup(name string) (enc encoding.Encoding, ok bool) {
	if e, found := table[name]; found {
		return e, true
	}
	return Fallback, false
}

// NewDecoder is a convenience wrapper returning a ready-to-use decoder,
// falling back to windows-1252 for unknown names.
func NewDecoder(name string) (dec *encoding.Decoder, knownCodepage bool) {
	enc, ok := Lookup(name)
	return enc.NewDecoder(), ok
}

// utf8BOM is the three-byte UTF-8 byte-order mark some writers emit on
// AC1021+ (UTF-8) files even though the format does not require one.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// StripBOM removes a leading UTF-8 BOM, if present. It only ever
// inspects the first three bytes rather than running the whole stream
// through a UTF-8 decoder (golang.org/x/text/encoding/unicode, the same
// package this codebase's PE-parsing lineage uses for UTF-16 decoding,
// is built for exactly that heavier job): a pre-AC1021 legacy-codepage
// document is not valid UTF-8 by construction, and decoding it as UTF-8
// here would silently replace its high-byte characters with U+FFFD
// before codepage.Lookup ever gets a chance to decode them correctly.
func StripBOM(data []byte) []byte {
	if bytes.HasPrefix(data, utf8BOM) {
		return data[len(utf8BOM):]
	}
	return data
}
