// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package codepage

import (
	"bytes"
	"testing"
)

func TestLookupKnownCodepage(t *testing.T) {
	enc, ok := Lookup("ANSI_1252")
	if !ok {
		t.Fatalf("Lookup(ANSI_1252) ok = false, want true")
	}
	if enc != Fallback {
		t.Errorf("Lookup(ANSI_1252) = %v, want the Windows1252 charmap (also Fallback)", enc)
	}
}

func TestLookupUnknownCodepageFallsBack(t *testing.T) {
	enc, ok := Lookup("ANSI_99999")
	if ok {
		t.Errorf("Lookup(ANSI_99999) ok = true, want false")
	}
	if enc != Fallback {
		t.Errorf("Lookup(ANSI_99999) = %v, want Fallback", enc)
	}
}

func TestNewDecoderDecodesLatin1Bytes(t *testing.T) {
	dec, ok := NewDecoder("ANSI_1252")
	if !ok {
		t.Fatalf("NewDecoder(ANSI_1252) ok = false")
	}
	// 0xE9 is 'é' in windows-1252.
	out, err := dec.Bytes([]byte{0xE9})
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if string(out) != "é" {
		t.Errorf("decoded = %q, want %q", out, "é")
	}
}

func TestStripBOMRemovesLeadingMark(t *testing.T) {
	in := append([]byte{0xEF, 0xBB, 0xBF}, []byte("HEADER")...)
	out := StripBOM(in)
	if !bytes.Equal(out, []byte("HEADER")) {
		t.Errorf("StripBOM = %q, want %q", out, "HEADER")
	}
}

func TestStripBOMLeavesLegacyBytesUntouched(t *testing.T) {
	// A byte sequence that is not valid UTF-8 (a lone high byte from a
	// legacy codepage) must survive StripBOM unchanged: only the literal
	// three-byte BOM prefix is special-cased.
	in := []byte{0xE9, 'A', 'B'}
	out := StripBOM(in)
	if !bytes.Equal(out, in) {
		t.Errorf("StripBOM mangled non-UTF-8 input: got %v, want %v", out, in)
	}
}

func TestStripBOMNoOpWithoutMark(t *testing.T) {
	in := []byte("plain text")
	out := StripBOM(in)
	if !bytes.Equal(out, in) {
		t.Errorf("StripBOM = %q, want unchanged %q", out, in)
	}
}
