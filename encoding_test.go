// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "testing"

func TestStringCodecDecodesKnownLegacyCodepage(t *testing.T) {
	notes := &notifier{}
	c := newStringCodec(AC1014, "ANSI_1252", notes, "HEADER")
	// 0xE9 is 'é' under windows-1252.
	got := c.decode(string([]byte{0xE9}))
	if got != "é" {
		t.Errorf("decode = %q, want %q", got, "é")
	}
	for _, n := range notes.log {
		if n.Kind == KindEncodingFallback {
			t.Errorf("unexpected fallback notification for a known codepage: %v", n)
		}
	}
}

func TestStringCodecWarnsOnceForUnknownCodepage(t *testing.T) {
	notes := &notifier{}
	c := newStringCodec(AC1014, "ANSI_99999", notes, "HEADER")
	c.decode("plain")
	c.decode("more plain")

	count := 0
	for _, n := range notes.log {
		if n.Kind == KindEncodingFallback {
			count++
			if n.Level != Warning {
				t.Errorf("fallback notification level = %v, want Warning", n.Level)
			}
		}
	}
	if count != 1 {
		t.Errorf("got %d encoding-fallback notifications across two decodes, want exactly 1 (warn-once)", count)
	}
}

func TestStringCodecPassesThroughOnUTF8Versions(t *testing.T) {
	notes := &notifier{}
	c := newStringCodec(AC1021, "ANSI_1252", notes, "HEADER")
	raw := string([]byte{0xE9})
	if got := c.decode(raw); got != raw {
		t.Errorf("decode on a UTF-8 version mutated the string: got %q, want %q unchanged", got, raw)
	}
	if len(notes.log) != 0 {
		t.Errorf("unexpected notifications on a UTF-8 version: %v", notes.log)
	}
}

func TestStringCodecRoundTripsThroughEncode(t *testing.T) {
	notes := &notifier{}
	c := newStringCodec(AC1014, "ANSI_1252", notes, "HEADER")
	want := "café"
	encoded := c.encode(want)
	got := c.decode(encoded)
	if got != want {
		t.Errorf("encode/decode round trip = %q, want %q", got, want)
	}
}
