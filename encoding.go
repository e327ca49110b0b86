// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"strings"

	"github.com/saferwall/dxf/codepage"
)

// isUTF8Version reports whether version uses UTF-8 strings natively
// (AC1021/2007 and later) rather than a legacy codepage (§4.3, §6.2).
func isUTF8Version(version string) bool {
	v, ok := versionOrder[version]
	if !ok {
		// Unknown/future version codes are assumed UTF-8, the safer
		// default for anything newer than the documented catalogue.
		return true
	}
	return v >= versionOrder[AC1021]
}

// stringCodec decodes/encodes text fields against the document's
// declared codepage, applying §4.3/§6.2: UTF-8 passthrough from AC1021
// onward, legacy codepage translation before that, with an
// encoding-fallback Warning the first time an unknown codepage name is
// encountered.
type stringCodec struct {
	version      string
	codepageName string
	warnedOnce   bool
	notes        *notifier
	section      string
}

func newStringCodec(version, codepageName string, notes *notifier, section string) *stringCodec {
	return &stringCodec{version: version, codepageName: codepageName, notes: notes, section: section}
}

// decode turns raw on-disk bytes (carried losslessly inside a Go string
// by the token stream, which never validates UTF-8) into a proper UTF-8
// Go string.
func (c *stringCodec) decode(raw string) string {
	if raw == "" || isUTF8Version(c.version) {
		return raw
	}
	dec, known := codepage.NewDecoder(c.codepageName)
	if !known && !c.warnedOnce {
		c.warnedOnce = true
		if c.notes != nil {
			c.notes.warn(KindEncodingFallback, c.section,
				"unknown codepage %q, falling back to windows-1252", c.codepageName)
		}
	}
	out, err := dec.String(raw)
	if err != nil {
		if c.notes != nil {
			c.notes.warn(KindEncodingFallback, c.section,
				"undecodable bytes under codepage %q, replaced with U+FFFD", c.codepageName)
		}
		return strings.ToValidUTF8(raw, "�")
	}
	return out
}

// encode turns an in-memory UTF-8 Go string back into the bytes a writer
// targeting c.version should emit.
func (c *stringCodec) encode(s string) string {
	if s == "" || isUTF8Version(c.version) {
		return s
	}
	enc, _ := codepage.Lookup(c.codepageName)
	out, err := enc.NewEncoder().String(s)
	if err != nil {
		return s
	}
	return out
}

// codecSink wraps a tokenSink, transcoding every VString value through
// a stringCodec before handing it to the underlying physical-encoding
// sink, so every writer in the package emits text in the document's
// declared codepage without each entity/object needing to know about
// encoding at all (§4.3, §6.2).
type codecSink struct {
	next  tokenSink
	codec *stringCodec
}

func (s *codecSink) emit(r Record) error { return s.emitCode(r.Code, r.Value) }

func (s *codecSink) emitCode(code int, v Value) error {
	if v.Kind == VString {
		v = StringValue(s.codec.encode(v.Str()))
	}
	return s.next.emitCode(code, v)
}

func (s *codecSink) finish() error { return s.next.finish() }

// codecSource wraps a tokenSource, decoding every VString value through
// a stringCodec before returning it. The codec's version/codepage
// fields are mutated in place by the reader once the HEADER section has
// been parsed, so records read before that point pass through as
// effectively-ASCII (safe, since $ACADVER/$DWGCODEPAGE are themselves
// ASCII) and everything after decodes correctly (§4.3, §6.2).
type codecSource struct {
	src   tokenSource
	codec *stringCodec
}

func (s *codecSource) decodeRec(r Record, err error) (Record, error) {
	if err == nil && r.Value.Kind == VString {
		r.Value = StringValue(s.codec.decode(r.Value.Str()))
	}
	return r, err
}

func (s *codecSource) next() (Record, error) { return s.decodeRec(s.src.next()) }
func (s *codecSource) peek() (Record, error) { return s.decodeRec(s.src.peek()) }
