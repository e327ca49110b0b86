// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"strings"
	"testing"
)

func TestASCIISourceBasic(t *testing.T) {
	in := "0\nLINE\n10\n1.5\n 8\nLayer1\n"
	src, err := newASCIISource(strings.NewReader(in))
	if err != nil {
		t.Fatalf("newASCIISource failed: %v", err)
	}

	want := []Record{
		{Code: 0, Value: StringValue("LINE")},
		{Code: 10, Value: FloatValue(1.5)},
		{Code: 8, Value: StringValue("Layer1")},
	}
	for i, w := range want {
		got, err := src.next()
		if err != nil {
			t.Fatalf("next() #%d failed: %v", i, err)
		}
		if got.Code != w.Code || got.Value.Kind != w.Value.Kind {
			t.Errorf("next() #%d = %+v, want %+v", i, got, w)
		}
	}
	if _, err := src.next(); err != errEOS {
		t.Errorf("next() after exhaustion = %v, want errEOS", err)
	}
}

func TestASCIISourceStripsComments(t *testing.T) {
	in := "999\nthis is a comment\n0\nLINE\n"
	src, err := newASCIISource(strings.NewReader(in))
	if err != nil {
		t.Fatalf("newASCIISource failed: %v", err)
	}
	got, err := src.next()
	if err != nil {
		t.Fatalf("next() failed: %v", err)
	}
	if got.Code != 0 || got.Value.Str() != "LINE" {
		t.Errorf("next() = %+v, want (0, LINE)", got)
	}
}

func TestASCIISourcePeekDoesNotConsume(t *testing.T) {
	src, err := newASCIISource(strings.NewReader("0\nLINE\n"))
	if err != nil {
		t.Fatalf("newASCIISource failed: %v", err)
	}
	p1, _ := src.peek()
	p2, _ := src.peek()
	if p1 != p2 {
		t.Errorf("peek() not idempotent: %+v != %+v", p1, p2)
	}
	n, _ := src.next()
	if n != p1 {
		t.Errorf("next() after peek() = %+v, want %+v", n, p1)
	}
}

func TestASCIIRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	sink := newASCIISink(&buf)
	recs := []Record{
		{Code: 0, Value: StringValue("LINE")},
		{Code: 10, Value: FloatValue(1.5)},
		{Code: 62, Value: IntValue(VInt16, 256)},
		{Code: 290, Value: BoolValue(true)},
		{Code: 330, Value: HandleValue(Handle(0x2A))},
	}
	for _, r := range recs {
		if err := sink.emit(r); err != nil {
			t.Fatalf("emit(%+v) failed: %v", r, err)
		}
	}
	if err := sink.finish(); err != nil {
		t.Fatalf("finish() failed: %v", err)
	}

	src, err := newASCIISource(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("newASCIISource failed: %v", err)
	}
	for i, want := range recs {
		got, err := src.next()
		if err != nil {
			t.Fatalf("next() #%d failed: %v", i, err)
		}
		if got.Code != want.Code {
			t.Errorf("record #%d code = %d, want %d", i, got.Code, want.Code)
		}
	}
}
