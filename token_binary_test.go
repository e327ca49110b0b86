// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"testing"
)

func TestBinaryRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	sink := newBinarySink(&buf)
	recs := []Record{
		{Code: 0, Value: StringValue("CIRCLE")},
		{Code: 40, Value: FloatValue(2.5)},
		{Code: 70, Value: IntValue(VInt16, -3)},
		{Code: 90, Value: IntValue(VInt32, 123456)},
		{Code: 290, Value: BoolValue(false)},
		{Code: 330, Value: HandleValue(Handle(0x1F2E))},
		{Code: 310, Value: BinaryValue([]byte{0xDE, 0xAD, 0xBE, 0xEF})},
	}
	for _, r := range recs {
		if err := sink.emit(r); err != nil {
			t.Fatalf("emit(%+v) failed: %v", r, err)
		}
	}
	if err := sink.finish(); err != nil {
		t.Fatalf("finish() failed: %v", err)
	}

	if !bytes.HasPrefix(buf.Bytes(), binarySentinel) {
		t.Fatalf("output missing binary sentinel")
	}

	src, err := newBinarySource(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("newBinarySource failed: %v", err)
	}
	for i, want := range recs {
		got, err := src.next()
		if err != nil {
			t.Fatalf("next() #%d failed: %v", i, err)
		}
		if got.Code != want.Code {
			t.Errorf("record #%d code = %d, want %d", i, got.Code, want.Code)
		}
		switch want.Value.Kind {
		case VString:
			if got.Value.Str() != want.Value.Str() {
				t.Errorf("record #%d string = %q, want %q", i, got.Value.Str(), want.Value.Str())
			}
		case VFloat:
			if got.Value.Float() != want.Value.Float() {
				t.Errorf("record #%d float = %v, want %v", i, got.Value.Float(), want.Value.Float())
			}
		case VInt16, VInt32:
			if got.Value.Int() != want.Value.Int() {
				t.Errorf("record #%d int = %v, want %v", i, got.Value.Int(), want.Value.Int())
			}
		case VHandle:
			if got.Value.Handle() != want.Value.Handle() {
				t.Errorf("record #%d handle = %v, want %v", i, got.Value.Handle(), want.Value.Handle())
			}
		case VBinary:
			if !bytes.Equal(got.Value.Binary(), want.Value.Binary()) {
				t.Errorf("record #%d binary = %v, want %v", i, got.Value.Binary(), want.Value.Binary())
			}
		}
	}
}

func TestBinarySourceRejectsBadSentinel(t *testing.T) {
	_, err := newBinarySource(bytes.NewReader([]byte("not a dxf file at all")))
	if err == nil {
		t.Fatalf("newBinarySource with bad sentinel succeeded, want error")
	}
}
