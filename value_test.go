// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "testing"

func TestCodeKind(t *testing.T) {
	tests := []struct {
		code int
		want ValueKind
	}{
		{0, VString},
		{5, VHandle},
		{10, VFloat},
		{40, VFloat},
		{70, VInt16},
		{90, VInt32},
		{100, VString},
		{160, VInt64},
		{290, VBool},
		{310, VBinary},
		{330, VHandle},
		{360, VHandle},
		{390, VHandle},
		{420, VInt32},
		{1000, VString},
		{1004, VBinary},
		{1005, VHandle},
		{1010, VFloat},
		{1071, VInt32},
		{999999, VString},
	}
	for _, tt := range tests {
		if got := codeKind(tt.code); got != tt.want {
			t.Errorf("codeKind(%d) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestHandleString(t *testing.T) {
	tests := []struct {
		h    Handle
		want string
	}{
		{0, "0"},
		{1, "1"},
		{0xABC, "ABC"},
		{0xff, "FF"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Handle(%d).String() = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestParseHandle(t *testing.T) {
	h, err := ParseHandle("1A2B")
	if err != nil {
		t.Fatalf("ParseHandle failed: %v", err)
	}
	if h != Handle(0x1A2B) {
		t.Errorf("ParseHandle(1A2B) = %v, want %v", h, Handle(0x1A2B))
	}
	if _, err := ParseHandle("not-hex"); err == nil {
		t.Errorf("ParseHandle(not-hex) succeeded, want error")
	}
}

func TestHandleAllocatorObserve(t *testing.T) {
	a := newHandleAllocator()
	a.observe(Handle(10))
	if got := a.alloc(); got <= Handle(10) {
		t.Errorf("alloc() after observe(10) = %v, want > 10", got)
	}
}
