// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"errors"
	"strings"
	"testing"
)

const minimalDXF = `0
SECTION
2
HEADER
9
$ACADVER
1
AC1032
0
ENDSEC
0
SECTION
2
TABLES
0
TABLE
2
LAYER
70
1
0
LAYER
5
10
2
0
70
0
62
7
6
CONTINUOUS
0
ENDTAB
0
ENDSEC
0
SECTION
2
ENTITIES
0
LINE
5
20
8
0
10
0.0
20
0.0
30
0.0
11
10.0
21
10.0
31
0.0
0
ENDSEC
0
EOF
`

func asciiLines(s string) string {
	return strings.ReplaceAll(strings.TrimSpace(s), "\n", "\n") + "\n"
}

func TestReaderParsesMinimalDocument(t *testing.T) {
	r := NewReader(&ReaderOptions{Failsafe: true})
	d, err := r.Parse([]byte(asciiLines(minimalDXF)))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if d.Version() != AC1032 {
		t.Errorf("Version() = %q, want %q", d.Version(), AC1032)
	}
	if len(d.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1", len(d.Entities))
	}
	line, ok := d.Entities[0].(*Line)
	if !ok {
		t.Fatalf("Entities[0] type = %T, want *Line", d.Entities[0])
	}
	if line.Start != (Point{0, 0, 0}) || line.End != (Point{10, 10, 0}) {
		t.Errorf("line endpoints = %+v/%+v, want (0,0,0)/(10,10,0)", line.Start, line.End)
	}
	if len(d.Tables["LAYER"]) != 1 {
		t.Fatalf("len(Tables[LAYER]) = %d, want 1", len(d.Tables["LAYER"]))
	}
	layer := d.Tables["LAYER"][0].(*Layer)
	if layer.EntryName != "0" || layer.LineType != "CONTINUOUS" {
		t.Errorf("layer = %+v, want name 0 / linetype CONTINUOUS", layer)
	}
}

func TestReaderUnknownEntityPreservesFields(t *testing.T) {
	src := asciiLines(`0
SECTION
2
ENTITIES
0
WIPEOUT
5
1
8
0
90
7
91
42
0
ENDSEC
0
EOF
`)
	r := NewReader(&ReaderOptions{Failsafe: true})
	d, err := r.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(d.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1", len(d.Entities))
	}
	unk, ok := d.Entities[0].(*UnknownEntity)
	if !ok {
		t.Fatalf("Entities[0] type = %T, want *UnknownEntity", d.Entities[0])
	}
	if unk.TypeName != "WIPEOUT" {
		t.Errorf("TypeName = %q, want WIPEOUT", unk.TypeName)
	}
	if unk.Layer != "0" {
		t.Errorf("Layer = %q, want \"0\" (should be parsed by common preamble)", unk.Layer)
	}
	if len(unk.Raw) != 2 {
		t.Fatalf("len(Raw) = %d, want 2 (codes 90 and 91)", len(unk.Raw))
	}
	if unk.Raw[0].Code != 90 || unk.Raw[1].Code != 91 {
		t.Errorf("Raw = %+v, want codes [90 91]", unk.Raw)
	}
}

func TestReaderFailsafeSkipsMalformedRecord(t *testing.T) {
	src := asciiLines(`0
SECTION
2
ENTITIES
0
LINE
5
1
10
not-a-number
0
ENDSEC
0
EOF
`)
	r := NewReader(&ReaderOptions{Failsafe: true})
	d, err := r.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed in failsafe mode: %v", err)
	}
	if len(d.Notifications()) == 0 {
		t.Errorf("expected at least one Notification for the malformed record")
	}
}

func TestReaderStrictModeAbortsOnMalformedRecord(t *testing.T) {
	src := asciiLines(`0
SECTION
2
ENTITIES
0
LINE
5
1
10
not-a-number
0
ENDSEC
0
EOF
`)
	r := NewReader(&ReaderOptions{Failsafe: false})
	_, err := r.Parse([]byte(src))
	if err == nil {
		t.Fatal("Parse in strict mode succeeded, want an error for the malformed record")
	}
	if !errors.Is(err, ErrMalformedRecord) {
		t.Errorf("Parse error = %v, want one wrapping ErrMalformedRecord", err)
	}
}

func TestReaderStrictModeAbortsOnUnsupportedVersion(t *testing.T) {
	src := asciiLines(`0
SECTION
2
HEADER
9
$ACADVER
1
AC9999
0
ENDSEC
0
EOF
`)
	r := NewReader(&ReaderOptions{Failsafe: false})
	_, err := r.Parse([]byte(src))
	if err == nil {
		t.Fatal("Parse in strict mode succeeded, want an error for the unsupported version")
	}
	if !errors.Is(err, ErrUnsupportedVersion) {
		t.Errorf("Parse error = %v, want one wrapping ErrUnsupportedVersion", err)
	}
}

func TestReaderFailsafeNullsDanglingOwner(t *testing.T) {
	src := asciiLines(`0
SECTION
2
ENTITIES
0
LINE
5
1
330
DEAD
10
0.0
20
0.0
30
0.0
11
1.0
21
1.0
31
0.0
0
ENDSEC
0
EOF
`)
	r := NewReader(&ReaderOptions{Failsafe: true})
	d, err := r.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if len(d.Entities) != 1 {
		t.Fatalf("len(Entities) = %d, want 1", len(d.Entities))
	}
	line := d.Entities[0].(*Line)
	if line.Owner != NoHandle {
		t.Errorf("Owner = %v, want NoHandle after dangling-owner resolution", line.Owner)
	}
	found := false
	for _, n := range d.Notifications() {
		if n.Kind == KindMissingHandle {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a KindMissingHandle notification, got %v", d.Notifications())
	}
}
