// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "testing"

func buildSampleDocument(t *testing.T) *Document {
	t.Helper()
	d := NewDocument()
	line := &Line{Preamble: newPreamble(), Start: Point{0, 0, 0}, End: Point{10, 5, 0}}
	line.Layer = "0"
	if err := d.AddEntity(line); err != nil {
		t.Fatalf("AddEntity(line) failed: %v", err)
	}
	circle := &Circle{Preamble: newPreamble(), Center: Point{1, 2, 0}, Radius: 3.5}
	if err := d.AddEntity(circle); err != nil {
		t.Fatalf("AddEntity(circle) failed: %v", err)
	}
	return d
}

func TestWriterASCIIRoundTrip(t *testing.T) {
	d := buildSampleDocument(t)
	wr := NewWriter(&WriterOptions{})
	out, err := wr.Bytes(d)
	if err != nil {
		t.Fatalf("Bytes failed: %v", err)
	}

	r := NewReader(&ReaderOptions{Failsafe: true})
	got, err := r.Parse(out)
	if err != nil {
		t.Fatalf("Parse of round-tripped document failed: %v", err)
	}
	if len(got.Entities) != 2 {
		t.Fatalf("len(Entities) = %d, want 2", len(got.Entities))
	}
	line, ok := got.Entities[0].(*Line)
	if !ok {
		t.Fatalf("Entities[0] type = %T, want *Line", got.Entities[0])
	}
	if line.End != (Point{10, 5, 0}) {
		t.Errorf("round-tripped line.End = %+v, want (10,5,0)", line.End)
	}
	circle, ok := got.Entities[1].(*Circle)
	if !ok {
		t.Fatalf("Entities[1] type = %T, want *Circle", got.Entities[1])
	}
	if circle.Radius != 3.5 {
		t.Errorf("round-tripped circle.Radius = %v, want 3.5", circle.Radius)
	}
}

func TestWriterBinaryASCIIEquivalence(t *testing.T) {
	d := buildSampleDocument(t)

	asciiBytes, err := NewWriter(&WriterOptions{}).Bytes(d)
	if err != nil {
		t.Fatalf("ASCII Bytes failed: %v", err)
	}
	binaryBytes, err := NewWriter(&WriterOptions{Binary: true}).Bytes(d)
	if err != nil {
		t.Fatalf("Binary Bytes failed: %v", err)
	}

	r := NewReader(&ReaderOptions{Failsafe: true})
	fromASCII, err := r.Parse(asciiBytes)
	if err != nil {
		t.Fatalf("Parse(ascii) failed: %v", err)
	}
	fromBinary, err := r.Parse(binaryBytes)
	if err != nil {
		t.Fatalf("Parse(binary) failed: %v", err)
	}

	if len(fromASCII.Entities) != len(fromBinary.Entities) {
		t.Fatalf("entity count mismatch: ascii=%d binary=%d", len(fromASCII.Entities), len(fromBinary.Entities))
	}
	for i := range fromASCII.Entities {
		a, aok := fromASCII.Entities[i].(*Line)
		b, bok := fromBinary.Entities[i].(*Line)
		if aok != bok {
			continue
		}
		if aok && (a.Start != b.Start || a.End != b.End) {
			t.Errorf("entity #%d line mismatch: ascii=%+v binary=%+v", i, a, b)
		}
	}
}

func TestWriterRejectsUnsupportedVersion(t *testing.T) {
	d := buildSampleDocument(t)
	wr := NewWriter(&WriterOptions{Version: "NOT-A-VERSION"})
	if _, err := wr.Bytes(d); err == nil {
		t.Errorf("Bytes with an unsupported version succeeded, want error")
	}
}
