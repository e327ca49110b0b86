// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"errors"
	"testing"
)

func TestNewDocumentSeedsStandardTables(t *testing.T) {
	d := NewDocument()
	if d.Version() != DefaultVersion {
		t.Errorf("Version() = %q, want %q", d.Version(), DefaultVersion)
	}
	if len(d.Tables["LAYER"]) != 1 || d.Tables["LAYER"][0].Name() != "0" {
		t.Errorf("Tables[LAYER] = %+v, want one entry named 0", d.Tables["LAYER"])
	}
	if len(d.Tables["LTYPE"]) != 1 || d.Tables["LTYPE"][0].Name() != "CONTINUOUS" {
		t.Errorf("Tables[LTYPE] = %+v, want one entry named CONTINUOUS", d.Tables["LTYPE"])
	}
}

func TestDocumentAddRemoveEntity(t *testing.T) {
	d := NewDocument()
	line := &Line{Preamble: newPreamble(), End: Point{X: 1}}
	if err := d.AddEntity(line); err != nil {
		t.Fatalf("AddEntity failed: %v", err)
	}
	if line.Handle == NoHandle {
		t.Errorf("AddEntity did not allocate a handle")
	}
	if v, ok := d.Lookup(line.Handle); !ok || v != Entity(line) {
		t.Errorf("Lookup(%v) = %v, %v; want line, true", line.Handle, v, ok)
	}
	if !d.RemoveEntity(line.Handle) {
		t.Errorf("RemoveEntity returned false for an entity that was present")
	}
	if _, ok := d.Lookup(line.Handle); ok {
		t.Errorf("Lookup still finds a removed entity's handle")
	}
	if d.RemoveEntity(line.Handle) {
		t.Errorf("RemoveEntity returned true for an already-removed handle")
	}
}

func TestDocumentAddTableEntryRejectsDuplicateName(t *testing.T) {
	d := NewDocument()
	err := d.AddTableEntry("LAYER", &Layer{Preamble: newPreamble(), EntryName: "0"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("AddTableEntry duplicate name = %v, want ErrDuplicateName", err)
	}
	if err := d.AddTableEntry("LAYER", &Layer{Preamble: newPreamble(), EntryName: "WALLS"}); err != nil {
		t.Fatalf("AddTableEntry WALLS failed: %v", err)
	}
	if len(d.Tables["LAYER"]) != 2 {
		t.Fatalf("len(Tables[LAYER]) = %d, want 2", len(d.Tables["LAYER"]))
	}
}

func TestDocumentAddRemoveObject(t *testing.T) {
	d := NewDocument()
	dict := &Dictionary{Preamble: newPreamble()}
	if err := d.AddObject(dict); err != nil {
		t.Fatalf("AddObject failed: %v", err)
	}
	if len(d.Objects) != 1 {
		t.Fatalf("len(Objects) = %d, want 1", len(d.Objects))
	}
	if !d.RemoveObject(dict.Handle) {
		t.Errorf("RemoveObject returned false for an object that was present")
	}
	if len(d.Objects) != 0 {
		t.Errorf("len(Objects) = %d, want 0 after removal", len(d.Objects))
	}
}

func TestDocumentRegisterRejectsDuplicateHandle(t *testing.T) {
	d := NewDocument()
	a := &Line{Preamble: newPreamble()}
	a.Handle = Handle(0x50)
	if err := d.AddEntity(a); err != nil {
		t.Fatalf("AddEntity(a) failed: %v", err)
	}
	b := &Circle{Preamble: newPreamble()}
	b.Handle = Handle(0x50)
	err := d.AddEntity(b)
	if !errors.Is(err, ErrDuplicateHandle) {
		t.Fatalf("AddEntity(b) with a colliding handle = %v, want ErrDuplicateHandle", err)
	}
}

func TestDocumentValidateReportsDanglingOwner(t *testing.T) {
	d := NewDocument()
	// AddObject, unlike AddEntity, never assigns an owner on a caller's
	// behalf (add_object "requires a parent dictionary", §4.9), so a
	// manually-set dangling owner survives insertion unchanged and
	// Validate can be exercised against it directly.
	o := &Dictionary{Preamble: newPreamble()}
	o.Owner = Handle(0xDEAD)
	if err := d.AddObject(o); err != nil {
		t.Fatalf("AddObject failed: %v", err)
	}
	errs := d.Validate()
	if len(errs) != 1 {
		t.Fatalf("Validate() = %v, want exactly one dangling-owner error", errs)
	}
	if !errors.Is(errs[0], ErrMissingHandle) {
		t.Errorf("Validate()[0] = %v, want ErrMissingHandle", errs[0])
	}
}

func TestAddEntitySetsOwnerToModelSpace(t *testing.T) {
	d := NewDocument()
	line := &Line{Preamble: newPreamble()}
	if err := d.AddEntity(line); err != nil {
		t.Fatalf("AddEntity failed: %v", err)
	}
	if line.Owner != d.modelSpaceHandle() {
		t.Errorf("line.Owner = %v, want the *Model_Space handle %v", line.Owner, d.modelSpaceHandle())
	}
	if errs := d.Validate(); len(errs) != 0 {
		t.Errorf("Validate() = %v, want no errors for a model-space-owned entity", errs)
	}
}

func TestDocumentInfo(t *testing.T) {
	d := NewDocument()
	if err := d.AddEntity(&Line{Preamble: newPreamble()}); err != nil {
		t.Fatalf("AddEntity failed: %v", err)
	}
	info := d.Info()
	if info.EntityCount != 1 {
		t.Errorf("Info().EntityCount = %d, want 1", info.EntityCount)
	}
	if info.TableCounts["LAYER"] != 1 {
		t.Errorf("Info().TableCounts[LAYER] = %d, want 1", info.TableCounts["LAYER"])
	}
	if info.Version != DefaultVersion {
		t.Errorf("Info().Version = %q, want %q", info.Version, DefaultVersion)
	}
}
