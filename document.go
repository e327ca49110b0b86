// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"fmt"
	"strings"
)

// Conventional BLOCK_RECORD names AutoCAD reserves for the two block
// spaces every drawing has (§3 Cross-references, §4.7 bullet 5).
const (
	modelSpaceBlockName = "*Model_Space"
	paperSpaceBlockName = "*Paper_Space"
)

// DocumentInfo is a point-in-time summary of a Document's contents,
// handy for the inspector CLI and for quick sanity checks after a read.
type DocumentInfo struct {
	Version      string
	EntityCount  int
	ObjectCount  int
	BlockCount   int
	TableCounts  map[string]int
	Notifications int
}

// Document is the in-memory model of a full DXF drawing (§4.4, §5): a
// Header, the nine TABLES tables, BLOCKS definitions, top-level
// ENTITIES (model/paper space, after handle resolution promotes block
// membership appropriately), OBJECTS, and an optional embedded
// thumbnail. It is not safe for concurrent use by multiple goroutines;
// callers serialize access themselves (§5).
type Document struct {
	Header    *Header
	Classes   []Class
	Tables    map[string][]TableEntry
	Blocks    []*Block
	Entities  []Entity
	Objects   []Object
	Thumbnail []byte

	RootDictionary Handle

	notes    *notifier
	handles  *handleAllocator
	byHandle map[Handle]interface{}
}

// newEmptyDocument returns a Document with no tables, entities, or
// objects at all — the starting point for a fresh read, which supplies
// its own contents and should not inherit NewDocument's seed data.
func newEmptyDocument() *Document {
	return &Document{
		Header:   newHeader(),
		Tables:   make(map[string][]TableEntry),
		notes:    &notifier{},
		handles:  newHandleAllocator(),
		byHandle: make(map[Handle]interface{}),
	}
}

// NewDocument returns an empty document pre-populated with the minimal
// standard tables AutoCAD itself always carries: an implicit "0" layer
// and "STANDARD" text style, "CONTINUOUS" line type, "ACAD" app ID, and
// the *Model_Space and *Paper_Space block records.
func NewDocument() *Document {
	d := newEmptyDocument()
	d.Header.Set("$ACADVER", Record{Code: 1, Value: StringValue(DefaultVersion)})
	d.Header.Set("$DWGCODEPAGE", Record{Code: 3, Value: StringValue("ANSI_1252")})

	mustAdd := func(table string, e TableEntry) {
		if err := d.AddTableEntry(table, e); err != nil {
			panic(err) // only reachable if the seed data above is wrong
		}
	}
	mustAdd("LAYER", &Layer{Preamble: newPreamble(), EntryName: "0", Color: 7})
	mustAdd("LTYPE", &LType{Preamble: newPreamble(), EntryName: "CONTINUOUS", Description: "Solid line"})
	mustAdd("STYLE", &Style{Preamble: newPreamble(), EntryName: "STANDARD", WidthFactor: 1})
	mustAdd("APPID", &AppID{Preamble: newPreamble(), EntryName: "ACAD"})
	mustAdd("BLOCK_RECORD", &BlockRecord{Preamble: newPreamble(), EntryName: modelSpaceBlockName})
	mustAdd("BLOCK_RECORD", &BlockRecord{Preamble: newPreamble(), EntryName: paperSpaceBlockName})
	return d
}

// spaceHandles returns the handles of the *Model_Space and *Paper_Space
// BLOCK_RECORD entries, or NoHandle for either that isn't present yet
// (a document read from a file predating those entries, or one built
// without NewDocument's seed data).
func (d *Document) spaceHandles() (model, paper Handle) {
	for _, e := range d.Tables["BLOCK_RECORD"] {
		switch {
		case strings.EqualFold(e.Name(), modelSpaceBlockName):
			model = e.Pre().Handle
		case strings.EqualFold(e.Name(), paperSpaceBlockName):
			paper = e.Pre().Handle
		}
	}
	return model, paper
}

// modelSpaceHandle returns the *Model_Space BLOCK_RECORD handle that
// add_entity assigns new top-level entities to (§4.9).
func (d *Document) modelSpaceHandle() Handle {
	model, _ := d.spaceHandles()
	return model
}

// Version reports the document's $ACADVER.
func (d *Document) Version() string { return d.Header.Version() }

// SetVersion sets $ACADVER, rejecting a version outside SupportedVersion.
func (d *Document) SetVersion(version string) error {
	if !SupportedVersion(version) {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}
	d.Header.Set("$ACADVER", Record{Code: 1, Value: StringValue(version)})
	return nil
}

// Notifications returns every diagnostic recorded while reading or
// writing this document (§4.8).
func (d *Document) Notifications() []Notification { return d.notes.log }

// register assigns v a handle if it does not already have one, records
// it in the handle index, and returns the handle. It returns
// ErrDuplicateHandle if v's handle is already registered to something
// else.
func (d *Document) register(h Handle, v interface{}) (Handle, error) {
	if h == NoHandle {
		h = d.handles.alloc()
		d.byHandle[h] = v
		return h, nil
	}
	d.handles.observe(h)
	if existing, ok := d.byHandle[h]; ok && existing != v {
		return h, fmt.Errorf("%w: %s", ErrDuplicateHandle, h)
	}
	d.byHandle[h] = v
	return h, nil
}

// AddEntity appends e to the document's top-level ENTITIES list,
// allocating a handle if e.Pre().Handle is unset and setting its owner
// to the document's model space, per §4.9.
func (d *Document) AddEntity(e Entity) error {
	h, err := d.register(e.Pre().Handle, e)
	if err != nil {
		return err
	}
	e.Pre().Handle = h
	e.Pre().Owner = d.modelSpaceHandle()
	d.byHandle[h] = e
	d.Entities = append(d.Entities, e)
	return nil
}

// RemoveEntity removes the entity with the given handle, reporting
// whether one was found.
func (d *Document) RemoveEntity(h Handle) bool {
	for i, e := range d.Entities {
		if e.Pre().Handle == h {
			d.Entities = append(d.Entities[:i], d.Entities[i+1:]...)
			delete(d.byHandle, h)
			return true
		}
	}
	return false
}

// AddTableEntry appends e to the named table, enforcing the DXF
// constraint that entry names are unique within a single table
// (§4.4, Invariants).
func (d *Document) AddTableEntry(table string, e TableEntry) error {
	for _, existing := range d.Tables[table] {
		if existing.Name() == e.Name() {
			return fmt.Errorf("%w: %s/%s", ErrDuplicateName, table, e.Name())
		}
	}
	h, err := d.register(e.Pre().Handle, e)
	if err != nil {
		return err
	}
	e.Pre().Handle = h
	d.Tables[table] = append(d.Tables[table], e)
	return nil
}

// AddObject appends o to the document's OBJECTS list.
func (d *Document) AddObject(o Object) error {
	h, err := d.register(o.Pre().Handle, o)
	if err != nil {
		return err
	}
	o.Pre().Handle = h
	d.byHandle[h] = o
	d.Objects = append(d.Objects, o)
	return nil
}

// RemoveObject removes the object with the given handle, reporting
// whether one was found.
func (d *Document) RemoveObject(h Handle) bool {
	for i, o := range d.Objects {
		if o.Pre().Handle == h {
			d.Objects = append(d.Objects[:i], d.Objects[i+1:]...)
			delete(d.byHandle, h)
			return true
		}
	}
	return false
}

// Lookup returns the entity, table entry, object, or block whose handle
// is h.
func (d *Document) Lookup(h Handle) (interface{}, bool) {
	v, ok := d.byHandle[h]
	return v, ok
}

// Validate performs the structural checks §4.4's Invariants require
// beyond what AddEntity/AddTableEntry/AddObject already enforce on
// insertion: every non-zero owner handle resolves to something in the
// document, and no table has two entries sharing a name.
func (d *Document) Validate() []error {
	var errs []error
	for table, entries := range d.Tables {
		seen := make(map[string]bool, len(entries))
		for _, e := range entries {
			if seen[e.Name()] {
				errs = append(errs, fmt.Errorf("%w: %s/%s", ErrDuplicateName, table, e.Name()))
			}
			seen[e.Name()] = true
		}
	}
	checkOwner := func(kind string, h, owner Handle) {
		if owner == NoHandle {
			return
		}
		if _, ok := d.byHandle[owner]; !ok {
			errs = append(errs, fmt.Errorf("%s %s: %w: owner %s", kind, h, ErrMissingHandle, owner))
		}
	}
	for _, e := range d.Entities {
		checkOwner("entity", e.Pre().Handle, e.Pre().Owner)
	}
	for _, o := range d.Objects {
		checkOwner("object", o.Pre().Handle, o.Pre().Owner)
	}
	return errs
}

// Info summarizes the document's contents.
func (d *Document) Info() DocumentInfo {
	info := DocumentInfo{
		Version:       d.Version(),
		EntityCount:   len(d.Entities),
		ObjectCount:   len(d.Objects),
		BlockCount:    len(d.Blocks),
		TableCounts:   make(map[string]int, len(d.Tables)),
		Notifications: len(d.notes.log),
	}
	for name, entries := range d.Tables {
		info.TableCounts[name] = len(entries)
	}
	return info
}
