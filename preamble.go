// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// Preamble holds the group codes common to every entity and graphical
// object (§4.4): handle, owner, layer/linetype/color, visibility, and
// the cross-reference codes resolved in a second pass (§4.7).
type Preamble struct {
	Handle       Handle
	Owner        Handle
	Layer        string
	LineType     string
	Color        int // 256 = ByLayer, 0 = ByBlock (§5)
	TrueColor    int32
	Transparency int32
	LineWeight   int16 // -1 ByLayer, -2 ByBlock, -3 Default (§5)
	Visible      bool
	Material     Handle
	PlotStyle    Handle
	ExtDict      Handle
	Reactors     ReactorList
	XData        []XData
	ExtraGroups  []NestedGroup
}

// NestedGroup preserves a 102-delimited nested record group this library
// does not specifically interpret, so an unrecognized group survives a
// read/write round trip unchanged (§4.6, §8).
type NestedGroup struct {
	Name string
	Body []Record
}

func newPreamble() Preamble {
	return Preamble{Color: 256, LineWeight: -1, Visible: true}
}

// applyPreambleField applies a single record to p if code is one of the
// common codes, reporting whether it consumed the record. decodeCommonRun
// offers each record to it and to the variant's own applyField, in the
// order described there.
func (p *Preamble) applyPreambleField(code int, v Value) bool {
	switch code {
	case 5:
		p.Handle = v.Handle()
	case 330:
		p.Owner = v.Handle()
	case 8:
		p.Layer = v.Str()
	case 6:
		p.LineType = v.Str()
	case 62:
		p.Color = int(v.Int())
	case 420:
		p.TrueColor = int32(v.Int())
	case 440:
		p.Transparency = int32(v.Int())
	case 370:
		p.LineWeight = int16(v.Int())
	case 60:
		p.Visible = v.Int() == 0
	case 347:
		p.Material = v.Handle()
	case 390:
		p.PlotStyle = v.Handle()
	case 102:
		// Nested {ACAD_REACTORS}/{ACAD_XDICTIONARY} groups are handled by
		// the caller via readNestedGroup before reaching here; a bare 102
		// falling through is ignored.
		return true
	default:
		return false
	}
	return true
}

// cursor walks a tokenSource with one-record lookahead, tracking the
// current subclass marker (code 100), which decodeCommonRun uses to
// decide who claims a reused code, and exposing the structural boundary
// query every Entity/Object/TableEntry decoder needs (§4.5): "has this
// run ended".
type cursor struct {
	src      tokenSource
	notes    *notifier
	section  string
	subclass string
}

func newCursor(src tokenSource, notes *notifier, section string) *cursor {
	return &cursor{src: src, notes: notes, section: section}
}

// atBoundary reports whether the next record starts a new structural
// element (a (0, ...) record) or the stream is exhausted, meaning the
// current entity/object/table-entry's record run is over.
func (c *cursor) atBoundary() bool {
	rec, ok := c.resilientPeek()
	if !ok {
		return true
	}
	return rec.Is0()
}

// take consumes and returns the next record of the current run,
// updating the tracked subclass marker as it goes.
func (c *cursor) take() (Record, bool) {
	if c.atBoundary() {
		return Record{}, false
	}
	rec, err := c.src.next()
	if err != nil {
		return Record{}, false
	}
	if rec.Code == 100 {
		c.subclass = rec.Value.Str()
	}
	return rec, true
}

// resilientPeek peeks the next record, transparently skipping (and
// reporting as an Error notification) any record the token layer could
// not parse, so a single malformed record never looks like end of
// stream to a section parser. It returns ok=false only once the
// underlying stream is genuinely exhausted.
func (c *cursor) resilientPeek() (rec Record, ok bool) {
	for {
		rec, err := c.src.peek()
		if err == nil {
			return rec, true
		}
		if err == errEOS {
			return Record{}, false
		}
		c.notes.err(KindMalformedRecord, c.section, 0, "", "%v", err)
		c.src.next()
	}
}

// skipRun discards records until the next structural boundary. No
// section parser calls it; abandonSection is the failsafe recovery path.
func (c *cursor) skipRun() {
	for {
		if _, ok := c.take(); !ok {
			return
		}
	}
}

// fieldApplier lets a concrete Entity/Object/TableEntry accept a single
// variant-specific record; it returns false for a code it does not
// recognize.
type fieldApplier func(code int, v Value) bool

// decodeCommonRun drives a structural element's record run to its
// boundary, handling the fields every element shares (common preamble,
// nested 102 groups, xdata) and delegating anything else to apply.
// Until the element's first type-specific subclass marker (a code 100
// other than AcDbEntity or AcDbSymbolTableRecord) the common preamble
// gets the first claim on a record; after it, and for every table-entry
// record other than handle (5) and owner (330), apply gets the first
// claim and the preamble only sees what apply rejects. Fields neither
// accepts are silently dropped from the typed model; the apply of an
// Unknown-catalogue variant accepts every record and keeps it raw.
func decodeCommonRun(c *cursor, p *Preamble, apply fieldApplier) {
	c.subclass = ""
	for {
		rec, ok := c.resilientPeek()
		if !ok || rec.Is0() {
			return
		}
		if rec.Code == 102 {
			name, body := readNestedGroup(c)
			switch name {
			case "{ACAD_REACTORS":
				p.Reactors = append(p.Reactors, reactorHandles(body)...)
			case "{ACAD_XDICTIONARY":
				if h := extDictHandle(body); h != NoHandle {
					p.ExtDict = h
				}
			default:
				p.ExtraGroups = append(p.ExtraGroups, NestedGroup{Name: name, Body: body})
			}
			continue
		}
		if rec.Code >= 1000 {
			p.XData = append(p.XData, readXData(c)...)
			continue
		}
		rec, ok := c.take()
		if !ok {
			return
		}
		variantFirst := c.section == "TABLES" && rec.Code != 5 && rec.Code != 330 ||
			c.subclass != "" && c.subclass != "AcDbEntity" && c.subclass != "AcDbSymbolTableRecord"
		if !variantFirst && p.applyPreambleField(rec.Code, rec.Value) {
			continue
		}
		if apply != nil && apply(rec.Code, rec.Value) {
			continue
		}
		if variantFirst && p.applyPreambleField(rec.Code, rec.Value) {
			continue
		}
		// Unrecognized but well-formed field: dropped, matching the
		// failsafe posture of tolerating unknown data inside a known
		// element rather than aborting the whole element (§4.8).
	}
}

// reactorHandles parses the body of a {ACAD_REACTORS nested group, each
// member named by a 330 handle record.
func reactorHandles(body []Record) []Handle {
	var out []Handle
	for _, r := range body {
		if r.Code == 330 || r.Code == 360 {
			out = append(out, r.Value.Handle())
		}
	}
	return out
}

// extDictHandle parses the body of a {ACAD_XDICTIONARY nested group,
// whose single member is a 360 hard-owner handle to the extension
// dictionary object.
func extDictHandle(body []Record) Handle {
	for _, r := range body {
		if r.Code == 360 {
			return r.Value.Handle()
		}
	}
	return NoHandle
}

// writeCommonRun emits p's common preamble in this order: handle, the
// {ACAD_XDICTIONARY and {ACAD_REACTORS groups, owner and the other
// common fields, then the unrecognized nested groups (§4.4, §4.6). It
// does not emit p.XData; callers write xdata after the variant's own
// fields.
func writeCommonRun(sink tokenSink, p *Preamble) error {
	emit := func(code int, v Value) error { return sink.emitCode(code, v) }
	if p.Handle != NoHandle {
		if err := emit(5, HandleValue(p.Handle)); err != nil {
			return err
		}
	}
	if p.ExtDict != NoHandle {
		if err := emit(102, StringValue("{ACAD_XDICTIONARY")); err != nil {
			return err
		}
		if err := emit(360, HandleValue(p.ExtDict)); err != nil {
			return err
		}
		if err := emit(102, StringValue("}")); err != nil {
			return err
		}
	}
	if len(p.Reactors) > 0 {
		if err := emit(102, StringValue("{ACAD_REACTORS")); err != nil {
			return err
		}
		for _, h := range p.Reactors {
			if err := emit(330, HandleValue(h)); err != nil {
				return err
			}
		}
		if err := emit(102, StringValue("}")); err != nil {
			return err
		}
	}
	if p.Owner != NoHandle {
		if err := emit(330, HandleValue(p.Owner)); err != nil {
			return err
		}
	}
	if p.Layer != "" {
		if err := emit(8, StringValue(p.Layer)); err != nil {
			return err
		}
	}
	if p.LineType != "" {
		if err := emit(6, StringValue(p.LineType)); err != nil {
			return err
		}
	}
	if p.Color != 256 {
		if err := emit(62, IntValue(VInt16, int64(p.Color))); err != nil {
			return err
		}
	}
	if p.TrueColor != 0 {
		if err := emit(420, IntValue(VInt32, int64(p.TrueColor))); err != nil {
			return err
		}
	}
	if p.LineWeight != -1 {
		if err := emit(370, IntValue(VInt16, int64(p.LineWeight))); err != nil {
			return err
		}
	}
	if p.Transparency != 0 {
		if err := emit(440, IntValue(VInt32, int64(p.Transparency))); err != nil {
			return err
		}
	}
	if !p.Visible {
		if err := emit(60, IntValue(VInt16, 1)); err != nil {
			return err
		}
	}
	if p.PlotStyle != NoHandle {
		if err := emit(390, HandleValue(p.PlotStyle)); err != nil {
			return err
		}
	}
	if p.Material != NoHandle {
		if err := emit(347, HandleValue(p.Material)); err != nil {
			return err
		}
	}
	for _, g := range p.ExtraGroups {
		if err := emit(102, StringValue(g.Name)); err != nil {
			return err
		}
		for _, r := range g.Body {
			if err := emit(r.Code, r.Value); err != nil {
				return err
			}
		}
		if err := emit(102, StringValue("}")); err != nil {
			return err
		}
	}
	return nil
}
