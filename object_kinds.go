// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

func init() {
	registerObject("DICTIONARY", func() Object { return &Dictionary{Preamble: newPreamble()} })
	registerObject("DICTIONARYVAR", func() Object { return &DictionaryVar{Preamble: newPreamble()} })
	registerObject("XRECORD", func() Object { return &XRecord{Preamble: newPreamble()} })
	registerObject("GROUP", func() Object { return &Group{Preamble: newPreamble(), Selectable: true} })
	registerObject("LAYOUT", func() Object { return &Layout{Preamble: newPreamble()} })
	registerObject("MLINESTYLE", func() Object { return &MLineStyle{Preamble: newPreamble()} })
	registerObject("IMAGEDEF", func() Object { return &ImageDef{Preamble: newPreamble()} })
	registerObject("IMAGEDEF_REACTOR", func() Object { return &ImageDefReactor{Preamble: newPreamble()} })
	registerObject("SORTENTSTABLE", func() Object { return &SortEntsTable{Preamble: newPreamble()} })
	registerObject("SCALE", func() Object { return &Scale{Preamble: newPreamble(), Factor: 1} })
	registerObject("IDBUFFER", func() Object { return &IDBuffer{Preamble: newPreamble()} })
	registerObject("RASTERVARIABLES", func() Object { return &RasterVariables{Preamble: newPreamble()} })
}

// DictionaryEntry is one (name, handle) pair of a Dictionary.
type DictionaryEntry struct {
	Name   string
	Handle Handle
}

// Dictionary maps names to object handles (§4.4); the document's root
// dictionary (named object dictionary) is the first DICTIONARY read with
// no owner, recorded as Document.RootDictionary.
type Dictionary struct {
	Preamble
	HardOwned bool
	Entries   []DictionaryEntry
	pendingName string
}

func (o *Dictionary) Type() string   { return "DICTIONARY" }
func (o *Dictionary) Pre() *Preamble { return &o.Preamble }

func (o *Dictionary) applyField(code int, v Value) bool {
	switch code {
	case 280:
		o.HardOwned = v.Int() != 0
	case 281:
		// duplicate record cloning flag, not separately modeled.
	case 3:
		o.pendingName = v.Str()
	case 350, 360:
		o.Entries = append(o.Entries, DictionaryEntry{Name: o.pendingName, Handle: v.Handle()})
		o.pendingName = ""
	default:
		return false
	}
	return true
}

// Lookup returns the handle registered under name, if any.
func (o *Dictionary) Lookup(name string) (Handle, bool) {
	for _, e := range o.Entries {
		if e.Name == name {
			return e.Handle, true
		}
	}
	return NoHandle, false
}

func (o *Dictionary) writeOwnFields(sink tokenSink) error {
	if err := emitAll(sink, rec(100, StringValue("AcDbDictionary"))); err != nil {
		return err
	}
	if o.HardOwned {
		if err := sink.emitCode(280, IntValue(VInt16, 1)); err != nil {
			return err
		}
	}
	for _, e := range o.Entries {
		if err := emitAll(sink, rec(3, StringValue(e.Name)), rec(350, HandleValue(e.Handle))); err != nil {
			return err
		}
	}
	return nil
}

// DictionaryVar is a single named string variable stored in a
// dictionary (used for things like the current annotation scale name).
type DictionaryVar struct {
	Preamble
	Schema string
	Value  string
}

func (o *DictionaryVar) Type() string   { return "DICTIONARYVAR" }
func (o *DictionaryVar) Pre() *Preamble { return &o.Preamble }

func (o *DictionaryVar) applyField(code int, v Value) bool {
	switch code {
	case 280:
		o.Schema = v.Str()
	case 1:
		o.Value = v.Str()
	default:
		return false
	}
	return true
}

func (o *DictionaryVar) writeOwnFields(sink tokenSink) error {
	return emitAll(sink, rec(280, StringValue(o.Schema)), rec(1, StringValue(o.Value)))
}

// XRecord is an opaque bag of application-defined group codes, used by
// third-party applications to store arbitrary data in the database.
// Its payload is preserved verbatim since no fixed schema exists.
type XRecord struct {
	Preamble
	CloningFlag int16
	Data        []Record
}

func (o *XRecord) Type() string   { return "XRECORD" }
func (o *XRecord) Pre() *Preamble { return &o.Preamble }

func (o *XRecord) applyField(code int, v Value) bool {
	if code == 280 {
		o.CloningFlag = int16(v.Int())
		return true
	}
	o.Data = append(o.Data, Record{Code: code, Value: v})
	return true
}

func (o *XRecord) writeOwnFields(sink tokenSink) error {
	if err := emitAll(sink, rec(100, StringValue("AcDbXrecord")), rec(280, IntValue(VInt16, int64(o.CloningFlag)))); err != nil {
		return err
	}
	for _, r := range o.Data {
		if err := sink.emit(r); err != nil {
			return err
		}
	}
	return nil
}

// Group is a named, possibly-unselectable collection of entity handles.
type Group struct {
	Preamble
	Description string
	Selectable  bool
	Members     []Handle
}

func (o *Group) Type() string   { return "GROUP" }
func (o *Group) Pre() *Preamble { return &o.Preamble }

func (o *Group) applyField(code int, v Value) bool {
	switch code {
	case 300:
		o.Description = v.Str()
	case 71:
		o.Selectable = v.Int() != 0
	case 340:
		o.Members = append(o.Members, v.Handle())
	default:
		return false
	}
	return true
}

func (o *Group) writeOwnFields(sink tokenSink) error {
	if err := emitAll(sink,
		rec(300, StringValue(o.Description)),
		rec(70, IntValue(VInt16, 0)),
		rec(71, BoolValue(o.Selectable)),
	); err != nil {
		return err
	}
	for _, h := range o.Members {
		if err := sink.emitCode(340, HandleValue(h)); err != nil {
			return err
		}
	}
	return nil
}

// Layout is a named paper-space (or the implicit model-space) layout.
type Layout struct {
	Preamble
	LayoutName string
	Flags      int16
	TabOrder   int32
	BlockTableRecord Handle
}

func (o *Layout) Type() string   { return "LAYOUT" }
func (o *Layout) Pre() *Preamble { return &o.Preamble }

func (o *Layout) applyField(code int, v Value) bool {
	switch code {
	case 1:
		o.LayoutName = v.Str()
	case 70:
		o.Flags = int16(v.Int())
	case 71:
		o.TabOrder = int32(v.Int())
	case 330:
		o.BlockTableRecord = v.Handle()
	default:
		return false
	}
	return true
}

func (o *Layout) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbLayout")),
		rec(1, StringValue(o.LayoutName)),
		rec(70, IntValue(VInt16, int64(o.Flags))),
		rec(71, IntValue(VInt32, int64(o.TabOrder))),
		rec(330, HandleValue(o.BlockTableRecord)),
	)
}

// MLineStyle is a named multiline style definition. Its per-element
// line list (offset/color/linetype triples) is preserved verbatim since
// the element count is itself data-dependent.
type MLineStyle struct {
	Preamble
	StyleName   string
	Description string
	Flags       int16
	Elements    []Record
}

func (o *MLineStyle) Type() string   { return "MLINESTYLE" }
func (o *MLineStyle) Pre() *Preamble { return &o.Preamble }

func (o *MLineStyle) applyField(code int, v Value) bool {
	switch code {
	case 2:
		o.StyleName = v.Str()
	case 3:
		o.Description = v.Str()
	case 70:
		o.Flags = int16(v.Int())
	case 71, 49, 62, 6:
		o.Elements = append(o.Elements, Record{Code: code, Value: v})
	default:
		return false
	}
	return true
}

func (o *MLineStyle) writeOwnFields(sink tokenSink) error {
	if err := emitAll(sink,
		rec(100, StringValue("AcDbMlineStyle")),
		rec(2, StringValue(o.StyleName)),
		rec(70, IntValue(VInt16, int64(o.Flags))),
		rec(3, StringValue(o.Description)),
	); err != nil {
		return err
	}
	for _, r := range o.Elements {
		if err := sink.emit(r); err != nil {
			return err
		}
	}
	return nil
}

// ImageDef references an externally stored raster image file.
type ImageDef struct {
	Preamble
	FilePath string
	ImageSize Point
	PixelSize Point
	Loaded   bool
}

func (o *ImageDef) Type() string   { return "IMAGEDEF" }
func (o *ImageDef) Pre() *Preamble { return &o.Preamble }

func (o *ImageDef) applyField(code int, v Value) bool {
	switch code {
	case 1:
		o.FilePath = v.Str()
	case 10:
		o.ImageSize.X = v.Float()
	case 20:
		o.ImageSize.Y = v.Float()
	case 11:
		o.PixelSize.X = v.Float()
	case 21:
		o.PixelSize.Y = v.Float()
	case 280:
		o.Loaded = v.Int() != 0
	default:
		return false
	}
	return true
}

func (o *ImageDef) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbRasterImageDef")),
		rec(1, StringValue(o.FilePath)),
		rec(10, FloatValue(o.ImageSize.X)), rec(20, FloatValue(o.ImageSize.Y)),
		rec(11, FloatValue(o.PixelSize.X)), rec(21, FloatValue(o.PixelSize.Y)),
		rec(280, BoolValue(o.Loaded)),
	)
}

// ImageDefReactor links an IMAGE entity back to its owning ImageDef.
type ImageDefReactor struct {
	Preamble
	Version int16
}

func (o *ImageDefReactor) Type() string   { return "IMAGEDEF_REACTOR" }
func (o *ImageDefReactor) Pre() *Preamble { return &o.Preamble }

func (o *ImageDefReactor) applyField(code int, v Value) bool {
	if code == 90 {
		o.Version = int16(v.Int())
		return true
	}
	return false
}

func (o *ImageDefReactor) writeOwnFields(sink tokenSink) error {
	return emitAll(sink, rec(100, StringValue("AcDbRasterImageDefReactor")), rec(90, IntValue(VInt32, int64(o.Version))))
}

// SortEntsTable records a custom draw order for entities owned by a
// particular block table record.
type SortEntsTable struct {
	Preamble
	BlockOwner Handle
	Pairs      []SortEntsPair
	pendingSortHandle Handle
	havePending       bool
}

// SortEntsPair associates an entity handle with its sorted draw-order
// handle.
type SortEntsPair struct {
	SortHandle, Entity Handle
}

func (o *SortEntsTable) Type() string   { return "SORTENTSTABLE" }
func (o *SortEntsTable) Pre() *Preamble { return &o.Preamble }

func (o *SortEntsTable) applyField(code int, v Value) bool {
	switch code {
	case 330:
		o.BlockOwner = v.Handle()
	case 331:
		o.pendingSortHandle = v.Handle()
		o.havePending = true
	case 5:
		if o.havePending {
			o.Pairs = append(o.Pairs, SortEntsPair{SortHandle: v.Handle(), Entity: o.pendingSortHandle})
			o.havePending = false
		}
	default:
		return false
	}
	return true
}

func (o *SortEntsTable) writeOwnFields(sink tokenSink) error {
	if err := sink.emitCode(100, StringValue("AcDbSortentsTable")); err != nil {
		return err
	}
	for _, p := range o.Pairs {
		if err := emitAll(sink, rec(331, HandleValue(p.Entity)), rec(5, HandleValue(p.SortHandle))); err != nil {
			return err
		}
	}
	return nil
}

// Scale is a named annotation scale entry in the ACAD_SCALELIST
// dictionary.
type Scale struct {
	Preamble
	ScaleName string
	PaperUnits float64
	DrawingUnits float64
	Factor    float64
	IsUnitScale bool
}

func (o *Scale) Type() string   { return "SCALE" }
func (o *Scale) Pre() *Preamble { return &o.Preamble }

func (o *Scale) applyField(code int, v Value) bool {
	switch code {
	case 300:
		o.ScaleName = v.Str()
	case 140:
		o.PaperUnits = v.Float()
	case 141:
		o.DrawingUnits = v.Float()
	case 290:
		o.IsUnitScale = v.Int() != 0
	default:
		return false
	}
	return true
}

func (o *Scale) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(70, IntValue(VInt16, 0)),
		rec(300, StringValue(o.ScaleName)),
		rec(140, FloatValue(o.PaperUnits)),
		rec(141, FloatValue(o.DrawingUnits)),
		rec(290, BoolValue(o.IsUnitScale)),
	)
}

// IDBuffer is an ordered list of handles, commonly used as a transient
// selection-set snapshot.
type IDBuffer struct {
	Preamble
	Handles []Handle
}

func (o *IDBuffer) Type() string   { return "IDBUFFER" }
func (o *IDBuffer) Pre() *Preamble { return &o.Preamble }

func (o *IDBuffer) applyField(code int, v Value) bool {
	if code == 330 {
		o.Handles = append(o.Handles, v.Handle())
		return true
	}
	return false
}

func (o *IDBuffer) writeOwnFields(sink tokenSink) error {
	if err := sink.emitCode(100, StringValue("AcDbIdBuffer")); err != nil {
		return err
	}
	for _, h := range o.Handles {
		if err := sink.emitCode(330, HandleValue(h)); err != nil {
			return err
		}
	}
	return nil
}

// RasterVariables holds document-wide raster image display defaults.
type RasterVariables struct {
	Preamble
	ClassVersion int32
	DisplayFrame bool
	DisplayQuality int16
	Units        int16
}

func (o *RasterVariables) Type() string   { return "RASTERVARIABLES" }
func (o *RasterVariables) Pre() *Preamble { return &o.Preamble }

func (o *RasterVariables) applyField(code int, v Value) bool {
	switch code {
	case 90:
		o.ClassVersion = int32(v.Int())
	case 70:
		o.DisplayFrame = v.Int() != 0
	case 71:
		o.DisplayQuality = int16(v.Int())
	case 72:
		o.Units = int16(v.Int())
	default:
		return false
	}
	return true
}

func (o *RasterVariables) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbRasterVariables")),
		rec(90, IntValue(VInt32, int64(o.ClassVersion))),
		rec(70, BoolValue(o.DisplayFrame)),
		rec(71, IntValue(VInt16, int64(o.DisplayQuality))),
		rec(72, IntValue(VInt16, int64(o.Units))),
	)
}
