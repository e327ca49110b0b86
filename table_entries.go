// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

func init() {
	registerTableEntry("VPORT", func() TableEntry { return &VPort{Preamble: newPreamble(), SnapSpacing: Point{X: 1, Y: 1}, GridSpacing: Point{X: 1, Y: 1}} })
	registerTableEntry("LTYPE", func() TableEntry { return &LType{Preamble: newPreamble()} })
	registerTableEntry("LAYER", func() TableEntry { return &Layer{Preamble: newPreamble(), Color: 7} })
	registerTableEntry("STYLE", func() TableEntry { return &Style{Preamble: newPreamble(), WidthFactor: 1} })
	registerTableEntry("VIEW", func() TableEntry { return &View{Preamble: newPreamble()} })
	registerTableEntry("UCS", func() TableEntry { return &UCS{Preamble: newPreamble()} })
	registerTableEntry("APPID", func() TableEntry { return &AppID{Preamble: newPreamble()} })
	registerTableEntry("DIMSTYLE", func() TableEntry { return &DimStyle{Preamble: newPreamble()} })
	registerTableEntry("BLOCK_RECORD", func() TableEntry { return &BlockRecord{Preamble: newPreamble()} })
}

// VPort is a named viewport configuration.
type VPort struct {
	Preamble
	EntryName string
	Flags     int16
	Center    Point
	SnapSpacing, GridSpacing Point
	ViewDirection Point
	ViewTarget    Point
	ViewHeight    float64
}

func (e *VPort) Type() string   { return "VPORT" }
func (e *VPort) Name() string   { return e.EntryName }
func (e *VPort) Pre() *Preamble { return &e.Preamble }

func (e *VPort) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.EntryName = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 12:
		e.Center.X = v.Float()
	case 22:
		e.Center.Y = v.Float()
	case 13:
		e.SnapSpacing.X = v.Float()
	case 23:
		e.SnapSpacing.Y = v.Float()
	case 14:
		e.GridSpacing.X = v.Float()
	case 24:
		e.GridSpacing.Y = v.Float()
	case 16:
		e.ViewDirection.X = v.Float()
	case 26:
		e.ViewDirection.Y = v.Float()
	case 36:
		e.ViewDirection.Z = v.Float()
	case 17:
		e.ViewTarget.X = v.Float()
	case 27:
		e.ViewTarget.Y = v.Float()
	case 37:
		e.ViewTarget.Z = v.Float()
	case 40:
		e.ViewHeight = v.Float()
	default:
		return false
	}
	return true
}

func (e *VPort) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbViewportTableRecord")),
		rec(2, StringValue(e.EntryName)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(12, FloatValue(e.Center.X)), rec(22, FloatValue(e.Center.Y)),
		rec(13, FloatValue(e.SnapSpacing.X)), rec(23, FloatValue(e.SnapSpacing.Y)),
		rec(14, FloatValue(e.GridSpacing.X)), rec(24, FloatValue(e.GridSpacing.Y)),
		rec(16, FloatValue(e.ViewDirection.X)), rec(26, FloatValue(e.ViewDirection.Y)), rec(36, FloatValue(e.ViewDirection.Z)),
		rec(17, FloatValue(e.ViewTarget.X)), rec(27, FloatValue(e.ViewTarget.Y)), rec(37, FloatValue(e.ViewTarget.Z)),
		rec(40, FloatValue(e.ViewHeight)),
	)
}

// LType is a named line type definition with its dash pattern.
type LType struct {
	Preamble
	EntryName   string
	Description string
	Flags       int16
	Pattern     []float64
}

func (e *LType) Type() string   { return "LTYPE" }
func (e *LType) Name() string   { return e.EntryName }
func (e *LType) Pre() *Preamble { return &e.Preamble }

func (e *LType) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.EntryName = v.Str()
	case 3:
		e.Description = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 49:
		e.Pattern = append(e.Pattern, v.Float())
	default:
		return false
	}
	return true
}

func (e *LType) writeOwnFields(sink tokenSink) error {
	if err := emitAll(sink,
		rec(100, StringValue("AcDbLinetypeTableRecord")),
		rec(2, StringValue(e.EntryName)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(3, StringValue(e.Description)),
		rec(72, IntValue(VInt16, 65)),
		rec(73, IntValue(VInt16, int64(len(e.Pattern)))),
	); err != nil {
		return err
	}
	for _, d := range e.Pattern {
		if err := sink.emitCode(49, FloatValue(d)); err != nil {
			return err
		}
	}
	return nil
}

// Layer is a named drawing layer.
type Layer struct {
	Preamble
	EntryName string
	Flags     int16
	Color     int16
	LineType  string
	LineWeight int16
	PlotStyleName string
	Plotted   bool
}

func (e *Layer) Type() string   { return "LAYER" }
func (e *Layer) Name() string   { return e.EntryName }
func (e *Layer) Pre() *Preamble { return &e.Preamble }

func (e *Layer) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.EntryName = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 62:
		e.Color = int16(v.Int())
	case 6:
		e.LineType = v.Str()
	case 370:
		e.LineWeight = int16(v.Int())
	case 390:
		e.PlotStyleName = v.Str()
	case 290:
		e.Plotted = v.Bool()
	default:
		return false
	}
	return true
}

func (e *Layer) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbLayerTableRecord")),
		rec(2, StringValue(e.EntryName)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(62, IntValue(VInt16, int64(e.Color))),
		rec(6, StringValue(e.LineType)),
		rec(290, BoolValue(e.Plotted)),
		rec(370, IntValue(VInt16, int64(e.LineWeight))),
	)
}

// Style is a named text style.
type Style struct {
	Preamble
	EntryName   string
	Flags       int16
	FixedHeight float64
	WidthFactor float64
	ObliqueAngle float64
	FontFile    string
	BigFontFile string
}

func (e *Style) Type() string   { return "STYLE" }
func (e *Style) Name() string   { return e.EntryName }
func (e *Style) Pre() *Preamble { return &e.Preamble }

func (e *Style) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.EntryName = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 40:
		e.FixedHeight = v.Float()
	case 41:
		e.WidthFactor = v.Float()
	case 50:
		e.ObliqueAngle = v.Float()
	case 3:
		e.FontFile = v.Str()
	case 4:
		e.BigFontFile = v.Str()
	default:
		return false
	}
	return true
}

func (e *Style) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbTextStyleTableRecord")),
		rec(2, StringValue(e.EntryName)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(40, FloatValue(e.FixedHeight)),
		rec(41, FloatValue(e.WidthFactor)),
		rec(50, FloatValue(e.ObliqueAngle)),
		rec(3, StringValue(e.FontFile)),
		rec(4, StringValue(e.BigFontFile)),
	)
}

// View is a named saved view.
type View struct {
	Preamble
	EntryName string
	Flags     int16
	Height    float64
	Width     float64
	Center    Point
}

func (e *View) Type() string   { return "VIEW" }
func (e *View) Name() string   { return e.EntryName }
func (e *View) Pre() *Preamble { return &e.Preamble }

func (e *View) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.EntryName = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 40:
		e.Height = v.Float()
	case 41:
		e.Width = v.Float()
	case 10:
		e.Center.X = v.Float()
	case 20:
		e.Center.Y = v.Float()
	default:
		return false
	}
	return true
}

func (e *View) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbViewTableRecord")),
		rec(2, StringValue(e.EntryName)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(40, FloatValue(e.Height)),
		rec(10, FloatValue(e.Center.X)), rec(20, FloatValue(e.Center.Y)),
		rec(41, FloatValue(e.Width)),
	)
}

// UCS is a named user coordinate system.
type UCS struct {
	Preamble
	EntryName string
	Flags     int16
	Origin    Point
	XAxis     Point
	YAxis     Point
}

func (e *UCS) Type() string   { return "UCS" }
func (e *UCS) Name() string   { return e.EntryName }
func (e *UCS) Pre() *Preamble { return &e.Preamble }

func (e *UCS) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.EntryName = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 10:
		e.Origin.X = v.Float()
	case 20:
		e.Origin.Y = v.Float()
	case 30:
		e.Origin.Z = v.Float()
	case 11:
		e.XAxis.X = v.Float()
	case 21:
		e.XAxis.Y = v.Float()
	case 31:
		e.XAxis.Z = v.Float()
	case 12:
		e.YAxis.X = v.Float()
	case 22:
		e.YAxis.Y = v.Float()
	case 32:
		e.YAxis.Z = v.Float()
	default:
		return false
	}
	return true
}

func (e *UCS) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbUCSTableRecord")),
		rec(2, StringValue(e.EntryName)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(10, FloatValue(e.Origin.X)), rec(20, FloatValue(e.Origin.Y)), rec(30, FloatValue(e.Origin.Z)),
		rec(11, FloatValue(e.XAxis.X)), rec(21, FloatValue(e.XAxis.Y)), rec(31, FloatValue(e.XAxis.Z)),
		rec(12, FloatValue(e.YAxis.X)), rec(22, FloatValue(e.YAxis.Y)), rec(32, FloatValue(e.YAxis.Z)),
	)
}

// AppID is a named registered application, the table referenced by
// xdata's application-name marker (§4.6).
type AppID struct {
	Preamble
	EntryName string
	Flags     int16
}

func (e *AppID) Type() string   { return "APPID" }
func (e *AppID) Name() string   { return e.EntryName }
func (e *AppID) Pre() *Preamble { return &e.Preamble }

func (e *AppID) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.EntryName = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	default:
		return false
	}
	return true
}

func (e *AppID) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbRegAppTableRecord")),
		rec(2, StringValue(e.EntryName)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
	)
}

// DimStyle is a named dimension style.
type DimStyle struct {
	Preamble
	EntryName string
	Flags     int16
	TextHeight float64
	ArrowSize  float64
	TextStyle  string
}

func (e *DimStyle) Type() string   { return "DIMSTYLE" }
func (e *DimStyle) Name() string   { return e.EntryName }
func (e *DimStyle) Pre() *Preamble { return &e.Preamble }

func (e *DimStyle) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.EntryName = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 140:
		e.TextHeight = v.Float()
	case 41:
		e.ArrowSize = v.Float()
	case 3:
		e.TextStyle = v.Str()
	default:
		return false
	}
	return true
}

func (e *DimStyle) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbDimStyleTableRecord")),
		rec(2, StringValue(e.EntryName)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(3, StringValue(e.TextStyle)),
		rec(41, FloatValue(e.ArrowSize)),
		rec(140, FloatValue(e.TextHeight)),
	)
}

// BlockRecord is the TABLES-section anchor for a block definition; the
// actual block geometry lives in the BLOCKS section, tied back here by
// handle (§4.4, §4.7).
type BlockRecord struct {
	Preamble
	EntryName string
	Flags     int16
	Units     int16
}

func (e *BlockRecord) Type() string   { return "BLOCK_RECORD" }
func (e *BlockRecord) Name() string   { return e.EntryName }
func (e *BlockRecord) Pre() *Preamble { return &e.Preamble }

func (e *BlockRecord) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.EntryName = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 280:
		e.Units = int16(v.Int())
	default:
		return false
	}
	return true
}

func (e *BlockRecord) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbBlockTableRecord")),
		rec(2, StringValue(e.EntryName)),
		rec(280, IntValue(VInt16, int64(e.Units))),
	)
}
