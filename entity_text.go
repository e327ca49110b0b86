// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

func init() {
	registerEntity("TEXT", func() Entity { return &Text{Preamble: newPreamble(), HeightScale: 1, WidthFactor: 1} })
	registerEntity("MTEXT", func() Entity { return &MText{Preamble: newPreamble(), WidthFactor: 1} })
	registerEntity("ATTDEF", func() Entity { return &AttDef{Preamble: newPreamble(), HeightScale: 1, WidthFactor: 1} })
	registerEntity("ATTRIB", func() Entity { return &Attrib{Preamble: newPreamble(), HeightScale: 1, WidthFactor: 1} })
}

// Text is a single-line text label.
type Text struct {
	Preamble
	Insertion   Point
	Height      float64
	Value       string
	Rotation    float64
	WidthFactor float64
	Oblique     float64
	Style       string
	HeightScale float64
	Alignment   Point
	HAlign      int16
	VAlign      int16
}

func (e *Text) Type() string   { return "TEXT" }
func (e *Text) Pre() *Preamble { return &e.Preamble }

func (e *Text) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Insertion.X = v.Float()
	case 20:
		e.Insertion.Y = v.Float()
	case 30:
		e.Insertion.Z = v.Float()
	case 40:
		e.Height = v.Float()
	case 1:
		e.Value = v.Str()
	case 50:
		e.Rotation = v.Float()
	case 41:
		e.WidthFactor = v.Float()
	case 51:
		e.Oblique = v.Float()
	case 7:
		e.Style = v.Str()
	case 11:
		e.Alignment.X = v.Float()
	case 21:
		e.Alignment.Y = v.Float()
	case 31:
		e.Alignment.Z = v.Float()
	case 72:
		e.HAlign = int16(v.Int())
	case 73:
		e.VAlign = int16(v.Int())
	default:
		return false
	}
	return true
}

func (e *Text) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbText")),
		rec(10, FloatValue(e.Insertion.X)), rec(20, FloatValue(e.Insertion.Y)), rec(30, FloatValue(e.Insertion.Z)),
		rec(40, FloatValue(e.Height)),
		rec(1, StringValue(e.Value)),
		rec(50, FloatValue(e.Rotation)),
		rec(41, FloatValue(e.WidthFactor)),
		rec(51, FloatValue(e.Oblique)),
		rec(7, StringValue(e.Style)),
		rec(72, IntValue(VInt16, int64(e.HAlign))),
		rec(11, FloatValue(e.Alignment.X)), rec(21, FloatValue(e.Alignment.Y)), rec(31, FloatValue(e.Alignment.Z)),
		rec(100, StringValue("AcDbText")),
		rec(73, IntValue(VInt16, int64(e.VAlign))),
	)
}

// MText is a multi-line, word-wrapped text paragraph. Value is the
// logical text with the group-250-character-chunk splitting AutoCAD
// applies on write collapsed back into one string on read.
type MText struct {
	Preamble
	Insertion   Point
	Height      float64
	RefWidth    float64
	Value       string
	Style       string
	Direction   Point
	AttachPoint int16
	DrawingDir  int16
	LineSpaceStyle int16
	LineSpaceFactor float64
	Rotation    float64
	WidthFactor float64
}

func (e *MText) Type() string   { return "MTEXT" }
func (e *MText) Pre() *Preamble { return &e.Preamble }

func (e *MText) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Insertion.X = v.Float()
	case 20:
		e.Insertion.Y = v.Float()
	case 30:
		e.Insertion.Z = v.Float()
	case 40:
		e.Height = v.Float()
	case 41:
		e.RefWidth = v.Float()
	case 1, 3:
		// Code 3 carries 250-character continuation chunks; code 1
		// carries the final (possibly only) chunk. Both append in order.
		e.Value += v.Str()
	case 7:
		e.Style = v.Str()
	case 11:
		e.Direction.X = v.Float()
	case 21:
		e.Direction.Y = v.Float()
	case 31:
		e.Direction.Z = v.Float()
	case 71:
		e.AttachPoint = int16(v.Int())
	case 72:
		e.DrawingDir = int16(v.Int())
	case 73:
		e.LineSpaceStyle = int16(v.Int())
	case 44:
		e.LineSpaceFactor = v.Float()
	case 50:
		e.Rotation = v.Float()
	case 42:
		e.WidthFactor = v.Float()
	default:
		return false
	}
	return true
}

func (e *MText) writeOwnFields(sink tokenSink) error {
	if err := emitAll(sink,
		rec(100, StringValue("AcDbMText")),
		rec(10, FloatValue(e.Insertion.X)), rec(20, FloatValue(e.Insertion.Y)), rec(30, FloatValue(e.Insertion.Z)),
		rec(40, FloatValue(e.Height)),
		rec(41, FloatValue(e.RefWidth)),
		rec(71, IntValue(VInt16, int64(e.AttachPoint))),
		rec(72, IntValue(VInt16, int64(e.DrawingDir))),
	); err != nil {
		return err
	}
	if err := writeMTextChunks(sink, e.Value); err != nil {
		return err
	}
	return emitAll(sink,
		rec(7, StringValue(e.Style)),
		rec(11, FloatValue(e.Direction.X)), rec(21, FloatValue(e.Direction.Y)), rec(31, FloatValue(e.Direction.Z)),
		rec(42, FloatValue(e.WidthFactor)),
		rec(50, FloatValue(e.Rotation)),
		rec(73, IntValue(VInt16, int64(e.LineSpaceStyle))),
		rec(44, FloatValue(e.LineSpaceFactor)),
	)
}

// writeMTextChunks re-splits Value into AutoCAD's 250-byte code-3
// continuation chunks followed by a final code-1 chunk, matching how
// every MTEXT writer in circulation emits long text (§4.4, §6.2).
func writeMTextChunks(sink tokenSink, value string) error {
	const chunkLen = 250
	for len(value) > chunkLen {
		if err := sink.emitCode(3, StringValue(value[:chunkLen])); err != nil {
			return err
		}
		value = value[chunkLen:]
	}
	return sink.emitCode(1, StringValue(value))
}

// AttDef is an attribute definition template attached to a block
// definition, instantiated as an Attrib on each INSERT.
type AttDef struct {
	Preamble
	Insertion   Point
	Height      float64
	Value       string
	Tag         string
	Prompt      string
	Flags       int16
	Rotation    float64
	WidthFactor float64
	Style       string
	HeightScale float64
}

func (e *AttDef) Type() string   { return "ATTDEF" }
func (e *AttDef) Pre() *Preamble { return &e.Preamble }

func (e *AttDef) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Insertion.X = v.Float()
	case 20:
		e.Insertion.Y = v.Float()
	case 30:
		e.Insertion.Z = v.Float()
	case 40:
		e.Height = v.Float()
	case 1:
		e.Value = v.Str()
	case 2:
		e.Tag = v.Str()
	case 3:
		e.Prompt = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 50:
		e.Rotation = v.Float()
	case 41:
		e.WidthFactor = v.Float()
	case 7:
		e.Style = v.Str()
	default:
		return false
	}
	return true
}

func (e *AttDef) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbText")),
		rec(10, FloatValue(e.Insertion.X)), rec(20, FloatValue(e.Insertion.Y)), rec(30, FloatValue(e.Insertion.Z)),
		rec(40, FloatValue(e.Height)),
		rec(1, StringValue(e.Value)),
		rec(50, FloatValue(e.Rotation)),
		rec(41, FloatValue(e.WidthFactor)),
		rec(7, StringValue(e.Style)),
		rec(100, StringValue("AcDbAttributeDefinition")),
		rec(3, StringValue(e.Prompt)),
		rec(2, StringValue(e.Tag)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
	)
}

// Attrib is one ATTDEF instantiated on a particular INSERT.
type Attrib struct {
	Preamble
	Insertion   Point
	Height      float64
	Value       string
	Tag         string
	Flags       int16
	Rotation    float64
	WidthFactor float64
	Style       string
	HeightScale float64
}

func (e *Attrib) Type() string   { return "ATTRIB" }
func (e *Attrib) Pre() *Preamble { return &e.Preamble }

func (e *Attrib) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Insertion.X = v.Float()
	case 20:
		e.Insertion.Y = v.Float()
	case 30:
		e.Insertion.Z = v.Float()
	case 40:
		e.Height = v.Float()
	case 1:
		e.Value = v.Str()
	case 2:
		e.Tag = v.Str()
	case 70:
		e.Flags = int16(v.Int())
	case 50:
		e.Rotation = v.Float()
	case 41:
		e.WidthFactor = v.Float()
	case 7:
		e.Style = v.Str()
	default:
		return false
	}
	return true
}

func (e *Attrib) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbText")),
		rec(10, FloatValue(e.Insertion.X)), rec(20, FloatValue(e.Insertion.Y)), rec(30, FloatValue(e.Insertion.Z)),
		rec(40, FloatValue(e.Height)),
		rec(1, StringValue(e.Value)),
		rec(50, FloatValue(e.Rotation)),
		rec(41, FloatValue(e.WidthFactor)),
		rec(7, StringValue(e.Style)),
		rec(100, StringValue("AcDbAttribute")),
		rec(2, StringValue(e.Tag)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
	)
}
