// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

func init() {
	registerEntity("LWPOLYLINE", func() Entity { return &LWPolyline{Preamble: newPreamble()} })
	registerEntity("POLYLINE", func() Entity { return &Polyline{Preamble: newPreamble()} })
	registerEntity("VERTEX", func() Entity { return &Vertex{Preamble: newPreamble()} })
	registerEntity("SEQEND", func() Entity { return &Seqend{Preamble: newPreamble()} })
	registerEntity("INSERT", func() Entity { return &Insert{Preamble: newPreamble(), ScaleX: 1, ScaleY: 1, ScaleZ: 1} })
}

// LWVertex is one vertex of a LWPolyline: a lightweight 2D point with an
// optional per-vertex bulge and start/end widths (§4.4).
type LWVertex struct {
	X, Y, StartWidth, EndWidth, Bulge float64
}

// LWPolyline is the modern, compact polyline representation, storing its
// vertices inline rather than as separate VERTEX entities.
type LWPolyline struct {
	Preamble
	Flags     int16
	ConstantWidth float64
	Elevation float64
	Thickness float64
	Extrusion Point
	Vertices  []LWVertex
	pendingVertex *LWVertex
}

func (e *LWPolyline) Type() string   { return "LWPOLYLINE" }
func (e *LWPolyline) Pre() *Preamble { return &e.Preamble }

func (e *LWPolyline) applyField(code int, v Value) bool {
	switch code {
	case 90:
		// vertex count hint; vertices themselves are appended as they
		// are seen, so the count is not separately retained.
	case 70:
		e.Flags = int16(v.Int())
	case 43:
		e.ConstantWidth = v.Float()
	case 38:
		e.Elevation = v.Float()
	case 39:
		e.Thickness = v.Float()
	case 210:
		e.Extrusion.X = v.Float()
	case 220:
		e.Extrusion.Y = v.Float()
	case 230:
		e.Extrusion.Z = v.Float()
	case 10:
		e.Vertices = append(e.Vertices, LWVertex{X: v.Float()})
		e.pendingVertex = &e.Vertices[len(e.Vertices)-1]
	case 20:
		if e.pendingVertex != nil {
			e.pendingVertex.Y = v.Float()
		}
	case 40:
		if e.pendingVertex != nil {
			e.pendingVertex.StartWidth = v.Float()
		}
	case 41:
		if e.pendingVertex != nil {
			e.pendingVertex.EndWidth = v.Float()
		}
	case 42:
		if e.pendingVertex != nil {
			e.pendingVertex.Bulge = v.Float()
		}
	default:
		return false
	}
	return true
}

// flushVertex ends the vertex currently being filled; that vertex is
// already in Vertices.
func (e *LWPolyline) flushVertex() {
	e.pendingVertex = nil
}

func (e *LWPolyline) writeOwnFields(sink tokenSink) error {
	e.flushVertex()
	if err := emitAll(sink,
		rec(100, StringValue("AcDbPolyline")),
		rec(90, IntValue(VInt32, int64(len(e.Vertices)))),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(43, FloatValue(e.ConstantWidth)),
		rec(38, FloatValue(e.Elevation)),
		rec(39, FloatValue(e.Thickness)),
	); err != nil {
		return err
	}
	for _, vtx := range e.Vertices {
		if err := emitAll(sink, rec(10, FloatValue(vtx.X)), rec(20, FloatValue(vtx.Y))); err != nil {
			return err
		}
		if vtx.StartWidth != 0 || vtx.EndWidth != 0 {
			if err := emitAll(sink, rec(40, FloatValue(vtx.StartWidth)), rec(41, FloatValue(vtx.EndWidth))); err != nil {
				return err
			}
		}
		if vtx.Bulge != 0 {
			if err := sink.emitCode(42, FloatValue(vtx.Bulge)); err != nil {
				return err
			}
		}
	}
	return emitAll(sink, rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)))
}

// Polyline is the legacy polyline representation: the POLYLINE entity
// itself carries only flags and polyline-wide defaults (elevation,
// thickness, default widths, extrusion), and its vertices follow as independent
// VERTEX entities in the record stream, terminated by SEQEND (§4.5
// point 5). This library models that stream shape directly rather than
// nesting VERTEX inside Polyline, since DXF itself never nests them.
type Polyline struct {
	Preamble
	Flags     int16
	Elevation Point
	Thickness float64
	DefaultStartWidth, DefaultEndWidth float64
	Extrusion Point
}

func (e *Polyline) Type() string   { return "POLYLINE" }
func (e *Polyline) Pre() *Preamble { return &e.Preamble }

func (e *Polyline) applyField(code int, v Value) bool {
	switch code {
	case 70:
		e.Flags = int16(v.Int())
	case 10:
		e.Elevation.X = v.Float()
	case 20:
		e.Elevation.Y = v.Float()
	case 30:
		e.Elevation.Z = v.Float()
	case 39:
		e.Thickness = v.Float()
	case 40:
		e.DefaultStartWidth = v.Float()
	case 41:
		e.DefaultEndWidth = v.Float()
	case 210:
		e.Extrusion.X = v.Float()
	case 220:
		e.Extrusion.Y = v.Float()
	case 230:
		e.Extrusion.Z = v.Float()
	default:
		return false
	}
	return true
}

func (e *Polyline) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDb2dPolyline")),
		rec(10, FloatValue(e.Elevation.X)), rec(20, FloatValue(e.Elevation.Y)), rec(30, FloatValue(e.Elevation.Z)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(40, FloatValue(e.DefaultStartWidth)), rec(41, FloatValue(e.DefaultEndWidth)),
		rec(39, FloatValue(e.Thickness)),
		rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)),
	)
}

// Vertex is one point of a legacy Polyline, emitted as its own entity
// record immediately following the owning POLYLINE.
type Vertex struct {
	Preamble
	Location Point
	StartWidth, EndWidth, Bulge float64
	Flags    int16
}

func (e *Vertex) Type() string   { return "VERTEX" }
func (e *Vertex) Pre() *Preamble { return &e.Preamble }

func (e *Vertex) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Location.X = v.Float()
	case 20:
		e.Location.Y = v.Float()
	case 30:
		e.Location.Z = v.Float()
	case 40:
		e.StartWidth = v.Float()
	case 41:
		e.EndWidth = v.Float()
	case 42:
		e.Bulge = v.Float()
	case 70:
		e.Flags = int16(v.Int())
	default:
		return false
	}
	return true
}

func (e *Vertex) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbVertex")),
		rec(100, StringValue("AcDb2dVertex")),
		rec(10, FloatValue(e.Location.X)), rec(20, FloatValue(e.Location.Y)), rec(30, FloatValue(e.Location.Z)),
		rec(40, FloatValue(e.StartWidth)), rec(41, FloatValue(e.EndWidth)),
		rec(42, FloatValue(e.Bulge)),
		rec(70, IntValue(VInt16, int64(e.Flags))),
	)
}

// Seqend closes a POLYLINE's or INSERT-with-attributes' vertex/attribute
// run. It carries only the common preamble.
type Seqend struct {
	Preamble
}

func (e *Seqend) Type() string   { return "SEQEND" }
func (e *Seqend) Pre() *Preamble { return &e.Preamble }
func (e *Seqend) applyField(int, Value) bool { return false }
func (e *Seqend) writeOwnFields(tokenSink) error { return nil }

// Insert places a block definition (by Block name; handle resolution
// does not link the name to a BlockRecord handle) at Insertion, optionally
// scaled/rotated/arrayed, optionally followed by ATTRIB entities and a
// terminating SEQEND when HasAttribs is set (§4.4, §4.5 point 5).
type Insert struct {
	Preamble
	Block      string
	Insertion  Point
	ScaleX, ScaleY, ScaleZ float64
	Rotation   float64
	ColCount, RowCount int32
	ColSpacing, RowSpacing float64
	Extrusion  Point
	HasAttribs bool
}

func (e *Insert) Type() string   { return "INSERT" }
func (e *Insert) Pre() *Preamble { return &e.Preamble }

func (e *Insert) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.Block = v.Str()
	case 10:
		e.Insertion.X = v.Float()
	case 20:
		e.Insertion.Y = v.Float()
	case 30:
		e.Insertion.Z = v.Float()
	case 41:
		e.ScaleX = v.Float()
	case 42:
		e.ScaleY = v.Float()
	case 43:
		e.ScaleZ = v.Float()
	case 50:
		e.Rotation = v.Float()
	case 70:
		e.ColCount = int32(v.Int())
	case 71:
		e.RowCount = int32(v.Int())
	case 44:
		e.ColSpacing = v.Float()
	case 45:
		e.RowSpacing = v.Float()
	case 66:
		e.HasAttribs = v.Bool()
	case 210:
		e.Extrusion.X = v.Float()
	case 220:
		e.Extrusion.Y = v.Float()
	case 230:
		e.Extrusion.Z = v.Float()
	default:
		return false
	}
	return true
}

func (e *Insert) writeOwnFields(sink tokenSink) error {
	if err := emitAll(sink, rec(100, StringValue("AcDbBlockReference"))); err != nil {
		return err
	}
	if e.HasAttribs {
		if err := sink.emitCode(66, BoolValue(true)); err != nil {
			return err
		}
	}
	return emitAll(sink,
		rec(2, StringValue(e.Block)),
		rec(10, FloatValue(e.Insertion.X)), rec(20, FloatValue(e.Insertion.Y)), rec(30, FloatValue(e.Insertion.Z)),
		rec(41, FloatValue(e.ScaleX)), rec(42, FloatValue(e.ScaleY)), rec(43, FloatValue(e.ScaleZ)),
		rec(50, FloatValue(e.Rotation)),
		rec(70, IntValue(VInt32, int64(e.ColCount))), rec(71, IntValue(VInt32, int64(e.RowCount))),
		rec(44, FloatValue(e.ColSpacing)), rec(45, FloatValue(e.RowSpacing)),
		rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)),
	)
}
