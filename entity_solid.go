// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

func init() {
	registerEntity("SOLID", func() Entity { return &Solid{Preamble: newPreamble()} })
	registerEntity("3DFACE", func() Entity { return &Face3D{Preamble: newPreamble()} })
	registerEntity("SPLINE", func() Entity { return &Spline{Preamble: newPreamble()} })
	registerEntity("HATCH", func() Entity { return &Hatch{Preamble: newPreamble()} })
	registerEntity("LEADER", func() Entity { return &Leader{Preamble: newPreamble()} })
	registerEntity("DIMENSION", func() Entity { return &Dimension{Preamble: newPreamble()} })
}

// Solid is a filled triangle or quadrilateral, given by up to four
// corner points (the fourth repeating the third for a triangle).
type Solid struct {
	Preamble
	Corners   [4]Point
	Thickness float64
	Extrusion Point
}

func (e *Solid) Type() string   { return "SOLID" }
func (e *Solid) Pre() *Preamble { return &e.Preamble }

func (e *Solid) applyField(code int, v Value) bool {
	idx, axis := solidCorner(code)
	if idx < 0 {
		switch code {
		case 39:
			e.Thickness = v.Float()
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
	switch axis {
	case 0:
		e.Corners[idx].X = v.Float()
	case 1:
		e.Corners[idx].Y = v.Float()
	case 2:
		e.Corners[idx].Z = v.Float()
	}
	return true
}

// solidCorner maps a SOLID/3DFACE corner group code to (corner index,
// axis), or (-1, 0) for a code that isn't a corner coordinate. Corners
// are coded 1n/2n/3n for X/Y/Z of corner n (n = 0..3).
func solidCorner(code int) (idx, axis int) {
	switch {
	case code >= 10 && code <= 13:
		return code - 10, 0
	case code >= 20 && code <= 23:
		return code - 20, 1
	case code >= 30 && code <= 33:
		return code - 30, 2
	default:
		return -1, 0
	}
}

func (e *Solid) writeOwnFields(sink tokenSink) error {
	if err := sink.emitCode(100, StringValue("AcDbTrace")); err != nil {
		return err
	}
	for i, c := range e.Corners {
		if err := emitAll(sink, rec(10+i, FloatValue(c.X)), rec(20+i, FloatValue(c.Y)), rec(30+i, FloatValue(c.Z))); err != nil {
			return err
		}
	}
	return emitAll(sink, rec(39, FloatValue(e.Thickness)),
		rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)))
}

// Face3D is a 3D filled quadrilateral with optional per-edge visibility
// flags (code 70, bitmask of invisible edges).
type Face3D struct {
	Preamble
	Corners [4]Point
	EdgeVisibility int16
}

func (e *Face3D) Type() string   { return "3DFACE" }
func (e *Face3D) Pre() *Preamble { return &e.Preamble }

func (e *Face3D) applyField(code int, v Value) bool {
	if idx, axis := solidCorner(code); idx >= 0 {
		switch axis {
		case 0:
			e.Corners[idx].X = v.Float()
		case 1:
			e.Corners[idx].Y = v.Float()
		case 2:
			e.Corners[idx].Z = v.Float()
		}
		return true
	}
	if code == 70 {
		e.EdgeVisibility = int16(v.Int())
		return true
	}
	return false
}

func (e *Face3D) writeOwnFields(sink tokenSink) error {
	if err := sink.emitCode(100, StringValue("AcDbFace")); err != nil {
		return err
	}
	for i, c := range e.Corners {
		if err := emitAll(sink, rec(10+i, FloatValue(c.X)), rec(20+i, FloatValue(c.Y)), rec(30+i, FloatValue(c.Z))); err != nil {
			return err
		}
	}
	return sink.emitCode(70, IntValue(VInt16, int64(e.EdgeVisibility)))
}

// SplineControlPoint is one control point, optionally weighted.
type SplineControlPoint struct {
	Point
	Weight float64
}

// Spline is a NURBS curve: Degree, a knot vector, and a list of control
// points (with optional fit points, not separately modeled here since
// they are a presentation convenience derived from the control points).
type Spline struct {
	Preamble
	Flags    int16
	Degree   int16
	Knots    []float64
	Weights  []float64
	Controls []Point
	pendingWeights int
}

func (e *Spline) Type() string   { return "SPLINE" }
func (e *Spline) Pre() *Preamble { return &e.Preamble }

func (e *Spline) applyField(code int, v Value) bool {
	switch code {
	case 70:
		e.Flags = int16(v.Int())
	case 71:
		e.Degree = int16(v.Int())
	case 72, 73, 74:
		// knot/control/fit counts: advisory, not retained separately.
	case 40:
		e.Knots = append(e.Knots, v.Float())
	case 41:
		e.Weights = append(e.Weights, v.Float())
	case 10:
		e.Controls = append(e.Controls, Point{X: v.Float()})
	case 20:
		if n := len(e.Controls); n > 0 {
			e.Controls[n-1].Y = v.Float()
		}
	case 30:
		if n := len(e.Controls); n > 0 {
			e.Controls[n-1].Z = v.Float()
		}
	default:
		return false
	}
	return true
}

func (e *Spline) writeOwnFields(sink tokenSink) error {
	if err := emitAll(sink,
		rec(100, StringValue("AcDbSpline")),
		rec(70, IntValue(VInt16, int64(e.Flags))),
		rec(71, IntValue(VInt16, int64(e.Degree))),
		rec(72, IntValue(VInt32, int64(len(e.Knots)))),
		rec(73, IntValue(VInt32, int64(len(e.Controls)))),
		rec(74, IntValue(VInt32, 0)),
	); err != nil {
		return err
	}
	for _, k := range e.Knots {
		if err := sink.emitCode(40, FloatValue(k)); err != nil {
			return err
		}
	}
	for _, w := range e.Weights {
		if err := sink.emitCode(41, FloatValue(w)); err != nil {
			return err
		}
	}
	for _, c := range e.Controls {
		if err := emitAll(sink, rec(10, FloatValue(c.X)), rec(20, FloatValue(c.Y)), rec(30, FloatValue(c.Z))); err != nil {
			return err
		}
	}
	return nil
}

// HatchBoundaryPath is one loop of a hatch's boundary, preserved as raw
// edge records: the edge-type grammar inside a boundary path is a
// state machine of its own and is kept verbatim rather than decomposed,
// since this library never needs to recompute hatch geometry (§4.5
// point 5, the one HATCH multi-record nesting case the format has).
type HatchBoundaryPath struct {
	Flags int32
	Edges []Record
}

// Hatch is a filled or patterned region bounded by one or more
// HatchBoundaryPath loops.
type Hatch struct {
	Preamble
	Pattern   string
	Solid     bool
	Associative bool
	Elevation Point
	Extrusion Point
	PatternAngle float64
	PatternScale float64
	Paths     []HatchBoundaryPath
	pendingPath *HatchBoundaryPath
	inBoundary  bool
}

func (e *Hatch) Type() string   { return "HATCH" }
func (e *Hatch) Pre() *Preamble { return &e.Preamble }

func (e *Hatch) applyField(code int, v Value) bool {
	if e.pendingPath != nil && code != 92 && code != 97 {
		// Inside an open boundary path every record up to its closing 97
		// is an edge record.
		e.pendingPath.Edges = append(e.pendingPath.Edges, Record{Code: code, Value: v})
		return true
	}
	switch code {
	case 2:
		e.Pattern = v.Str()
	case 70:
		e.Solid = v.Bool()
	case 71:
		e.Associative = v.Bool()
	case 10:
		e.Elevation.X = v.Float()
	case 20:
		e.Elevation.Y = v.Float()
	case 30:
		e.Elevation.Z = v.Float()
	case 210:
		e.Extrusion.X = v.Float()
	case 220:
		e.Extrusion.Y = v.Float()
	case 230:
		e.Extrusion.Z = v.Float()
	case 52:
		e.PatternAngle = v.Float()
	case 41:
		e.PatternScale = v.Float()
	case 91:
		e.flushPath()
		e.inBoundary = true
	case 92:
		if e.inBoundary && e.pendingPath == nil {
			e.pendingPath = &HatchBoundaryPath{}
		}
		if e.pendingPath != nil {
			e.pendingPath.Flags = int32(v.Int())
		}
	case 97:
		e.flushPath()
	default:
		return false
	}
	return true
}

func (e *Hatch) flushPath() {
	if e.pendingPath != nil {
		e.Paths = append(e.Paths, *e.pendingPath)
		e.pendingPath = nil
	}
}

func (e *Hatch) writeOwnFields(sink tokenSink) error {
	e.flushPath()
	if err := emitAll(sink,
		rec(100, StringValue("AcDbHatch")),
		rec(10, FloatValue(e.Elevation.X)), rec(20, FloatValue(e.Elevation.Y)), rec(30, FloatValue(e.Elevation.Z)),
		rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)),
		rec(2, StringValue(e.Pattern)),
		rec(70, BoolValue(e.Solid)),
		rec(71, BoolValue(e.Associative)),
		rec(91, IntValue(VInt32, int64(len(e.Paths)))),
	); err != nil {
		return err
	}
	for _, p := range e.Paths {
		if err := sink.emitCode(92, IntValue(VInt32, int64(p.Flags))); err != nil {
			return err
		}
		for _, edge := range p.Edges {
			if err := sink.emit(edge); err != nil {
				return err
			}
		}
		if err := sink.emitCode(97, IntValue(VInt32, 0)); err != nil {
			return err
		}
	}
	return emitAll(sink, rec(52, FloatValue(e.PatternAngle)), rec(41, FloatValue(e.PatternScale)))
}

// Leader is a sequence of vertices forming a pointer line, usually to an
// annotation.
type Leader struct {
	Preamble
	Style    string
	ArrowHeadEnabled bool
	Vertices []Point
	pendingVertex *Point
}

func (e *Leader) Type() string   { return "LEADER" }
func (e *Leader) Pre() *Preamble { return &e.Preamble }

func (e *Leader) applyField(code int, v Value) bool {
	switch code {
	case 3:
		e.Style = v.Str()
	case 71:
		e.ArrowHeadEnabled = v.Bool()
	case 76:
		// vertex count hint.
	case 10:
		e.flushVertex()
		e.pendingVertex = &Point{X: v.Float()}
	case 20:
		if e.pendingVertex != nil {
			e.pendingVertex.Y = v.Float()
		}
	case 30:
		if e.pendingVertex != nil {
			e.pendingVertex.Z = v.Float()
		}
	default:
		return false
	}
	return true
}

func (e *Leader) flushVertex() {
	if e.pendingVertex != nil {
		e.Vertices = append(e.Vertices, *e.pendingVertex)
		e.pendingVertex = nil
	}
}

func (e *Leader) writeOwnFields(sink tokenSink) error {
	e.flushVertex()
	if err := emitAll(sink,
		rec(100, StringValue("AcDbLeader")),
		rec(3, StringValue(e.Style)),
		rec(71, BoolValue(e.ArrowHeadEnabled)),
		rec(76, IntValue(VInt32, int64(len(e.Vertices)))),
	); err != nil {
		return err
	}
	for _, vtx := range e.Vertices {
		if err := emitAll(sink, rec(10, FloatValue(vtx.X)), rec(20, FloatValue(vtx.Y)), rec(30, FloatValue(vtx.Z))); err != nil {
			return err
		}
	}
	return nil
}

// Dimension covers the fields common to every AutoCAD dimension
// subtype (linear, aligned, angular, radial, diametric, ordinate).
// Subtype-specific codes beyond these common ones are intentionally not
// decomposed: AutoCAD itself disambiguates them only by the DimType
// low bits plus a cascade of reused codes across nested subclass
// markers, and faithfully modeling every combination is out of scope
// (noted as a simplification in DESIGN.md). Codes this type does not
// recognize are dropped by decodeCommonRun on read, so a DIMENSION that
// is read and written back loses its subtype-specific codes.
type Dimension struct {
	Preamble
	Block       string
	DefPoint    Point
	TextMidpoint Point
	DimType     int16
	AttachPoint int16
	Text        string
	Rotation    float64
	Style       string
}

func (e *Dimension) Type() string   { return "DIMENSION" }
func (e *Dimension) Pre() *Preamble { return &e.Preamble }

func (e *Dimension) applyField(code int, v Value) bool {
	switch code {
	case 2:
		e.Block = v.Str()
	case 10:
		e.DefPoint.X = v.Float()
	case 20:
		e.DefPoint.Y = v.Float()
	case 30:
		e.DefPoint.Z = v.Float()
	case 11:
		e.TextMidpoint.X = v.Float()
	case 21:
		e.TextMidpoint.Y = v.Float()
	case 31:
		e.TextMidpoint.Z = v.Float()
	case 70:
		e.DimType = int16(v.Int())
	case 71:
		e.AttachPoint = int16(v.Int())
	case 1:
		e.Text = v.Str()
	case 50:
		e.Rotation = v.Float()
	case 3:
		e.Style = v.Str()
	default:
		return false
	}
	return true
}

func (e *Dimension) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbDimension")),
		rec(2, StringValue(e.Block)),
		rec(10, FloatValue(e.DefPoint.X)), rec(20, FloatValue(e.DefPoint.Y)), rec(30, FloatValue(e.DefPoint.Z)),
		rec(11, FloatValue(e.TextMidpoint.X)), rec(21, FloatValue(e.TextMidpoint.Y)), rec(31, FloatValue(e.TextMidpoint.Z)),
		rec(70, IntValue(VInt16, int64(e.DimType))),
		rec(71, IntValue(VInt16, int64(e.AttachPoint))),
		rec(1, StringValue(e.Text)),
		rec(3, StringValue(e.Style)),
		rec(50, FloatValue(e.Rotation)),
	)
}
