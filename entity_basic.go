// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

func init() {
	registerEntity("LINE", func() Entity { return &Line{Preamble: newPreamble()} })
	registerEntity("POINT", func() Entity { return &PointEntity{Preamble: newPreamble()} })
	registerEntity("CIRCLE", func() Entity { return &Circle{Preamble: newPreamble()} })
	registerEntity("ARC", func() Entity { return &Arc{Preamble: newPreamble()} })
	registerEntity("ELLIPSE", func() Entity { return &Ellipse{Preamble: newPreamble()} })
	registerEntity("RAY", func() Entity { return &Ray{Preamble: newPreamble()} })
	registerEntity("XLINE", func() Entity { return &XLine{Preamble: newPreamble()} })
}

// Line is a straight segment between Start and End (§4.4).
type Line struct {
	Preamble
	Start, End  Point
	Thickness   float64
	Extrusion   Point
}

func (e *Line) Type() string   { return "LINE" }
func (e *Line) Pre() *Preamble { return &e.Preamble }

func (e *Line) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Start.X = v.Float()
	case 20:
		e.Start.Y = v.Float()
	case 30:
		e.Start.Z = v.Float()
	case 11:
		e.End.X = v.Float()
	case 21:
		e.End.Y = v.Float()
	case 31:
		e.End.Z = v.Float()
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

func (e *Line) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbLine")),
		rec(39, FloatValue(e.Thickness)),
		rec(10, FloatValue(e.Start.X)), rec(20, FloatValue(e.Start.Y)), rec(30, FloatValue(e.Start.Z)),
		rec(11, FloatValue(e.End.X)), rec(21, FloatValue(e.End.Y)), rec(31, FloatValue(e.End.Z)),
		rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)),
	)
}

// PointEntity is a single drawn point.
type PointEntity struct {
	Preamble
	Position  Point
	Thickness float64
	Extrusion Point
}

func (e *PointEntity) Type() string   { return "POINT" }
func (e *PointEntity) Pre() *Preamble { return &e.Preamble }

func (e *PointEntity) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Position.X = v.Float()
	case 20:
		e.Position.Y = v.Float()
	case 30:
		e.Position.Z = v.Float()
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

func (e *PointEntity) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbPoint")),
		rec(10, FloatValue(e.Position.X)), rec(20, FloatValue(e.Position.Y)), rec(30, FloatValue(e.Position.Z)),
		rec(39, FloatValue(e.Thickness)),
		rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)),
	)
}

// Circle is defined by Center and Radius.
type Circle struct {
	Preamble
	Center    Point
	Radius    float64
	Thickness float64
	Extrusion Point
}

func (e *Circle) Type() string   { return "CIRCLE" }
func (e *Circle) Pre() *Preamble { return &e.Preamble }

func (e *Circle) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Center.X = v.Float()
	case 20:
		e.Center.Y = v.Float()
	case 30:
		e.Center.Z = v.Float()
	case 40:
		e.Radius = v.Float()
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

func (e *Circle) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbCircle")),
		rec(39, FloatValue(e.Thickness)),
		rec(10, FloatValue(e.Center.X)), rec(20, FloatValue(e.Center.Y)), rec(30, FloatValue(e.Center.Z)),
		rec(40, FloatValue(e.Radius)),
		rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)),
	)
}

// Arc is a Circle with a StartAngle/EndAngle span, in degrees.
type Arc struct {
	Preamble
	Center               Point
	Radius               float64
	StartAngle, EndAngle float64
	Thickness            float64
	Extrusion            Point
}

func (e *Arc) Type() string   { return "ARC" }
func (e *Arc) Pre() *Preamble { return &e.Preamble }

func (e *Arc) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Center.X = v.Float()
	case 20:
		e.Center.Y = v.Float()
	case 30:
		e.Center.Z = v.Float()
	case 40:
		e.Radius = v.Float()
	case 50:
		e.StartAngle = v.Float()
	case 51:
		e.EndAngle = v.Float()
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

func (e *Arc) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbCircle")),
		rec(39, FloatValue(e.Thickness)),
		rec(10, FloatValue(e.Center.X)), rec(20, FloatValue(e.Center.Y)), rec(30, FloatValue(e.Center.Z)),
		rec(40, FloatValue(e.Radius)),
		rec(100, StringValue("AcDbArc")),
		rec(50, FloatValue(e.StartAngle)), rec(51, FloatValue(e.EndAngle)),
		rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)),
	)
}

// Ellipse is defined by a Center, the endpoint of its major axis
// (relative to Center), an axis RatioMinorMajor, and a parametric
// StartParam/EndParam span.
type Ellipse struct {
	Preamble
	Center        Point
	MajorAxisEnd  Point
	RatioMinorMajor float64
	StartParam, EndParam float64
	Extrusion Point
}

func (e *Ellipse) Type() string   { return "ELLIPSE" }
func (e *Ellipse) Pre() *Preamble { return &e.Preamble }

func (e *Ellipse) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.Center.X = v.Float()
	case 20:
		e.Center.Y = v.Float()
	case 30:
		e.Center.Z = v.Float()
	case 11:
		e.MajorAxisEnd.X = v.Float()
	case 21:
		e.MajorAxisEnd.Y = v.Float()
	case 31:
		e.MajorAxisEnd.Z = v.Float()
	case 40:
		e.RatioMinorMajor = v.Float()
	case 41:
		e.StartParam = v.Float()
	case 42:
		e.EndParam = v.Float()
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

func (e *Ellipse) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbEllipse")),
		rec(10, FloatValue(e.Center.X)), rec(20, FloatValue(e.Center.Y)), rec(30, FloatValue(e.Center.Z)),
		rec(11, FloatValue(e.MajorAxisEnd.X)), rec(21, FloatValue(e.MajorAxisEnd.Y)), rec(31, FloatValue(e.MajorAxisEnd.Z)),
		rec(210, FloatValue(e.Extrusion.X)), rec(220, FloatValue(e.Extrusion.Y)), rec(230, FloatValue(e.Extrusion.Z)),
		rec(40, FloatValue(e.RatioMinorMajor)),
		rec(41, FloatValue(e.StartParam)), rec(42, FloatValue(e.EndParam)),
	)
}

// Ray is a line that extends infinitely from BasePoint through Direction.
type Ray struct {
	Preamble
	BasePoint Point
	Direction Point
}

func (e *Ray) Type() string   { return "RAY" }
func (e *Ray) Pre() *Preamble { return &e.Preamble }

func (e *Ray) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.BasePoint.X = v.Float()
	case 20:
		e.BasePoint.Y = v.Float()
	case 30:
		e.BasePoint.Z = v.Float()
	case 11:
		e.Direction.X = v.Float()
	case 21:
		e.Direction.Y = v.Float()
	case 31:
		e.Direction.Z = v.Float()
	default:
		return false
	}
	return true
}

func (e *Ray) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbRay")),
		rec(10, FloatValue(e.BasePoint.X)), rec(20, FloatValue(e.BasePoint.Y)), rec(30, FloatValue(e.BasePoint.Z)),
		rec(11, FloatValue(e.Direction.X)), rec(21, FloatValue(e.Direction.Y)), rec(31, FloatValue(e.Direction.Z)),
	)
}

// XLine is a line that extends infinitely in both directions through
// BasePoint along Direction.
type XLine struct {
	Preamble
	BasePoint Point
	Direction Point
}

func (e *XLine) Type() string   { return "XLINE" }
func (e *XLine) Pre() *Preamble { return &e.Preamble }

func (e *XLine) applyField(code int, v Value) bool {
	switch code {
	case 10:
		e.BasePoint.X = v.Float()
	case 20:
		e.BasePoint.Y = v.Float()
	case 30:
		e.BasePoint.Z = v.Float()
	case 11:
		e.Direction.X = v.Float()
	case 21:
		e.Direction.Y = v.Float()
	case 31:
		e.Direction.Z = v.Float()
	default:
		return false
	}
	return true
}

func (e *XLine) writeOwnFields(sink tokenSink) error {
	return emitAll(sink,
		rec(100, StringValue("AcDbXline")),
		rec(10, FloatValue(e.BasePoint.X)), rec(20, FloatValue(e.BasePoint.Y)), rec(30, FloatValue(e.BasePoint.Z)),
		rec(11, FloatValue(e.Direction.X)), rec(21, FloatValue(e.Direction.Y)), rec(31, FloatValue(e.Direction.Z)),
	)
}

// rec is a small literal-construction helper for writeOwnFields bodies.
func rec(code int, v Value) Record { return Record{Code: code, Value: v} }

// emitAll writes a sequence of records, stopping at the first error.
func emitAll(sink tokenSink, recs ...Record) error {
	for _, r := range recs {
		if err := sink.emit(r); err != nil {
			return err
		}
	}
	return nil
}
