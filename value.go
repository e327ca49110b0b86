// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// ValueKind is the abstract type of a group-coded record's value (§4.1).
type ValueKind int

// The primitive value kinds a group code can carry.
const (
	VInt16 ValueKind = iota
	VInt32
	VInt64
	VFloat
	VString
	VBool
	VHandle
	VBinary
)

func (k ValueKind) String() string {
	switch k {
	case VInt16:
		return "int16"
	case VInt32:
		return "int32"
	case VInt64:
		return "int64"
	case VFloat:
		return "float"
	case VString:
		return "string"
	case VBool:
		return "bool"
	case VHandle:
		return "handle"
	case VBinary:
		return "binary"
	default:
		return "unknown"
	}
}

// Value is a typed scalar attached to a group code. Only the field
// matching Kind is meaningful; the typed accessors below are the only
// supported way to read it back out.
type Value struct {
	Kind ValueKind
	i    int64
	f    float64
	s    string
	b    []byte
}

// IntValue builds an integer-kinded value (VInt16/VInt32/VInt64/VBool).
func IntValue(kind ValueKind, v int64) Value { return Value{Kind: kind, i: v} }

// FloatValue builds a VFloat value.
func FloatValue(v float64) Value { return Value{Kind: VFloat, f: v} }

// StringValue builds a VString value.
func StringValue(v string) Value { return Value{Kind: VString, s: v} }

// BoolValue builds a VBool value.
func BoolValue(v bool) Value {
	var i int64
	if v {
		i = 1
	}
	return Value{Kind: VBool, i: i}
}

// HandleValue builds a VHandle value.
func HandleValue(h Handle) Value { return Value{Kind: VHandle, i: int64(h)} }

// BinaryValue builds a VBinary value.
func BinaryValue(v []byte) Value { return Value{Kind: VBinary, b: v} }

// Int returns the value as an int64, valid for VInt16/VInt32/VInt64/VBool/VHandle.
func (v Value) Int() int64 { return v.i }

// Float returns the value as a float64, valid for VFloat.
func (v Value) Float() float64 { return v.f }

// Str returns the value as a string, valid for VString.
func (v Value) Str() string { return v.s }

// Bool returns the value as a bool, valid for VBool.
func (v Value) Bool() bool { return v.i != 0 }

// Handle returns the value as a Handle, valid for VHandle.
func (v Value) Handle() Handle { return Handle(uint64(v.i)) }

// Binary returns the value as a byte slice, valid for VBinary.
func (v Value) Binary() []byte { return v.b }

// codeKind classifies a group code into its wire-level value kind per the
// ranges enumerated in §4.2, plus 210-239 (the extrusion-direction
// doubles every entity codec reads and writes). Codes that fall into no documented range
// default to VString, the safest recoverable guess for a text stream.
func codeKind(code int) ValueKind {
	switch {
	case code == 5:
		return VHandle
	case code >= 0 && code <= 9:
		return VString
	case code >= 10 && code <= 59:
		return VFloat
	case code >= 60 && code <= 79:
		return VInt16
	case code >= 90 && code <= 99:
		return VInt32
	case code == 100:
		return VString
	case code == 102:
		return VString
	case code >= 140 && code <= 149:
		return VFloat
	case code >= 160 && code <= 169:
		return VInt64
	case code >= 170 && code <= 179:
		return VInt16
	case code >= 210 && code <= 239:
		return VFloat
	case code >= 280 && code <= 289:
		return VInt16
	case code >= 290 && code <= 299:
		return VBool
	case code >= 310 && code <= 319:
		return VBinary
	case code >= 320 && code <= 329:
		return VHandle
	case code >= 330 && code <= 369:
		return VHandle
	case code >= 370 && code <= 379:
		return VInt16
	case code >= 380 && code <= 389:
		return VInt16
	case code >= 390 && code <= 399:
		return VHandle
	case code >= 400 && code <= 409:
		return VInt16
	case code >= 410 && code <= 419:
		return VString
	case code >= 420 && code <= 429:
		return VInt32
	case code >= 430 && code <= 439:
		return VString
	case code >= 440 && code <= 449:
		return VInt32
	case code >= 450 && code <= 459:
		return VInt32
	case code >= 460 && code <= 469:
		return VFloat
	case code >= 470 && code <= 479:
		return VInt16
	case code == 1004:
		return VBinary
	case code == 1005:
		return VHandle
	case code >= 1000 && code <= 1009:
		return VString
	case code >= 1010 && code <= 1059:
		return VFloat
	case code >= 1060 && code <= 1070:
		return VInt16
	case code == 1071:
		return VInt32
	default:
		return VString
	}
}

// Point is a 3D point or vector, assembled from three consecutive
// records with codes (n, n+10, n+20) per §4.1. It is never a Value kind
// in its own right.
type Point struct {
	X, Y, Z float64
}
