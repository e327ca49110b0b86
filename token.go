// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "io"

// Record is a single (group-code, typed-value) pair, the unit the token
// stream produces and consumes (§4.1, §4.2).
type Record struct {
	Code  int
	Value Value
}

// IsEOF reports whether this record is the top-level (0, "EOF") marker.
func (r Record) IsEOF() bool {
	return r.Code == 0 && r.Value.Kind == VString && r.Value.Str() == "EOF"
}

// Is0 reports whether this record opens a new structural element, i.e.
// a (0, typename) record.
func (r Record) Is0() bool { return r.Code == 0 }

// tokenSource is a finite, forward-iterating producer of Records with
// one-record lookahead (§4.2).
type tokenSource interface {
	// next consumes and returns the next record.
	next() (Record, error)
	// peek returns the next record without consuming it.
	peek() (Record, error)
}

// tokenSink accepts Records in order and is responsible for emitting the
// file's opening sentinel/version marker exactly once (§4.2).
type tokenSink interface {
	emit(Record) error
	emitCode(code int, v Value) error
	finish() error
}

// errEOS is returned internally by a tokenSource once its underlying
// byte source is exhausted. The reader treats it as the end of input and
// reports no error for it, whether or not an EOF record was seen.
var errEOS = io.EOF
