// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "fmt"

// Errors returned by the reader and writer. Propagation is governed by
// the active failsafe policy (§7): in strict mode MalformedRecord,
// UnexpectedRecord, MissingHandle, DuplicateHandle and UnsupportedVersion
// abort the operation; in failsafe mode only Io aborts.
var (
	// ErrInvalidSentinel is returned when a binary stream does not open
	// with the "AutoCAD Binary DXF" sentinel.
	ErrInvalidSentinel = fmt.Errorf("dxf: not a binary DXF stream, sentinel not found")

	// ErrTruncatedStream is returned when a binary byte source ends in
	// the middle of a record's value.
	ErrTruncatedStream = fmt.Errorf("dxf: truncated stream, EOF marker not found")

	// ErrMalformedRecord is returned when a record's code or value
	// violates the physical encoding (bad integer, truncated line,
	// unterminated string).
	ErrMalformedRecord = fmt.Errorf("dxf: malformed record")

	// ErrUnexpectedRecord is returned when a record is well-formed but
	// illegal in the current parser state.
	ErrUnexpectedRecord = fmt.Errorf("dxf: unexpected record")

	// ErrMissingHandle is returned when a cross-reference cannot be
	// resolved to an object in the same document.
	ErrMissingHandle = fmt.Errorf("dxf: reference to unknown handle")

	// ErrDuplicateHandle is returned when two persistent objects in the
	// same document are assigned the same non-zero handle.
	ErrDuplicateHandle = fmt.Errorf("dxf: duplicate handle")

	// ErrDuplicateName is returned when add_table_entry is called with a
	// name that already exists in the target table.
	ErrDuplicateName = fmt.Errorf("dxf: duplicate name in table")

	// ErrUnsupportedVersion is returned when $ACADVER names a version not
	// in the supported set (§6.1).
	ErrUnsupportedVersion = fmt.Errorf("dxf: unsupported $ACADVER")

	// ErrNoRootDictionary is returned when a document's named-object
	// dictionary cannot be located.
	ErrNoRootDictionary = fmt.Errorf("dxf: root dictionary not found")
)

// RecordError wraps one of the sentinel errors above with the position
// context the spec requires notifications to carry (§4.8): the offending
// code, a short excerpt of its value, and the section being parsed.
type RecordError struct {
	Err     error
	Section string
	Code    int
	Excerpt string
}

func (e *RecordError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("%v (code %d, value %q)", e.Err, e.Code, e.Excerpt)
	}
	return fmt.Sprintf("%v in section %s (code %d, value %q)", e.Err, e.Section, e.Code, e.Excerpt)
}

func (e *RecordError) Unwrap() error { return e.Err }

func recordErr(err error, section string, code int, excerpt string) *RecordError {
	return &RecordError{Err: err, Section: section, Code: code, Excerpt: excerpt}
}
