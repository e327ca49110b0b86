// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// HeaderVar is a single $NAME header variable: its group codes in the
// order they appeared (or will be emitted), the common case being a
// single record but some variables (points, colors-with-handle) carry
// more than one (§4.4 HEADER section).
type HeaderVar struct {
	Name    string
	Records []Record
}

// Header holds the document's HEADER section, preserving unrecognized
// $NAME variables byte-for-byte (as their raw Records) so a round trip
// never loses a variable this library doesn't specifically model.
type Header struct {
	order []string
	vars  map[string]HeaderVar
}

func newHeader() *Header {
	return &Header{vars: make(map[string]HeaderVar)}
}

// Set replaces (or inserts) the records for a header variable.
func (h *Header) Set(name string, records ...Record) {
	if _, exists := h.vars[name]; !exists {
		h.order = append(h.order, name)
	}
	h.vars[name] = HeaderVar{Name: name, Records: records}
}

// Get returns a header variable's records and whether it is present.
func (h *Header) Get(name string) ([]Record, bool) {
	v, ok := h.vars[name]
	return v.Records, ok
}

// GetString is a convenience accessor for single-valued string variables.
func (h *Header) GetString(name, def string) string {
	recs, ok := h.Get(name)
	if !ok || len(recs) == 0 {
		return def
	}
	return recs[0].Value.Str()
}

// GetInt is a convenience accessor for single-valued integer variables.
func (h *Header) GetInt(name string, def int64) int64 {
	recs, ok := h.Get(name)
	if !ok || len(recs) == 0 {
		return def
	}
	return recs[0].Value.Int()
}

// Names returns header variable names in insertion/read order.
func (h *Header) Names() []string {
	out := make([]string, len(h.order))
	copy(out, h.order)
	return out
}

// Version reports the document's $ACADVER, defaulting to DefaultVersion
// when unset; an unrecognized value is returned as-is.
func (h *Header) Version() string {
	v := h.GetString("$ACADVER", DefaultVersion)
	if !SupportedVersion(v) {
		return v // preserved as-is; isUTF8Version treats unknown as UTF-8.
	}
	return v
}

// Codepage reports the document's $DWGCODEPAGE, defaulting to the most
// common legacy value.
func (h *Header) Codepage() string {
	return h.GetString("$DWGCODEPAGE", "ANSI_1252")
}
