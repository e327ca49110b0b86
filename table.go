// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// TableEntry is a single named record in one of the nine TABLES section
// tables (§4.4): VPORT, LTYPE, LAYER, STYLE, VIEW, UCS, APPID, DIMSTYLE,
// BLOCK_RECORD.
type TableEntry interface {
	Type() string
	Name() string
	Pre() *Preamble
	applyField(code int, v Value) bool
	writeOwnFields(sink tokenSink) error
}

type tableEntryFactory func() TableEntry

var tableEntryRegistry = map[string]tableEntryFactory{}

func registerTableEntry(name string, f tableEntryFactory) { tableEntryRegistry[name] = f }

// UnknownTableEntry preserves a table entry type this library does not
// model as a concrete Go type, the TableEntry analogue of UnknownEntity.
type UnknownTableEntry struct {
	Preamble
	TypeName  string
	EntryName string
	Raw       []Record
}

func (e *UnknownTableEntry) Type() string   { return e.TypeName }
func (e *UnknownTableEntry) Name() string   { return e.EntryName }
func (e *UnknownTableEntry) Pre() *Preamble { return &e.Preamble }

func (e *UnknownTableEntry) applyField(code int, v Value) bool {
	if code == 2 && e.EntryName == "" {
		e.EntryName = v.Str()
	}
	e.Raw = append(e.Raw, Record{Code: code, Value: v})
	return true
}

func (e *UnknownTableEntry) writeOwnFields(sink tokenSink) error {
	for _, r := range e.Raw {
		if err := sink.emitCode(r.Code, r.Value); err != nil {
			return err
		}
	}
	return nil
}

func readTableEntry(c *cursor, typename string) TableEntry {
	if f, ok := tableEntryRegistry[typename]; ok {
		e := f()
		decodeCommonRun(c, e.Pre(), e.applyField)
		return e
	}
	e := &UnknownTableEntry{TypeName: typename}
	decodeCommonRun(c, &e.Preamble, e.applyField)
	return e
}

func writeTableEntry(sink tokenSink, e TableEntry) error {
	if err := sink.emitCode(0, StringValue(e.Type())); err != nil {
		return err
	}
	if err := writeCommonRun(sink, e.Pre()); err != nil {
		return err
	}
	if err := e.writeOwnFields(sink); err != nil {
		return err
	}
	return writeXData(sink, e.Pre().XData)
}
