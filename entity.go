// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// Entity is a single drawing object from the ENTITIES section or a
// block's body (§4.4). Every concrete entity embeds Preamble for the
// group codes common to all entities.
type Entity interface {
	// Type is the DXF record name, e.g. "LINE", "CIRCLE".
	Type() string
	// Pre returns the entity's common preamble for in-place mutation by
	// the decoder and the handle resolver.
	Pre() *Preamble
	// applyField accepts one variant-specific record, returning false
	// for a code it does not recognize.
	applyField(code int, v Value) bool
	// writeOwnFields emits the variant-specific records, in the order
	// this library chooses to canonicalize them on write.
	writeOwnFields(sink tokenSink) error
}

// entityFactory constructs a zero-value instance of a registered entity
// type, ready to have applyField called against it.
type entityFactory func() Entity

// entityRegistry is the catalogue-driven dispatch table keyed by DXF
// type name (§9 design notes): read dispatches on the type name found
// in each (0, name) record rather than modeling a class hierarchy.
var entityRegistry = map[string]entityFactory{}

func registerEntity(name string, f entityFactory) { entityRegistry[name] = f }

// UnknownEntity preserves any entity type this library does not model
// as a concrete Go type. Its common preamble is still parsed and
// resolved like any other entity; everything else is kept as opaque
// Records in original order, guaranteeing a byte-for-byte faithful
// round trip for catalogue entries this library has not caught up to
// (§4.5 Unknown variant policy, §8 round-trip law).
type UnknownEntity struct {
	Preamble
	TypeName string
	Raw      []Record
}

func (e *UnknownEntity) Type() string  { return e.TypeName }
func (e *UnknownEntity) Pre() *Preamble { return &e.Preamble }

func (e *UnknownEntity) applyField(code int, v Value) bool {
	e.Raw = append(e.Raw, Record{Code: code, Value: v})
	return true
}

func (e *UnknownEntity) writeOwnFields(sink tokenSink) error {
	for _, r := range e.Raw {
		if err := sink.emitCode(r.Code, r.Value); err != nil {
			return err
		}
	}
	return nil
}

// readEntity decodes one (0, typename)-delimited entity run, dispatching
// through entityRegistry and falling back to UnknownEntity.
func readEntity(c *cursor, typename string) Entity {
	if f, ok := entityRegistry[typename]; ok {
		e := f()
		decodeCommonRun(c, e.Pre(), e.applyField)
		return e
	}
	e := &UnknownEntity{TypeName: typename}
	decodeCommonRun(c, &e.Preamble, e.applyField)
	return e
}

// writeEntity emits one entity's full record run: the opening type
// marker, common preamble, and variant-specific fields.
func writeEntity(sink tokenSink, e Entity) error {
	if err := sink.emitCode(0, StringValue(e.Type())); err != nil {
		return err
	}
	if err := writeCommonRunEntity(sink, e); err != nil {
		return err
	}
	if err := e.writeOwnFields(sink); err != nil {
		return err
	}
	return writeXData(sink, e.Pre().XData)
}

// writeCommonRunEntity emits the shared preamble ahead of an entity's
// own fields, matching AutoCAD's canonical field order of
// handle/owner/layer group before the entity-specific subclass data.
func writeCommonRunEntity(sink tokenSink, e Entity) error {
	return writeCommonRun(sink, e.Pre())
}
