// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// Object is a non-graphical database object from the OBJECTS section
// (§4.4): dictionaries, xrecords, layouts, and the other bookkeeping
// records that never appear on a layout but participate in the handle
// graph.
type Object interface {
	Type() string
	Pre() *Preamble
	applyField(code int, v Value) bool
	writeOwnFields(sink tokenSink) error
}

type objectFactory func() Object

var objectRegistry = map[string]objectFactory{}

func registerObject(name string, f objectFactory) { objectRegistry[name] = f }

// UnknownObject preserves an OBJECTS-section type this library does not
// model, the Object analogue of UnknownEntity.
type UnknownObject struct {
	Preamble
	TypeName string
	Raw      []Record
}

func (o *UnknownObject) Type() string   { return o.TypeName }
func (o *UnknownObject) Pre() *Preamble { return &o.Preamble }

func (o *UnknownObject) applyField(code int, v Value) bool {
	o.Raw = append(o.Raw, Record{Code: code, Value: v})
	return true
}

func (o *UnknownObject) writeOwnFields(sink tokenSink) error {
	for _, r := range o.Raw {
		if err := sink.emitCode(r.Code, r.Value); err != nil {
			return err
		}
	}
	return nil
}

func readObject(c *cursor, typename string) Object {
	if f, ok := objectRegistry[typename]; ok {
		o := f()
		decodeCommonRun(c, o.Pre(), o.applyField)
		return o
	}
	o := &UnknownObject{TypeName: typename}
	decodeCommonRun(c, &o.Preamble, o.applyField)
	return o
}

func writeObject(sink tokenSink, o Object) error {
	if err := sink.emitCode(0, StringValue(o.Type())); err != nil {
		return err
	}
	if err := writeCommonRun(sink, o.Pre()); err != nil {
		return err
	}
	if err := o.writeOwnFields(sink); err != nil {
		return err
	}
	return writeXData(sink, o.Pre().XData)
}
