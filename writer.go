// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/saferwall/dxf/log"
)

// WriterOptions configures a Writer.
type WriterOptions struct {
	// Version overrides the document's own $ACADVER for this write.
	// Empty uses the document's Version().
	Version string
	// Binary selects the Binary physical encoding (§4.2). Default is
	// ASCII.
	Binary bool
	Logger log.Logger
}

// Writer serializes a Document back to a DXF byte stream (§4.2, §6).
type Writer struct {
	opts WriterOptions
	log  *log.Helper
}

// NewWriter returns a Writer.
func NewWriter(opts *WriterOptions) *Writer {
	if opts == nil {
		opts = &WriterOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewStdLogger(io.Discard)
	}
	return &Writer{opts: *opts, log: log.NewHelper(logger)}
}

// Write serializes d to w.
func (wr *Writer) Write(w io.Writer, d *Document) error {
	version := wr.opts.Version
	if version == "" {
		version = d.Version()
	}
	if !SupportedVersion(version) {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, version)
	}

	var sink tokenSink
	if wr.opts.Binary {
		wr.log.Debugf("writing binary physical encoding, version %s", version)
		sink = newBinarySink(w)
	} else {
		wr.log.Debugf("writing ascii physical encoding, version %s", version)
		sink = newASCIISink(w)
	}

	codec := newStringCodec(version, d.Header.Codepage(), d.notes, "")
	sink = &codecSink{next: sink, codec: codec}

	if err := writeSection(sink, "HEADER", func() error { return writeHeaderBody(sink, d.Header) }); err != nil {
		return err
	}
	if len(d.Classes) > 0 {
		if err := writeSection(sink, "CLASSES", func() error { return writeClassesBody(sink, d.Classes) }); err != nil {
			return err
		}
	}
	if err := writeSection(sink, "TABLES", func() error { return writeTablesBody(sink, d) }); err != nil {
		return err
	}
	if err := writeSection(sink, "BLOCKS", func() error { return writeBlocksBody(sink, d.Blocks) }); err != nil {
		return err
	}
	if err := writeSection(sink, "ENTITIES", func() error { return writeEntitiesBody(sink, d.Entities) }); err != nil {
		return err
	}
	if len(d.Objects) > 0 {
		if err := writeSection(sink, "OBJECTS", func() error { return writeObjectsBody(sink, d.Objects) }); err != nil {
			return err
		}
	}
	if len(d.Thumbnail) > 0 {
		if err := writeSection(sink, "THUMBNAILIMAGE", func() error { return writeThumbnailBody(sink, d.Thumbnail) }); err != nil {
			return err
		}
	}

	if err := sink.emitCode(0, StringValue("EOF")); err != nil {
		return err
	}
	return sink.finish()
}

// WriteFile serializes d to a new file at path.
func (wr *Writer) WriteFile(path string, d *Document) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dxf: create %s: %w", path, err)
	}
	defer f.Close()
	return wr.Write(f, d)
}

// Bytes serializes d and returns the result, primarily for tests and
// the round-trip helpers in §8.
func (wr *Writer) Bytes(d *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := wr.Write(&buf, d); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeSection(sink tokenSink, name string, body func() error) error {
	if err := emitAll(sink, rec(0, StringValue("SECTION")), rec(2, StringValue(name))); err != nil {
		return err
	}
	if err := body(); err != nil {
		return err
	}
	return sink.emitCode(0, StringValue("ENDSEC"))
}

func writeHeaderBody(sink tokenSink, h *Header) error {
	for _, name := range h.Names() {
		recs, _ := h.Get(name)
		if err := sink.emitCode(9, StringValue(name)); err != nil {
			return err
		}
		for _, r := range recs {
			if err := sink.emit(r); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeClassesBody(sink tokenSink, classes []Class) error {
	for _, cl := range classes {
		if err := emitAll(sink,
			rec(0, StringValue("CLASS")),
			rec(1, StringValue(cl.RecordName)),
			rec(2, StringValue(cl.ClassName)),
			rec(3, StringValue(cl.AppName)),
			rec(90, IntValue(VInt32, int64(cl.ProxyFlags))),
			rec(91, IntValue(VInt32, int64(cl.InstanceCount))),
			rec(280, BoolValue(cl.WasZombie)),
			rec(281, IntValue(VInt16, int64(cl.ItemType))),
		); err != nil {
			return err
		}
	}
	return nil
}

func writeTablesBody(sink tokenSink, d *Document) error {
	for _, name := range tableOrder {
		entries := d.Tables[name]
		if err := emitAll(sink,
			rec(0, StringValue("TABLE")),
			rec(2, StringValue(name)),
			rec(70, IntValue(VInt32, int64(len(entries)))),
		); err != nil {
			return err
		}
		for _, e := range entries {
			if err := writeTableEntry(sink, e); err != nil {
				return err
			}
		}
		if err := sink.emitCode(0, StringValue("ENDTAB")); err != nil {
			return err
		}
	}
	return nil
}

func writeBlocksBody(sink tokenSink, blocks []*Block) error {
	for _, b := range blocks {
		if err := sink.emitCode(0, StringValue("BLOCK")); err != nil {
			return err
		}
		if err := writeCommonRun(sink, &b.Preamble); err != nil {
			return err
		}
		if err := emitAll(sink,
			rec(100, StringValue("AcDbBlockBegin")),
			rec(2, StringValue(b.Name)),
			rec(70, IntValue(VInt16, int64(b.Flags))),
			rec(10, FloatValue(b.BasePoint.X)), rec(20, FloatValue(b.BasePoint.Y)), rec(30, FloatValue(b.BasePoint.Z)),
			rec(3, StringValue(b.Name)),
			rec(1, StringValue(b.XrefPath)),
		); err != nil {
			return err
		}
		if err := writeXData(sink, b.Preamble.XData); err != nil {
			return err
		}
		for _, e := range b.Entities {
			if err := writeEntity(sink, e); err != nil {
				return err
			}
		}
		if err := sink.emitCode(0, StringValue("ENDBLK")); err != nil {
			return err
		}
		if err := writeCommonRun(sink, &b.EndBlk); err != nil {
			return err
		}
	}
	return nil
}

func writeEntitiesBody(sink tokenSink, entities []Entity) error {
	for _, e := range entities {
		if err := writeEntity(sink, e); err != nil {
			return err
		}
	}
	return nil
}

func writeObjectsBody(sink tokenSink, objects []Object) error {
	for _, o := range objects {
		if err := writeObject(sink, o); err != nil {
			return err
		}
	}
	return nil
}

func writeThumbnailBody(sink tokenSink, thumb []byte) error {
	if err := sink.emitCode(90, IntValue(VInt32, int64(len(thumb)))); err != nil {
		return err
	}
	const chunk = 127
	for len(thumb) > 0 {
		n := chunk
		if n > len(thumb) {
			n = len(thumb)
		}
		if err := sink.emitCode(310, BinaryValue(thumb[:n])); err != nil {
			return err
		}
		thumb = thumb[n:]
	}
	return nil
}
