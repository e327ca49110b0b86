// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/edsrzf/mmap-go"

	"github.com/saferwall/dxf/codepage"
	"github.com/saferwall/dxf/log"
)

// ReaderOptions configures a Reader.
type ReaderOptions struct {
	// Failsafe enables the §4.8/§7 recovery behavior: malformed
	// elements and sections are skipped and reported as Notifications
	// rather than aborting the read. When false (strict mode), the
	// first Error-level condition aborts with that error.
	Failsafe bool
	// Logger receives diagnostic trace messages about the read's
	// progress; it is independent of the Document's own Notifications.
	Logger log.Logger
}

// Reader parses a DXF byte stream (either physical encoding, detected
// automatically) into a Document (§4.2, §4.4).
type Reader struct {
	opts ReaderOptions
	log  *log.Helper
}

// NewReader returns a Reader configured by opts (nil means the zero
// ReaderOptions).
func NewReader(opts *ReaderOptions) *Reader {
	if opts == nil {
		opts = &ReaderOptions{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.NewStdLogger(io.Discard)
	}
	return &Reader{opts: *opts, log: log.NewHelper(logger)}
}

// Parse decodes a full DXF document from data, which may be either
// physical encoding (§4.2).
func (r *Reader) Parse(data []byte) (*Document, error) {
	data = codepage.StripBOM(data)

	var src tokenSource
	var err error
	if bytes.HasPrefix(data, binarySentinel) {
		r.log.Debugf("detected binary physical encoding")
		src, err = newBinarySource(bytes.NewReader(data))
	} else {
		r.log.Debugf("detected ascii physical encoding")
		src, err = newASCIISource(bytes.NewReader(data))
	}
	if err != nil {
		return nil, err
	}
	return r.parseSource(src)
}

func (r *Reader) parseSource(src tokenSource) (*Document, error) {
	d := newEmptyDocument()

	codec := newStringCodec(DefaultVersion, "ANSI_1252", d.notes, "")
	src = &codecSource{src: src, codec: codec}
	c := newCursor(src, d.notes, "")

	for {
		rec, err := src.peek()
		if err != nil {
			break
		}
		if rec.IsEOF() {
			src.next()
			break
		}
		if !rec.Is0() || rec.Value.Str() != "SECTION" {
			src.next()
			continue
		}
		src.next()
		nameRec, err := src.peek()
		if err != nil || nameRec.Code != 2 {
			d.notes.err(KindMalformedRecord, "", 0, "", "SECTION missing name record")
			if !r.opts.Failsafe {
				return d, ErrMalformedRecord
			}
			continue
		}
		src.next()
		section := nameRec.Value.Str()
		c.section = section
		failures := &sectionFailures{}

		switch section {
		case "HEADER":
			parseHeaderSection(c, d)
			codec.version = d.Header.Version()
			codec.codepageName = d.Header.Codepage()
			if !SupportedVersion(codec.version) {
				d.notes.err(KindUnsupportedVersion, section, 0, "", "unrecognized $ACADVER %q", codec.version)
			}
		case "CLASSES":
			parseClassesSection(c, d, failures)
		case "TABLES":
			parseTablesSection(c, d, failures)
		case "BLOCKS":
			parseBlocksSection(c, d, failures)
		case "ENTITIES":
			parseEntitiesSection(c, d, failures)
		case "OBJECTS":
			parseObjectsSection(c, d, failures)
		case "THUMBNAILIMAGE":
			parseThumbnailSection(c, d)
		default:
			d.notes.info(KindUnknownSection, section, "skipping unrecognized section")
			skipToEndSec(src)
		}

		// Consume the section's own ENDSEC, if the section parser
		// didn't already (HEADER and CLASSES stop right at it without
		// consuming).
		if rec, err := src.peek(); err == nil && rec.Is0() && rec.Value.Str() == "ENDSEC" {
			src.next()
		}

		if !r.opts.Failsafe && d.notes.hasErr {
			return d, d.notes.lastErr
		}
	}

	resolvePass(d)
	if !r.opts.Failsafe && d.notes.hasErr {
		return d, d.notes.lastErr
	}
	return d, nil
}

// NewReaderFile memory-maps path and parses it, following the teacher's
// mmap-based file-reading convention for large inputs.
func NewReaderFile(path string, opts *ReaderOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dxf: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("dxf: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	return NewReader(opts).Parse(m)
}
