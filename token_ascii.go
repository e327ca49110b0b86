// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// asciiSource tokenizes the ASCII-tagged physical encoding (§4.2). Pairs
// are two text lines: a group code line and a value line. The whole
// input is scanned up front into a line slice; a DXF document is small
// enough in practice that this is simpler and no less correct than a
// streaming scanner, and it keeps next()/peek() trivial.
type asciiSource struct {
	lines   []string
	pos     int
	hasPeek bool
	peekRec Record
	peekErr error
}

func newASCIISource(r io.Reader) (*asciiSource, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 64*1024*1024)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return &asciiSource{lines: lines}, nil
}

func (a *asciiSource) readRaw() (Record, error) {
	for {
		if a.pos+1 >= len(a.lines) {
			return Record{}, errEOS
		}
		codeLine := strings.TrimSpace(a.lines[a.pos])
		valLine := a.lines[a.pos+1]
		a.pos += 2

		code, err := strconv.Atoi(codeLine)
		if err != nil {
			return Record{}, recordErr(ErrMalformedRecord, "", 0, codeLine)
		}
		if code == 999 {
			// Comments are stripped on read (§8 boundary behavior).
			continue
		}
		val, err := parseASCIIValue(code, valLine)
		if err != nil {
			return Record{}, err
		}
		return Record{Code: code, Value: val}, nil
	}
}

func (a *asciiSource) peek() (Record, error) {
	if !a.hasPeek {
		a.peekRec, a.peekErr = a.readRaw()
		a.hasPeek = true
	}
	return a.peekRec, a.peekErr
}

func (a *asciiSource) next() (Record, error) {
	if a.hasPeek {
		a.hasPeek = false
		return a.peekRec, a.peekErr
	}
	return a.readRaw()
}

func parseASCIIValue(code int, raw string) (Value, error) {
	s := strings.TrimSpace(raw)
	switch codeKind(code) {
	case VString:
		return StringValue(s), nil
	case VFloat:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Value{}, recordErr(ErrMalformedRecord, "", code, s)
		}
		return FloatValue(f), nil
	case VInt16:
		i, err := strconv.ParseInt(s, 10, 16)
		if err != nil {
			return Value{}, recordErr(ErrMalformedRecord, "", code, s)
		}
		return IntValue(VInt16, i), nil
	case VInt32:
		i, err := strconv.ParseInt(s, 10, 32)
		if err != nil {
			return Value{}, recordErr(ErrMalformedRecord, "", code, s)
		}
		return IntValue(VInt32, i), nil
	case VInt64:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Value{}, recordErr(ErrMalformedRecord, "", code, s)
		}
		return IntValue(VInt64, i), nil
	case VBool:
		i, err := strconv.ParseInt(s, 10, 8)
		if err != nil {
			return Value{}, recordErr(ErrMalformedRecord, "", code, s)
		}
		return BoolValue(i != 0), nil
	case VHandle:
		h, err := ParseHandle(s)
		if err != nil {
			return Value{}, recordErr(ErrMalformedRecord, "", code, s)
		}
		return HandleValue(h), nil
	case VBinary:
		b, err := hex.DecodeString(s)
		if err != nil {
			return Value{}, recordErr(ErrMalformedRecord, "", code, s)
		}
		return BinaryValue(b), nil
	default:
		return StringValue(s), nil
	}
}

// asciiSink emits the ASCII-tagged physical encoding.
type asciiSink struct {
	w *bufio.Writer
}

func newASCIISink(w io.Writer) *asciiSink {
	return &asciiSink{w: bufio.NewWriterSize(w, 64*1024)}
}

func (a *asciiSink) emit(r Record) error { return a.emitCode(r.Code, r.Value) }

func (a *asciiSink) emitCode(code int, v Value) error {
	if _, err := fmt.Fprintf(a.w, "%3d\n", code); err != nil {
		return err
	}
	_, err := fmt.Fprintf(a.w, "%s\n", formatASCIIValue(code, v))
	return err
}

func (a *asciiSink) finish() error { return a.w.Flush() }

func formatASCIIValue(code int, v Value) string {
	switch v.Kind {
	case VString:
		return v.Str()
	case VFloat:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	case VInt16, VInt32, VInt64:
		return strconv.FormatInt(v.Int(), 10)
	case VBool:
		if v.Bool() {
			return "1"
		}
		return "0"
	case VHandle:
		return v.Handle().String()
	case VBinary:
		return strings.ToUpper(hex.EncodeToString(v.Binary()))
	default:
		return ""
	}
}
