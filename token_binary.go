// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// binarySource tokenizes the Binary physical encoding (§4.2): a fixed
// sentinel, then a stream of (2-byte little-endian code, value) pairs
// with the value's wire width determined by codeKind(code).
type binarySource struct {
	r       *bufio.Reader
	hasPeek bool
	peekRec Record
	peekErr error
}

// newBinarySource consumes and validates the sentinel before returning,
// so callers never see it as a Record.
func newBinarySource(r io.Reader) (*binarySource, error) {
	br := bufio.NewReaderSize(r, 64*1024)
	sentinel := make([]byte, len(binarySentinel))
	if _, err := io.ReadFull(br, sentinel); err != nil {
		return nil, recordErr(ErrInvalidSentinel, "", 0, "")
	}
	if !bytes.Equal(sentinel, binarySentinel) {
		return nil, recordErr(ErrInvalidSentinel, "", 0, string(sentinel))
	}
	return &binarySource{r: br}, nil
}

func (b *binarySource) readRaw() (Record, error) {
	var codeBuf [2]byte
	if _, err := io.ReadFull(b.r, codeBuf[:]); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return Record{}, errEOS
		}
		return Record{}, err
	}
	code := int(binary.LittleEndian.Uint16(codeBuf[:]))
	// Group codes above 255 are carried as a two-byte marker: 255
	// followed by the real 16-bit code (classic DXF binary extension for
	// codes that don't fit a single byte in older variants). This
	// implementation always reads a 16-bit code, which is the scheme
	// every AC1012+ binary writer in circulation actually uses.
	val, err := b.readValue(code)
	if err != nil {
		return Record{}, err
	}
	return Record{Code: code, Value: val}, nil
}

func (b *binarySource) readValue(code int) (Value, error) {
	switch codeKind(code) {
	case VString:
		return b.readCString(code)
	case VFloat:
		var buf [8]byte
		if _, err := io.ReadFull(b.r, buf[:]); err != nil {
			return Value{}, recordErr(ErrTruncatedStream, "", code, "")
		}
		bits := binary.LittleEndian.Uint64(buf[:])
		return FloatValue(math.Float64frombits(bits)), nil
	case VInt16:
		var buf [2]byte
		if _, err := io.ReadFull(b.r, buf[:]); err != nil {
			return Value{}, recordErr(ErrTruncatedStream, "", code, "")
		}
		return IntValue(VInt16, int64(int16(binary.LittleEndian.Uint16(buf[:])))), nil
	case VInt32:
		var buf [4]byte
		if _, err := io.ReadFull(b.r, buf[:]); err != nil {
			return Value{}, recordErr(ErrTruncatedStream, "", code, "")
		}
		return IntValue(VInt32, int64(int32(binary.LittleEndian.Uint32(buf[:])))), nil
	case VInt64:
		var buf [8]byte
		if _, err := io.ReadFull(b.r, buf[:]); err != nil {
			return Value{}, recordErr(ErrTruncatedStream, "", code, "")
		}
		return IntValue(VInt64, int64(binary.LittleEndian.Uint64(buf[:]))), nil
	case VBool:
		var buf [1]byte
		if _, err := io.ReadFull(b.r, buf[:]); err != nil {
			return Value{}, recordErr(ErrTruncatedStream, "", code, "")
		}
		return BoolValue(buf[0] != 0), nil
	case VHandle:
		return b.readCString(code)
	case VBinary:
		var lenBuf [1]byte
		if _, err := io.ReadFull(b.r, lenBuf[:]); err != nil {
			return Value{}, recordErr(ErrTruncatedStream, "", code, "")
		}
		n := int(lenBuf[0])
		data := make([]byte, n)
		if n > 0 {
			if _, err := io.ReadFull(b.r, data); err != nil {
				return Value{}, recordErr(ErrTruncatedStream, "", code, "")
			}
		}
		return BinaryValue(data), nil
	default:
		return b.readCString(code)
	}
}

func (b *binarySource) readCString(code int) (Value, error) {
	raw, err := b.r.ReadBytes(0x00)
	if err != nil {
		return Value{}, recordErr(ErrTruncatedStream, "", code, "")
	}
	s := string(raw[:len(raw)-1])
	if codeKind(code) == VHandle {
		h, err := ParseHandle(s)
		if err != nil {
			return Value{}, recordErr(ErrMalformedRecord, "", code, s)
		}
		return HandleValue(h), nil
	}
	return StringValue(s), nil
}

func (b *binarySource) peek() (Record, error) {
	if !b.hasPeek {
		b.peekRec, b.peekErr = b.readRaw()
		b.hasPeek = true
	}
	return b.peekRec, b.peekErr
}

func (b *binarySource) next() (Record, error) {
	if b.hasPeek {
		b.hasPeek = false
		return b.peekRec, b.peekErr
	}
	return b.readRaw()
}

// binarySink emits the Binary physical encoding, writing the sentinel
// exactly once, lazily, on the first emitted record.
type binarySink struct {
	w        *bufio.Writer
	wroteHdr bool
}

func newBinarySink(w io.Writer) *binarySink {
	return &binarySink{w: bufio.NewWriterSize(w, 64*1024)}
}

func (b *binarySink) ensureHeader() error {
	if b.wroteHdr {
		return nil
	}
	b.wroteHdr = true
	_, err := b.w.Write(binarySentinel)
	return err
}

func (b *binarySink) emit(r Record) error { return b.emitCode(r.Code, r.Value) }

func (b *binarySink) emitCode(code int, v Value) error {
	if err := b.ensureHeader(); err != nil {
		return err
	}
	var codeBuf [2]byte
	binary.LittleEndian.PutUint16(codeBuf[:], uint16(code))
	if _, err := b.w.Write(codeBuf[:]); err != nil {
		return err
	}
	return b.writeValue(code, v)
}

func (b *binarySink) writeValue(code int, v Value) error {
	// The reader sizes integers by codeKind(code), so integer and bool
	// values are written at the width their group code carries.
	switch v.Kind {
	case VInt16, VInt32, VInt64, VBool:
		switch k := codeKind(code); k {
		case VInt16, VInt32, VInt64, VBool:
			v = IntValue(k, v.Int())
		}
	}
	switch v.Kind {
	case VString:
		return b.writeCString(v.Str())
	case VFloat:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v.Float()))
		_, err := b.w.Write(buf[:])
		return err
	case VInt16:
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], uint16(int16(v.Int())))
		_, err := b.w.Write(buf[:])
		return err
	case VInt32:
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], uint32(int32(v.Int())))
		_, err := b.w.Write(buf[:])
		return err
	case VInt64:
		var buf [8]byte
		binary.LittleEndian.PutUint64(buf[:], uint64(v.Int()))
		_, err := b.w.Write(buf[:])
		return err
	case VBool:
		var buf [1]byte
		if v.Bool() {
			buf[0] = 1
		}
		_, err := b.w.Write(buf[:])
		return err
	case VHandle:
		return b.writeCString(v.Handle().String())
	case VBinary:
		data := v.Binary()
		if len(data) > 255 {
			return fmt.Errorf("dxf: binary chunk (code %d) exceeds 255 bytes", code)
		}
		if err := b.w.WriteByte(byte(len(data))); err != nil {
			return err
		}
		_, err := b.w.Write(data)
		return err
	default:
		return b.writeCString("")
	}
}

func (b *binarySink) writeCString(s string) error {
	if _, err := b.w.WriteString(s); err != nil {
		return err
	}
	return b.w.WriteByte(0x00)
}

func (b *binarySink) finish() error { return b.w.Flush() }
