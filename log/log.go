// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log provides the small leveled-logging facade used internally by
// the dxf package for operational trace messages. It is deliberately not
// the same thing as dxf.Notification: this package is for messages aimed
// at a developer tailing stderr, Notification is the structured,
// caller-inspectable diagnostic contract described by the DXF reader.
package log

import (
	"fmt"
	"io"
	"log"
)

// Level is a logging severity.
type Level int

// Severity levels, lowest to highest.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal sink every backend must implement.
type Logger interface {
	Log(level Level, msg string) error
}

// stdLogger writes formatted lines to an io.Writer via the standard
// library logger.
type stdLogger struct {
	l *log.Logger
}

// NewStdLogger returns a Logger that writes to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{l: log.New(w, "", log.LstdFlags)}
}

func (s *stdLogger) Log(level Level, msg string) error {
	s.l.Printf("[%s] %s", level, msg)
	return nil
}

// filter wraps a Logger and drops records below a minimum level.
type filter struct {
	next Logger
	min  Level
}

// FilterOption configures a filter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level that passes through the filter.
func FilterLevel(lvl Level) FilterOption {
	return func(f *filter) { f.min = lvl }
}

// NewFilter returns a Logger that forwards to next only records at or
// above the configured minimum level.
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &filter{next: next, min: LevelDebug}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, msg string) error {
	if level < f.min {
		return nil
	}
	return f.next.Log(level, msg)
}

// Helper adds printf-style convenience methods on top of a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in a Helper.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

// Debugf logs at LevelDebug.
func (h *Helper) Debugf(format string, args ...interface{}) {
	h.log(LevelDebug, format, args...)
}

// Infof logs at LevelInfo.
func (h *Helper) Infof(format string, args ...interface{}) {
	h.log(LevelInfo, format, args...)
}

// Warnf logs at LevelWarn.
func (h *Helper) Warnf(format string, args ...interface{}) {
	h.log(LevelWarn, format, args...)
}

// Errorf logs at LevelError.
func (h *Helper) Errorf(format string, args ...interface{}) {
	h.log(LevelError, format, args...)
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, fmt.Sprintf(format, args...))
}
