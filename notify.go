// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

import "fmt"

// NotifyLevel is the severity of a Notification.
type NotifyLevel int

// Notification severities (§4.8).
const (
	Info NotifyLevel = iota
	Warning
	Error
)

func (l NotifyLevel) String() string {
	switch l {
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// NotifyKind is a machine-readable category for a Notification.
type NotifyKind string

// Notification kinds produced by the reader and writer.
const (
	KindUnsupportedEntity  NotifyKind = "unsupported-entity"
	KindUnsupportedObject  NotifyKind = "unsupported-object"
	KindUnsupportedField   NotifyKind = "unsupported-field"
	KindMissingHandle      NotifyKind = "missing-handle"
	KindMalformedRecord    NotifyKind = "malformed-record"
	KindUnexpectedRecord   NotifyKind = "unexpected-record"
	KindDuplicateHandle    NotifyKind = "duplicate-handle"
	KindUnsupportedVersion NotifyKind = "unsupported-version"
	KindUnknownSection     NotifyKind = "unknown-section"
	KindEncodingFallback   NotifyKind = "encoding-fallback"
	KindDictionaryMismatch NotifyKind = "dictionary-owner-mismatch"
	KindReactorDropped     NotifyKind = "reactor-dropped"
	KindSectionRecovered   NotifyKind = "section-recovered"
	KindEntityRecovered    NotifyKind = "entity-recovered"
	KindReservedEntry      NotifyKind = "reserved-entry"
)

// abortKind maps the NotifyKind values errors.go documents as aborting
// a strict-mode read (§7) to the sentinel error notifier.lastErr should
// carry for that abort. Kinds absent from this map (e.g. the advisory
// KindReactorDropped or KindEncodingFallback) never set lastErr: they
// are Warning/Info severity by construction and strict mode only acts
// on an Error-level entry in the first place.
var abortKind = map[NotifyKind]error{
	KindMalformedRecord:    ErrMalformedRecord,
	KindUnexpectedRecord:   ErrUnexpectedRecord,
	KindMissingHandle:      ErrMissingHandle,
	KindDuplicateHandle:    ErrDuplicateHandle,
	KindUnsupportedVersion: ErrUnsupportedVersion,
}

// Notification is a single structured diagnostic emitted while reading or
// writing a document (§4.8). The notification list on a Document is
// append-only for the duration of a single read or write.
type Notification struct {
	Level   NotifyLevel
	Kind    NotifyKind
	Message string
	Section string
	Code    int
	Excerpt string
}

func (n Notification) String() string {
	if n.Section == "" {
		return fmt.Sprintf("[%s] %s: %s", n.Level, n.Kind, n.Message)
	}
	return fmt.Sprintf("[%s] %s (%s): %s", n.Level, n.Kind, n.Section, n.Message)
}

// notifier accumulates Notifications and tracks whether any Error-level
// entry has been recorded, which is what strict mode uses to decide
// whether to abort (§4.8, §7).
type notifier struct {
	log     []Notification
	hasErr  bool
	lastErr error
}

func (n *notifier) add(level NotifyLevel, kind NotifyKind, section string, code int, excerpt, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	n.log = append(n.log, Notification{
		Level: level, Kind: kind, Message: msg,
		Section: section, Code: code, Excerpt: excerpt,
	})
	if level == Error {
		n.hasErr = true
		if sentinel, ok := abortKind[kind]; ok {
			n.lastErr = recordErr(sentinel, section, code, excerpt)
		}
	}
}

func (n *notifier) info(kind NotifyKind, section, format string, args ...interface{}) {
	n.add(Info, kind, section, 0, "", format, args...)
}

func (n *notifier) warn(kind NotifyKind, section, format string, args ...interface{}) {
	n.add(Warning, kind, section, 0, "", format, args...)
}

func (n *notifier) err(kind NotifyKind, section string, code int, excerpt, format string, args ...interface{}) {
	n.add(Error, kind, section, code, excerpt, format, args...)
}
