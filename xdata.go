// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// XDataItem is one extended-data record (group code >= 1000) attached to
// an application name via a leading 1001 record (§4.6).
type XDataItem struct {
	Code  int
	Value Value
}

// XData is the extended-data payload registered under a single
// application name.
type XData struct {
	App   string
	Items []XDataItem
}

// readXData consumes consecutive xdata records (1001 followed by its
// 1000+ payload) up to the next structural boundary or the next record
// below 1000, starting a new group at each 1001 application marker and
// preserving item order exactly (§4.6, §8).
func readXData(c *cursor) []XData {
	var groups []XData
	var cur *XData
	for {
		rec, err := c.src.peek()
		if err != nil || rec.Is0() {
			break
		}
		if rec.Code < 1000 {
			break
		}
		rec, _ = c.src.next()
		if rec.Code == 1001 {
			groups = append(groups, XData{App: rec.Value.Str()})
			cur = &groups[len(groups)-1]
			continue
		}
		if cur == nil {
			// Malformed stream: xdata payload with no preceding
			// application marker. Recover by synthesizing an anonymous
			// group rather than dropping the data.
			groups = append(groups, XData{})
			cur = &groups[len(groups)-1]
		}
		cur.Items = append(cur.Items, XDataItem{Code: rec.Code, Value: rec.Value})
	}
	return groups
}

// writeXData re-emits a document's xdata groups in their stored order.
func writeXData(sink tokenSink, groups []XData) error {
	for _, g := range groups {
		if err := sink.emitCode(1001, StringValue(g.App)); err != nil {
			return err
		}
		for _, item := range g.Items {
			if err := sink.emitCode(item.Code, item.Value); err != nil {
				return err
			}
		}
	}
	return nil
}

// ReactorList is the resolved set of handles named in a nested
// {ACAD_REACTORS record group (code 102) inside an entity/object's
// common preamble (§4.6).
type ReactorList []Handle

// readNestedGroup consumes a 102-delimited nested group (opened by a
// "{NAME" value and closed by "}") and returns the raw records inside
// it. Recognized groups ({ACAD_REACTORS}, {ACAD_XDICTIONARY}) are
// interpreted by the caller; unrecognized ones are preserved verbatim
// as part of the owning entity's Unknown-compatible tail so nothing is
// silently dropped (§4.6, §8).
func readNestedGroup(c *cursor) (open string, body []Record) {
	rec, ok := c.take()
	if !ok || rec.Code != 102 {
		return "", nil
	}
	open = rec.Value.Str()
	for {
		rec, ok := c.take()
		if !ok {
			return open, body
		}
		if rec.Code == 102 && rec.Value.Str() == "}" {
			return open, body
		}
		body = append(body, rec)
	}
}
