// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// parseHeaderSection reads the HEADER section body: a run of
// ($NAME, value...) pairs, each $NAME followed by one or more records
// up to the next $NAME or the section end (§4.4).
func parseHeaderSection(c *cursor, d *Document) {
	var name string
	var records []Record
	flush := func() {
		if name != "" {
			d.Header.Set(name, records...)
		}
		name, records = "", nil
	}
	for {
		rec, ok := c.resilientPeek()
		if !ok || rec.Is0() {
			flush()
			return
		}
		rec, _ = c.src.next()
		if rec.Code == 9 {
			flush()
			name = rec.Value.Str()
			continue
		}
		records = append(records, rec)
	}
}

// parseClassesSection reads the CLASSES section: a run of (0, "CLASS")
// records each followed by its fixed field set (§4.4).
func parseClassesSection(c *cursor, d *Document, failures *sectionFailures) {
	for {
		rec, ok := c.resilientPeek()
		if !ok || rec.Is0() && rec.Value.Str() != "CLASS" {
			return
		}
		rec, _ = c.src.next()
		if rec.Code != 0 {
			return
		}
		var cls Class
		ok = !safeguard(c.notes, c.section, func() {
			for {
				r, peekOK := c.resilientPeek()
				if !peekOK || r.Is0() {
					return
				}
				r, _ = c.src.next()
				switch r.Code {
				case 1:
					cls.RecordName = r.Value.Str()
				case 2:
					cls.ClassName = r.Value.Str()
				case 3:
					cls.AppName = r.Value.Str()
				case 90:
					cls.ProxyFlags = int32(r.Value.Int())
				case 91:
					cls.InstanceCount = int32(r.Value.Int())
				case 280:
					cls.WasZombie = r.Value.Int() != 0
				case 281:
					cls.ItemType = int16(r.Value.Int())
				}
			}
		})
		d.Classes = append(d.Classes, cls)
		if failures.record(ok) {
			abandonSection(c)
			return
		}
	}
}

// parseTablesSection reads the TABLES section: a run of
// (0,"TABLE")(2,name)...entries...(0,"ENDTAB") groups (§4.4).
func parseTablesSection(c *cursor, d *Document, failures *sectionFailures) {
	for {
		rec, ok := c.resilientPeek()
		if !ok {
			return
		}
		if rec.Is0() && rec.Value.Str() == "ENDSEC" {
			return
		}
		rec, _ = c.src.next()
		if rec.Code != 0 || rec.Value.Str() != "TABLE" {
			continue
		}
		var tableName string
		if r, peekOK := c.resilientPeek(); peekOK && r.Code == 2 {
			r, _ = c.src.next()
			tableName = r.Value.Str()
		}
		// Consume the table header's own bookkeeping fields (handle,
		// subclass marker, entry count hint) up to the first entry or
		// ENDTAB, both of which are (0, ...) records.
		for {
			r, peekOK := c.resilientPeek()
			if !peekOK || r.Is0() {
				break
			}
			c.src.next()
		}
		for {
			r, peekOK := c.resilientPeek()
			if !peekOK {
				return
			}
			if r.Is0() && r.Value.Str() == "ENDTAB" {
				c.src.next()
				break
			}
			if !r.Is0() {
				c.src.next()
				continue
			}
			typename := r.Value.Str()
			c.src.next()
			var entry TableEntry
			ok := !safeguard(c.notes, c.section, func() {
				entry = readTableEntry(c, typename)
			})
			if ok && entry != nil {
				if err := d.AddTableEntry(tableName, entry); err != nil {
					c.notes.warn(KindDictionaryMismatch, c.section, "%v", err)
				}
			}
			if failures.record(ok) {
				abandonSection(c)
				return
			}
		}
	}
}

// parseBlocksSection reads the BLOCKS section: a run of
// (0,"BLOCK")...body entities...(0,"ENDBLK") groups (§4.4).
func parseBlocksSection(c *cursor, d *Document, failures *sectionFailures) {
	for {
		rec, ok := c.resilientPeek()
		if !ok {
			return
		}
		if rec.Is0() && rec.Value.Str() == "ENDSEC" {
			return
		}
		if !rec.Is0() || rec.Value.Str() != "BLOCK" {
			c.src.next()
			continue
		}
		c.src.next()
		blk := &Block{Preamble: newPreamble()}
		ok = !safeguard(c.notes, c.section, func() {
			decodeCommonRun(c, &blk.Preamble, blk.applyField)
		})
		if !ok {
			if failures.record(false) {
				abandonSection(c)
				return
			}
			continue
		}
		if h, err := d.register(blk.Preamble.Handle, blk); err == nil {
			blk.Preamble.Handle = h
		}
		for {
			r, peekOK := c.resilientPeek()
			if !peekOK {
				d.Blocks = append(d.Blocks, blk)
				return
			}
			if r.Is0() && r.Value.Str() == "ENDBLK" {
				c.src.next()
				decodeCommonRun(c, &blk.EndBlk, func(int, Value) bool { return false })
				break
			}
			if !r.Is0() {
				c.src.next()
				continue
			}
			typename := r.Value.Str()
			c.src.next()
			var ent Entity
			entOK := !safeguard(c.notes, c.section, func() {
				ent = readEntity(c, typename)
			})
			if entOK && ent != nil {
				if h, err := d.register(ent.Pre().Handle, ent); err == nil {
					ent.Pre().Handle = h
				}
				blk.Entities = append(blk.Entities, ent)
			}
			if failures.record(entOK) {
				d.Blocks = append(d.Blocks, blk)
				abandonSection(c)
				return
			}
		}
		d.Blocks = append(d.Blocks, blk)
		failures.record(true)
	}
}

// parseEntitiesSection reads the top-level ENTITIES section (§4.4).
func parseEntitiesSection(c *cursor, d *Document, failures *sectionFailures) {
	for {
		rec, ok := c.resilientPeek()
		if !ok {
			return
		}
		if rec.Is0() && rec.Value.Str() == "ENDSEC" {
			c.src.next()
			return
		}
		if !rec.Is0() {
			c.src.next()
			continue
		}
		typename := rec.Value.Str()
		c.src.next()
		var ent Entity
		ok = !safeguard(c.notes, c.section, func() {
			ent = readEntity(c, typename)
		})
		if ok && ent != nil {
			if h, err := d.register(ent.Pre().Handle, ent); err == nil {
				ent.Pre().Handle = h
			}
			d.Entities = append(d.Entities, ent)
		}
		if failures.record(ok) {
			abandonSection(c)
			return
		}
	}
}

// parseObjectsSection reads the OBJECTS section (§4.4).
func parseObjectsSection(c *cursor, d *Document, failures *sectionFailures) {
	for {
		rec, ok := c.resilientPeek()
		if !ok {
			return
		}
		if rec.Is0() && rec.Value.Str() == "ENDSEC" {
			c.src.next()
			return
		}
		if !rec.Is0() {
			c.src.next()
			continue
		}
		typename := rec.Value.Str()
		c.src.next()
		var obj Object
		ok = !safeguard(c.notes, c.section, func() {
			obj = readObject(c, typename)
		})
		if ok && obj != nil {
			if h, err := d.register(obj.Pre().Handle, obj); err == nil {
				obj.Pre().Handle = h
			}
			d.Objects = append(d.Objects, obj)
			if typename == "DICTIONARY" && obj.Pre().Owner == NoHandle && d.RootDictionary == NoHandle {
				d.RootDictionary = obj.Pre().Handle
			}
		}
		if failures.record(ok) {
			abandonSection(c)
			return
		}
	}
}

// parseThumbnailSection reads the optional THUMBNAILIMAGE section: a
// raw-length record followed by hex-encoded BMP bytes across one or
// more 310 records (§4.4).
func parseThumbnailSection(c *cursor, d *Document) {
	for {
		rec, ok := c.resilientPeek()
		if !ok {
			break
		}
		if rec.Is0() && rec.Value.Str() == "ENDSEC" {
			c.src.next()
			break
		}
		rec, _ = c.src.next()
		if rec.Code == 310 {
			d.Thumbnail = append(d.Thumbnail, rec.Value.Binary()...)
		}
	}
}
