// Copyright 2024 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package dxf

// hasPreamble is satisfied by Entity, Object, and TableEntry alike, and
// lets resolvePass treat all three catalogues uniformly.
type hasPreamble interface {
	Pre() *Preamble
}

// resolvePass runs the single post-read pass described in §4.7: it
// checks every stored owner-handle reference and nulls the ones that
// don't resolve (recording a missing-handle Error each time — the
// caller aborts the read for this in strict mode once the pass
// returns), drops reactor handles that don't resolve to anything in
// the document (with a Warning per drop), relocates entities into or
// out of block bodies according to which BLOCK_RECORD their owner
// names, and assigns an owner to any dictionary member that was read
// with no owner of its own, without ever overwriting an owner a member
// already has.
func resolvePass(d *Document) {
	resolveOwnersFor(d, "ENTITIES", entitiesToPreambled(d.Entities))
	resolveOwnersFor(d, "OBJECTS", objectsToPreambled(d.Objects))
	for _, blk := range d.Blocks {
		resolveOwnersFor(d, "BLOCKS", entitiesToPreambled(blk.Entities))
	}

	relocateBlockOwnedEntities(d)

	resolveReactorsFor(d, "ENTITIES", entitiesToPreambled(d.Entities))
	resolveReactorsFor(d, "OBJECTS", objectsToPreambled(d.Objects))
	for _, blk := range d.Blocks {
		resolveReactorsFor(d, "BLOCKS", entitiesToPreambled(blk.Entities))
	}

	for _, obj := range d.Objects {
		dict, ok := obj.(*Dictionary)
		if !ok {
			continue
		}
		for _, entry := range dict.Entries {
			member, ok := d.byHandle[entry.Handle]
			if !ok {
				d.notes.warn(KindDictionaryMismatch, "OBJECTS",
					"dictionary %s entry %q references unknown handle %s", dict.Handle, entry.Name, entry.Handle)
				continue
			}
			pre := preambleOf(member)
			if pre != nil && pre.Owner == NoHandle {
				pre.Owner = dict.Handle
			}
		}
	}
}

func entitiesToPreambled(entities []Entity) []hasPreamble {
	out := make([]hasPreamble, len(entities))
	for i, e := range entities {
		out[i] = e
	}
	return out
}

func objectsToPreambled(objects []Object) []hasPreamble {
	out := make([]hasPreamble, len(objects))
	for i, o := range objects {
		out[i] = o
	}
	return out
}

// preambleOf extracts the common Preamble from any of the three
// catalogue interfaces, or nil for a value that carries none.
func preambleOf(v interface{}) *Preamble {
	switch t := v.(type) {
	case Entity:
		return t.Pre()
	case Object:
		return t.Pre()
	case TableEntry:
		return t.Pre()
	default:
		return nil
	}
}

// resolveOwnersFor checks every non-zero owner handle against the
// document's handle index (§4.7 bullet 2). A dangling owner is
// recorded as a missing-handle Error and then nulled — the failsafe
// half of "the reference becomes null, otherwise the read fails"; the
// strict-mode abort itself happens in Reader.parseSource once
// notes.hasErr is observed set after resolvePass returns.
func resolveOwnersFor(d *Document, section string, items []hasPreamble) {
	for _, it := range items {
		pre := it.Pre()
		if pre.Owner == NoHandle {
			continue
		}
		if _, ok := d.byHandle[pre.Owner]; !ok {
			d.notes.err(KindMissingHandle, section, 0, "", "handle %s: owner %s does not resolve to anything in the document", pre.Handle, pre.Owner)
			pre.Owner = NoHandle
		}
	}
}

// relocateBlockOwnedEntities implements §4.7 bullet 5: entities whose
// owner resolves to the *Model_Space/*Paper_Space BLOCK_RECORD are
// moved into (or kept in) the document's top-level entity collection;
// entities owned by any other BLOCK_RECORD are moved into that block's
// body. Every entity the read produced is pooled first regardless of
// which section it came from, since a malformed or hand-built document
// may have an entity sitting in the wrong collection for its owner.
func relocateBlockOwnedEntities(d *Document) {
	modelSpace, paperSpace := d.spaceHandles()
	isSpace := func(h Handle) bool { return h == modelSpace || h == paperSpace }

	blockByRecord := make(map[Handle]*Block, len(d.Blocks))
	for _, blk := range d.Blocks {
		if blk.Owner != NoHandle {
			blockByRecord[blk.Owner] = blk
		}
	}

	pool := append([]Entity{}, d.Entities...)
	for _, blk := range d.Blocks {
		pool = append(pool, blk.Entities...)
		blk.Entities = blk.Entities[:0]
	}

	d.Entities = d.Entities[:0]
	for _, e := range pool {
		owner := e.Pre().Owner
		if blk, ok := blockByRecord[owner]; ok && !isSpace(owner) {
			blk.Entities = append(blk.Entities, e)
			continue
		}
		d.Entities = append(d.Entities, e)
	}
}

// resolveReactorsFor drops reactor handles that don't resolve to a
// known handle in the document, reporting one Warning per drop (§4.7).
func resolveReactorsFor(d *Document, section string, items []hasPreamble) {
	for _, it := range items {
		pre := it.Pre()
		if len(pre.Reactors) == 0 {
			continue
		}
		kept := pre.Reactors[:0]
		for _, h := range pre.Reactors {
			if _, ok := d.byHandle[h]; ok {
				kept = append(kept, h)
			} else {
				d.notes.warn(KindReactorDropped, section, "handle %s: dropped reactor to unknown handle %s", pre.Handle, h)
			}
		}
		pre.Reactors = kept
	}
}
