// Package edit keeps the original and working copies of an MRDF buffer and
// applies typed and raw edits in place.
//
// The working buffer always has the length of the original. Every mutating
// method validates its input before writing, so a failed call leaves the
// buffer, pending edits and ledger untouched.
package edit

import (
	"sort"

	"github.com/joshuapare/mrdfkit/internal/buf"
	"github.com/joshuapare/mrdfkit/mrdf/codec"
	"github.com/joshuapare/mrdfkit/pkg/types"
)

// Edit is a typed edit that has been applied to the working buffer.
type Edit struct {
	Offset int
	Def    types.FieldDef
	Value  types.Value // as it reads back after encoding
}

// Buffer holds an original snapshot and its working copy.
//
// NOT thread-safe.
type Buffer struct {
	original []byte
	working  []byte
	pending  map[int]Edit
	ledger   *Ledger
}

// Open snapshots data as both the original and the working buffer. data is copied.
func Open(data []byte) *Buffer {
	b := &Buffer{}
	b.Reset(data)
	return b
}

// Reset replaces the buffer contents with a copy of data and clears pending
// edits and the ledger.
func (b *Buffer) Reset(data []byte) {
	b.original = append(make([]byte, 0, len(data)), data...)
	b.working = append(make([]byte, 0, len(data)), data...)
	b.pending = make(map[int]Edit)
	if b.ledger == nil {
		b.ledger = NewLedger()
	}
	b.ledger.Reset()
}

// Len returns the buffer length, fixed at Open.
func (b *Buffer) Len() int { return len(b.working) }

// Original returns a copy of the snapshot taken at Open.
func (b *Buffer) Original() []byte { return append([]byte(nil), b.original...) }

// Working returns a copy of the working buffer.
func (b *Buffer) Working() []byte { return append([]byte(nil), b.working...) }

// View returns the working buffer without copying. Callers must not modify it.
func (b *Buffer) View() []byte { return b.working }

// ApplyField encodes v into def's bytes and records it as pending.
func (b *Buffer) ApplyField(def types.FieldDef, v types.Value) error {
	if _, err := codec.Encode(b.working, def.Offset, def.Kind, v); err != nil {
		return err
	}
	b.pending[def.Offset] = Edit{Offset: def.Offset, Def: def, Value: codec.Normalize(def.Kind, v)}
	b.ledger.Add(def.Offset, def.Width())
	return nil
}

// ApplyLiteral parses s for def and applies it.
func (b *Buffer) ApplyLiteral(def types.FieldDef, s string) error {
	v, err := codec.ParseFieldLiteral(def, s)
	if err != nil {
		return err
	}
	return b.ApplyField(def, v)
}

// RevertField restores def's bytes from the original and drops its pending
// edit, whether or not one exists.
func (b *Buffer) RevertField(def types.FieldDef) error {
	w := def.Width()
	if !buf.InRange(len(b.original), def.Offset, w) {
		return types.OutOfBounds(def.Offset, w, len(b.original))
	}
	copy(b.working[def.Offset:def.Offset+w], b.original[def.Offset:])
	delete(b.pending, def.Offset)
	b.ledger.Add(def.Offset, w)
	return nil
}

// OverwriteRange replaces [start, start+length) with data. Pending typed
// edits are left as they are; see Stale.
func (b *Buffer) OverwriteRange(start, length int, data []byte) error {
	if len(data) != length {
		return types.LengthMismatch(length, len(data))
	}
	if !buf.InRange(len(b.working), start, length) {
		return types.OutOfBounds(start, length, len(b.working))
	}
	copy(b.working[start:start+length], data)
	b.ledger.Add(start, length)
	return nil
}

// OverwriteHex parses a hex byte literal such as "DE AD BE EF" and overwrites
// [start, start+length) with it.
func (b *Buffer) OverwriteHex(start, length int, literal string) error {
	data, err := codec.ParseHexBytes(literal)
	if err != nil {
		return err
	}
	return b.OverwriteRange(start, length, data)
}

// RevertRange restores [start, start+length) from the original.
func (b *Buffer) RevertRange(start, length int) error {
	if !buf.InRange(len(b.original), start, length) {
		return types.OutOfBounds(start, length, len(b.original))
	}
	copy(b.working[start:start+length], b.original[start:])
	b.ledger.Add(start, length)
	return nil
}

// DiscardAll restores the whole working buffer and clears all bookkeeping.
func (b *Buffer) DiscardAll() {
	copy(b.working, b.original)
	b.pending = make(map[int]Edit)
	b.ledger.Reset()
}

// Pending returns the pending typed edits ordered by offset.
func (b *Buffer) Pending() []Edit {
	out := make([]Edit, 0, len(b.pending))
	for _, e := range b.pending {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Offset < out[j].Offset })
	return out
}

// PendingAt returns the pending edit at off.
func (b *Buffer) PendingAt(off int) (Edit, bool) {
	e, ok := b.pending[off]
	return e, ok
}

// PendingCount returns the number of pending typed edits.
func (b *Buffer) PendingCount() int { return len(b.pending) }

// Stale reports whether the pending edit at off no longer matches the working
// bytes, which happens when a raw overwrite lands on a typed edit.
func (b *Buffer) Stale(off int) bool {
	e, ok := b.pending[off]
	if !ok {
		return false
	}
	v, _, err := codec.Decode(b.working, off, e.Def.Kind)
	if err != nil {
		return true
	}
	return !v.Equal(e.Value)
}

// DirtyRanges returns the touched ranges whose bytes still differ from the original.
func (b *Buffer) DirtyRanges() []Range {
	return diffRanges(b.ledger.Ranges(), b.original, b.working)
}

// Modified reports whether any working byte differs from the original.
func (b *Buffer) Modified() bool {
	return len(b.DirtyRanges()) > 0
}

// IsDirty reports whether any byte of [off, off+length) differs from the original.
func (b *Buffer) IsDirty(off, length int) bool {
	for _, r := range b.DirtyRanges() {
		if r.Off < off+length && off < r.End() {
			return true
		}
	}
	return false
}
