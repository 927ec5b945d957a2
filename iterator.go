package hashtable

import (
	"iter"

	"github.com/tamirms/hashtable/internal/slots"
)

// Iterator walks a table's entries in slot order.
//
// An Iterator reads the slot array the table had when the iterator was
// created. Inserting into or removing from the table while an iterator is in
// use is not supported: the iterator will not panic, but it may miss or
// revisit entries.
type Iterator[V any] struct {
	slots slots.Array[V]
	pos   int
	cur   slots.Slot[V] // copy of slots[pos] while not at end
}

// Iterator returns an iterator positioned at the first entry, or at end if
// the table is empty.
func (t *Table[V]) Iterator() *Iterator[V] {
	it := &Iterator[V]{slots: t.slots}
	it.seek(0)
	return it
}

func (it *Iterator[V]) seek(from int) {
	it.pos = it.slots.NextOccupied(from)
	if it.AtEnd() {
		it.cur = slots.Slot[V]{}
		return
	}
	it.cur = it.slots[it.pos]
}

// AtEnd reports whether the iterator has moved past the last entry.
func (it *Iterator[V]) AtEnd() bool {
	return it.pos >= len(it.slots)
}

// Advance moves to the next entry. It returns false, doing nothing, when the
// iterator was already at end; otherwise it returns true, including when the
// move lands at end.
func (it *Iterator[V]) Advance() bool {
	if it.AtEnd() {
		return false
	}
	it.seek(it.pos + 1)
	return true
}

// CurrentKey returns the key under the cursor. ok is false at end.
func (it *Iterator[V]) CurrentKey() (key string, ok bool) {
	if it.AtEnd() {
		return "", false
	}
	return it.cur.Key, true
}

// CurrentValue returns the value under the cursor. ok is false at end.
func (it *Iterator[V]) CurrentValue() (value V, ok bool) {
	if it.AtEnd() {
		return value, false
	}
	return it.cur.Value, true
}

// Destroy detaches the iterator from its table. The iterator is at end
// afterwards.
func (it *Iterator[V]) Destroy() {
	it.slots = nil
	it.pos = 0
	it.cur = slots.Slot[V]{}
}

// All returns an iterator over key-value pairs in slot order.
func (t *Table[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for it := t.Iterator(); !it.AtEnd(); it.Advance() {
			if !yield(it.cur.Key, it.cur.Value) {
				return
			}
		}
	}
}

// Keys returns an iterator over keys in slot order.
func (t *Table[V]) Keys() iter.Seq[string] {
	return func(yield func(string) bool) {
		for it := t.Iterator(); !it.AtEnd(); it.Advance() {
			if !yield(it.cur.Key) {
				return
			}
		}
	}
}
