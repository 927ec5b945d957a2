// Package slots implements the open-addressing slot array: three-state
// slots and the linear-probe walks over them.
package slots

import (
	intbits "github.com/tamirms/hashtable/internal/bits"
)

// State is the occupancy state of a slot.
type State uint8

const (
	Empty State = iota
	Occupied
	Tombstone
)

func (s State) String() string {
	switch s {
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	case Tombstone:
		return "tombstone"
	default:
		return "unknown"
	}
}

// Slot holds one entry. Key and Value are meaningful only when State is
// Occupied; the other states keep them zeroed so values can be collected.
type Slot[V any] struct {
	Key   string
	Value V
	State State
}

// Array is a fixed-capacity slot array. The zero-length Array is valid and
// behaves as an always-empty table.
type Array[V any] []Slot[V]

// New returns an Array of n Empty slots.
func New[V any](n int) Array[V] {
	return make(Array[V], n)
}

// Find probes forward from home for key. Tombstones are skipped, an Empty
// slot ends the chain, and the walk visits each slot at most once.
// Returns the slot index and true on a match.
func (a Array[V]) Find(key string, home int) (int, bool) {
	n := len(a)
	for i, step := home, 0; step < n; i, step = intbits.Next(i, n), step+1 {
		switch a[i].State {
		case Empty:
			return -1, false
		case Occupied:
			if a[i].Key == key {
				return i, true
			}
		}
	}
	return -1, false
}

// FreeSlot probes forward from home for the first Empty or Tombstone slot.
// Returns -1 if every slot is Occupied.
func (a Array[V]) FreeSlot(home int) int {
	n := len(a)
	for i, step := home, 0; step < n; i, step = intbits.Next(i, n), step+1 {
		if a[i].State != Occupied {
			return i
		}
	}
	return -1
}

// NextOccupied returns the first Occupied index >= from, or len(a) if
// there is none. No wrap-around: iteration is strictly forward.
func (a Array[V]) NextOccupied(from int) int {
	if from < 0 {
		from = 0
	}
	for i := from; i < len(a); i++ {
		if a[i].State == Occupied {
			return i
		}
	}
	return len(a)
}

// Occupy writes an Occupied entry at i.
func (a Array[V]) Occupy(i int, key string, value V) {
	a[i] = Slot[V]{Key: key, Value: value, State: Occupied}
}

// Bury turns slot i into a Tombstone and returns the value it held.
func (a Array[V]) Bury(i int) V {
	v := a[i].Value
	a[i] = Slot[V]{State: Tombstone}
	return v
}
