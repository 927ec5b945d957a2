package hashtable

import (
	"strings"

	"go.uber.org/zap"

	tablerrors "github.com/tamirms/hashtable/errors"
	intbits "github.com/tamirms/hashtable/internal/bits"
	"github.com/tamirms/hashtable/internal/slots"
)

// Table maps string keys to values of type V using open addressing with
// linear probing.
//
// Keys are copied into the table on insert. Values are stored as given; if a
// destructor was passed to New, the table calls it on every value it evicts:
// the old value on overwrite, the value on Remove, and every remaining value
// on Destroy.
//
// Thread Safety:
// - A Table is not safe for concurrent use; callers serialize all access
// - Iterators share the table's slot array and fall under the same rule
type Table[V any] struct {
	cfg     *config
	destroy func(V)
	slots   slots.Array[V]

	count      int // Occupied slots
	tombstones int // Tombstone slots
	resizes    int // Completed rebuilds (growth or purge)
	destroyed  bool
}

// New creates an empty table. destroy may be nil, in which case values are
// never released by the table.
func New[V any](destroy func(V), opts ...Option) (*Table[V], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Table[V]{
		cfg:     cfg,
		destroy: destroy,
		slots:   slots.New[V](cfg.initialCapacity),
	}, nil
}

func (t *Table[V]) home(key string, capacity int) int {
	return intbits.Reduce(t.cfg.hasher.Hash(key), capacity)
}

// Insert associates key with value. An existing value for key is replaced
// (and passed to the destructor, if any) without changing Size.
//
// Returns ErrCapacityExceeded if a new key finds every slot occupied and the
// table cannot grow past its maximum capacity, and ErrTableDestroyed after
// Destroy. The table is unchanged on error.
func (t *Table[V]) Insert(key string, value V) error {
	if t.destroyed {
		return tablerrors.ErrTableDestroyed
	}

	if i, ok := t.slots.Find(key, t.home(key, len(t.slots))); ok {
		if t.destroy != nil {
			t.destroy(t.slots[i].Value)
		}
		t.slots[i].Value = value
		return nil
	}

	if err := t.reserve(); err != nil {
		return err
	}

	i := t.slots.FreeSlot(t.home(key, len(t.slots)))
	if i < 0 {
		// reserve guarantees a free slot
		panic("hashtable: no free slot after reserve")
	}
	if t.slots[i].State == slots.Tombstone {
		t.tombstones--
	}
	t.slots.Occupy(i, strings.Clone(key), value)
	t.count++
	return nil
}

// reserve makes room for one more key. It grows the table when the live
// load factor has reached the threshold, and rebuilds in place when
// tombstones alone push occupancy over it.
func (t *Table[V]) reserve() error {
	capacity := len(t.slots)
	limit := t.cfg.loadFactor * float64(capacity)

	if float64(t.count) >= limit {
		newCap, ok := intbits.Grow(capacity, t.cfg.growthFactor, t.cfg.maxCapacity)
		if !ok {
			if t.count < capacity {
				// Capped: keep filling empty and tombstone slots.
				return nil
			}
			t.cfg.logger.Warn("hashtable: cannot grow",
				zap.Int("capacity", capacity),
				zap.Int("max_capacity", t.cfg.maxCapacity),
				zap.Int("size", t.count))
			return tablerrors.ErrCapacityExceeded
		}
		t.rehash(newCap, "grow")
		return nil
	}

	if t.tombstones > 0 && float64(t.count+t.tombstones) >= limit {
		t.rehash(capacity, "purge")
	}
	return nil
}

// rehash rebuilds the slot array at newCap, dropping tombstones. The new
// array is complete before it replaces the old one.
func (t *Table[V]) rehash(newCap int, reason string) {
	next := slots.New[V](newCap)
	for _, s := range t.slots {
		if s.State != slots.Occupied {
			continue
		}
		i := next.FreeSlot(t.home(s.Key, newCap))
		next.Occupy(i, s.Key, s.Value)
	}

	t.cfg.logger.Debug("hashtable: rehashed",
		zap.String("reason", reason),
		zap.Int("old_capacity", len(t.slots)),
		zap.Int("new_capacity", newCap),
		zap.Int("size", t.count),
		zap.Int("tombstones_dropped", t.tombstones))

	t.slots = next
	t.tombstones = 0
	t.resizes++
}

// Lookup returns the value stored for key and whether it was present.
func (t *Table[V]) Lookup(key string) (V, bool) {
	if i, ok := t.slots.Find(key, t.home(key, len(t.slots))); ok {
		return t.slots[i].Value, true
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (t *Table[V]) Contains(key string) bool {
	_, ok := t.slots.Find(key, t.home(key, len(t.slots)))
	return ok
}

// Remove deletes key and reports whether it was present.
//
// Without a destructor the removed value is returned to the caller. With a
// destructor the table releases the value itself and returns the zero V, so
// the caller never receives a value that has already been destroyed.
func (t *Table[V]) Remove(key string) (V, bool) {
	var zero V
	i, ok := t.slots.Find(key, t.home(key, len(t.slots)))
	if !ok {
		return zero, false
	}
	v := t.slots.Bury(i)
	t.count--
	t.tombstones++
	if t.destroy != nil {
		t.destroy(v)
		return zero, true
	}
	return v, true
}

// Size returns the number of keys in the table.
func (t *Table[V]) Size() int {
	return t.count
}

// Capacity returns the current number of slots.
func (t *Table[V]) Capacity() int {
	return len(t.slots)
}

// Destroy releases every remaining value through the destructor and drops
// the slot array. Values already removed are not released again. Calling
// Destroy more than once is a no-op.
func (t *Table[V]) Destroy() {
	if t.destroyed {
		return
	}
	t.destroyed = true
	for i := range t.slots {
		if t.slots[i].State == slots.Occupied && t.destroy != nil {
			t.destroy(t.slots[i].Value)
		}
	}
	clear(t.slots)
	t.slots = nil
	t.count = 0
	t.tombstones = 0
}
