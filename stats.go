package hashtable

import (
	intbits "github.com/tamirms/hashtable/internal/bits"
	"github.com/tamirms/hashtable/internal/slots"
)

// Stats holds table statistics.
type Stats struct {
	NumKeys    int
	Capacity   int
	Tombstones int
	Resizes    int
	LoadFactor float64 // NumKeys / Capacity
	MaxProbe   int     // Longest distance from a key's home slot to its slot
	MeanProbe  float64
}

// Stats scans the slot array and returns occupancy and probe statistics.
// It is O(Capacity).
func (t *Table[V]) Stats() Stats {
	s := Stats{
		NumKeys:    t.count,
		Capacity:   len(t.slots),
		Tombstones: t.tombstones,
		Resizes:    t.resizes,
	}
	if s.Capacity == 0 {
		return s
	}
	s.LoadFactor = float64(s.NumKeys) / float64(s.Capacity)

	total := 0
	for i := range t.slots {
		if t.slots[i].State != slots.Occupied {
			continue
		}
		d := intbits.Distance(t.home(t.slots[i].Key, s.Capacity), i, s.Capacity)
		total += d
		s.MaxProbe = max(s.MaxProbe, d)
	}
	if s.NumKeys > 0 {
		s.MeanProbe = float64(total) / float64(s.NumKeys)
	}
	return s
}
