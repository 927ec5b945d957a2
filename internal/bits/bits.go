// Package bits provides the index arithmetic used by linear probing.
package bits

import (
	"math"
	"math/bits"
)

// Reduce maps a 64-bit hash to [0, n) by integer remainder.
// Returns 0 when n is not positive.
func Reduce(hash uint64, n int) int {
	if n <= 0 {
		return 0
	}
	return int(hash % uint64(n))
}

// Next returns the slot after i, wrapping to 0 at n.
func Next(i, n int) int {
	i++
	if i >= n {
		return 0
	}
	return i
}

// Distance returns how many probe steps separate home from slot in a
// table of n slots, accounting for wrap-around.
func Distance(home, slot, n int) int {
	if slot >= home {
		return slot - home
	}
	return n - home + slot
}

// Grow returns n*factor, or false if the product overflows int or exceeds
// limit. A limit of 0 means no limit.
func Grow(n, factor, limit int) (int, bool) {
	if n <= 0 || factor <= 0 {
		return 0, false
	}
	hi, lo := bits.Mul64(uint64(n), uint64(factor))
	if hi != 0 || lo > math.MaxInt {
		return 0, false
	}
	grown := int(lo)
	if limit > 0 && grown > limit {
		return 0, false
	}
	return grown, true
}
