package hashtable

import (
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Hasher maps a key to a 64-bit hash. The table reduces the hash to a home
// slot with an integer remainder by its capacity.
//
// Implementations must be deterministic for the lifetime of a table.
type Hasher interface {
	Hash(key string) uint64
}

// HasherFunc adapts an ordinary function to a Hasher.
type HasherFunc func(key string) uint64

// Hash calls f(key).
func (f HasherFunc) Hash(key string) uint64 {
	return f(key)
}

// djb2Seed is the starting value of the DJB2 rolling hash.
const djb2Seed = 5381

// DJB2 is the default hasher: hash = hash*33 + b over the key bytes,
// starting at 5381, with unsigned 64-bit wraparound.
type DJB2 struct{}

// Hash hashes key with DJB2.
func (DJB2) Hash(key string) uint64 {
	h := uint64(djb2Seed)
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint64(key[i])
	}
	return h
}

// XXHash64 hashes keys with XXH64 (seed 0).
type XXHash64 struct{}

// Hash hashes key with XXH64.
func (XXHash64) Hash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// XXH3 hashes keys with 64-bit XXH3. Seed selects the hash family member.
type XXH3 struct {
	Seed uint64
}

// Hash hashes key with XXH3.
func (h XXH3) Hash(key string) uint64 {
	return xxh3.HashSeed([]byte(key), h.Seed)
}

// Murmur3 hashes keys with the 64-bit half of MurmurHash3 x64_128.
type Murmur3 struct {
	Seed uint32
}

// Hash hashes key with MurmurHash3.
func (h Murmur3) Hash(key string) uint64 {
	return murmur3.Sum64WithSeed([]byte(key), h.Seed)
}
