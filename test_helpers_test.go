package hashtable

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

// newTestRNG returns an RNG seeded from the test name so every test gets its
// own reproducible stream.
func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// sequentialKeys returns n distinct zero-padded keys: "00000000", "00000001", ...
func sequentialKeys(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = fmt.Sprintf("%08d", i)
	}
	return keys
}

// randomKeys returns n pseudo-random keys of length 1..maxLen. Keys may
// repeat.
func randomKeys(rng *rand.Rand, n, maxLen int) []string {
	const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	keys := make([]string, n)
	buf := make([]byte, maxLen)
	for i := range keys {
		l := rng.IntN(maxLen) + 1
		for j := 0; j < l; j++ {
			buf[j] = alphabet[rng.IntN(len(alphabet))]
		}
		keys[i] = string(buf[:l])
	}
	return keys
}

// releaseLog records destructor calls.
type releaseLog struct {
	released map[*string]int
	total    int
}

func newReleaseLog() *releaseLog {
	return &releaseLog{released: make(map[*string]int)}
}

func (r *releaseLog) destroy(v *string) {
	r.released[v]++
	r.total++
}

// count returns how many times v was released.
func (r *releaseLog) count(v *string) int {
	return r.released[v]
}

// strp returns a fresh pointer so values compare by identity.
func strp(s string) *string {
	return &s
}

// constHasher sends every key to the same home slot, turning the table into
// one long probe chain.
var constHasher = HasherFunc(func(string) uint64 { return 7 })

// allHashers lists every built-in hasher for table-driven tests.
func allHashers() []struct {
	name string
	h    Hasher
} {
	return []struct {
		name string
		h    Hasher
	}{
		{"djb2", DJB2{}},
		{"xxhash", XXHash64{}},
		{"xxh3", XXH3{Seed: 42}},
		{"murmur3", Murmur3{Seed: 42}},
		{"const", constHasher},
	}
}

func newTable[V any](t testing.TB, destroy func(V), opts ...Option) *Table[V] {
	t.Helper()
	tbl, err := New(destroy, opts...)
	require.NoError(t, err)
	return tbl
}

// requireAbsent checks every absent-key property at once.
func requireAbsent[V any](t *testing.T, tbl *Table[V], key string) {
	t.Helper()
	size := tbl.Size()
	_, ok := tbl.Lookup(key)
	require.False(t, ok, "Lookup(%q) should be absent", key)
	require.False(t, tbl.Contains(key), "Contains(%q) should be false", key)
	_, ok = tbl.Remove(key)
	require.False(t, ok, "Remove(%q) should be absent", key)
	require.Equal(t, size, tbl.Size(), "Size changed by absent-key operations")
}
