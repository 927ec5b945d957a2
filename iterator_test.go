package hashtable

import (
	"maps"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestIteratorEmptyTable(t *testing.T) {
	tbl := newTable[*string](t, nil)
	defer tbl.Destroy()

	it := tbl.Iterator()
	defer it.Destroy()

	require.True(t, it.AtEnd())
	require.False(t, it.Advance())
	k, ok := it.CurrentKey()
	require.False(t, ok)
	require.Empty(t, k)
	_, ok = it.CurrentValue()
	require.False(t, ok)
}

func TestIteratorThreeKeys(t *testing.T) {
	tbl := newTable[*string](t, nil)
	defer tbl.Destroy()

	want := map[string]string{"perro": "guau", "gato": "miau", "vaca": "mu"}
	for k, v := range want {
		require.NoError(t, tbl.Insert(k, strp(v)))
	}

	it := tbl.Iterator()
	defer it.Destroy()

	seen := make(map[string]string)
	for range want {
		require.False(t, it.AtEnd())
		k, ok := it.CurrentKey()
		require.True(t, ok)
		_, dup := seen[k]
		require.False(t, dup, "key %q visited twice", k)
		v, ok := it.CurrentValue()
		require.True(t, ok)
		seen[k] = *v

		// Advance reports that it moved, even when the move reaches the end.
		require.True(t, it.Advance())
	}

	require.True(t, it.AtEnd())
	k, ok := it.CurrentKey()
	require.False(t, ok)
	require.Empty(t, k)
	require.False(t, it.Advance())
	require.True(t, it.AtEnd())

	if diff := cmp.Diff(want, seen); diff != "" {
		t.Fatalf("visited entries mismatch (-want +got):\n%s", diff)
	}
}

func TestIteratorSkipsTombstones(t *testing.T) {
	tbl := newTable[int](t, nil)
	defer tbl.Destroy()

	keys := sequentialKeys(10)
	for i, k := range keys {
		require.NoError(t, tbl.Insert(k, i))
	}
	for i := 0; i < len(keys); i += 3 {
		_, ok := tbl.Remove(keys[i])
		require.True(t, ok)
	}

	var got []string
	for it := tbl.Iterator(); !it.AtEnd(); it.Advance() {
		k, _ := it.CurrentKey()
		got = append(got, k)
	}
	slices.Sort(got)

	var want []string
	for i, k := range keys {
		if i%3 != 0 {
			want = append(want, k)
		}
	}
	require.Equal(t, want, got)
}

func TestIteratorAllRemoved(t *testing.T) {
	tbl := newTable[int](t, nil)
	defer tbl.Destroy()

	require.NoError(t, tbl.Insert("a", 1))
	_, ok := tbl.Remove("a")
	require.True(t, ok)

	it := tbl.Iterator()
	require.True(t, it.AtEnd())
	require.False(t, it.Advance())
}

// TestIteratorVolume walks a large table, updating every value through
// Lookup as it goes.
func TestIteratorVolume(t *testing.T) {
	const n = 5000
	tbl := newTable[*int](t, nil)
	defer tbl.Destroy()

	keys := sequentialKeys(n)
	vals := make([]int, n)
	for i, k := range keys {
		vals[i] = i
		require.NoError(t, tbl.Insert(k, &vals[i]))
	}

	it := tbl.Iterator()
	require.False(t, it.AtEnd())

	visited := 0
	for ; visited < n; visited++ {
		require.False(t, it.AtEnd(), "ended early after %d keys", visited)
		k, ok := it.CurrentKey()
		require.True(t, ok)
		v, ok := tbl.Lookup(k)
		require.True(t, ok)
		*v = n
		it.Advance()
	}
	require.Equal(t, n, visited)
	require.True(t, it.AtEnd())

	for i, v := range vals {
		require.Equal(t, n, v, "value %d was not visited", i)
	}
}

func TestIteratorDestroy(t *testing.T) {
	tbl := newTable[int](t, nil)
	defer tbl.Destroy()
	require.NoError(t, tbl.Insert("a", 1))

	it := tbl.Iterator()
	require.False(t, it.AtEnd())
	it.Destroy()
	require.True(t, it.AtEnd())
	require.False(t, it.Advance())
	_, ok := it.CurrentKey()
	require.False(t, ok)

	// The table is unaffected.
	require.Equal(t, 1, tbl.Size())
}

// TestIteratorSurvivesGrowth checks the documented tolerance: an iterator
// created before a resize keeps walking the old slot array without panicking.
func TestIteratorSurvivesGrowth(t *testing.T) {
	tbl := newTable[int](t, nil)
	defer tbl.Destroy()

	keys := sequentialKeys(40)
	for i, k := range keys[:10] {
		require.NoError(t, tbl.Insert(k, i))
	}

	it := tbl.Iterator()
	first, ok := it.CurrentKey()
	require.True(t, ok)

	for i, k := range keys[10:] {
		require.NoError(t, tbl.Insert(k, i+10))
	}
	require.Greater(t, tbl.Capacity(), defaultInitialCapacity)

	k, ok := it.CurrentKey()
	require.True(t, ok)
	require.Equal(t, first, k)

	// The old array held at most 14 keys when it was replaced.
	steps := 0
	for it.Advance() {
		steps++
	}
	require.LessOrEqual(t, steps, 14)
	require.True(t, it.AtEnd())
}

func TestAllAndKeys(t *testing.T) {
	tbl := newTable[int](t, nil)
	defer tbl.Destroy()

	want := map[string]int{"perro": 1, "gato": 2, "vaca": 3, "": 4}
	for k, v := range want {
		require.NoError(t, tbl.Insert(k, v))
	}

	got := maps.Collect(tbl.All())
	require.Equal(t, want, got)

	keys := slices.Sorted(tbl.Keys())
	require.Equal(t, slices.Sorted(maps.Keys(want)), keys)

	// Early break stops the walk.
	n := 0
	for range tbl.Keys() {
		n++
		break
	}
	require.Equal(t, 1, n)
}
