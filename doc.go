// Package hashtable implements an open-addressing hash table from string keys
// to arbitrary values, using linear probing, deletion tombstones and
// load-factor driven growth.
//
// # Basic Usage
//
//	t, err := hashtable.New[*Conn](func(c *Conn) { c.Close() })
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer t.Destroy()
//
//	if err := t.Insert("primary", conn); err != nil {
//	    log.Fatal(err)
//	}
//	if c, ok := t.Lookup("primary"); ok {
//	    c.Ping()
//	}
//
// Iterating:
//
//	for it := t.Iterator(); !it.AtEnd(); it.Advance() {
//	    key, _ := it.CurrentKey()
//	    fmt.Println(key)
//	}
//
// or with range-over-func:
//
//	for key, c := range t.All() {
//	    fmt.Println(key, c)
//	}
//
// # Value Ownership
//
// Keys are copied into the table. Values belong to the caller unless a
// destructor is passed to New; then the table calls it on every value it
// evicts: the previous value on overwrite, the value on Remove (which then
// returns the zero value instead of the released one), and all remaining
// values on Destroy.
//
// # Package Structure
//
//   - Public API: table.go (New, Insert, Lookup, Contains, Remove, Destroy),
//     iterator.go (Iterator, All, Keys), stats.go (Stats)
//   - Configuration: options.go (Option, With* functions)
//   - Hashing: hasher.go (DJB2 default, XXHash64, XXH3, Murmur3)
//   - Slot array and probe walks: internal/slots/
//   - Index arithmetic: internal/bits/
//   - Error sentinels: errors/
package hashtable
