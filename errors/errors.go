// Package errors defines all exported error sentinels for the hashtable library.
//
// The root hashtable package and the internal packages import from here,
// so errors.Is checks work across package boundaries.
package errors

import "errors"

// Table errors
var (
	ErrCapacityExceeded = errors.New("hashtable: capacity limit exceeded")
	ErrTableDestroyed   = errors.New("hashtable: table is destroyed")
)

// Construction errors
var (
	ErrInvalidCapacity     = errors.New("hashtable: capacity must be positive and within the configured maximum")
	ErrInvalidLoadFactor   = errors.New("hashtable: load factor must be in (0, 1]")
	ErrInvalidGrowthFactor = errors.New("hashtable: growth factor must be at least 2")
)
