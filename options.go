package hashtable

import (
	"math"

	"go.uber.org/zap"

	tablerrors "github.com/tamirms/hashtable/errors"
)

const (
	defaultInitialCapacity = 20
	defaultLoadFactor      = 0.7
	defaultGrowthFactor    = 2
)

// Option is a functional option for configuring a Table.
type Option func(*config)

type config struct {
	initialCapacity int
	loadFactor      float64
	growthFactor    int
	maxCapacity     int // 0 means unbounded
	hasher          Hasher
	logger          *zap.Logger
}

func defaultConfig() *config {
	return &config{
		initialCapacity: defaultInitialCapacity,
		loadFactor:      defaultLoadFactor,
		growthFactor:    defaultGrowthFactor,
		hasher:          DJB2{},
		logger:          zap.NewNop(),
	}
}

func (c *config) validate() error {
	if c.initialCapacity < 1 {
		return tablerrors.ErrInvalidCapacity
	}
	if c.maxCapacity < 0 || (c.maxCapacity > 0 && c.maxCapacity < c.initialCapacity) {
		return tablerrors.ErrInvalidCapacity
	}
	if math.IsNaN(c.loadFactor) || c.loadFactor <= 0 || c.loadFactor > 1 {
		return tablerrors.ErrInvalidLoadFactor
	}
	if c.growthFactor < 2 {
		return tablerrors.ErrInvalidGrowthFactor
	}
	return nil
}

// WithInitialCapacity sets the number of slots allocated by New.
// Default is 20.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		c.initialCapacity = n
	}
}

// WithLoadFactor sets the occupancy ratio at which an insert grows the table.
// Must be in (0, 1]. Default is 0.7.
func WithLoadFactor(f float64) Option {
	return func(c *config) {
		c.loadFactor = f
	}
}

// WithGrowthFactor sets the capacity multiplier applied on growth.
// Default is 2.
func WithGrowthFactor(n int) Option {
	return func(c *config) {
		c.growthFactor = n
	}
}

// WithMaxCapacity caps the slot count. An insert that would need to grow
// past the cap fails with ErrCapacityExceeded and leaves the table as it was.
// Zero (the default) means no cap.
func WithMaxCapacity(n int) Option {
	return func(c *config) {
		c.maxCapacity = n
	}
}

// WithHasher replaces the default DJB2 hasher. A nil hasher is ignored.
func WithHasher(h Hasher) Option {
	return func(c *config) {
		if h != nil {
			c.hasher = h
		}
	}
}

// WithLogger sets the logger used for resize events. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}
