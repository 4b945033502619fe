package boxarena

import "log/slog"

// Order selects which free slot Acquire reuses first.
type Order int

const (
	// LIFO reuses the most recently released slot first. This is the default
	// and keeps the hottest storage in cache.
	LIFO Order = iota
	// FIFO reuses the least recently released slot first.
	FIFO
)

func (o Order) String() string {
	switch o {
	case LIFO:
		return "lifo"
	case FIFO:
		return "fifo"
	default:
		return "unknown"
	}
}

// DefaultChunkSize is the number of boxes created per allocator call.
const DefaultChunkSize = 1

type config struct {
	name      string
	order     Order
	maxFree   int
	chunkSize int
	drop      any
	logger    *slog.Logger
}

// Option configures a pool at construction time.
type Option func(*config)

// WithName sets the name used in log records and panic messages.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// WithOrder sets the reuse order of free slots.
func WithOrder(o Order) Option {
	return func(c *config) { c.order = o }
}

// WithMaxFree caps the number of free slots a pool retains. Boxes released
// while the pool is full are torn down and left to the garbage collector.
// If n <= 0, the pool grows without bound.
func WithMaxFree(n int) Option {
	return func(c *config) { c.maxFree = n }
}

// WithChunkSize makes each fresh allocation create n boxes in one backing
// slice. Spare boxes from a chunk serve later misses without another
// allocator call. If n <= 0, DefaultChunkSize is used.
func WithChunkSize(n int) Option {
	return func(c *config) { c.chunkSize = n }
}

// WithDrop sets the teardown hook run on every released value. It replaces
// the Drop method of a value implementing Dropper. The type parameter must
// match the pool's element type; New panics otherwise.
func WithDrop[T any](fn func(*T)) Option {
	return func(c *config) {
		if fn != nil {
			c.drop = fn
		}
	}
}

// WithLogger sets the logger for cold-path events. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	if c.chunkSize <= 0 {
		c.chunkSize = DefaultChunkSize
	}
	if c.maxFree < 0 {
		c.maxFree = 0
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}
