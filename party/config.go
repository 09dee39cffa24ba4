package party

import "math/rand/v2"

const (
	// DefaultPresents is the pool size used when none is supplied.
	DefaultPresents = 500000
	// DefaultServants is the worker count used when none is supplied.
	DefaultServants = 4
)

// Config holds the knobs for a run.
type Config struct {
	presents int
	servants int
	logSteps bool
	seed     uint64
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig returns a Config with defaults applied, then the given options.
// Non-positive counts are normalized back to the defaults rather than
// rejected.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		presents: DefaultPresents,
		servants: DefaultServants,
		seed:     rand.Uint64(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.presents <= 0 {
		cfg.presents = DefaultPresents
	}
	if cfg.servants <= 0 {
		cfg.servants = DefaultServants
	}
	return cfg
}

// WithPresents sets the number of presents seeded into the pool.
func WithPresents(n int) Option {
	return func(c *Config) { c.presents = n }
}

// WithServants sets the number of servant goroutines.
func WithServants(n int) Option {
	return func(c *Config) { c.servants = n }
}

// WithStepLogging enables per-removal step logging.
func WithStepLogging(enabled bool) Option {
	return func(c *Config) { c.logSteps = enabled }
}

// WithSeed fixes the seed used for pool shuffling and probe key draws,
// making a run reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.seed = seed }
}

// Presents returns the configured pool size.
func (c Config) Presents() int { return c.presents }

// Servants returns the configured worker count.
func (c Config) Servants() int { return c.servants }
