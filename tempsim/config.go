package tempsim

import (
	"math/rand/v2"
	"time"
)

const (
	// DefaultScale leaves the compressed demo timings untouched.
	DefaultScale = 1.0
	// DefaultReports is the number of reporting windows to monitor.
	DefaultReports = 1
	// DefaultSensors is the number of sampling goroutines.
	DefaultSensors = 8

	// The demo compresses wall-clock time: an hour of monitoring becomes 30
	// seconds, a one-minute sensor sweep becomes half a second, and the
	// ten-minute difference window becomes five seconds. Scale multiplies
	// all three.
	baseSensorInterval = 500 * time.Millisecond
	baseReportInterval = 30 * time.Second
	baseDiffWindow     = 5 * time.Second
)

// Config holds the knobs for a monitoring run.
type Config struct {
	scale   float64
	reports int
	sensors int
	seed    uint64
}

// Option mutates a Config.
type Option func(*Config)

// NewConfig returns a Config with defaults applied, then the given options.
// Non-positive values are normalized back to the defaults rather than
// rejected.
func NewConfig(opts ...Option) Config {
	cfg := Config{
		scale:   DefaultScale,
		reports: DefaultReports,
		sensors: DefaultSensors,
		seed:    rand.Uint64(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.scale <= 0 {
		cfg.scale = DefaultScale
	}
	if cfg.reports <= 0 {
		cfg.reports = DefaultReports
	}
	if cfg.sensors <= 0 {
		cfg.sensors = DefaultSensors
	}
	return cfg
}

// WithScale multiplies every interval by scale.
func WithScale(scale float64) Option {
	return func(c *Config) { c.scale = scale }
}

// WithReports sets how many reporting windows to monitor.
func WithReports(n int) Option {
	return func(c *Config) { c.reports = n }
}

// WithSensors sets the number of sampling goroutines.
func WithSensors(n int) Option {
	return func(c *Config) { c.sensors = n }
}

// WithSeed fixes the RNG seed for sensor readings, making a run
// reproducible.
func WithSeed(seed uint64) Option {
	return func(c *Config) { c.seed = seed }
}

// Scale returns the configured time scale.
func (c Config) Scale() float64 { return c.scale }

// Reports returns the configured report count.
func (c Config) Reports() int { return c.reports }

// Sensors returns the configured sensor count.
func (c Config) Sensors() int { return c.sensors }

// SensorInterval returns the scaled delay between samples.
func (c Config) SensorInterval() time.Duration {
	return time.Duration(float64(baseSensorInterval) * c.scale)
}

// ReportInterval returns the scaled length of one reporting window.
func (c Config) ReportInterval() time.Duration {
	return time.Duration(float64(baseReportInterval) * c.scale)
}

// DiffWindow returns the scaled span within which a temperature swing is
// considered.
func (c Config) DiffWindow() time.Duration {
	return time.Duration(float64(baseDiffWindow) * c.scale)
}

// MonitorWindow returns the total monitoring time needed to cover every
// configured report.
func (c Config) MonitorWindow() time.Duration {
	return c.ReportInterval() * time.Duration(c.reports)
}
