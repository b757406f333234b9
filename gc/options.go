// ABOUTME: Functional options for configuring an Arena
// ABOUTME: Logger, metrics collector, debug checks, and initial capacity

package gc

import "log/slog"

type config struct {
	logger      *slog.Logger
	metrics     MetricsCollector
	debugChecks bool
	capacity    int
}

func defaultConfig() config {
	return config{
		logger:  slog.New(slog.DiscardHandler),
		metrics: NoopMetricsCollector{},
	}
}

// Option is a configuration option for Arena.
type Option func(*config)

// WithLogger sets the structured logger. A nil logger keeps the default,
// which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMetrics sets the metrics collector.
func WithMetrics(m MetricsCollector) Option {
	return func(c *config) {
		if m != nil {
			c.metrics = m
		}
	}
}

// WithDebugChecks makes every Sweep run Check first and log each finding
// at warn level.
func WithDebugChecks(enabled bool) Option {
	return func(c *config) {
		c.debugChecks = enabled
	}
}

// WithInitialCapacity preallocates room for n slots.
func WithInitialCapacity(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.capacity = n
		}
	}
}
