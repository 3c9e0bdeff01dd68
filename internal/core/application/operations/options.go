package operations

import (
	"log/slog"
	"time"
)

type config struct {
	now          func() time.Time
	logger       *slog.Logger
	compensation bool
}

// Option customizes an operation.
type Option func(*config)

// WithClock replaces time.Now as the source of timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLogger replaces slog.Default. A nil logger is ignored.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithStockCompensation makes stock checking and order placement give back
// reservations taken in the same request when the order fails afterwards.
// Without it a failed order keeps the stock reserved by its passing lines.
func WithStockCompensation() Option {
	return func(c *config) {
		c.compensation = true
	}
}

func newConfig(opts []Option) config {
	c := config{now: time.Now, logger: slog.Default()}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c config) timestamp() time.Time {
	return c.now().UTC()
}
