package synco

import "go.uber.org/zap"

const defaultEntityCapacity = 1024

type worldConfig struct {
	logger   *zap.Logger
	capacity int
}

// Option configures a World at construction.
type Option func(*worldConfig)

// WithLogger sets the logger the World reports component registrations and
// retired entity slots to. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(c *worldConfig) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithEntityCapacity preallocates room for n entity slots.
func WithEntityCapacity(n int) Option {
	return func(c *worldConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}
