package nxncube

import "go.uber.org/zap"

// Option configures a Solver.
type Option func(*config)

type config struct {
	logger      *zap.Logger
	maxAttempts int
	stallLimit  int
}

func defaultConfig() config {
	return config{
		logger:      zap.NewNop(),
		maxAttempts: 3,
		stallLimit:  64,
	}
}

// WithLogger sets the logger the solver reports progress to. The default
// discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithMaxAttempts sets how many full solve attempts are made before giving
// up. The default is 3.
func WithMaxAttempts(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxAttempts = n
		}
	}
}

// WithStallLimit sets how many non-improving reduction iterations are
// tolerated per face before the reducer reports a stall.
func WithStallLimit(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.stallLimit = n
		}
	}
}
