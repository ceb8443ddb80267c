package tinyfsm

import "log/slog"

// Option configures a Machine at construction.
type Option func(*options)

type options struct {
	strategy  Strategy
	threshold int
	logger    *slog.Logger
	id        string
}

func defaultOptions() options {
	return options{
		strategy:  StrategyAuto,
		threshold: DefaultTableThreshold,
		logger:    Logger,
	}
}

// WithStrategy forces a dispatch strategy instead of choosing one by state count.
func WithStrategy(s Strategy) Option {
	return func(o *options) {
		o.strategy = s
	}
}

// WithTableThreshold sets the state count above which StrategyAuto switches to
// table dispatch. Values below 1 are ignored.
func WithTableThreshold(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.threshold = n
		}
	}
}

// WithLogger sets the logger used for transition tracing. A nil logger disables it.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithID sets the machine identifier reported by ID and Layout.
// Without it a random UUID is assigned.
func WithID(id string) Option {
	return func(o *options) {
		o.id = id
	}
}
