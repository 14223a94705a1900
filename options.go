package mergeset

import "github.com/davidvella/mergeset/multi"

// options defines the configuration for one operation call.
type options struct {
	tree     bool
	capacity int
}

// Option is a function that configures an operation call.
type Option func(*options)

// WithTree selects the tournament-tree algorithm for multi-operand calls.
// Two-operand calls always use the specialized duo engines, where the
// option has nothing to improve on.
func WithTree() Option {
	return func(o *options) {
		o.tree = true
	}
}

// WithCapacity overrides the derived output-capacity hint used by Apply.
// Useful when the caller knows the result size, for example from a
// previous run over the same data.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// multi translates the selector options into multi engine options.
func (o options) multi() []multi.Option {
	if o.tree {
		return []multi.Option{multi.WithTree()}
	}
	return nil
}
