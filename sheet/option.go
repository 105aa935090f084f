package sheet

import "github.com/ardnew/rpnsheet/log"

// DefaultMaxDepth is the default limit on the length of a reference chain.
// Users may modify this before calling [New] to change the default.
var DefaultMaxDepth = 4096

// Option configures a [Sheet].
type Option func(*Sheet)

// WithLogger sets the structured logger for trace and debug output.
// If not provided, the package default logger is used.
func WithLogger(logger log.Logger) Option {
	return func(s *Sheet) {
		s.logger = logger
	}
}

// WithMaxDepth sets the maximum reference chain depth. Values less than 1
// are ignored.
//
// The cell at which the limit is reached is left unevaluated, while every
// cell above it on the chain fails with [KindDepthExceeded]. A later walk
// may start partway down the chain and succeed, so in a chain longer than
// the limit whether a given cell fails depends on where evaluation began.
func WithMaxDepth(depth int) Option {
	return func(s *Sheet) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func applyOptions(s *Sheet, opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
}
