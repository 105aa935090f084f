package repl

import (
	"github.com/ardnew/rpnsheet/log"
	"github.com/ardnew/rpnsheet/sheet"
)

type options struct {
	history string
	marker  string
	tty     bool
	logger  log.Logger
}

// Option configures [Run].
type Option func(options) options

// WithHistory sets the path of the history file. An empty path keeps
// history in memory only.
func WithHistory(path string) Option {
	return func(o options) options {
		o.history = path

		return o
	}
}

// WithMarker sets the text shown for failed cells by the list command.
func WithMarker(marker string) Option {
	return func(o options) options {
		if marker != "" {
			o.marker = marker
		}

		return o
	}
}

// WithTTY reads keyboard input from the controlling terminal instead of
// stdin, for use when stdin supplied the grid.
func WithTTY(tty bool) Option {
	return func(o options) options {
		o.tty = tty

		return o
	}
}

// WithLogger sets the logger for trace output.
func WithLogger(logger log.Logger) Option {
	return func(o options) options {
		o.logger = logger

		return o
	}
}

func makeOptions(opts ...Option) options {
	o := options{
		marker: sheet.DefaultMarker,
		logger: log.Default(),
	}

	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}

	return o
}
