package table

import "github.com/ardnew/rpnsheet/sheet"

// DefaultIndent is the indent width for JSON and YAML output.
const DefaultIndent = 2

type options struct {
	comma  rune
	marker string
	indent int
}

// Option configures [Read] and [Write].
type Option func(options) options

// WithComma sets the CSV field delimiter.
func WithComma(comma rune) Option {
	return func(o options) options {
		if comma != 0 {
			o.comma = comma
		}

		return o
	}
}

// WithMarker sets the text written for failed cells.
func WithMarker(marker string) Option {
	return func(o options) options {
		o.marker = marker

		return o
	}
}

// WithIndent sets the JSON and YAML indent width. Zero selects compact
// (JSON) or flow (YAML) output.
func WithIndent(indent int) Option {
	return func(o options) options {
		if indent >= 0 {
			o.indent = indent
		}

		return o
	}
}

func makeOptions(opts ...Option) options {
	o := options{
		comma:  ',',
		marker: sheet.DefaultMarker,
		indent: DefaultIndent,
	}

	for _, opt := range opts {
		if opt != nil {
			o = opt(o)
		}
	}

	return o
}
