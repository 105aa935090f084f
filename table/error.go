package table

import (
	"log/slog"
	"slices"
	"strings"
)

// Error is a grid I/O failure. It names the format involved, when known,
// and implements [slog.LogValuer].
type Error struct {
	msg    string
	format string
	err    error
	attrs  []slog.Attr
}

// NewError returns a sentinel Error with the given message.
func NewError(msg string) *Error { return &Error{msg: msg} }

func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if e.format != "" {
		sb.WriteString(" (" + e.format + ")")
	}

	if e.err != nil {
		sb.WriteString(": " + e.err.Error())
	}

	return sb.String()
}

func (e *Error) Unwrap() error { return e.err }

// Is matches any Error derived from the same sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)

	return ok && t.msg == e.msg
}

func (e *Error) LogValue() slog.Value {
	attrs := []slog.Attr{slog.String("error", e.msg)}

	if e.format != "" {
		attrs = append(attrs, slog.String("format", e.format))
	}

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// For returns a copy of e naming format.
func (e *Error) For(format Format) *Error {
	c := *e
	c.format = format.String()

	return &c
}

// Wrap returns a copy of e caused by err.
func (e *Error) Wrap(err error) *Error {
	c := *e
	c.err = err

	return &c
}

// With returns a copy of e with attrs appended.
func (e *Error) With(attrs ...slog.Attr) *Error {
	c := *e
	c.attrs = slices.Concat(e.attrs, attrs)

	return &c
}

var (
	ErrReadGrid          = NewError("read grid")
	ErrWriteGrid         = NewError("write grid")
	ErrUnsupportedFormat = NewError("unsupported format")
)
