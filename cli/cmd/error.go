package cmd

import (
	"log/slog"
	"slices"
	"strings"
)

// Error is a command failure. Its attributes are logged structurally and
// also listed in the message, since a command error is shown to the user.
type Error struct {
	msg   string
	err   error
	attrs []slog.Attr
}

// NewError returns a sentinel Error with the given message.
func NewError(msg string) *Error { return &Error{msg: msg} }

// Error formats as "msg [key=value ...]: cause", omitting empty parts.
func (e *Error) Error() string {
	var sb strings.Builder

	sb.WriteString(e.msg)

	if len(e.attrs) > 0 {
		sb.WriteString(" [")

		for i, a := range e.attrs {
			if i > 0 {
				sb.WriteByte(' ')
			}

			sb.WriteString(a.String())
		}

		sb.WriteByte(']')
	}

	if e.err != nil {
		if sb.Len() > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(e.err.Error())
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

	if e.err != nil {
		attrs = append(attrs, slog.Any("cause", e.err))
	}

	return slog.GroupValue(slices.Concat(attrs, e.attrs)...)
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
	ErrYAMLMarshal  = NewError("marshal YAML")
	ErrWriteConfig  = NewError("write configuration file")
	ErrFileExists   = NewError("file exists (use --force to overwrite)")
	ErrInvalidComma = NewError("field delimiter must be a single character")
	ErrCellsFailed  = NewError("cells failed to evaluate")
)
