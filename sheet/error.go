package sheet

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
)

// Kind classifies why a cell could not be evaluated. The kind is kept for
// diagnostics; rendered output only ever shows the error marker.
type Kind int

const (
	// KindNone is reported for nil errors and errors from outside this
	// package.
	KindNone Kind = iota

	// KindParse covers malformed tokens, malformed reference syntax, and a
	// wrong operand or result stack shape.
	KindParse

	// KindReference is a well-formed reference outside the grid.
	KindReference

	// KindDivisionByZero is a division with a zero right-hand operand.
	KindDivisionByZero

	// KindCircularReference is a cell that depends on its own in-progress
	// evaluation.
	KindCircularReference

	// KindDepthExceeded is a reference chain deeper than the configured
	// maximum.
	KindDepthExceeded

	// KindOverflow is an arithmetic result that is not a finite number.
	KindOverflow
)

// String returns a short lower-case name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindParse:
		return "parse"
	case KindReference:
		return "reference"
	case KindDivisionByZero:
		return "division-by-zero"
	case KindCircularReference:
		return "circular-reference"
	case KindDepthExceeded:
		return "depth-exceeded"
	case KindOverflow:
		return "overflow"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Predefined errors (sentinel values).
var (
	ErrOperandCount     = newError(KindParse, "wrong number of operands for binary operator")
	ErrStackSize        = newError(KindParse, "wrong number of items left on stack")
	ErrInvalidNumber    = newError(KindParse, "invalid number")
	ErrInvalidReference = newError(KindParse, "invalid cell reference")
	ErrNoSuchCell       = newError(KindReference, "reference to non-existent cell")
	ErrDivisionByZero   = newError(KindDivisionByZero, "division by zero")
	ErrCircular         = newError(KindCircularReference, "circular cell dependency")
	ErrMaxDepthExceeded = newError(KindDepthExceeded, "maximum reference depth exceeded")
	ErrNotFinite        = newError(KindOverflow, "result is not a finite number")
)

// Error is a cell evaluation failure with an error kind and optional
// structured logging attributes.
// It implements both error and slog.LogValuer interfaces.
type Error struct {
	kind  Kind
	msg   string
	err   error       // Wrapped error (for errors.Unwrap)
	attrs []slog.Attr // Attributes for structured logging
}

func newError(kind Kind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

// Kind returns the error kind.
func (e *Error) Kind() Kind { return e.kind }

// Error implements the error interface.
func (e *Error) Error() string {
	part := make([]string, 0, 2)

	if e.msg != "" {
		part = append(part, e.msg)
	}

	if e.err != nil {
		part = append(part, e.err.Error())
	}

	return strings.Join(part, ": ")
}

// Unwrap implements error unwrapping for errors.Is/As.
func (e *Error) Unwrap() error { return e.err }

// Is reports whether target is the sentinel e was derived from, so that
// errors.Is matches after [Error.With] and [Error.Wrap].
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.kind == t.kind && e.msg == t.msg
}

// LogValue implements slog.LogValuer for rich structured logging.
func (e *Error) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, len(e.attrs)+3)

	if e.msg != "" {
		attrs = append(attrs, slog.String("error", e.msg))
	}

	attrs = append(attrs, slog.String("kind", e.kind.String()))

	if e.err != nil {
		attrs = append(attrs, slog.String("cause", e.err.Error()))
	}

	return slog.GroupValue(append(attrs, e.attrs...)...)
}

// Wrap creates a new Error wrapping another error.
func (e *Error) Wrap(err error) *Error {
	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		err:   err,
		attrs: e.attrs, // Share attrs
	}
}

// With adds attributes to the error for structured logging.
// This creates a new Error instance to maintain immutability.
func (e *Error) With(attrs ...slog.Attr) *Error {
	newAttrs := make([]slog.Attr, len(e.attrs)+len(attrs))
	copy(newAttrs, e.attrs)
	copy(newAttrs[len(e.attrs):], attrs)

	return &Error{
		kind:  e.kind,
		msg:   e.msg,
		err:   e.err,
		attrs: newAttrs,
	}
}

// KindOf returns the kind of the outermost [*Error] in err's chain, or
// [KindNone] if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.kind
	}

	return KindNone
}
