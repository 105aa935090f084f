package pkg

// Sentinel errors shared by the rpnsheet command and its subpackages.
// These errors can be tested using errors.Is for reliable error checking.

import (
	"fmt"
	"slices"
	"strings"
)

// Error represents a chain of errors.
type Error []error

// ErrCreateDir is returned when a required runtime directory cannot be
// created.
//
// This error should be wrapped with the underlying file system error
// to preserve the error chain.
var ErrCreateDir = MakeErrorf("failed to create directory")

// ErrReadStdin is returned when reading from standard input fails.
//
// This error should be wrapped with the underlying I/O error
// to preserve the error chain.
var ErrReadStdin = MakeErrorf("failed to read stdin")

// ErrOpenSource is returned when an input grid file cannot be opened.
//
// This error should be wrapped with the underlying file system error
// to preserve the error chain.
var ErrOpenSource = MakeErrorf("failed to open source")

// ErrCreateOutput is returned when an output file cannot be created.
//
// This error should be wrapped with the underlying file system error
// to preserve the error chain.
var ErrCreateOutput = MakeErrorf("failed to create output")

// MakeError constructs an Error from the given errors.
// The errors are stored in the order they are provided:
// the first argument is the innermost error in the chain.
// Nil is returned if no errors are provided.
func MakeError(errs ...error) Error {
	var e Error

	for _, err := range errs {
		if err != nil {
			e = append(e, UnwrapErrors(err)...)
		}
	}

	return e
}

// MakeErrorf constructs an Error from a formatted error message.
func MakeErrorf(format string, args ...any) Error {
	return MakeError(fmt.Errorf(format, args...))
}

// Error returns a concatenated string representation of all errors
// in the error chain, separated by ": ", from innermost to outermost.
func (e Error) Error() string {
	var sb strings.Builder

	for i, err := range slices.All(e) {
		if i > 0 {
			sb.WriteString(": ")
		}

		sb.WriteString(err.Error())
	}

	return sb.String()
}

// Wrap appends one or more errors to the receiver and returns the result.
func (e Error) Wrap(err ...error) Error {
	return append(slices.Clip(e), err...)
}

// Wrapf appends a formatted error to the receiver and returns the result.
func (e Error) Wrapf(format string, args ...any) Error {
	return append(slices.Clip(e), fmt.Errorf(format, args...))
}

// Is reports whether target is an Error whose chain is a prefix of the
// receiver's chain. Wrapped sentinels therefore match with errors.Is.
func (e Error) Is(target error) bool {
	t, ok := target.(Error)
	if !ok || len(t) == 0 || len(t) > len(e) {
		return false
	}

	for i := range t {
		if !sameError(e[i], t[i]) {
			return false
		}
	}

	return true
}

// sameError compares two chain elements by identity.
// Nested chains are slices and never compare equal.
func sameError(a, b error) bool {
	_, aChain := a.(Error)
	_, bChain := b.(Error)

	if aChain || bChain {
		return false
	}

	return a == b
}

// Unwrap returns the slice of errors contained in the receiver.
func (e Error) Unwrap() []error {
	return e
}

// UnwrapErrors recursively unwraps an error chain and returns a slice
// containing all errors in the chain, starting from the innermost error.
func UnwrapErrors(err error) Error {
	if err == nil {
		return nil
	}

	chain := Error{}

	if e, ok := err.(interface{ Unwrap() []error }); ok {
		for _, wrapped := range e.Unwrap() {
			chain = append(chain, UnwrapErrors(wrapped)...)
		}
	} else if e, ok := err.(interface{ Unwrap() error }); ok {
		chain = append(chain, UnwrapErrors(e.Unwrap())...)
	}

	return append(chain, err)
}
