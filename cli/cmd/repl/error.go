package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds = errors.New("index out of range")
	ErrNoSheet     = errors.New("no sheet to evaluate")
)
