package sheet

import (
	"iter"
	"strconv"
)

// DefaultMarker is the text rendered in place of a cell that failed to
// evaluate.
const DefaultMarker = "#ERR"

// Grid is the raw input: rows of cell text addressed by (row, column).
// Rows may differ in length. A Grid is never modified by evaluation.
type Grid [][]string

// Coord is a 0-based (row, column) position in a [Grid].
type Coord struct {
	Row int
	Col int
}

// String returns the canonical cell address of c, for example "b3".
func (c Coord) String() string { return FormatAddress(c) }

// Rows returns the number of rows in g.
func (g Grid) Rows() int { return len(g) }

// Cols returns the number of cells in the given row, or 0 if the row does
// not exist.
func (g Grid) Cols(row int) int {
	if row < 0 || row >= len(g) {
		return 0
	}

	return len(g[row])
}

// Contains reports whether c addresses an existing cell.
func (g Grid) Contains(c Coord) bool {
	return c.Col >= 0 && c.Col < g.Cols(c.Row)
}

// Cell returns the raw text at c, or "" if c is out of bounds.
func (g Grid) Cell(c Coord) string {
	if !g.Contains(c) {
		return ""
	}

	return g[c.Row][c.Col]
}

// Coords returns an iterator over every coordinate of g in row-major order.
func (g Grid) Coords() iter.Seq[Coord] {
	return func(yield func(Coord) bool) {
		for r, row := range g {
			for c := range row {
				if !yield(Coord{Row: r, Col: c}) {
					return
				}
			}
		}
	}
}

// Len returns the total number of cells in g.
func (g Grid) Len() int {
	n := 0
	for _, row := range g {
		n += len(row)
	}

	return n
}

type resultState uint8

const (
	resultUnset resultState = iota
	resultNumber
	resultFailure
)

// Result is the evaluated content of one cell: a number, a failure, or unset
// before evaluation has reached the cell.
type Result struct {
	err   error
	value float64
	state resultState
}

// Number returns a numeric Result.
func Number(v float64) Result {
	return Result{value: v, state: resultNumber}
}

// Failure returns a failed Result carrying err for diagnostics.
func Failure(err error) Result {
	return Result{err: err, state: resultFailure}
}

// Float returns the numeric value and true, or 0 and false if r is not a
// number.
func (r Result) Float() (float64, bool) {
	if r.state != resultNumber {
		return 0, false
	}

	return r.value, true
}

// IsError reports whether the cell failed to evaluate.
func (r Result) IsError() bool { return r.state == resultFailure }

// IsSet reports whether the cell has been evaluated.
func (r Result) IsSet() bool { return r.state != resultUnset }

// Err returns the failure cause, or nil if r is not a failure.
func (r Result) Err() error {
	if r.state != resultFailure {
		return nil
	}

	return r.err
}

// Text renders r using marker for failures. Numbers use the shortest
// decimal representation that round-trips; unset results render empty.
func (r Result) Text(marker string) string {
	switch r.state {
	case resultNumber:
		return strconv.FormatFloat(r.value, 'f', -1, 64)
	case resultFailure:
		return marker
	default:
		return ""
	}
}

// String renders r using [DefaultMarker] for failures.
func (r Result) String() string { return r.Text(DefaultMarker) }

// ResultGrid is the evaluated output. It always has the same shape as the
// [Grid] it was produced from.
type ResultGrid [][]Result

// newResultGrid returns an unset ResultGrid congruent with g.
func newResultGrid(g Grid) ResultGrid {
	rg := make(ResultGrid, len(g))
	for i, row := range g {
		rg[i] = make([]Result, len(row))
	}

	return rg
}

// At returns the result at c, or an unset Result if c is out of bounds.
func (rg ResultGrid) At(c Coord) Result {
	if c.Row < 0 || c.Row >= len(rg) || c.Col < 0 || c.Col >= len(rg[c.Row]) {
		return Result{}
	}

	return rg[c.Row][c.Col]
}

// Strings renders every result with [Result.Text].
func (rg ResultGrid) Strings(marker string) [][]string {
	out := make([][]string, len(rg))
	for i, row := range rg {
		out[i] = make([]string, len(row))
		for j, r := range row {
			out[i][j] = r.Text(marker)
		}
	}

	return out
}

// Errors returns an iterator over the failed cells in row-major order.
func (rg ResultGrid) Errors() iter.Seq2[Coord, error] {
	return func(yield func(Coord, error) bool) {
		for i, row := range rg {
			for j, r := range row {
				if r.IsError() && !yield(Coord{Row: i, Col: j}, r.err) {
					return
				}
			}
		}
	}
}

// Failed returns the number of failed cells.
func (rg ResultGrid) Failed() int {
	n := 0
	for range rg.Errors() {
		n++
	}

	return n
}
