// Package sheet evaluates grids of postfix arithmetic cells.
//
// Each cell of a [Grid] is blank, a numeric literal, or a postfix
// (reverse-Polish) expression over the operators + - * / whose operands may
// be literals or references to other cells:
//
//	a1     b1        c1
//	3      a1 2 *    a1 b1 + 2 /
//
// A reference is one or more letters followed by a 1-based row number. The
// column is the sum of the letter positions ('a' is 0), so "b2" and "ab2"
// name the same cell. [ParseAddress] and [FormatAddress] convert between
// addresses and coordinates.
//
// [Sheet.Evaluate] computes every cell depth-first, memoizing each result
// within a pass. Blank cells are 0. A cell that cannot be computed fails on
// its own without affecting its neighbors, except that cells referencing it
// fail too. Failures carry a [Kind]:
//
//   - [KindParse]: malformed token, reference syntax, or stack shape
//   - [KindReference]: reference outside the grid
//   - [KindDivisionByZero]
//   - [KindCircularReference]: the cell depends on itself
//   - [KindDepthExceeded]: reference chain longer than [WithMaxDepth]
//   - [KindOverflow]: arithmetic produced a non-finite value
//
// Rendered output shows only [DefaultMarker] for a failed cell.
package sheet
