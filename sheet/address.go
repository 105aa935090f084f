package sheet

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"
)

// addressPattern matches a lower-case cell address: column letters followed
// by a 1-based row number, with nothing before or after.
var addressPattern = regexp.MustCompile(`^([a-z]+)([0-9]+)$`)

// lettersPerColumn is the largest value a single column letter contributes.
const lettersPerColumn = 'z' - 'a'

// ParseAddress converts a textual cell address into a coordinate without
// checking grid bounds. The address is matched case-insensitively.
//
// The column is the sum of the alphabet positions of its letters ('a' is 0),
// so "ab" and "b" name the same column. This additive encoding is not the
// base-26 naming used by common spreadsheets.
func ParseAddress(address string) (Coord, error) {
	m := addressPattern.FindStringSubmatch(strings.ToLower(address))
	if m == nil {
		return Coord{}, ErrInvalidReference.
			With(slog.String("token", address))
	}

	row, err := strconv.Atoi(m[2])
	if err != nil {
		// Well-formed but too large to address any row.
		return Coord{}, ErrNoSuchCell.Wrap(err).
			With(slog.String("token", address))
	}

	col := 0
	for _, letter := range m[1] {
		col += int(letter - 'a')
	}

	return Coord{Row: row - 1, Col: col}, nil
}

// Resolve parses address and verifies that it names a cell of g.
// Syntax errors have [KindParse]; valid addresses outside g have
// [KindReference].
func (g Grid) Resolve(address string) (Coord, error) {
	at, err := ParseAddress(address)
	if err != nil {
		return Coord{}, err
	}

	if !g.Contains(at) {
		return Coord{}, ErrNoSuchCell.
			With(
				slog.String("token", address),
				slog.Int("row", at.Row),
				slog.Int("col", at.Col),
			)
	}

	return at, nil
}

// FormatAddress returns the shortest address that [ParseAddress] maps back
// to c. Negative coordinates have no address and yield "".
func FormatAddress(c Coord) string {
	if c.Row < 0 || c.Col < 0 {
		return ""
	}

	return FormatColumn(c.Col) + strconv.Itoa(c.Row+1)
}

// FormatColumn returns the shortest letter sequence naming column col: as
// many 'z' letters as fit followed by the remainder letter.
func FormatColumn(col int) string {
	if col < 0 {
		return ""
	}

	n, rem := col/lettersPerColumn, col%lettersPerColumn

	var sb strings.Builder

	sb.WriteString(strings.Repeat("z", n))

	if rem > 0 || n == 0 {
		sb.WriteByte(byte('a' + rem))
	}

	return sb.String()
}
