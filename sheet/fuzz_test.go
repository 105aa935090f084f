package sheet

import (
	"strings"
	"testing"
	"unicode/utf8"
)

// FuzzEvaluate tests the evaluator with random grids to find edge cases.
// The input is split into rows on '\n' and cells on '|'.
func FuzzEvaluate(f *testing.F) {
	f.Add("a2 b1 +|1\n3")
	f.Add("b1|a1\na1|2|b1")
	f.Add("5 1 2 + 4 * + 3 -")
	f.Add("3 0 /")
	f.Add("a49")
	f.Add("|  |\t")
	f.Add("zzzzzz9|-1e|1 2|+")
	f.Add("A1 A1 *")

	f.Fuzz(func(t *testing.T, input string) {
		if !utf8.ValidString(input) {
			t.Skip("invalid UTF-8")
		}

		defer func() {
			if r := recover(); r != nil {
				t.Errorf("evaluate panicked on input %q: %v", input, r)
			}
		}()

		var grid Grid
		for line := range strings.SplitSeq(input, "\n") {
			grid = append(grid, strings.Split(line, "|"))
		}

		rg := Evaluate(t.Context(), grid, quiet())

		if len(rg) != len(grid) {
			t.Fatalf("expected %d rows, got %d", len(grid), len(rg))
		}

		for i := range grid {
			if len(rg[i]) != len(grid[i]) {
				t.Fatalf("row %d: expected %d cells, got %d", i, len(grid[i]), len(rg[i]))
			}

			for j, r := range rg[i] {
				if !r.IsSet() {
					t.Errorf("cell (%d,%d) left unset", i, j)
				}

				if r.IsError() && KindOf(r.Err()) == KindNone {
					t.Errorf("cell (%d,%d) failed without kind: %v", i, j, r.Err())
				}
			}
		}
	})
}
