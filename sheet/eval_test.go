package sheet

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/rpnsheet/log"
)

func quiet() Option { return WithLogger(log.Discard()) }

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		grid Grid
		want [][]string
	}{
		{
			name: "empty",
			grid: Grid{},
			want: [][]string{},
		},
		{
			name: "blank_cells_are_zero",
			grid: Grid{{"", "   ", "\t"}},
			want: [][]string{{"0", "0", "0"}},
		},
		{
			name: "literal",
			grid: Grid{{"42", "-3.5", " 7 "}},
			want: [][]string{{"42", "-3.5", "7"}},
		},
		{
			name: "postfix_literals",
			grid: Grid{{"5 1 2 + 4 * + 3 -"}},
			want: [][]string{{"14"}},
		},
		{
			name: "operand_order",
			grid: Grid{{"10 4 -", "12 4 /", "2 3 * 1 -"}},
			want: [][]string{{"6", "3", "5"}},
		},
		{
			name: "references_compose",
			grid: Grid{{"a2 b1 +", "1"}, {"3"}},
			want: [][]string{{"4", "1"}, {"3"}},
		},
		{
			name: "reference_in_invalid_expression",
			grid: Grid{{"a2 + b1", "1"}, {"3"}},
			want: [][]string{{"#ERR", "1"}, {"3"}},
		},
		{
			name: "cycle",
			grid: Grid{{"b1", "a1"}, {"a1", "2", "b1"}},
			want: [][]string{{"#ERR", "#ERR"}, {"#ERR", "2", "#ERR"}},
		},
		{
			name: "self_reference",
			grid: Grid{{"a1 1 +", "5"}},
			want: [][]string{{"#ERR", "5"}},
		},
		{
			name: "division_by_zero",
			grid: Grid{{"3 0 /", "0 3 /"}},
			want: [][]string{{"#ERR", "0"}},
		},
		{
			name: "reference_out_of_bounds",
			grid: Grid{{"a49"}},
			want: [][]string{{"#ERR"}},
		},
		{
			name: "jagged_bounds",
			grid: Grid{{"1", "2", "3"}, {"c1 b2 +"}},
			want: [][]string{{"1", "2", "3"}, {"#ERR"}},
		},
		{
			name: "upper_case",
			grid: Grid{{"B1 2 *", "4"}},
			want: [][]string{{"8", "4"}},
		},
		{
			name: "additive_columns",
			grid: Grid{{"ab1", "9"}},
			want: [][]string{{"9", "9"}},
		},
		{
			name: "malformed_tokens",
			grid: Grid{{"3-foo", "1 2", "+", "1x", "1 2 %"}},
			want: [][]string{{"#ERR", "#ERR", "#ERR", "#ERR", "#ERR"}},
		},
		{
			name: "failure_propagates",
			grid: Grid{{"1 0 /", "a1 1 +", "3"}},
			want: [][]string{{"#ERR", "#ERR", "3"}},
		},
		{
			name: "blank_reference",
			grid: Grid{{"", "a1 1 +"}},
			want: [][]string{{"0", "1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(t.Context(), tt.grid, quiet()).Strings(DefaultMarker)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Evaluate mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluate_PreservesShape(t *testing.T) {
	grid := Grid{{}, {"1", "2"}, {"a1"}, {}, {"", "", "", ""}}

	got := Evaluate(t.Context(), grid, quiet())

	if len(got) != len(grid) {
		t.Fatalf("expected %d rows, got %d", len(grid), len(got))
	}

	for i := range grid {
		if len(got[i]) != len(grid[i]) {
			t.Errorf("row %d: expected %d cells, got %d", i, len(grid[i]), len(got[i]))
		}
	}
}

func TestEvaluate_Idempotent(t *testing.T) {
	grid := Grid{
		{"b1 c1 *", "a2 2 +", "3"},
		{"7", "a1 b2 +", "c2"},
		{"1 0 /", "a3 1 +", "x"},
	}

	s := New(grid, quiet())

	first := s.Evaluate(t.Context()).Strings(DefaultMarker)
	second := s.Evaluate(t.Context()).Strings(DefaultMarker)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second pass differs (-first +second):\n%s", diff)
	}
}

func TestEvaluate_DoesNotModifyGrid(t *testing.T) {
	grid := Grid{{"A2 B1 +", "1"}, {"  3 "}}
	orig := Grid{{"A2 B1 +", "1"}, {"  3 "}}

	Evaluate(t.Context(), grid, quiet())

	if diff := cmp.Diff(orig, grid); diff != "" {
		t.Errorf("grid modified (-want +got):\n%s", diff)
	}
}

func TestEvaluate_Memoized(t *testing.T) {
	var buf bytes.Buffer

	logger := log.Make(&buf,
		log.WithLevel(log.LevelTrace),
		log.WithFormat(log.FormatJSON),
		log.WithTimeLayout("none"),
		log.WithPretty(false))

	grid := Grid{{"c1 1 +", "c1 2 +", "5"}}

	got := Evaluate(t.Context(), grid, WithLogger(logger)).Strings(DefaultMarker)
	if diff := cmp.Diff([][]string{{"6", "7", "5"}}, got); diff != "" {
		t.Fatalf("Evaluate mismatch (-want +got):\n%s", diff)
	}

	count := 0

	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		line := sc.Text()
		if strings.Contains(line, `"msg":"cell evaluated"`) &&
			strings.Contains(line, `"cell":"c1"`) {
			count++
		}
	}

	if count != 1 {
		t.Errorf("expected c1 evaluated once, got %d", count)
	}
}

func TestEvaluate_ErrorKinds(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Kind
	}{
		{"operands", "1 +", KindParse},
		{"leftover", "1 2", KindParse},
		{"empty_stack", "+ 1", KindParse},
		{"bad_number", "1..2", KindParse},
		{"bad_reference", "3-foo", KindParse},
		{"letters_only", "abc", KindParse},
		{"trailing_text", "a1b", KindParse},
		{"out_of_range_literal", "1" + strings.Repeat("0", 400), KindParse},
		{"out_of_bounds", "z99", KindReference},
		{"row_zero", "a0", KindReference},
		{"huge_row", "a99999999999999999999999", KindReference},
		{"divide", "1 0 /", KindDivisionByZero},
		{"cycle", "a1", KindCircularReference},
		{"overflow", "1" + strings.Repeat("0", 300) + " 1" + strings.Repeat("0", 300) + " *", KindOverflow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rg := Evaluate(t.Context(), Grid{{tt.text}}, quiet())

			r := rg.At(Coord{})
			if !r.IsError() {
				t.Fatalf("expected failure, got %s", r)
			}

			if got := KindOf(r.Err()); got != tt.want {
				t.Errorf("expected kind %v, got %v (%v)", tt.want, got, r.Err())
			}

			if r.String() != DefaultMarker {
				t.Errorf("expected %q, got %q", DefaultMarker, r.String())
			}
		})
	}
}

func TestEvaluate_FailedCellKeepsKind(t *testing.T) {
	// b1 fails first on its own; a later reference from c1 must see the
	// division error, not a cycle.
	grid := Grid{{"1", "1 0 /", "b1"}}

	rg := Evaluate(t.Context(), grid, quiet())

	for _, at := range []Coord{{0, 1}, {0, 2}} {
		if got := KindOf(rg.At(at).Err()); got != KindDivisionByZero {
			t.Errorf("%s: expected %v, got %v", at, KindDivisionByZero, got)
		}
	}
}

func TestEvaluate_DepthGuard(t *testing.T) {
	const n = 64

	// a1 -> a2 -> ... -> a64 = 1
	grid := make(Grid, n)
	for i := range n - 1 {
		grid[i] = []string{FormatAddress(Coord{Row: i + 1})}
	}

	grid[n-1] = []string{"1"}

	rg := Evaluate(t.Context(), grid, quiet(), WithMaxDepth(16))

	if got := KindOf(rg.At(Coord{}).Err()); got != KindDepthExceeded {
		t.Fatalf("a1: expected %v, got %v", KindDepthExceeded, got)
	}

	if v, ok := rg.At(Coord{Row: n - 1}).Float(); !ok || v != 1 {
		t.Errorf("a%d: expected 1, got %s", n, rg.At(Coord{Row: n - 1}))
	}

	if s := Evaluate(t.Context(), grid, quiet()); s.Failed() != 0 {
		t.Errorf("default depth: expected no failures, got %d", s.Failed())
	}
}

func TestEvaluate_DepthGuardDependsOnStart(t *testing.T) {
	const n = 64

	// a1 -> a2 -> ... -> a64 = 1, four times the limit.
	grid := make(Grid, n)
	for i := range n - 1 {
		grid[i] = []string{FormatAddress(Coord{Row: i + 1})}
	}

	grid[n-1] = []string{"1"}

	s := New(grid, quiet(), WithMaxDepth(16))

	// A row-major pass restarts at a17, a33 and a49; only the last
	// segment reaches the literal.
	rg := s.Evaluate(t.Context())

	for _, row := range []int{0, 15, 16, 32, 47} {
		if got := KindOf(rg.At(Coord{Row: row}).Err()); got != KindDepthExceeded {
			t.Errorf("a%d: expected %v, got %v", row+1, KindDepthExceeded, got)
		}
	}

	if v, ok := rg.At(Coord{Row: 48}).Float(); !ok || v != 1 {
		t.Errorf("a49: expected 1, got %s", rg.At(Coord{Row: 48}))
	}

	// Walking from a49 first leaves it cached, so a33 then succeeds.
	v, err := s.EvaluateExpr(t.Context(), "a49 a33 +")
	if err != nil || v != 2 {
		t.Errorf("a49 a33 +: expected 2, got %v, %v", v, err)
	}
}

func TestEvaluate_DeepChainDoesNotCrash(t *testing.T) {
	const n = 100_000

	grid := make(Grid, n)
	for i := range n - 1 {
		grid[i] = []string{FormatAddress(Coord{Row: i + 1}) + " 1 +"}
	}

	grid[n-1] = []string{"0"}

	rg := Evaluate(t.Context(), grid, quiet())

	if got := KindOf(rg.At(Coord{}).Err()); got != KindDepthExceeded {
		t.Errorf("a1: expected %v, got %v", KindDepthExceeded, got)
	}

	if v, ok := rg.At(Coord{Row: n - 2}).Float(); !ok || v != 1 {
		t.Errorf("second to last: expected 1, got %s", rg.At(Coord{Row: n - 2}))
	}
}

func TestSheet_EvaluateCell(t *testing.T) {
	s := New(Grid{{"a2 b1 +", "1"}, {"3", "1 0 /"}}, quiet())

	v, err := s.EvaluateCell(t.Context(), "A1")
	if err != nil {
		t.Fatalf("evaluate error: %v", err)
	}

	if v != 4 {
		t.Errorf("expected 4, got %v", v)
	}

	if _, err := s.EvaluateCell(t.Context(), "b2"); KindOf(err) != KindDivisionByZero {
		t.Errorf("b2: expected %v, got %v", KindDivisionByZero, err)
	}

	if _, err := s.EvaluateCell(t.Context(), "c9"); KindOf(err) != KindReference {
		t.Errorf("c9: expected %v, got %v", KindReference, err)
	}

	if _, err := s.EvaluateCell(t.Context(), "1a"); KindOf(err) != KindParse {
		t.Errorf("1a: expected %v, got %v", KindParse, err)
	}
}

func TestSheet_EvaluateExpr(t *testing.T) {
	s := New(Grid{{"2", "3"}, {"a1 b1 *"}}, quiet())

	tests := []struct {
		text string
		want float64
		kind Kind
	}{
		{"a2 1 +", 7, KindNone},
		{"  ", 0, KindNone},
		{"B1 A1 /", 1.5, KindNone},
		{"a1 +", 0, KindParse},
		{"a1 0 /", 0, KindDivisionByZero},
		{"d4", 0, KindReference},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := s.EvaluateExpr(t.Context(), tt.text)
			if KindOf(err) != tt.kind {
				t.Fatalf("expected kind %v, got %v", tt.kind, err)
			}

			if got != tt.want {
				t.Errorf("expected %v, got %v", tt.want, got)
			}
		})
	}
}
