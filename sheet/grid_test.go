package sheet

import (
	"errors"
	"slices"
	"testing"
)

func TestGrid_Coords(t *testing.T) {
	grid := Grid{{"1", "2"}, {}, {"3"}}

	got := slices.Collect(grid.Coords())
	want := []Coord{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 2, Col: 0}}

	if !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	if grid.Len() != 3 {
		t.Errorf("expected 3 cells, got %d", grid.Len())
	}

	if grid.Cell(Coord{Row: 1, Col: 0}) != "" || grid.Cols(5) != 0 {
		t.Errorf("out of bounds access not empty")
	}
}

func TestResult(t *testing.T) {
	var unset Result
	if unset.IsSet() || unset.String() != "" {
		t.Errorf("zero Result: expected unset, got %q", unset.String())
	}

	a, b := 0.1, 0.2

	n := Number(a + b)
	if v, ok := n.Float(); !ok || v != a+b {
		t.Errorf("expected number, got %v %v", v, ok)
	}

	if n.String() != "0.30000000000000004" {
		t.Errorf("expected shortest round-trip text, got %q", n.String())
	}

	if Number(1e21).String() != "1000000000000000000000" {
		t.Errorf("expected plain decimal, got %q", Number(1e21).String())
	}

	cause := errors.New("boom")

	e := Failure(cause)
	if !e.IsError() || !errors.Is(e.Err(), cause) {
		t.Errorf("expected failure wrapping cause, got %v", e.Err())
	}

	if e.Text("ERR!") != "ERR!" {
		t.Errorf("expected custom marker, got %q", e.Text("ERR!"))
	}

	if _, ok := e.Float(); ok {
		t.Errorf("failure reported a number")
	}
}

func TestResultGrid_Errors(t *testing.T) {
	rg := Evaluate(t.Context(), Grid{{"1", "x"}, {"1 0 /"}}, quiet())

	var got []Coord
	for at, err := range rg.Errors() {
		if err == nil {
			t.Errorf("%s: nil error", at)
		}

		got = append(got, at)
	}

	want := []Coord{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if !slices.Equal(got, want) || rg.Failed() != 2 {
		t.Errorf("expected %v, got %v", want, got)
	}

	if !errors.Is(rg.At(Coord{Row: 1}).Err(), ErrDivisionByZero) {
		t.Errorf("expected division error, got %v", rg.At(Coord{Row: 1}).Err())
	}
}
