package table

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/rpnsheet/sheet"
)

func results(t *testing.T) sheet.ResultGrid {
	t.Helper()

	return sheet.Evaluate(t.Context(),
		sheet.Grid{{"a2 b1 +", "1"}, {"3", "0.5 0.25 -", "1 0 /"}})
}

func TestWrite_CSV(t *testing.T) {
	var buf bytes.Buffer

	if err := Write(t.Context(), &buf, results(t), FormatCSV); err != nil {
		t.Fatalf("write error: %v", err)
	}

	want := "4,1\n3,0.25,#ERR\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWrite_CSVOptions(t *testing.T) {
	var buf bytes.Buffer

	err := Write(t.Context(), &buf, results(t), FormatCSV,
		WithComma('\t'), WithMarker("ERR"))
	if err != nil {
		t.Fatalf("write error: %v", err)
	}

	want := "4\t1\n3\t0.25\tERR\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer

	if err := Write(t.Context(), &buf, results(t), FormatJSON, WithIndent(0)); err != nil {
		t.Fatalf("write error: %v", err)
	}

	want := `[[4,1],[3,0.25,"#ERR"]]` + "\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}

	var decoded [][]any
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	want := [][]string{{"4", "1"}, {"3", "0.25", "#ERR"}}

	for _, format := range []Format{FormatCSV, FormatJSON, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			var buf bytes.Buffer

			if err := Write(t.Context(), &buf, results(t), format); err != nil {
				t.Fatalf("write error: %v", err)
			}

			grid, err := Read(t.Context(), &buf, format)
			if err != nil {
				t.Fatalf("read error: %v", err)
			}

			if diff := cmp.Diff(want, [][]string(grid)); diff != "" {
				t.Errorf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWrite_Table(t *testing.T) {
	var buf bytes.Buffer

	if err := Write(t.Context(), &buf, results(t), FormatTable); err != nil {
		t.Fatalf("write error: %v", err)
	}

	out := buf.String()
	for _, s := range []string{" a ", " b ", " c ", " 1 ", " 2 ", "0.25", "#ERR"} {
		if !strings.Contains(out, s) {
			t.Errorf("table missing %q:\n%s", s, out)
		}
	}

	if strings.Contains(out, "\x1b[") {
		t.Errorf("unexpected color codes writing to a buffer:\n%s", out)
	}
}

func TestWrite_Unsupported(t *testing.T) {
	err := Write(t.Context(), &bytes.Buffer{}, results(t), Format(42))
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected %v, got %v", ErrUnsupportedFormat, err)
	}
}
