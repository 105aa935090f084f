package table

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ardnew/rpnsheet/sheet"
)

func TestRead(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		opts   []Option
		want   sheet.Grid
	}{
		{
			name:   "csv_jagged",
			format: FormatCSV,
			input:  "a2 b1 +,1\n3\n",
			want:   sheet.Grid{{"a2 b1 +", "1"}, {"3"}},
		},
		{
			name:   "csv_blank_lines_kept",
			format: FormatCSV,
			input:  "1\n\n\na1 2 *\n",
			want:   sheet.Grid{{"1"}, {}, {}, {"a1 2 *"}},
		},
		{
			name:   "csv_quoted_newline",
			format: FormatCSV,
			input:  "\"1\n2 +\",3\n\n4\n",
			want:   sheet.Grid{{"1\n2 +", "3"}, {}, {"4"}},
		},
		{
			name:   "csv_spaces_and_comments",
			format: FormatCSV,
			input:  " 1 ,#2\n",
			want:   sheet.Grid{{" 1 ", "#2"}},
		},
		{
			name:   "csv_comma",
			format: FormatCSV,
			input:  "1;2;a1 b1 +\n",
			opts:   []Option{WithComma(';')},
			want:   sheet.Grid{{"1", "2", "a1 b1 +"}},
		},
		{
			name:   "csv_empty",
			format: FormatCSV,
			input:  "",
			want:   nil,
		},
		{
			name:   "json",
			format: FormatJSON,
			input:  `[["a2 b1 +", 1], [3.50, true, null]]`,
			want:   sheet.Grid{{"a2 b1 +", "1"}, {"3.50", "true", ""}},
		},
		{
			name:   "json_empty",
			format: FormatJSON,
			input:  "",
			want:   sheet.Grid{},
		},
		{
			name:   "yaml",
			format: FormatYAML,
			input:  "- [a2 b1 +, 1]\n- - 3\n  - 2.5\n  - ~\n",
			want:   sheet.Grid{{"a2 b1 +", "1"}, {"3", "2.5", ""}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(t.Context(), strings.NewReader(tt.input), tt.format, tt.opts...)
			if err != nil {
				t.Fatalf("read error: %v", err)
			}

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Read mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		input  string
		want   error
	}{
		{"table", FormatTable, "", ErrUnsupportedFormat},
		{"json_object", FormatJSON, `{"a": 1}`, ErrReadGrid},
		{"json_nested", FormatJSON, `[[[1]]]`, ErrReadGrid},
		{"yaml_map_cell", FormatYAML, "- [{a: 1}]\n", ErrReadGrid},
		{"csv_quote", FormatCSV, "\"a\"b\"\n", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(t.Context(), strings.NewReader(tt.input), tt.format)
			if !errors.Is(err, tt.want) && !(tt.want == nil && err == nil) {
				t.Errorf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
