package table

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/rpnsheet/log"
	"github.com/ardnew/rpnsheet/sheet"
)

// Read decodes a grid from r.
//
// CSV rows may have any number of fields and blank lines are kept as empty
// rows so that row numbers match the source file. JSON and YAML documents
// must be a sequence of sequences of scalars; numbers, booleans and nulls
// are converted to their text form.
func Read(
	ctx context.Context,
	r io.Reader,
	format Format,
	opts ...Option,
) (sheet.Grid, error) {
	o := makeOptions(opts...)

	var (
		grid sheet.Grid
		err  error
	)

	switch format {
	case FormatCSV:
		grid, err = readCSV(ctx, r, o)
	case FormatJSON:
		grid, err = readJSON(r)
	case FormatYAML:
		grid, err = readYAML(ctx, r)
	default:
		return nil, ErrUnsupportedFormat.For(format).With(slog.String("op", "read"))
	}

	if err != nil {
		return nil, ErrReadGrid.For(format).Wrap(err)
	}

	log.DebugContext(
		ctx,
		"grid read",
		slog.String("format", format.String()),
		slog.Int("rows", grid.Rows()),
		slog.Int("cells", grid.Len()),
	)

	return grid, nil
}

func readCSV(ctx context.Context, r io.Reader, o options) (sheet.Grid, error) {
	cr := csv.NewReader(r)
	cr.Comma = o.comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var (
		grid sheet.Grid
		next = 1 // line expected to start the next record
	)

	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return grid, nil
		}

		if err != nil {
			return nil, err
		}

		// encoding/csv skips blank lines; put them back as empty rows.
		line, _ := cr.FieldPos(0)
		for ; next < line; next++ {
			grid = append(grid, []string{})
		}

		last, _ := cr.FieldPos(len(rec) - 1)
		next = last + strings.Count(rec[len(rec)-1], "\n") + 1

		grid = append(grid, rec)
	}
}

func readJSON(r io.Reader) (sheet.Grid, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows [][]any
	if err := dec.Decode(&rows); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}

	return makeGrid(rows)
}

func readYAML(ctx context.Context, r io.Reader) (sheet.Grid, error) {
	var rows [][]any
	if err := yaml.NewDecoder(r).DecodeContext(ctx, &rows); err != nil &&
		!errors.Is(err, io.EOF) {
		return nil, err
	}

	return makeGrid(rows)
}

func makeGrid(rows [][]any) (sheet.Grid, error) {
	grid := make(sheet.Grid, len(rows))

	for i, row := range rows {
		grid[i] = make([]string, len(row))

		for j, v := range row {
			text, err := scalarText(v)
			if err != nil {
				return nil, fmt.Errorf(
					"cell %s: %w", sheet.FormatAddress(sheet.Coord{Row: i, Col: j}), err,
				)
			}

			grid[i][j] = text
		}
	}

	return grid, nil
}

// scalarText returns the cell text for a decoded scalar value.
func scalarText(v any) (string, error) {
	switch s := v.(type) {
	case nil:
		return "", nil
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case bool:
		return strconv.FormatBool(s), nil
	case int:
		return strconv.Itoa(s), nil
	case int64:
		return strconv.FormatInt(s, 10), nil
	case uint64:
		return strconv.FormatUint(s, 10), nil
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("not a scalar: %T", v)
	}
}
