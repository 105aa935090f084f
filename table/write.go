package table

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/ardnew/rpnsheet/log"
	"github.com/ardnew/rpnsheet/sheet"
)

// Write encodes results to w. Failed cells are written as the marker text;
// JSON and YAML write numbers as numbers.
func Write(
	ctx context.Context,
	w io.Writer,
	results sheet.ResultGrid,
	format Format,
	opts ...Option,
) error {
	o := makeOptions(opts...)

	var err error

	switch format {
	case FormatCSV:
		err = writeCSV(w, results, o)
	case FormatJSON:
		err = writeJSON(w, results, o)
	case FormatYAML:
		err = writeYAML(ctx, w, results, o)
	case FormatTable:
		err = Render(w, results, o.marker)
	default:
		return ErrUnsupportedFormat.For(format).With(slog.String("op", "write"))
	}

	if err != nil {
		return ErrWriteGrid.For(format).Wrap(err)
	}

	log.DebugContext(
		ctx,
		"grid written",
		slog.String("format", format.String()),
		slog.Int("rows", len(results)),
		slog.Int("failed", results.Failed()),
	)

	return nil
}

func writeCSV(w io.Writer, results sheet.ResultGrid, o options) error {
	cw := csv.NewWriter(w)
	cw.Comma = o.comma

	if err := cw.WriteAll(results.Strings(o.marker)); err != nil {
		return err
	}

	return cw.Error()
}

// values converts results to rows of float64 and marker strings.
func values(results sheet.ResultGrid, marker string) [][]any {
	rows := make([][]any, len(results))

	for i, row := range results {
		rows[i] = make([]any, len(row))

		for j, r := range row {
			if v, ok := r.Float(); ok {
				rows[i][j] = v
			} else {
				rows[i][j] = r.Text(marker)
			}
		}
	}

	return rows
}

func writeJSON(w io.Writer, results sheet.ResultGrid, o options) error {
	var (
		data []byte
		err  error
	)

	if o.indent > 0 {
		data, err = json.MarshalIndent(values(results, o.marker), "", strings.Repeat(" ", o.indent))
	} else {
		data, err = json.Marshal(values(results, o.marker))
	}

	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(w, string(data))

	return err
}

func writeYAML(
	ctx context.Context,
	w io.Writer,
	results sheet.ResultGrid,
	o options,
) error {
	var opts []yaml.EncodeOption
	if o.indent > 0 {
		opts = append(opts, yaml.Indent(o.indent), yaml.IndentSequence(true))
	} else {
		opts = append(opts, yaml.Flow(true))
	}

	data, err := yaml.MarshalContext(ctx, values(results, o.marker), opts...)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(w, string(data))

	return err
}
