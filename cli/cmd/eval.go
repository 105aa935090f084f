package cmd

import (
	"context"
	"errors"
	"log/slog"

	"github.com/ardnew/rpnsheet/log"
	"github.com/ardnew/rpnsheet/sheet"
	"github.com/ardnew/rpnsheet/table"
)

// Eval evaluates every cell of a grid and writes the results.
type Eval struct {
	Input `embed:""`

	Output    string `default:"-"    help:"Output file or '-' for stdout."            short:"o" type:"path"`
	OutFormat string `default:"auto" enum:"auto,csv,json,yaml,table" help:"Output format (${enum})." short:"O"`
}

// Run executes the eval command.
func (e *Eval) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	set := settingsFrom(ctx)

	grid, err := e.load(ctx)
	if err != nil {
		return err
	}

	results := sheet.New(grid, set.sheetOptions()...).Evaluate(ctx)

	return e.write(ctx, results, set)
}

// format returns the output format, inferring it from the output file name
// when set to auto.
func (e *Eval) format() table.Format {
	if f, err := table.ParseFormat(e.OutFormat); err == nil {
		return f
	}

	return table.FormatFromPath(e.Output)
}

func (e *Eval) write(
	ctx context.Context,
	results sheet.ResultGrid,
	set Settings,
) (err error) {
	comma, err := e.comma()
	if err != nil {
		return err
	}

	log.InfoContext(ctx, "writing evaluated sheet",
		slog.String("output", e.Output),
		slog.String("format", e.format().String()),
		slog.Int("failed", results.Failed()),
	)

	w, closeFn, err := createOutput(e.Output)
	if err != nil {
		return err
	}

	defer func() { err = errors.Join(err, closeFn()) }()

	return table.Write(ctx, w, results, e.format(),
		table.WithComma(comma),
		table.WithMarker(set.Marker),
	)
}
