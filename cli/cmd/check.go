package cmd

import (
	"context"
	"log/slog"

	"github.com/ardnew/rpnsheet/log"
	"github.com/ardnew/rpnsheet/sheet"
)

// Check evaluates a grid and reports every cell that fails.
type Check struct {
	Input `embed:""`
}

// Run executes the check command.
func (c *Check) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	grid, err := c.load(ctx)
	if err != nil {
		return err
	}

	results := sheet.New(grid, settingsFrom(ctx).sheetOptions()...).Evaluate(ctx)

	for at, cause := range results.Errors() {
		log.WarnContext(ctx, "cell failed",
			slog.String("cell", at.String()),
			slog.String("kind", sheet.KindOf(cause).String()),
			slog.String("text", grid.Cell(at)),
			slog.Any("error", cause),
		)
	}

	failed := results.Failed()

	log.InfoContext(ctx, "sheet checked",
		slog.String("source", c.Source),
		slog.Int("cells", grid.Len()),
		slog.Int("failed", failed),
	)

	if failed > 0 {
		return ErrCellsFailed.With(slog.Int("count", failed))
	}

	return nil
}
