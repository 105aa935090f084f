package cmd

import (
	"context"
	"path/filepath"

	"github.com/ardnew/rpnsheet/cli/cmd/repl"
	"github.com/ardnew/rpnsheet/sheet"
)

// Repl evaluates postfix expressions interactively against a grid.
type Repl struct {
	Source   string `arg:"" help:"Source grid file or '-' for stdin; empty starts with no cells." name:"source" optional:""`
	InFormat string `default:"auto" enum:"auto,csv,json,yaml" help:"Source format (${enum})." short:"i"`
	Comma    string `default:","    help:"CSV field delimiter ('tab' for a tab)."`
}

// Run executes the repl command.
func (r *Repl) Run(ctx context.Context) (err error) {
	ctx, cancel := context.WithCancelCause(ctx)

	defer func(err *error) {
		cancel(*err)
	}(&err)

	var grid sheet.Grid

	if r.Source != "" {
		in := Input{Source: r.Source, InFormat: r.InFormat, Comma: r.Comma}

		grid, err = in.load(ctx)
		if err != nil {
			return err
		}
	}

	var history string

	if ktx := kongContextFrom(ctx); ktx != nil {
		if dir, ok := ktx.Model.Vars()[CacheIdentifier]; ok {
			history = filepath.Join(dir, repl.HistoryFile)
		}
	}

	set := settingsFrom(ctx)

	return repl.Run(ctx,
		sheet.New(grid, set.sheetOptions()...),
		repl.WithHistory(history),
		repl.WithMarker(set.Marker),
		repl.WithTTY(r.Source == stdio),
	)
}
