package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/alecthomas/kong"

	"github.com/ardnew/rpnsheet/log"
	"github.com/ardnew/rpnsheet/pkg"
	"github.com/ardnew/rpnsheet/sheet"
	"github.com/ardnew/rpnsheet/table"
)

// ContextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}

// Settings are the global flags that affect evaluation and output in every
// command.
type Settings struct {
	Marker   string
	MaxDepth int
}

type settingsKey struct{}

// WithSettings returns a new context.Context containing s.
func WithSettings(ctx context.Context, s Settings) context.Context {
	return context.WithValue(ctx, settingsKey{}, s)
}

// settingsFrom returns the Settings stored in ctx, or the package defaults.
func settingsFrom(ctx context.Context) Settings {
	s, _ := ctx.Value(settingsKey{}).(Settings)

	if s.Marker == "" {
		s.Marker = sheet.DefaultMarker
	}

	if s.MaxDepth <= 0 {
		s.MaxDepth = sheet.DefaultMaxDepth
	}

	return s
}

// sheetOptions returns the evaluation options selected by s.
func (s Settings) sheetOptions() []sheet.Option {
	return []sheet.Option{
		sheet.WithLogger(log.Default()),
		sheet.WithMaxDepth(s.MaxDepth),
	}
}

// stdio is the special path meaning standard input or output.
const stdio = "-"

// Input selects and decodes the source grid of a command.
type Input struct {
	Source   string `arg:"" default:"-"    help:"Source grid file or '-' for stdin." name:"source" optional:""`
	InFormat string `default:"auto" enum:"auto,csv,json,yaml" help:"Source format (${enum})." short:"i"`
	Comma    string `default:","    help:"CSV field delimiter ('tab' for a tab)."`
}

// format returns the source format, inferring it from the file name when
// set to auto.
func (in *Input) format() table.Format {
	if f, err := table.ParseFormat(in.InFormat); err == nil {
		return f
	}

	return table.FormatFromPath(in.Source)
}

// comma returns the CSV delimiter rune.
func (in *Input) comma() (rune, error) {
	return parseComma(in.Comma)
}

func parseComma(s string) (rune, error) {
	switch s {
	case "tab", `\t`:
		return '\t', nil
	}

	r, n := utf8.DecodeRuneInString(s)
	if n == 0 || n != len(s) || r == utf8.RuneError || r == '"' ||
		r == '\r' || r == '\n' {
		return 0, ErrInvalidComma.With(slog.String("comma", s))
	}

	return r, nil
}

// load reads and decodes the source grid.
func (in *Input) load(ctx context.Context) (sheet.Grid, error) {
	comma, err := in.comma()
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "loading sheet",
		slog.String("source", in.Source),
		slog.String("format", in.format().String()),
	)

	r, closeFn, err := openSource(in.Source)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	grid, err := table.Read(ctx, r, in.format(), table.WithComma(comma))
	if err != nil {
		if in.Source == stdio {
			return nil, pkg.ErrReadStdin.Wrap(err)
		}

		return nil, err
	}

	return grid, nil
}

// openSource opens path for reading, or stdin for "-".
func openSource(path string) (io.Reader, func(), error) {
	if path == stdio || path == "" {
		return os.Stdin, func() {}, nil
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, nil, pkg.ErrOpenSource.Wrap(err)
	}

	return file, func() { _ = file.Close() }, nil
}

// createOutput creates path for writing, or returns stdout for "-". The
// returned close function reports the error from closing the file.
func createOutput(path string) (io.Writer, func() error, error) {
	if path == stdio || path == "" {
		return os.Stdout, func() error { return nil }, nil
	}

	file, err := os.Create(path)
	if err != nil {
		return nil, nil, pkg.ErrCreateOutput.Wrap(err)
	}

	return file, file.Close, nil
}
