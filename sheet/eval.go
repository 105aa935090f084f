package sheet

import (
	"context"
	"log/slog"
	"strings"

	"github.com/ardnew/rpnsheet/log"
)

// Sheet evaluates a [Grid]. A Sheet holds no evaluation state of its own:
// each call starts a fresh session, so one Sheet may be evaluated from
// several goroutines at once.
type Sheet struct {
	grid     Grid
	logger   log.Logger
	maxDepth int
}

// New returns a Sheet that evaluates grid. The grid is borrowed and must not
// be modified while an evaluation is running.
func New(grid Grid, opts ...Option) *Sheet {
	s := &Sheet{
		grid:     grid,
		logger:   log.Default(),
		maxDepth: DefaultMaxDepth,
	}

	applyOptions(s, opts...)

	return s
}

// Evaluate is shorthand for New(grid, opts...).Evaluate(ctx).
func Evaluate(ctx context.Context, grid Grid, opts ...Option) ResultGrid {
	return New(grid, opts...).Evaluate(ctx)
}

// Grid returns the grid being evaluated.
func (s *Sheet) Grid() Grid { return s.grid }

// Evaluate computes every cell of the grid in row-major order. It never
// fails as a whole: a cell that cannot be evaluated holds a failed [Result]
// and every other cell is unaffected.
func (s *Sheet) Evaluate(ctx context.Context) ResultGrid {
	ss := s.session()

	s.logger.DebugContext(
		ctx,
		"evaluate start",
		slog.Int("rows", s.grid.Rows()),
		slog.Int("cells", s.grid.Len()),
	)

	for at := range s.grid.Coords() {
		// Cells reached through a reference are already final.
		if ss.results.At(at).IsSet() {
			continue
		}

		if _, err := ss.evaluateCell(ctx, at); err != nil {
			ss.results[at.Row][at.Col] = Failure(err)
		}
	}

	s.logger.DebugContext(
		ctx,
		"evaluate done",
		slog.Int("cells", s.grid.Len()),
		slog.Int("failed", ss.results.Failed()),
	)

	return ss.results
}

// EvaluateCell evaluates the cell named by address and everything it
// references.
func (s *Sheet) EvaluateCell(ctx context.Context, address string) (float64, error) {
	at, err := s.grid.Resolve(address)
	if err != nil {
		return 0, err
	}

	return s.session().evaluateCell(ctx, at)
}

// EvaluateExpr interprets an ad-hoc postfix expression whose references
// resolve against the grid. A blank expression is 0.
func (s *Sheet) EvaluateExpr(ctx context.Context, text string) (float64, error) {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return 0, nil
	}

	return s.session().interpret(ctx, text)
}

type visit uint8

const (
	visitNone visit = iota
	visitActive
	visitDone
	visitFailed
)

// session is the state of one evaluation pass. It is never shared.
type session struct {
	*Sheet

	visits  map[Coord]visit
	results ResultGrid
	depth   int
}

func (s *Sheet) session() *session {
	return &session{
		Sheet:   s,
		visits:  make(map[Coord]visit),
		results: newResultGrid(s.grid),
	}
}

// evaluateCell returns the value of the cell at, computing it at most once
// per session. A cell reached again while its own evaluation is still active
// is a circular reference.
func (s *session) evaluateCell(ctx context.Context, at Coord) (float64, error) {
	switch s.visits[at] {
	case visitDone:
		v, _ := s.results[at.Row][at.Col].Float()

		return v, nil

	case visitFailed:
		return 0, s.results[at.Row][at.Col].Err()

	case visitActive:
		return 0, ErrCircular.With(slog.String("cell", at.String()))
	}

	if s.depth >= s.maxDepth {
		return 0, ErrMaxDepthExceeded.
			With(slog.String("cell", at.String())).
			With(slog.Int("max_depth", s.maxDepth))
	}

	s.visits[at] = visitActive
	s.depth++

	v, err := s.compute(ctx, at)

	s.depth--

	if err != nil {
		s.visits[at] = visitFailed
		s.results[at.Row][at.Col] = Failure(err)

		s.logger.TraceContext(
			ctx,
			"cell failed",
			slog.String("cell", at.String()),
			slog.Any("error", err),
		)

		return 0, err
	}

	s.visits[at] = visitDone
	s.results[at.Row][at.Col] = Number(v)

	s.logger.TraceContext(
		ctx,
		"cell evaluated",
		slog.String("cell", at.String()),
		slog.Float64("value", v),
	)

	return v, nil
}

func (s *session) compute(ctx context.Context, at Coord) (float64, error) {
	text := strings.ToLower(strings.TrimSpace(s.grid.Cell(at)))
	if text == "" {
		return 0, nil
	}

	return s.interpret(ctx, text)
}
