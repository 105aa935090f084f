package sheet

import (
	"context"
	"log/slog"
	"math"
)

// interpret runs the postfix program in text against the grid of s.
// References recurse through [session.evaluateCell].
func (s *session) interpret(ctx context.Context, text string) (float64, error) {
	stack := make([]float64, 0, 8)

	for _, tok := range tokenize(text) {
		switch tok.kind {
		case tokenOperator:
			if len(stack) < 2 {
				return 0, ErrOperandCount.
					With(slog.String("operator", tok.text), slog.Int("stack", len(stack)))
			}

			lhs, rhs := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]

			v, err := applyOperator(tok.op, lhs, rhs)
			if err != nil {
				return 0, err
			}

			stack = append(stack, v)

		case tokenReference:
			at, err := s.grid.Resolve(tok.text)
			if err != nil {
				return 0, err
			}

			v, err := s.evaluateCell(ctx, at)
			if err != nil {
				return 0, err
			}

			stack = append(stack, v)

		case tokenLiteral:
			stack = append(stack, tok.value)

		default:
			return 0, ErrInvalidNumber.With(slog.String("token", tok.text))
		}
	}

	if len(stack) != 1 {
		return 0, ErrStackSize.With(slog.Int("stack", len(stack)))
	}

	return stack[0], nil
}

// applyOperator computes lhs op rhs. The result is always finite.
func applyOperator(op byte, lhs, rhs float64) (float64, error) {
	var v float64

	switch op {
	case '+':
		v = lhs + rhs
	case '-':
		v = lhs - rhs
	case '*':
		v = lhs * rhs
	case '/':
		if rhs == 0 {
			return 0, ErrDivisionByZero.With(slog.Float64("dividend", lhs))
		}

		v = lhs / rhs
	}

	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, ErrNotFinite.With(
			slog.String("operator", string(op)),
			slog.Float64("lhs", lhs),
			slog.Float64("rhs", rhs),
		)
	}

	return v, nil
}
