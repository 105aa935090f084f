package sheet

import (
	"strconv"
	"strings"
	"unicode"
)

// tokenKind is the shape of a single whitespace-delimited token.
type tokenKind uint8

const (
	tokenMalformed tokenKind = iota
	tokenOperator
	tokenReference
	tokenLiteral
)

func (k tokenKind) String() string {
	switch k {
	case tokenOperator:
		return "operator"
	case tokenReference:
		return "reference"
	case tokenLiteral:
		return "literal"
	default:
		return "malformed"
	}
}

// token is a classified piece of cell text. value is set for literals and op
// for operators.
type token struct {
	text  string
	kind  tokenKind
	op    byte
	value float64
}

// operators is the complete operator set. Membership is by exact match.
const operators = "+-*/"

// classify decides the shape of text, in order: operator, reference (any
// letter), numeric literal, malformed. Literals out of float64 range are
// malformed.
func classify(text string) token {
	tok := token{text: text}

	switch {
	case len(text) == 1 && strings.IndexByte(operators, text[0]) >= 0:
		tok.kind, tok.op = tokenOperator, text[0]

	case strings.IndexFunc(text, unicode.IsLetter) >= 0:
		tok.kind = tokenReference

	default:
		v, err := strconv.ParseFloat(text, 64)
		if err == nil {
			tok.kind, tok.value = tokenLiteral, v
		}
	}

	return tok
}

// tokenize splits an expression on whitespace and classifies each piece.
func tokenize(text string) []token {
	fields := strings.Fields(text)
	toks := make([]token, len(fields))

	for i, f := range fields {
		toks[i] = classify(f)
	}

	return toks
}
