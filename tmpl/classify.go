package tmpl

import (
	"regexp"
	"strings"
)

// Shape classifies the syntactic form of an expression region, which
// determines how its text is wrapped before compilation.
type Shape int

const (
	// ShapeBare is a single value-producing expression.
	ShapeBare Shape = iota

	// ShapeStatements is a multi-statement sequence.
	ShapeStatements

	// ShapeClosure is a parenthesized function form that immediately
	// invokes itself.
	ShapeClosure
)

// String returns a string representation of the shape.
func (s Shape) String() string {
	switch s {
	case ShapeBare:
		return "Bare"
	case ShapeStatements:
		return "Statements"
	case ShapeClosure:
		return "Closure"
	default:
		return "Unknown"
	}
}

// declKeyword matches declaration keywords that force statement-sequence
// treatment.
var declKeyword = regexp.MustCompile(`\b(?:let|const|var|function|class)\b`)

// classify assigns a Shape using syntactic heuristics, not a grammar
// parse. The closure check runs first: self-invoking closures usually
// contain semicolons and declarations internally and must not be
// misread as statement sequences.
//
// The heuristics are approximate. A statement separator inside a string
// literal, for example, still triggers statement-sequence treatment.
func classify(src string) Shape {
	if isSelfInvoking(src) {
		return ShapeClosure
	}

	if strings.Contains(src, ";") || declKeyword.MatchString(src) {
		return ShapeStatements
	}

	return ShapeBare
}

// isSelfInvoking reports whether src begins with a balanced
// parenthesized group immediately followed by another open paren:
// the "(function () {...})()" and "(() => ...)()" forms.
func isSelfInvoking(src string) bool {
	if len(src) == 0 || src[0] != '(' {
		return false
	}

	end := matchParen(src)
	if end < 0 {
		return false
	}

	rest := strings.TrimLeft(src[end+1:], " \t\r\n")

	return strings.HasPrefix(rest, "(")
}

// matchParen returns the index of the parenthesis closing the group
// opened at src[0], or -1 when the group never closes. Quoted spans
// (single, double, or backtick) are skipped so parentheses inside
// string literals do not unbalance the scan.
func matchParen(src string) int {
	depth := 0

	for i := 0; i < len(src); i++ {
		switch c := src[i]; c {
		case '(':
			depth++

		case ')':
			depth--
			if depth == 0 {
				return i
			}

		case '\'', '"', '`':
			for i++; i < len(src); i++ {
				if src[i] == '\\' {
					i++

					continue
				}

				if src[i] == c {
					break
				}
			}
		}
	}

	return -1
}
