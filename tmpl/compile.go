package tmpl

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/dop251/goja"
)

// sourceName is the file name goja reports in stack traces for
// compiled template expressions.
const sourceName = "template"

// compiled is the executable unit produced from one expression region:
// a compiled function literal taking one positional parameter per
// bound context name.
type compiled struct {
	prog  *goja.Program
	names []string
}

// returnStmt detects an explicit return statement in a statement
// sequence, in which case the text is used verbatim as the body.
var returnStmt = regexp.MustCompile(`\breturn\b`)

// wrapBody builds a function body with a well-defined return value for
// the given shape.
//
// Bare expressions and self-invoking closures are parenthesized and
// returned directly; the parentheses keep leading-brace and
// leading-function text from being parsed as a statement.
//
// Statement sequences without an explicit return are rewritten so the
// trailing bare expression after the last separator, if any, becomes
// the implicit result. With no trailing content the body returns
// undefined.
func wrapBody(src string, shape Shape) string {
	if shape != ShapeStatements {
		return "return (" + src + ");"
	}

	if returnStmt.MatchString(src) {
		return src
	}

	if i := strings.LastIndex(src, ";"); i >= 0 {
		if tail := strings.TrimSpace(src[i+1:]); tail != "" {
			return src[:i+1] + "\nreturn " + tail + ";"
		}
	}

	return src + "\nreturn undefined;"
}

// compileUnit wraps the classified expression into a function literal
// over the bound parameter names and compiles it. Construction-time
// syntax errors surface here, before any execution is attempted.
func compileUnit(src string, shape Shape, names []string) (*compiled, error) {
	fn := "(function(" + strings.Join(names, ", ") + ") {\n" +
		wrapBody(src, shape) + "\n})"

	prog, err := goja.Compile(sourceName, fn, false)
	if err != nil {
		return nil, ErrCompile.Wrap(err).
			With(slog.String("source", src))
	}

	return &compiled{prog: prog, names: names}, nil
}
