// Package repl implements an interactive expression evaluator over a
// loaded template context.
//
// Each line of input is evaluated as a single delimited expression region
// against the bound variables, so results match what the equivalent
// template would produce. Completion candidates are drawn from the context
// variable names and the built-in globals.
package repl
