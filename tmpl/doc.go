// Package tmpl evaluates JavaScript expressions embedded in text
// templates.
//
// A template is plain text containing zero or more regions bounded by a
// literal delimiter pair (default "{" and "}"). Each region's content
// is evaluated as a JavaScript expression against a caller-supplied
// variable context, and the result is substituted back into the text:
//
//	out, _ := tmpl.Render(ctx, "Hello, {name}!", map[string]any{
//		"name": "World",
//	})
//	// out == "Hello, World!"
//
// When the whole trimmed template is exactly one region, raw-value
// rendering returns the computed value with its type preserved:
//
//	v, _ := tmpl.Render(ctx, "{items.filter(n => n > 2)}",
//		map[string]any{"items": []int{1, 2, 3, 4, 5}},
//		tmpl.WithRawValues(true))
//	// v is a slice, not a string
//
// # Expression shapes
//
// Region text is classified by syntactic heuristics into one of three
// shapes that determine how it is wrapped before compilation: a bare
// value expression, a multi-statement sequence (whose trailing bare
// expression becomes the implicit result), or a self-invoking closure.
// Expression semantics are delegated entirely to the embedded
// JavaScript runtime (github.com/dop251/goja); this package owns only
// the harness around it.
//
// # Trust policies
//
// By default expressions run unrestricted, with access to the built-in
// ambient globals (env, file, path, mung, console). [WithSandbox]
// selects the restricted policy, under which an expression sees only
// the bound context names plus any [WithAllowedGlobals] entries, and
// resolving any other name is a run-time failure.
//
// # Failure containment
//
// Compile-time and run-time failures are captured per region and
// substituted as inline "[Error: ...]" markers; they never abort the
// remaining regions and never propagate out of [Render].
package tmpl
