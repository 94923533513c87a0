package tmpl

import (
	"github.com/dop251/goja"
)

// errorMarker renders a failure as the inline marker substituted into
// template output. Raw mode uses the same marker, so a raw-mode result
// is type-indistinguishable from a legitimately computed string;
// callers needing to discriminate use [RenderOutcome].
func errorMarker(err error) string {
	return "[Error: " + err.Error() + "]"
}

// projectString converts an outcome into its string-mode substitution.
// Null and undefined project to the empty string; failures to the
// inline marker; everything else to its JavaScript string conversion.
func projectString(o outcome) string {
	if o.err != nil {
		return errorMarker(o.err)
	}

	if o.val == nil || goja.IsUndefined(o.val) || goja.IsNull(o.val) {
		return ""
	}

	return o.val.String()
}

// projectRaw converts an outcome into the raw-mode result. Values pass
// through with their exported Go types (numbers stay numbers, arrays
// become slices, objects become maps); null and undefined export as
// nil; failures project to the marker string.
func projectRaw(o outcome) any {
	if o.err != nil {
		return errorMarker(o.err)
	}

	if o.val == nil {
		return nil
	}

	return o.val.Export()
}
