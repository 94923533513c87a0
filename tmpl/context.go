package tmpl

import (
	"maps"
	"regexp"
	"sort"
)

// binding is the ordered view of a merged variable context.
// names and values share index order so each name can be bound to the
// positional parameter list of a compiled unit.
type binding struct {
	names  []string
	values []any
}

// identName matches context keys usable as JavaScript parameter names.
// Keys that are not identifier-shaped cannot be bound positionally and
// are dropped during the merge.
var identName = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// merge flattens the base context and extensions into one binding.
// Extension entries override base entries of the same name. Merging is
// shallow: nested values are never recursed into.
func merge(base, ext map[string]any) binding {
	merged := make(map[string]any, len(base)+len(ext))
	maps.Copy(merged, base)
	maps.Copy(merged, ext)

	names := sortedKeys(merged)

	bound := binding{
		names:  make([]string, 0, len(names)),
		values: make([]any, 0, len(names)),
	}

	for _, name := range names {
		if !identName.MatchString(name) {
			continue
		}

		bound.names = append(bound.names, name)
		bound.values = append(bound.values, merged[name])
	}

	return bound
}

func sortedKeys[T any](m map[string]T) []string {
	if len(m) == 0 {
		return nil
	}

	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
