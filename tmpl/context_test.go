package tmpl

import (
	"reflect"
	"testing"
)

func TestMerge_ExtensionWins(t *testing.T) {
	base := map[string]any{"a": 1, "b": 2}
	ext := map[string]any{"b": 20, "c": 30}

	bound := merge(base, ext)

	expected := binding{
		names:  []string{"a", "b", "c"},
		values: []any{1, 20, 30},
	}

	if !reflect.DeepEqual(bound, expected) {
		t.Errorf("expected %+v, got %+v", expected, bound)
	}
}

func TestMerge_DropsNonIdentifierNames(t *testing.T) {
	base := map[string]any{
		"valid":      1,
		"_under":     2,
		"$dollar":    3,
		"has space":  4,
		"has-hyphen": 5,
		"1leading":   6,
		"":           7,
	}

	bound := merge(base, nil)

	expected := []string{"$dollar", "_under", "valid"}
	if !reflect.DeepEqual(bound.names, expected) {
		t.Errorf("expected names %v, got %v", expected, bound.names)
	}
}

func TestMerge_Empty(t *testing.T) {
	bound := merge(nil, nil)

	if len(bound.names) != 0 || len(bound.values) != 0 {
		t.Errorf("expected empty binding, got %+v", bound)
	}
}

func TestMerge_DeterministicOrder(t *testing.T) {
	base := map[string]any{"z": 1, "m": 2, "a": 3}

	first := merge(base, nil)

	for range 16 {
		next := merge(base, nil)
		if !reflect.DeepEqual(first.names, next.names) {
			t.Fatalf("unstable order: %v vs %v", first.names, next.names)
		}
	}
}

func TestSortedKeys(t *testing.T) {
	if keys := sortedKeys(map[string]int(nil)); keys != nil {
		t.Errorf("expected nil for empty map, got %v", keys)
	}

	keys := sortedKeys(map[string]int{"b": 1, "a": 2, "c": 3})

	expected := []string{"a", "b", "c"}
	if !reflect.DeepEqual(keys, expected) {
		t.Errorf("expected %v, got %v", expected, keys)
	}
}
