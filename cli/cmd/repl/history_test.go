package repl

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func tempHistory(t *testing.T) *History {
	t.Helper()

	return NewHistory(filepath.Join(t.TempDir(), "history"))
}

func TestHistory_LoadMissingFile(t *testing.T) {
	h := tempHistory(t)

	if err := h.Load(); err != nil {
		t.Fatalf("expected missing file tolerated, got %v", err)
	}

	if h.Len() != 0 {
		t.Errorf("expected empty history, got %d entries", h.Len())
	}
}

func TestHistory_WriteAndGet(t *testing.T) {
	h := tempHistory(t)

	for _, entry := range []string{"a + b", "name", "env('HOME')"} {
		if _, err := h.Write(entry); err != nil {
			t.Fatalf("write error: %v", err)
		}
	}

	if h.Len() != 3 {
		t.Fatalf("expected 3 entries, got %d", h.Len())
	}

	line, err := h.GetLine(1)
	if err != nil {
		t.Fatalf("get error: %v", err)
	}

	if line != "name" {
		t.Errorf("expected %q, got %q", "name", line)
	}
}

func TestHistory_GetLineOutOfBounds(t *testing.T) {
	h := tempHistory(t)

	for _, i := range []int{-1, 0, 5} {
		if _, err := h.GetLine(i); !errors.Is(err, ErrOutOfBounds) {
			t.Errorf("index %d: expected ErrOutOfBounds, got %v", i, err)
		}
	}
}

func TestHistory_SkipsBlankAndRepeated(t *testing.T) {
	h := tempHistory(t)

	_, _ = h.Write("same")
	_, _ = h.Write("")
	_, _ = h.Write("   ")
	_, _ = h.Write("same")

	if h.Len() != 1 {
		t.Errorf("expected 1 entry, got %d: %v", h.Len(), h.Entries())
	}
}

func TestHistory_DeduplicatesOlderEntry(t *testing.T) {
	h := tempHistory(t)

	_, _ = h.Write("first")
	_, _ = h.Write("second")
	_, _ = h.Write("first")

	expected := []string{"second", "first"}
	if !reflect.DeepEqual(h.Entries(), expected) {
		t.Errorf("expected %v, got %v", expected, h.Entries())
	}
}

func TestHistory_PersistsAcrossLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	h := NewHistory(path)
	_, _ = h.Write("persisted")
	_, _ = h.Write("entries")

	reloaded := NewHistory(path)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	expected := []string{"persisted", "entries"}
	if !reflect.DeepEqual(reloaded.Entries(), expected) {
		t.Errorf("expected %v, got %v", expected, reloaded.Entries())
	}
}

func TestHistory_LoadSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history")

	if err := os.WriteFile(path, []byte("one\n\n  \ntwo\n"), 0o600); err != nil {
		t.Fatalf("write history: %v", err)
	}

	h := NewHistory(path)
	if err := h.Load(); err != nil {
		t.Fatalf("load error: %v", err)
	}

	expected := []string{"one", "two"}
	if !reflect.DeepEqual(h.Entries(), expected) {
		t.Errorf("expected %v, got %v", expected, h.Entries())
	}
}
