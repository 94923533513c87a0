package repl

import (
	"testing"

	"github.com/charmbracelet/bubbles/textinput"
)

func TestWordBounds(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		cursor int
		word   string
		start  int
		end    int
	}{
		{"empty input", "", 0, "", 0, 0},
		{"whole word", "name", 4, "name", 0, 4},
		{"cursor mid-word", "name", 2, "name", 0, 4},
		{"after operator", "a + na", 6, "na", 4, 6},
		{"after dot", "file.ex", 7, "ex", 5, 7},
		{"cursor on boundary", "a + b", 3, "", 3, 3},
		{"cursor past end clamped", "ab", 10, "ab", 0, 2},
		{"parenthesized", "f(arg)", 5, "arg", 2, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			word, start, end := wordBounds(tt.input, tt.cursor)

			if word != tt.word || start != tt.start || end != tt.end {
				t.Errorf(
					"expected (%q, %d, %d), got (%q, %d, %d)",
					tt.word, tt.start, tt.end, word, start, end,
				)
			}
		})
	}
}

func testModel(candidates []string, mode inputMode, input string) model {
	ti := textinput.New()
	ti.SetValue(input)
	ti.SetCursor(len(input))

	return model{
		input:      ti,
		candidates: candidates,
		mode:       mode,
	}
}

func TestComputeMatches_EvalMode(t *testing.T) {
	m := testModel([]string{"name", "number", "env"}, modeEval, "na")

	matches, start, end := m.computeMatches()

	if len(matches) == 0 {
		t.Fatal("expected fuzzy matches for 'na'")
	}

	if matches[0].Str != "name" {
		t.Errorf("expected best match 'name', got %q", matches[0].Str)
	}

	if start != 0 || end != 2 {
		t.Errorf("expected word bounds (0, 2), got (%d, %d)", start, end)
	}
}

func TestComputeMatches_EmptyWord(t *testing.T) {
	m := testModel([]string{"name"}, modeEval, "")

	if matches, _, _ := m.computeMatches(); matches != nil {
		t.Errorf("expected no matches for empty word, got %v", matches)
	}
}

func TestComputeMatches_AfterDotSkipped(t *testing.T) {
	m := testModel([]string{"file", "exists"}, modeEval, "file.ex")

	if matches, _, _ := m.computeMatches(); matches != nil {
		t.Errorf("expected no member-access completion, got %v", matches)
	}
}

func TestComputeMatches_CtrlMode(t *testing.T) {
	m := testModel([]string{"name"}, modeCtrl, "he")

	matches, _, _ := m.computeMatches()

	if len(matches) == 0 || matches[0].Str != "help" {
		t.Errorf("expected ctrl command 'help', got %v", matches)
	}
}

func TestRenderCandidateBar_Ellipsizes(t *testing.T) {
	m := testModel(
		[]string{
			"alphabet", "alphanumeric", "albatross", "alabaster", "alchemy",
		},
		modeEval,
		"al",
	)

	matches, _, _ := m.computeMatches()
	if len(matches) < 3 {
		t.Fatalf("expected several matches, got %d", len(matches))
	}

	bar := renderCandidateBar(matches, -1, false, 24)
	if bar == "" {
		t.Fatal("expected non-empty candidate bar")
	}

	full := renderCandidateBar(matches, -1, false, 1000)
	if len(bar) >= len(full) {
		t.Errorf("expected narrow bar shorter than full bar")
	}
}

func TestRenderCandidateBar_Empty(t *testing.T) {
	if bar := renderCandidateBar(nil, 0, false, 80); bar != "" {
		t.Errorf("expected empty bar, got %q", bar)
	}
}
