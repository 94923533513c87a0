package tmpl

import (
	"errors"
	"testing"
)

func TestNewMatcher_EmptyMarker(t *testing.T) {
	tests := []struct {
		name        string
		open, close string
	}{
		{"empty open", "", "}"},
		{"empty close", "{", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newMatcher(tt.open, tt.close)
			if !errors.Is(err, ErrEmptyDelimiter) {
				t.Errorf("expected ErrEmptyDelimiter, got %v", err)
			}
		})
	}
}

func TestMatcher_FindAll(t *testing.T) {
	m, err := newMatcher("{", "}")
	if err != nil {
		t.Fatalf("matcher error: %v", err)
	}

	tests := []struct {
		name  string
		text  string
		exprs []string
	}{
		{"none", "plain text", nil},
		{"single", "a {x} b", []string{"x"}},
		{"multiple", "{x}{y} {z}", []string{"x", "y", "z"}},
		{"trimmed", "{  x + y  }", []string{"x + y"}},
		{"unterminated ignored", "{x} and {y", []string{"x"}},
		{"spans newlines", "{x +\ny}", []string{"x +\ny"}},
		{"empty region", "{}", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			regions := m.findAll(tt.text)

			if len(regions) != len(tt.exprs) {
				t.Fatalf(
					"expected %d regions, got %d", len(tt.exprs), len(regions),
				)
			}

			for i, r := range regions {
				if r.expr != tt.exprs[i] {
					t.Errorf(
						"region %d: expected %q, got %q", i, tt.exprs[i], r.expr,
					)
				}
			}
		})
	}
}

func TestMatcher_NonGreedy(t *testing.T) {
	m, err := newMatcher("{", "}")
	if err != nil {
		t.Fatalf("matcher error: %v", err)
	}

	// The open marker pairs with the NEXT close marker, so a nested open
	// is treated as expression text and the trailing close as literal.
	regions := m.findAll("{a {b} c}")

	if len(regions) != 1 {
		t.Fatalf("expected 1 region, got %d", len(regions))
	}

	if regions[0].expr != "a {b" {
		t.Errorf("expected %q, got %q", "a {b", regions[0].expr)
	}
}

func TestMatcher_RegexMetaMarkers(t *testing.T) {
	m, err := newMatcher("${", "}")
	if err != nil {
		t.Fatalf("matcher error: %v", err)
	}

	regions := m.findAll("cost: ${price * 2} total")

	if len(regions) != 1 || regions[0].expr != "price * 2" {
		t.Fatalf("expected one region 'price * 2', got %+v", regions)
	}
}

func TestMatcher_MatchWhole(t *testing.T) {
	m, err := newMatcher("{", "}")
	if err != nil {
		t.Fatalf("matcher error: %v", err)
	}

	tests := []struct {
		name string
		text string
		expr string
		ok   bool
	}{
		{"exact", "{x}", "x", true},
		{"surrounding whitespace", "  {x}\n", "x", true},
		{"leading text", "a{x}", "", false},
		{"trailing text", "{x}b", "", false},
		{"two regions", "{x}{y}", "", false},
		{"no region", "plain", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, ok := m.matchWhole(tt.text)
			if ok != tt.ok {
				t.Fatalf("expected ok=%v, got %v", tt.ok, ok)
			}

			if expr != tt.expr {
				t.Errorf("expected expr %q, got %q", tt.expr, expr)
			}
		})
	}
}
