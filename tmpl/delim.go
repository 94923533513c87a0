package tmpl

import (
	"log/slog"
	"regexp"
	"strings"
)

// matcher locates delimited expression regions in template text.
//
// Matching is non-greedy and non-nesting: scanning left to right, each
// occurrence of the open marker pairs with the next occurrence of the
// close marker, irrespective of any further open markers in between.
type matcher struct {
	open  string
	close string
	rex   *regexp.Regexp
}

// newMatcher builds a matcher for the given literal marker pair.
// The markers are quoted before constructing the pattern so characters
// with regexp meaning (e.g. "${") are treated as plain text.
func newMatcher(open, close string) (*matcher, error) {
	if open == "" || close == "" {
		return nil, ErrEmptyDelimiter.With(
			slog.String("open", open),
			slog.String("close", close),
		)
	}

	rex := regexp.MustCompile(
		`(?s)` + regexp.QuoteMeta(open) + `(.*?)` + regexp.QuoteMeta(close),
	)

	return &matcher{open: open, close: close, rex: rex}, nil
}

// region is one delimited match within a template.
type region struct {
	start int    // byte offset of the open marker
	end   int    // byte offset just past the close marker
	expr  string // trimmed expression text between the markers
}

// findAll returns every non-overlapping delimited region in text, in
// order of appearance. A pure scan with no side effects.
func (m *matcher) findAll(text string) []region {
	idx := m.rex.FindAllStringSubmatchIndex(text, -1)
	if len(idx) == 0 {
		return nil
	}

	regions := make([]region, 0, len(idx))

	for _, loc := range idx {
		regions = append(regions, region{
			start: loc[0],
			end:   loc[1],
			expr:  strings.TrimSpace(text[loc[2]:loc[3]]),
		})
	}

	return regions
}

// matchWhole reports whether the trimmed text is exactly one delimited
// region spanning the entire string, returning its expression text.
// Raw-value rendering is only permitted for such templates.
func (m *matcher) matchWhole(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)

	loc := m.rex.FindStringSubmatchIndex(trimmed)
	if loc == nil || loc[0] != 0 || loc[1] != len(trimmed) {
		return "", false
	}

	return strings.TrimSpace(trimmed[loc[2]:loc[3]]), true
}
