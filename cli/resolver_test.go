package cli

import (
	"strings"
	"testing"

	"github.com/alecthomas/kong"
)

func resolverFrom(t *testing.T, content string) kong.Resolver {
	t.Helper()

	r, err := resolve(strings.NewReader(content))
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}

	return r
}

func resolveFlag(
	t *testing.T,
	r kong.Resolver,
	name string,
) any {
	t.Helper()

	value, err := r.Resolve(nil, nil, &kong.Flag{
		Value: &kong.Value{Name: name},
	})
	if err != nil {
		t.Fatalf("resolve flag %q: %v", name, err)
	}

	return value
}

func TestResolve_FlagLookup(t *testing.T) {
	r := resolverFrom(t, `
log-level: debug
log_format: json
log_pretty: true
`)

	tests := []struct {
		name     string
		flag     string
		expected any
	}{
		{"hyphenated key", "log-level", "debug"},
		{"underscore key via hyphen flag", "log-format", "json"},
		{"boolean value", "log-pretty", true},
		{"missing flag", "log-caller", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := resolveFlag(t, r, tt.flag); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestResolve_NumbersBecomeStrings(t *testing.T) {
	r := resolverFrom(t, `
timeout: 42
ratio: 1.5
`)

	if got := resolveFlag(t, r, "timeout"); got != "42" {
		t.Errorf("expected %q, got %v (%T)", "42", got, got)
	}

	if got := resolveFlag(t, r, "ratio"); got != "1.5" {
		t.Errorf("expected %q, got %v (%T)", "1.5", got, got)
	}
}

func TestResolve_MalformedConfigIgnored(t *testing.T) {
	r := resolverFrom(t, ":\nnot yaml: [unclosed")

	if got := resolveFlag(t, r, "log-level"); got != nil {
		t.Errorf("expected nil from malformed config, got %v", got)
	}
}

func TestResolve_Validate(t *testing.T) {
	r := resolverFrom(t, "log-level: info")

	if err := r.Validate(nil); err != nil {
		t.Errorf("expected nil validation error, got %v", err)
	}
}
