package pkg

import "testing"

func TestVersionNotEmpty(t *testing.T) {
	if Version == "" {
		t.Fatal("embedded version is empty")
	}
}

func TestNameIsIdentifier(t *testing.T) {
	for _, r := range Name {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			t.Fatalf("name %q contains unexpected rune %q", Name, r)
		}
	}
}
