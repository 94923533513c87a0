package tmpl

import (
	"errors"
	"log/slog"
	"testing"
)

func TestError_Message(t *testing.T) {
	cause := errors.New("cause")

	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{"message only", NewError("boom"), "boom"},
		{"message and cause", NewError("boom").Wrap(cause), "boom: cause"},
		{"cause only", WrapError(cause), "cause"},
		{"empty", &Error{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestError_SentinelMatching(t *testing.T) {
	cause := errors.New("cause")

	derived := ErrExecute.Wrap(cause).With(slog.String("k", "v"))

	if !errors.Is(derived, ErrExecute) {
		t.Error("derived error must match its sentinel")
	}

	if !errors.Is(derived, cause) {
		t.Error("derived error must match its wrapped cause")
	}

	if errors.Is(derived, ErrCompile) {
		t.Error("derived error must not match a different sentinel")
	}
}

func TestError_WrapPreservesOriginal(t *testing.T) {
	derived := ErrExecute.Wrap(errors.New("cause"))

	if ErrExecute.Unwrap() != nil {
		t.Error("wrapping must not mutate the sentinel")
	}

	if derived == ErrExecute {
		t.Error("wrap must return a new instance")
	}
}
