package errx

import (
	"errors"
	"fmt"
	"testing"
)

func TestUsage(t *testing.T) {
	t.Parallel()

	err := Usage("invalid amount %d", 0)
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("Usage() error does not match ErrUsage: %v", err)
	}
	if got, want := err.Error(), "invalid amount 0: usage error"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestExitCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: 0},
		{name: "usage", err: Usage("bad flag"), want: 2},
		{name: "wrapped usage", err: fmt.Errorf("fetch: %w", Usage("bad flag")), want: 2},
		{name: "other", err: errors.New("boom"), want: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
