package opentdb

import (
	"errors"
	"testing"
)

func TestNewRequest_ValidatesAmount(t *testing.T) {
	t.Parallel()

	for _, amount := range []int{0, -1, -50} {
		if _, err := NewRequest(amount); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("NewRequest(%d) error = %v, want ErrInvalidAmount", amount, err)
		}
		if _, err := NewRequestBuilder(amount); !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("NewRequestBuilder(%d) error = %v, want ErrInvalidAmount", amount, err)
		}
	}

	req, err := NewRequest(10)
	if err != nil {
		t.Fatalf("NewRequest(10) error = %v", err)
	}
	if req.Amount() != 10 {
		t.Fatalf("Amount() = %d, want 10", req.Amount())
	}
	if req.Category() != nil || req.Type() != "" || req.Difficulty() != "" {
		t.Fatalf("NewRequest(10) should carry no filters, got %+v", req)
	}
}

func TestRequestBuilder_Filters(t *testing.T) {
	t.Parallel()

	cat := Category{ID: 9, Name: "General Knowledge"}

	b, err := NewRequestBuilder(5)
	if err != nil {
		t.Fatalf("NewRequestBuilder(5) error = %v", err)
	}
	req := b.FromCategory(&cat).OfType(TypeMultiple).OfDifficulty(DifficultyHard).Build()

	if got := req.Category(); got == nil || *got != cat {
		t.Fatalf("Category() = %v, want %v", got, cat)
	}
	if req.Type() != TypeMultiple {
		t.Fatalf("Type() = %q, want %q", req.Type(), TypeMultiple)
	}
	if req.Difficulty() != DifficultyHard {
		t.Fatalf("Difficulty() = %q, want %q", req.Difficulty(), DifficultyHard)
	}
}

func TestRequestBuilder_ClearsFilters(t *testing.T) {
	t.Parallel()

	cat := Category{ID: 18, Name: "Science: Computers"}

	b, err := NewRequestBuilder(3)
	if err != nil {
		t.Fatalf("NewRequestBuilder(3) error = %v", err)
	}
	req := b.
		FromCategory(&cat).OfType(TypeBoolean).OfDifficulty(DifficultyEasy).
		FromCategory(nil).OfType("").OfDifficulty("").
		Build()

	if req.Category() != nil {
		t.Fatalf("Category() = %v, want nil", req.Category())
	}
	if req.Type() != "" {
		t.Fatalf("Type() = %q, want empty", req.Type())
	}
	if req.Difficulty() != "" {
		t.Fatalf("Difficulty() = %q, want empty", req.Difficulty())
	}
}

func TestRequest_SnapshotIsImmutable(t *testing.T) {
	t.Parallel()

	cat := Category{ID: 9, Name: "General Knowledge"}
	b, err := NewRequestBuilder(1)
	if err != nil {
		t.Fatalf("NewRequestBuilder(1) error = %v", err)
	}
	req := b.FromCategory(&cat).Build()

	// Mutating the builder after Build must not affect the snapshot.
	b.FromCategory(nil).OfType(TypeBoolean)
	if got := req.Category(); got == nil || got.ID != 9 {
		t.Fatalf("Category() after builder mutation = %v, want id 9", got)
	}
	if req.Type() != "" {
		t.Fatalf("Type() after builder mutation = %q, want empty", req.Type())
	}
}
