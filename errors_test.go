package querykit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/blockberries/querykit/types"
)

func TestIncompleteError(t *testing.T) {
	err := NewIncompleteError(types.FieldCreatedTime | types.FieldCreatorAccountID)
	if err.Missing != types.FieldQuery|types.FieldQueryCounter {
		t.Errorf("unexpected missing set: %s", err.Missing)
	}

	expected := "querykit: required fields are not set: Query|QueryCounter"
	if err.Error() != expected {
		t.Errorf("expected %q, got %q", expected, err.Error())
	}
}

func TestIsIncomplete(t *testing.T) {
	incErr := NewIncompleteError(0)

	// Direct.
	e, ok := IsIncomplete(incErr)
	if !ok {
		t.Fatal("expected IsIncomplete to return true")
	}
	if e.Missing != types.FieldsAll {
		t.Errorf("expected all fields missing, got %s", e.Missing)
	}

	// Wrapped.
	wrapped := fmt.Errorf("wrapped: %w", incErr)
	e2, ok2 := IsIncomplete(wrapped)
	if !ok2 {
		t.Fatal("expected IsIncomplete to unwrap wrapped error")
	}
	if e2.Missing != types.FieldsAll {
		t.Errorf("expected all fields missing, got %s", e2.Missing)
	}

	// Other errors.
	if _, ok3 := IsIncomplete(ErrStaleCounter); ok3 {
		t.Fatal("expected IsIncomplete to return false for sentinel error")
	}

	// Nil.
	if _, ok4 := IsIncomplete(nil); ok4 {
		t.Fatal("expected IsIncomplete to return false for nil")
	}
}

func TestSentinelsWrap(t *testing.T) {
	err := fmt.Errorf("server: %w", ErrInvalidSignature)
	if !errors.Is(err, ErrInvalidSignature) {
		t.Fatal("expected errors.Is to match wrapped sentinel")
	}
}
