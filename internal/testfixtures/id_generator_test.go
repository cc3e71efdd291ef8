package testfixtures

import (
	"testing"

	"github.com/google/uuid"
)

func TestIDGeneratorSequential(t *testing.T) {
	gen := NewIDGenerator("")
	next := gen.NextFunc()

	if got := next(); got != "meeting-1" {
		t.Fatalf("expected meeting-1, got %q", got)
	}
	if got := gen.Next(); got != "meeting-2" {
		t.Fatalf("expected meeting-2, got %q", got)
	}
	if gen.Issued() != 2 {
		t.Fatalf("expected 2 issued ids, got %d", gen.Issued())
	}
}

func TestIDGeneratorUUID(t *testing.T) {
	gen := NewUUIDGenerator()

	first, second := gen.Next(), gen.Next()
	if first == second {
		t.Fatalf("expected distinct ids, got %q twice", first)
	}
	if _, err := uuid.Parse(first); err != nil {
		t.Fatalf("expected UUID, got %q: %v", first, err)
	}
}

func TestNilIDGeneratorFunc(t *testing.T) {
	var gen *IDGenerator
	if got := gen.NextFunc()(); got != "" {
		t.Fatalf("expected empty id from nil generator, got %q", got)
	}
}
