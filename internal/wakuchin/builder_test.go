package wakuchin

import (
	"context"
	"errors"
	"regexp"
	"testing"
)

func TestBuilderRejectsMissingFields(t *testing.T) {
	_, err := NewBuilder().Tries(10).RunParallel(context.Background())
	if !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration when times/regex unset, got %v", err)
	}
}

func TestBuilderRunsOnceFullyConfigured(t *testing.T) {
	result, err := NewBuilder().
		Tries(200).
		Times(1).
		Regex(regexp.MustCompile(".*")).
		RunSequential(context.Background())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.HitsTotal != 200 {
		t.Errorf("expected 200 hits, got %d", result.HitsTotal)
	}
}

func TestBuilderDefaultsToNoopHandler(t *testing.T) {
	b := NewBuilder()
	if b.handler == nil {
		t.Fatal("expected a default non-nil handler")
	}
	if _, ok := b.handler.(noopHandler); !ok {
		t.Errorf("expected default handler to be noopHandler, got %T", b.handler)
	}
}
