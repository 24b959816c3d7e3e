package policy

import (
	"context"
	"reflect"
	"testing"

	"github.com/harshinharshi/medical-chatbot/pkg/embeddings"
)

func newTestIndex(t *testing.T) *Index {
	t.Helper()

	embedder, err := embeddings.NewLocalModel(128)
	if err != nil {
		t.Fatalf("failed to create embedder: %v", err)
	}
	index, err := NewIndex(embedder)
	if err != nil {
		t.Fatalf("failed to create index: %v", err)
	}
	return index
}

func TestIndexSearchReturnsRelevantFragment(t *testing.T) {
	index := newTestIndex(t)
	ctx := context.Background()

	err := index.AddTexts(ctx, []string{
		"Visiting hours are before and after the round of doctor.",
		"Medicine dispensing requires verification by the nursing staff.",
		"Bed transfers must be approved by the ward sister.",
	})
	if err != nil {
		t.Fatalf("AddTexts failed: %v", err)
	}

	fragments, err := index.Search(ctx, "what are the visiting hours", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(fragments) == 0 {
		t.Fatal("no fragments returned")
	}
	if fragments[0] != "Visiting hours are before and after the round of doctor." {
		t.Errorf("best match = %q", fragments[0])
	}
}

func TestIndexSearchIsIdempotent(t *testing.T) {
	index := newTestIndex(t)
	ctx := context.Background()

	if err := index.AddTexts(ctx, []string{"alpha policy", "beta policy", "gamma policy"}); err != nil {
		t.Fatalf("AddTexts failed: %v", err)
	}

	first, err := index.Search(ctx, "beta", 2)
	if err != nil {
		t.Fatalf("first Search failed: %v", err)
	}
	second, err := index.Search(ctx, "beta", 2)
	if err != nil {
		t.Fatalf("second Search failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Errorf("searches differ: %v vs %v", first, second)
	}
}

func TestIndexSearchEmptyIndex(t *testing.T) {
	index := newTestIndex(t)

	fragments, err := index.Search(context.Background(), "anything", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(fragments) != 0 {
		t.Errorf("empty index returned fragments: %v", fragments)
	}
}

func TestIndexBuildFallsBackWithoutPDF(t *testing.T) {
	index := newTestIndex(t)

	chunks, fromFallback, err := index.Build(context.Background(), "does/not/exist.pdf")
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if !fromFallback {
		t.Error("expected fallback content to be used")
	}
	if chunks == 0 {
		t.Error("fallback content produced no chunks")
	}

	fragments, err := index.Search(context.Background(), "visiting hours for children", 3)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(fragments) == 0 {
		t.Error("fallback index returned no fragments")
	}
}
