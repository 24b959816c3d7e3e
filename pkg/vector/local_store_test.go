package vector

import (
	"context"
	"testing"
)

func TestLocalStoreInsertAndSearch(t *testing.T) {
	store, err := NewLocalStore(3)
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	ctx := context.Background()

	docs := []Document{
		{ID: "a", Content: "exact", Vector: Vector{1, 0, 0}},
		{ID: "b", Content: "orthogonal", Vector: Vector{0, 1, 0}},
		{ID: "c", Content: "close", Vector: Vector{0.9, 0.1, 0}},
	}
	if err := store.Insert(ctx, docs...); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if store.Len() != 3 {
		t.Errorf("Len = %d, want 3", store.Len())
	}

	results, err := store.Search(ctx, Vector{1, 0, 0}, 2)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Document.ID != "a" || results[1].Document.ID != "c" {
		t.Errorf("result order = %s, %s; want a, c", results[0].Document.ID, results[1].Document.ID)
	}
	if results[0].Score < results[1].Score {
		t.Error("results not sorted by score descending")
	}
}

func TestLocalStoreDimensionChecks(t *testing.T) {
	store, err := NewLocalStore(4)
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	ctx := context.Background()

	if err := store.Insert(ctx, Document{ID: "bad", Vector: Vector{1, 2}}); err == nil {
		t.Error("Insert with wrong dimension must fail")
	}
	if _, err := store.Search(ctx, Vector{1}, 1); err == nil {
		t.Error("Search with wrong dimension must fail")
	}
}

func TestLocalStoreInvalidDimension(t *testing.T) {
	if _, err := NewLocalStore(0); err == nil {
		t.Error("NewLocalStore(0) must fail")
	}
}

func TestLocalStoreClear(t *testing.T) {
	store, err := NewLocalStore(2)
	if err != nil {
		t.Fatalf("NewLocalStore failed: %v", err)
	}
	ctx := context.Background()

	if err := store.Insert(ctx, Document{ID: "x", Vector: Vector{1, 1}}); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len after Clear = %d, want 0", store.Len())
	}
}
