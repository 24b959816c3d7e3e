package vector

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
)

// LocalStore implements an in-memory vector store with cosine similarity
type LocalStore struct {
	mu        sync.RWMutex
	docs      map[string]Document
	dimension int
}

// NewLocalStore creates a new local vector store for vectors of the given dimension
func NewLocalStore(dimension int) (*LocalStore, error) {
	if dimension <= 0 {
		return nil, fmt.Errorf("dimension must be positive")
	}
	return &LocalStore{
		docs:      make(map[string]Document),
		dimension: dimension,
	}, nil
}

func (s *LocalStore) Insert(ctx context.Context, docs ...Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, doc := range docs {
		if len(doc.Vector) != s.dimension {
			return fmt.Errorf("vector dimension mismatch: expected %d, got %d", s.dimension, len(doc.Vector))
		}
		s.docs[doc.ID] = doc
	}
	return nil
}

func (s *LocalStore) Search(ctx context.Context, queryVector Vector, limit int) ([]SearchResult, error) {
	if len(queryVector) != s.dimension {
		return nil, fmt.Errorf("query vector dimension mismatch: expected %d, got %d", s.dimension, len(queryVector))
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	results := make([]SearchResult, 0, len(s.docs))
	for _, doc := range s.docs {
		results = append(results, SearchResult{
			Document: doc,
			Score:    cosineSimilarity(queryVector, doc.Vector),
		})
	}

	// Sort by score descending, document ID as tie-break so results are stable
	sort.Slice(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Document.ID < results[j].Document.ID
	})

	if limit > 0 && limit < len(results) {
		results = results[:limit]
	}
	return results, nil
}

func (s *LocalStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

func (s *LocalStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs = make(map[string]Document)
	return nil
}

func (s *LocalStore) Close() error {
	return nil // Nothing to close for in-memory store
}

func cosineSimilarity(a, b Vector) float32 {
	dot := float64(0)
	normA := float64(0)
	normB := float64(0)

	for i := 0; i < len(a); i++ {
		dot += float64(a[i] * b[i])
		normA += float64(a[i] * a[i])
		normB += float64(b[i] * b[i])
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return float32(dot / (math.Sqrt(normA) * math.Sqrt(normB)))
}
