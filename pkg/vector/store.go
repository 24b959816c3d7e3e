package vector

import "context"

// Vector represents a high-dimensional embedding vector
type Vector []float32

// Document represents a text fragment with its vector embedding
type Document struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Vector  Vector `json:"vector"`
}

// SearchResult represents a search result with similarity score
type SearchResult struct {
	Document Document `json:"document"`
	Score    float32  `json:"score"`
}

// Store defines the interface for vector storage implementations
type Store interface {
	// Insert adds documents to the store
	Insert(ctx context.Context, docs ...Document) error

	// Search finds the documents most similar to the query vector
	Search(ctx context.Context, queryVector Vector, limit int) ([]SearchResult, error)

	// Len returns the number of stored documents
	Len() int

	// Clear removes all documents from the store
	Clear(ctx context.Context) error

	// Close closes the store
	Close() error
}
