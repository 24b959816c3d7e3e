package embeddings

import (
	"context"
	"fmt"
)

// Model represents a text embedding model
type Model interface {
	// Embed generates embeddings for the given texts
	Embed(ctx context.Context, texts []string) ([][]float32, error)

	// Dimension returns the dimension of the embeddings
	Dimension() int

	// Close releases any resources used by the model
	Close() error
}

// Config holds configuration for embedding models
type Config struct {
	Type      string // "openai" or "local"
	APIKey    string
	BaseURL   string
	ModelName string
	Dimension int
}

// NewModel creates a new embedding model based on config
func NewModel(config Config) (Model, error) {
	switch config.Type {
	case "openai":
		return NewOpenAIModel(config)
	case "local", "":
		return NewLocalModel(config.Dimension)
	default:
		return nil, fmt.Errorf("unsupported embedding model type: %s", config.Type)
	}
}
