package embeddings

import (
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// OpenAIModel implements Model using an OpenAI-compatible embeddings API
type OpenAIModel struct {
	client    *openai.Client
	model     openai.EmbeddingModel
	dimension int
}

// NewOpenAIModel creates a new OpenAI embedding model
func NewOpenAIModel(config Config) (*OpenAIModel, error) {
	if config.APIKey == "" {
		return nil, fmt.Errorf("api key is required for OpenAI embeddings")
	}

	model := openai.SmallEmbedding3
	if config.ModelName != "" {
		model = openai.EmbeddingModel(config.ModelName)
	}

	dimension := config.Dimension
	if dimension <= 0 {
		dimension = 1536
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIModel{
		client:    openai.NewClientWithConfig(clientConfig),
		model:     model,
		dimension: dimension,
	}, nil
}

// Embed implements Model.Embed
func (m *OpenAIModel) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))

	// Process texts in batches to avoid rate limits
	batchSize := 20
	for i := 0; i < len(texts); i += batchSize {
		end := i + batchSize
		if end > len(texts) {
			end = len(texts)
		}

		batchEmbeddings, err := m.embedBatch(ctx, texts[i:end])
		if err != nil {
			return nil, fmt.Errorf("failed to embed batch: %w", err)
		}
		copy(embeddings[i:end], batchEmbeddings)
	}

	return embeddings, nil
}

func (m *OpenAIModel) embedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := m.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: m.model,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create embeddings: %w", err)
	}

	embeddings := make([][]float32, len(texts))
	for i, data := range resp.Data {
		if len(data.Embedding) != m.dimension {
			return nil, fmt.Errorf("unexpected embedding dimension: got %d, want %d", len(data.Embedding), m.dimension)
		}
		embeddings[i] = data.Embedding
	}
	return embeddings, nil
}

// Dimension implements Model.Dimension
func (m *OpenAIModel) Dimension() int {
	return m.dimension
}

// Close implements Model.Close
func (m *OpenAIModel) Close() error {
	return nil // HTTP client doesn't need explicit cleanup
}
