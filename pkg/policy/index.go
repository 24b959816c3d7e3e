package policy

import (
	"context"
	"fmt"
	"strings"

	"github.com/harshinharshi/medical-chatbot/pkg/embeddings"
	"github.com/harshinharshi/medical-chatbot/pkg/vector"
)

// Index holds the hospital policy fragments behind a similarity search.
type Index struct {
	store    vector.Store
	embedder embeddings.Model
}

// NewIndex creates an empty policy index backed by the given embedder and an
// in-memory vector store.
func NewIndex(embedder embeddings.Model) (*Index, error) {
	if embedder == nil {
		return nil, fmt.Errorf("embedder is required")
	}
	store, err := vector.NewLocalStore(embedder.Dimension())
	if err != nil {
		return nil, fmt.Errorf("failed to create vector store: %w", err)
	}
	return &Index{store: store, embedder: embedder}, nil
}

// Build loads the policy document at pdfPath (or the embedded fallback),
// splits it into chunks and indexes them. Returns the number of chunks and
// whether the fallback text was used.
func (idx *Index) Build(ctx context.Context, pdfPath string) (chunks int, fromFallback bool, err error) {
	content, fromFallback := LoadContent(pdfPath)

	parts := SplitText(content, defaultChunkSize, defaultChunkOverlap)
	if err := idx.AddTexts(ctx, parts); err != nil {
		return 0, fromFallback, err
	}
	return len(parts), fromFallback, nil
}

// AddTexts embeds and indexes the given text fragments.
func (idx *Index) AddTexts(ctx context.Context, texts []string) error {
	if len(texts) == 0 {
		return nil
	}

	vectors, err := idx.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed policy chunks: %w", err)
	}

	docs := make([]vector.Document, len(texts))
	for i, text := range texts {
		docs[i] = vector.Document{
			ID:      fmt.Sprintf("chunk-%04d", idx.store.Len()+i),
			Content: text,
			Vector:  vectors[i],
		}
	}

	if err := idx.store.Insert(ctx, docs...); err != nil {
		return fmt.Errorf("failed to index policy chunks: %w", err)
	}
	return nil
}

// Search returns up to limit policy fragments most similar to the query,
// best match first.
func (idx *Index) Search(ctx context.Context, query string, limit int) ([]string, error) {
	if idx.store.Len() == 0 {
		return nil, nil
	}

	vectors, err := idx.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}

	results, err := idx.store.Search(ctx, vectors[0], limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search policy index: %w", err)
	}

	fragments := make([]string, 0, len(results))
	for _, r := range results {
		if strings.TrimSpace(r.Document.Content) == "" {
			continue
		}
		fragments = append(fragments, r.Document.Content)
	}
	return fragments, nil
}
