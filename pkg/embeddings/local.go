package embeddings

import (
	"context"
	"fmt"
	"hash/fnv"
	"math"
	"strings"
)

// LocalModel implements Model with deterministic token-hash embeddings. It
// needs no network access, which keeps the policy index usable offline and in
// tests; quality is well below a hosted model.
type LocalModel struct {
	dimension int
}

// NewLocalModel creates a new local embedding model
func NewLocalModel(dimension int) (*LocalModel, error) {
	if dimension == 0 {
		dimension = 384
	}
	if dimension < 0 {
		return nil, fmt.Errorf("dimension must be positive")
	}
	return &LocalModel{dimension: dimension}, nil
}

// Embed implements Model.Embed
func (m *LocalModel) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	embeddings := make([][]float32, len(texts))
	for i, text := range texts {
		embeddings[i] = m.hashToVector(text)
	}
	return embeddings, nil
}

// hashToVector builds a bag-of-words vector by hashing each token into a
// bucket, then normalizes it so cosine similarity behaves.
func (m *LocalModel) hashToVector(text string) []float32 {
	vec := make([]float32, m.dimension)

	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,;:!?\"'()[]")
		if word == "" {
			continue
		}
		h := fnv.New64a()
		h.Write([]byte(word))
		hash := h.Sum64()

		bucket := int(hash % uint64(m.dimension))
		// Half the hash space contributes negatively so vectors spread out
		if (hash>>32)&1 == 0 {
			vec[bucket] += 1
		} else {
			vec[bucket] -= 1
		}
	}

	var sum float64
	for _, v := range vec {
		sum += float64(v * v)
	}
	if norm := float32(math.Sqrt(sum)); norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Dimension implements Model.Dimension
func (m *LocalModel) Dimension() int {
	return m.dimension
}

// Close implements Model.Close
func (m *LocalModel) Close() error {
	return nil // Nothing to close
}
