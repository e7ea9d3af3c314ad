// Package embedding turns free text into fixed-dimension numeric vectors
// for semantic similarity search. Two providers are available: a local
// deterministic hashing vectorizer and an HTTP client for an external
// inference service. The provider handle is read-only after construction
// and safe for concurrent use.
package embedding

import (
	"context"
	"fmt"
	"math"

	"github.com/campusshare/campusshare/internal/config"
)

// Embedder converts free text into a numeric vector representation.
type Embedder interface {
	// Embed returns a vector embedding for the given text. Input longer
	// than the configured token budget is truncated, never rejected.
	Embed(ctx context.Context, text string) ([]float64, error)

	// Dimension returns the dimensionality of the produced vectors.
	Dimension() int
}

// New constructs the embedder selected by the configuration.
func New(cfg *config.Config) (Embedder, error) {
	switch cfg.Embedding.Provider {
	case "local":
		return NewLocalEmbedder(cfg.Embedding.Dimension, cfg.Embedding.MaxTokens), nil
	case "inference":
		return NewInferenceEmbedder(cfg)
	default:
		return nil, fmt.Errorf("embedding: unknown provider %q", cfg.Embedding.Provider)
	}
}

// Cosine computes the cosine similarity between two vectors, in [-1, 1].
// A zero vector on either side yields 0.
func Cosine(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, normA, normB float64
	for i := 0; i < n; i++ {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
