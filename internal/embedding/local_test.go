package embedding_test

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusshare/campusshare/internal/embedding"
)

func TestLocalEmbedder_Embed(t *testing.T) {
	ctx := context.Background()
	embedder := embedding.NewLocalEmbedder(256, 128)

	t.Run("produces vectors of the configured dimension", func(t *testing.T) {
		vec, err := embedder.Embed(ctx, "book Intro to Algorithms CLRS copy")
		require.NoError(t, err)
		assert.Len(t, vec, 256)
		assert.Equal(t, 256, embedder.Dimension())
	})

	t.Run("is deterministic for the same input", func(t *testing.T) {
		first, err := embedder.Embed(ctx, "hardware Arduino starter kit")
		require.NoError(t, err)
		second, err := embedder.Embed(ctx, "hardware Arduino starter kit")
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("vectors are L2 normalized", func(t *testing.T) {
		vec, err := embedder.Embed(ctx, "notes linear algebra lecture notes")
		require.NoError(t, err)

		norm := 0.0
		for _, v := range vec {
			norm += v * v
		}
		assert.InDelta(t, 1.0, math.Sqrt(norm), 1e-9)
	})

	t.Run("empty text embeds to the zero vector", func(t *testing.T) {
		vec, err := embedder.Embed(ctx, "")
		require.NoError(t, err)
		for _, v := range vec {
			assert.Zero(t, v)
		}
	})

	t.Run("stopword-only text embeds to the zero vector", func(t *testing.T) {
		vec, err := embedder.Embed(ctx, "the and of a")
		require.NoError(t, err)
		assert.Zero(t, embedding.Cosine(vec, vec))
	})

	t.Run("input beyond the token budget is truncated, not rejected", func(t *testing.T) {
		small := embedding.NewLocalEmbedder(64, 4)

		long := "physics textbook mechanics waves optics thermodynamics relativity"
		truncated := "physics textbook mechanics waves"

		longVec, err := small.Embed(ctx, long)
		require.NoError(t, err)
		truncVec, err := small.Embed(ctx, truncated)
		require.NoError(t, err)

		assert.Equal(t, truncVec, longVec)
	})

	t.Run("subword overlap carries related wording over the midpoint", func(t *testing.T) {
		resource, err := embedder.Embed(ctx, "book Intro to Algorithms CLRS copy")
		require.NoError(t, err)
		query, err := embedder.Embed(ctx, "algorithms textbook")
		require.NoError(t, err)

		// "textbook" and "book" share no whole token, but their trigrams
		// overlap, so the pair still clears a 0.5 cutoff
		assert.Greater(t, embedding.Cosine(resource, query), 0.5)
	})

	t.Run("overlapping texts score higher than unrelated ones", func(t *testing.T) {
		resource, err := embedder.Embed(ctx, "book Intro to Algorithms CLRS copy")
		require.NoError(t, err)
		related, err := embedder.Embed(ctx, "intro algorithms clrs")
		require.NoError(t, err)
		unrelated, err := embedder.Embed(ctx, "guitar amplifier cable")
		require.NoError(t, err)

		assert.Greater(t,
			embedding.Cosine(resource, related),
			embedding.Cosine(resource, unrelated))
	})

	t.Run("case and punctuation do not change the embedding", func(t *testing.T) {
		a, err := embedder.Embed(ctx, "Calculus Notes, Semester One!")
		require.NoError(t, err)
		b, err := embedder.Embed(ctx, strings.ToLower("calculus notes semester one"))
		require.NoError(t, err)
		assert.Equal(t, a, b)
	})
}

func TestCosine(t *testing.T) {
	t.Run("identical vectors score 1", func(t *testing.T) {
		v := []float64{0.6, 0.8}
		assert.InDelta(t, 1.0, embedding.Cosine(v, v), 1e-9)
	})

	t.Run("orthogonal vectors score 0", func(t *testing.T) {
		assert.InDelta(t, 0.0, embedding.Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	})

	t.Run("opposite vectors score -1", func(t *testing.T) {
		assert.InDelta(t, -1.0, embedding.Cosine([]float64{1, 2}, []float64{-1, -2}), 1e-9)
	})

	t.Run("zero vector scores 0", func(t *testing.T) {
		assert.Zero(t, embedding.Cosine([]float64{0, 0}, []float64{1, 1}))
	})
}

func TestVectorCodec(t *testing.T) {
	t.Run("round trips a vector", func(t *testing.T) {
		vec := []float64{0.25, -1.5, 0, math.Pi}
		decoded, err := embedding.DecodeVector(embedding.EncodeVector(vec))
		require.NoError(t, err)
		assert.Equal(t, vec, decoded)
	})

	t.Run("rejects malformed bytes", func(t *testing.T) {
		_, err := embedding.DecodeVector([]byte{1, 2, 3})
		assert.Error(t, err)
	})
}
