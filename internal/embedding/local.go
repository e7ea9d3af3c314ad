package embedding

import (
	"context"
	"hash/fnv"
	"math"
	"regexp"
	"strings"
)

// LocalEmbedder is a deterministic feature-hashing vectorizer. Each token
// contributes the token itself plus its character trigrams, hashed into a
// fixed number of buckets and weighted by frequency, then the vector is L2
// normalized. The subword features give morphological variants shared
// mass, so "textbook" still overlaps "book". It needs no vocabulary
// preparation, so embeddings stored at resource creation stay valid as
// the catalog grows.
type LocalEmbedder struct {
	dimension    int
	maxTokens    int
	tokenPattern *regexp.Regexp
	stopwords    map[string]struct{}
}

// NewLocalEmbedder creates a hashing embedder with the given output
// dimension and per-text token budget.
func NewLocalEmbedder(dimension, maxTokens int) *LocalEmbedder {
	return &LocalEmbedder{
		dimension:    dimension,
		maxTokens:    maxTokens,
		tokenPattern: regexp.MustCompile(`\p{L}+(?:['’]\p{L}+)*`),
		stopwords:    defaultStopwords(),
	}
}

// Dimension returns the dimensionality of the produced embedding vectors.
func (e *LocalEmbedder) Dimension() int { return e.dimension }

// Embed computes the hashed term-frequency embedding for the given text.
// Empty or stopword-only text embeds to the zero vector.
func (e *LocalEmbedder) Embed(_ context.Context, text string) ([]float64, error) {
	vec := make([]float64, e.dimension)

	tokens := e.tokenize(text)
	if len(tokens) > e.maxTokens {
		tokens = tokens[:e.maxTokens]
	}
	if len(tokens) == 0 {
		return vec, nil
	}

	for _, feature := range features(tokens) {
		vec[e.bucket(feature)] += 1.0
	}

	// L2 normalize
	norm := 0.0
	for _, v := range vec {
		norm += v * v
	}
	norm = math.Sqrt(norm)
	if norm > 0 {
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec, nil
}

func (e *LocalEmbedder) bucket(feature string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(feature))
	return int(h.Sum32() % uint32(e.dimension))
}

// features expands tokens into whole-token and character-trigram features.
// Tokens of three runes or fewer contribute only themselves.
func features(tokens []string) []string {
	out := make([]string, 0, len(tokens)*4)
	for _, tok := range tokens {
		out = append(out, tok)
		runes := []rune(tok)
		if len(runes) <= 3 {
			continue
		}
		for i := 0; i+3 <= len(runes); i++ {
			out = append(out, string(runes[i:i+3]))
		}
	}
	return out
}

func (e *LocalEmbedder) tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := e.tokenPattern.FindAllString(lower, -1)
	if len(raw) == 0 {
		return nil
	}
	out := raw[:0]
	for _, t := range raw {
		if _, isStop := e.stopwords[t]; isStop {
			continue
		}
		out = append(out, t)
	}
	return out
}

func defaultStopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for", "to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was", "were", "be", "been", "being", "it", "this", "that", "these", "those", "from", "up", "down", "over", "under", "than", "so", "such", "into", "about", "between", "through", "out", "off", "own", "same", "too", "very", "can", "will", "just", "now",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
