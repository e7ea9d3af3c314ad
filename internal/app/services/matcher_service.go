package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/app/repositories"
	"github.com/campusshare/campusshare/internal/embedding"
)

// MatcherService ranks available resources against free-text queries by
// cosine similarity over their stored embeddings. Matching is a full scan
// of the available catalog; at campus scale that is a few hundred vectors
// per query, so no index is kept.
type MatcherService struct {
	embedder         embedding.Embedder
	resourceRepo     repositories.ResourceRepository
	defaultThreshold float64
}

// NewMatcherService creates a new matcher service instance
func NewMatcherService(
	embedder embedding.Embedder,
	resourceRepo repositories.ResourceRepository,
	defaultThreshold float64,
) *MatcherService {
	return &MatcherService{
		embedder:         embedder,
		resourceRepo:     resourceRepo,
		defaultThreshold: defaultThreshold,
	}
}

// DefaultThreshold returns the configured similarity cutoff used when the
// caller does not supply one.
func (s *MatcherService) DefaultThreshold() float64 {
	return s.defaultThreshold
}

// FindMatches embeds the query and returns every available resource whose
// similarity is strictly greater than threshold, ordered by similarity
// descending. Ties keep catalog order (ascending resource ID), so repeated
// searches over an unchanged catalog return identical results. An empty
// catalog or an empty match set is a normal empty slice, not an error.
func (s *MatcherService) FindMatches(ctx context.Context, query string, threshold float64) ([]*models.Match, error) {
	queryVector, err := s.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	resources, err := s.resourceRepo.ListAvailable(ctx)
	if err != nil {
		return nil, err
	}

	matches := make([]*models.Match, 0, len(resources))
	for _, resource := range resources {
		similarity := embedding.Cosine(queryVector, resource.Embedding)
		if similarity > threshold {
			matches = append(matches, &models.Match{Resource: resource, Similarity: similarity})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches, nil
}
