package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/app/repositories"
	"github.com/campusshare/campusshare/internal/embedding"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

// ResourceService handles the shareable resource catalog
type ResourceService struct {
	resourceRepo repositories.ResourceRepository
	studentRepo  repositories.StudentRepository
	embedder     embedding.Embedder
}

// NewResourceService creates a new resource service instance
func NewResourceService(
	resourceRepo repositories.ResourceRepository,
	studentRepo repositories.StudentRepository,
	embedder embedding.Embedder,
) *ResourceService {
	return &ResourceService{
		resourceRepo: resourceRepo,
		studentRepo:  studentRepo,
		embedder:     embedder,
	}
}

// Add validates and persists a new resource. The embedding is derived from
// the composite "{type} {name} {description}" text exactly once, here.
func (s *ResourceService) Add(ctx context.Context, resource *models.Resource) error {
	if err := s.validateResource(resource); err != nil {
		return err
	}

	exists, err := s.studentRepo.Exists(ctx, resource.OwnerID)
	if err != nil {
		return fmt.Errorf("error checking owner: %w", err)
	}
	if !exists {
		return apperrors.NewValidationError(
			fmt.Sprintf("owner %d does not reference an existing student", resource.OwnerID))
	}

	vector, err := s.embedder.Embed(ctx, resource.EmbeddingText())
	if err != nil {
		return fmt.Errorf("embedding resource: %w", err)
	}
	resource.Embedding = vector

	return s.resourceRepo.Create(ctx, resource)
}

// GetByID retrieves a single resource
func (s *ResourceService) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	return s.resourceRepo.GetByID(ctx, id)
}

// ListAvailable retrieves every resource still open for exchange, joined
// with owner contact details
func (s *ResourceService) ListAvailable(ctx context.Context) ([]*models.Resource, error) {
	return s.resourceRepo.ListAvailable(ctx)
}

// validateResource validates resource data before database operations
func (s *ResourceService) validateResource(resource *models.Resource) error {
	if resource == nil {
		return apperrors.NewValidationError("resource is nil")
	}
	if !resource.Type.Valid() {
		return apperrors.NewValidationError(
			fmt.Sprintf("type must be one of book, notes, hardware; got %q", resource.Type))
	}
	if !resource.Status.Valid() {
		return apperrors.NewValidationError(
			fmt.Sprintf("status must be one of lending, giveaway; got %q", resource.Status))
	}
	if strings.TrimSpace(resource.Name) == "" {
		return apperrors.NewValidationError("name cannot be empty")
	}
	if resource.Cost < 0 {
		return apperrors.NewValidationError("cost cannot be negative")
	}
	return nil
}
