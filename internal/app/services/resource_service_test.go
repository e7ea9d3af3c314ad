package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/app/services"
	"github.com/campusshare/campusshare/internal/mocks"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

func validResource() *models.Resource {
	return &models.Resource{
		Type:        models.ResourceTypeBook,
		Name:        "Intro to Algorithms",
		Description: "CLRS copy",
		Status:      models.StatusLending,
		OwnerID:     1,
		Cost:        120,
	}
}

func TestResource_Add(t *testing.T) {
	ctx := context.Background()

	t.Run("persists with an embedding of the composite text", func(t *testing.T) {
		resourceRepo := &mocks.ResourceRepository{}
		studentRepo := &mocks.StudentRepository{}
		embedder := &mocks.Embedder{}
		svc := services.NewResourceService(resourceRepo, studentRepo, embedder)

		vector := []float64{0.1, 0.2, 0.3}
		studentRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		embedder.On("Embed", mock.Anything, "book Intro to Algorithms CLRS copy").
			Return(vector, nil)
		resourceRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *models.Resource) bool {
			return assert.ObjectsAreEqual(vector, r.Embedding)
		})).Return(nil)

		err := svc.Add(ctx, validResource())
		require.NoError(t, err)
		embedder.AssertExpectations(t)
		resourceRepo.AssertExpectations(t)
	})

	t.Run("unknown owner is rejected before embedding", func(t *testing.T) {
		resourceRepo := &mocks.ResourceRepository{}
		studentRepo := &mocks.StudentRepository{}
		embedder := &mocks.Embedder{}
		svc := services.NewResourceService(resourceRepo, studentRepo, embedder)

		studentRepo.On("Exists", mock.Anything, int64(1)).Return(false, nil)

		err := svc.Add(ctx, validResource())
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		embedder.AssertNotCalled(t, "Embed", mock.Anything, mock.Anything)
		resourceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("invalid fields are rejected", func(t *testing.T) {
		tests := []struct {
			name   string
			mutate func(r *models.Resource)
		}{
			{"unknown type", func(r *models.Resource) { r.Type = "furniture" }},
			{"unknown status", func(r *models.Resource) { r.Status = "renting" }},
			{"blank name", func(r *models.Resource) { r.Name = "   " }},
			{"negative cost", func(r *models.Resource) { r.Cost = -1 }},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				resourceRepo := &mocks.ResourceRepository{}
				studentRepo := &mocks.StudentRepository{}
				embedder := &mocks.Embedder{}
				svc := services.NewResourceService(resourceRepo, studentRepo, embedder)

				resource := validResource()
				tt.mutate(resource)

				err := svc.Add(ctx, resource)
				assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
				studentRepo.AssertNotCalled(t, "Exists", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("embedding failure does not persist the resource", func(t *testing.T) {
		resourceRepo := &mocks.ResourceRepository{}
		studentRepo := &mocks.StudentRepository{}
		embedder := &mocks.Embedder{}
		svc := services.NewResourceService(resourceRepo, studentRepo, embedder)

		studentRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		embedder.On("Embed", mock.Anything, mock.Anything).
			Return(nil, apperrors.NewProviderError("inference unavailable"))

		err := svc.Add(ctx, validResource())
		assert.ErrorIs(t, err, apperrors.ErrProvider)
		resourceRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestResource_EmbeddingText(t *testing.T) {
	r := validResource()
	assert.Equal(t, "book Intro to Algorithms CLRS copy", r.EmbeddingText())

	r.Description = ""
	assert.Equal(t, "book Intro to Algorithms ", r.EmbeddingText())
}

func TestResource_GetByID(t *testing.T) {
	resourceRepo := &mocks.ResourceRepository{}
	studentRepo := &mocks.StudentRepository{}
	embedder := &mocks.Embedder{}
	svc := services.NewResourceService(resourceRepo, studentRepo, embedder)

	consumed := &models.Resource{ID: 7, Name: "Intro to Algorithms", IsAvailable: false}
	resourceRepo.On("GetByID", mock.Anything, int64(7)).Return(consumed, nil)
	resourceRepo.On("GetByID", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrResourceNotFound)

	resource, err := svc.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, consumed, resource)

	_, err = svc.GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestResource_ListAvailable(t *testing.T) {
	resourceRepo := &mocks.ResourceRepository{}
	studentRepo := &mocks.StudentRepository{}
	embedder := &mocks.Embedder{}
	svc := services.NewResourceService(resourceRepo, studentRepo, embedder)

	available := []*models.Resource{
		{ID: 1, Name: "Intro to Algorithms", IsAvailable: true},
		{ID: 2, Name: "Arduino Uno", IsAvailable: true},
	}
	resourceRepo.On("ListAvailable", mock.Anything).Return(available, nil)

	resources, err := svc.ListAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, available, resources)
}
