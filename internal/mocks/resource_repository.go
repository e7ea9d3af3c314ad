package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campusshare/campusshare/internal/app/models"
)

type ResourceRepository struct {
	mock.Mock
}

func (r *ResourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	args := r.Called(ctx, resource)
	return args.Error(0)
}

func (r *ResourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	args := r.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (r *ResourceRepository) GetForUpdate(ctx context.Context, id int64) (*models.Resource, error) {
	args := r.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Resource), args.Error(1)
}

func (r *ResourceRepository) ListAvailable(ctx context.Context) ([]*models.Resource, error) {
	args := r.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Resource), args.Error(1)
}

func (r *ResourceRepository) MarkUnavailable(ctx context.Context, id int64) error {
	args := r.Called(ctx, id)
	return args.Error(0)
}
