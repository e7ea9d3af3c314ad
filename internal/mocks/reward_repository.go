package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campusshare/campusshare/internal/app/models"
)

type RewardRepository struct {
	mock.Mock
}

func (r *RewardRepository) Create(ctx context.Context, reward *models.Reward) error {
	args := r.Called(ctx, reward)
	return args.Error(0)
}

func (r *RewardRepository) GetByID(ctx context.Context, id int64) (*models.Reward, error) {
	args := r.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Reward), args.Error(1)
}

func (r *RewardRepository) ListAvailable(ctx context.Context) ([]*models.Reward, error) {
	args := r.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Reward), args.Error(1)
}

func (r *RewardRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	args := r.Called(ctx, name)
	return args.Bool(0), args.Error(1)
}
