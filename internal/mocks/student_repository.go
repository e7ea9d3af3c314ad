package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campusshare/campusshare/internal/app/models"
)

type StudentRepository struct {
	mock.Mock
}

func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	args := r.Called(ctx, student)
	return args.Error(0)
}

func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	args := r.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (r *StudentRepository) GetForUpdate(ctx context.Context, id int64) (*models.Student, error) {
	args := r.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	args := r.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (r *StudentRepository) CreditPoints(ctx context.Context, id int64, amount int) error {
	args := r.Called(ctx, id, amount)
	return args.Error(0)
}

func (r *StudentRepository) DebitPoints(ctx context.Context, id int64, amount int) (bool, error) {
	args := r.Called(ctx, id, amount)
	return args.Bool(0), args.Error(1)
}
