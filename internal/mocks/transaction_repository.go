package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/campusshare/campusshare/internal/app/models"
)

type TransactionRepository struct {
	mock.Mock
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	args := r.Called(ctx, transaction)
	return args.Error(0)
}

func (r *TransactionRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Transaction, error) {
	args := r.Called(ctx, studentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Transaction), args.Error(1)
}
