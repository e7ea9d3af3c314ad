package services_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/app/services"
	"github.com/campusshare/campusshare/internal/mocks"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

type ledgerFixture struct {
	txManager       *mocks.TxManager
	resourceRepo    *mocks.ResourceRepository
	transactionRepo *mocks.TransactionRepository
	studentRepo     *mocks.StudentRepository
	svc             *services.LedgerService
}

func newLedgerFixture() *ledgerFixture {
	f := &ledgerFixture{
		txManager:       &mocks.TxManager{},
		resourceRepo:    &mocks.ResourceRepository{},
		transactionRepo: &mocks.TransactionRepository{},
		studentRepo:     &mocks.StudentRepository{},
	}
	f.svc = services.NewLedgerService(
		f.txManager, f.resourceRepo, f.transactionRepo, f.studentRepo, zerolog.Nop())
	return f
}

func TestLedger_Execute(t *testing.T) {
	ctx := context.Background()

	t.Run("lending a book awards twenty points", func(t *testing.T) {
		f := newLedgerFixture()

		f.studentRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		f.studentRepo.On("Exists", mock.Anything, int64(2)).Return(true, nil)
		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.resourceRepo.On("GetForUpdate", mock.Anything, int64(10)).Return(&models.Resource{
			ID:          10,
			Type:        models.ResourceTypeBook,
			Status:      models.StatusLending,
			OwnerID:     1,
			IsAvailable: true,
		}, nil)
		f.transactionRepo.On("Create", mock.Anything, mock.MatchedBy(func(tr *models.Transaction) bool {
			return tr.ResourceID == 10 &&
				tr.ProviderID == 1 &&
				tr.ReceiverID == 2 &&
				tr.TransactionType == models.StatusLending &&
				tr.PointsEarned == 20
		})).Return(nil)
		f.studentRepo.On("CreditPoints", mock.Anything, int64(1), 20).Return(nil)
		f.resourceRepo.On("MarkUnavailable", mock.Anything, int64(10)).Return(nil)

		earned, err := f.svc.Execute(ctx, 10, 1, 2)
		require.NoError(t, err)
		assert.Equal(t, 20, earned)

		f.transactionRepo.AssertExpectations(t)
		f.studentRepo.AssertExpectations(t)
		f.resourceRepo.AssertExpectations(t)
	})

	t.Run("giving away hardware awards thirty five points", func(t *testing.T) {
		f := newLedgerFixture()

		f.studentRepo.On("Exists", mock.Anything, mock.Anything).Return(true, nil)
		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.resourceRepo.On("GetForUpdate", mock.Anything, int64(4)).Return(&models.Resource{
			ID:          4,
			Type:        models.ResourceTypeHardware,
			Status:      models.StatusGiveaway,
			OwnerID:     3,
			IsAvailable: true,
		}, nil)
		f.transactionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.studentRepo.On("CreditPoints", mock.Anything, int64(3), 35).Return(nil)
		f.resourceRepo.On("MarkUnavailable", mock.Anything, int64(4)).Return(nil)

		earned, err := f.svc.Execute(ctx, 4, 3, 5)
		require.NoError(t, err)
		assert.Equal(t, 35, earned)
	})

	t.Run("consumed resource is a conflict and nothing is written", func(t *testing.T) {
		f := newLedgerFixture()

		f.studentRepo.On("Exists", mock.Anything, mock.Anything).Return(true, nil)
		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.resourceRepo.On("GetForUpdate", mock.Anything, int64(10)).Return(&models.Resource{
			ID:          10,
			Type:        models.ResourceTypeBook,
			Status:      models.StatusLending,
			OwnerID:     1,
			IsAvailable: false,
		}, nil)

		_, err := f.svc.Execute(ctx, 10, 1, 2)
		assert.ErrorIs(t, err, apperrors.ErrConflict)

		f.transactionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		f.studentRepo.AssertNotCalled(t, "CreditPoints", mock.Anything, mock.Anything, mock.Anything)
		f.resourceRepo.AssertNotCalled(t, "MarkUnavailable", mock.Anything, mock.Anything)
	})

	t.Run("missing resource", func(t *testing.T) {
		f := newLedgerFixture()

		f.studentRepo.On("Exists", mock.Anything, mock.Anything).Return(true, nil)
		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.resourceRepo.On("GetForUpdate", mock.Anything, int64(99)).
			Return(nil, apperrors.ErrResourceNotFound)

		_, err := f.svc.Execute(ctx, 99, 1, 2)
		assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	})

	t.Run("unknown receiver fails before the transaction starts", func(t *testing.T) {
		f := newLedgerFixture()

		f.studentRepo.On("Exists", mock.Anything, int64(1)).Return(true, nil)
		f.studentRepo.On("Exists", mock.Anything, int64(42)).Return(false, nil)

		_, err := f.svc.Execute(ctx, 10, 1, 42)
		assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
		f.txManager.AssertNotCalled(t, "WithTx", mock.Anything, mock.Anything)
	})

	t.Run("credit failure aborts the transaction", func(t *testing.T) {
		f := newLedgerFixture()

		f.studentRepo.On("Exists", mock.Anything, mock.Anything).Return(true, nil)
		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.resourceRepo.On("GetForUpdate", mock.Anything, int64(10)).Return(&models.Resource{
			ID:          10,
			Type:        models.ResourceTypeNotes,
			Status:      models.StatusLending,
			OwnerID:     1,
			IsAvailable: true,
		}, nil)
		f.transactionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.studentRepo.On("CreditPoints", mock.Anything, int64(1), 15).
			Return(apperrors.ErrStudentNotFound)

		_, err := f.svc.Execute(ctx, 10, 1, 2)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		f.resourceRepo.AssertNotCalled(t, "MarkUnavailable", mock.Anything, mock.Anything)
	})
}

func TestLedger_History(t *testing.T) {
	f := newLedgerFixture()

	expected := []*models.Transaction{
		{ID: 2, ResourceID: 10, ProviderID: 1, ReceiverID: 3, PointsEarned: 30},
		{ID: 1, ResourceID: 7, ProviderID: 1, ReceiverID: 2, PointsEarned: 20},
	}
	f.transactionRepo.On("ListByStudent", mock.Anything, int64(1)).Return(expected, nil)

	history, err := f.svc.History(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, expected, history)
}
