package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/app/points"
	"github.com/campusshare/campusshare/internal/app/repositories"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

// LedgerService records exchanges. Every execution appends a transaction
// row, credits the provider, and consumes the resource in one database
// transaction, so a failure at any step leaves no partial state.
type LedgerService struct {
	txManager       repositories.TxManager
	resourceRepo    repositories.ResourceRepository
	transactionRepo repositories.TransactionRepository
	studentRepo     repositories.StudentRepository
	logger          zerolog.Logger
}

// NewLedgerService creates a new ledger service instance
func NewLedgerService(
	txManager repositories.TxManager,
	resourceRepo repositories.ResourceRepository,
	transactionRepo repositories.TransactionRepository,
	studentRepo repositories.StudentRepository,
	logger zerolog.Logger,
) *LedgerService {
	return &LedgerService{
		txManager:       txManager,
		resourceRepo:    resourceRepo,
		transactionRepo: transactionRepo,
		studentRepo:     studentRepo,
		logger:          logger,
	}
}

// Execute records the exchange of a resource from provider to receiver and
// returns the points credited to the provider.
//
// The resource row is locked for the duration of the transaction. When two
// requests race over the same resource, the second observes it consumed
// and fails with a conflict instead of double-awarding points. The
// transaction type is the resource's listing status at transaction time.
func (s *LedgerService) Execute(ctx context.Context, resourceID, providerID, receiverID int64) (int, error) {
	for _, studentID := range []int64{providerID, receiverID} {
		exists, err := s.studentRepo.Exists(ctx, studentID)
		if err != nil {
			return 0, fmt.Errorf("error checking student: %w", err)
		}
		if !exists {
			return 0, apperrors.NewValidationError(
				fmt.Sprintf("student %d does not exist", studentID))
		}
	}

	var earned int
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		resource, err := s.resourceRepo.GetForUpdate(ctx, resourceID)
		if err != nil {
			return err
		}
		if !resource.IsAvailable {
			return apperrors.NewConflictError(
				fmt.Sprintf("resource %d has already been transacted", resourceID))
		}

		earned = points.For(resource.Status, resource.Type)

		transaction := &models.Transaction{
			ResourceID:      resourceID,
			ProviderID:      providerID,
			ReceiverID:      receiverID,
			TransactionType: resource.Status,
			PointsEarned:    earned,
		}
		if err := s.transactionRepo.Create(ctx, transaction); err != nil {
			return err
		}

		if err := s.studentRepo.CreditPoints(ctx, providerID, earned); err != nil {
			return err
		}

		return s.resourceRepo.MarkUnavailable(ctx, resourceID)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info().
		Int64("resourceId", resourceID).
		Int64("providerId", providerID).
		Int64("receiverId", receiverID).
		Int("points", earned).
		Msg("Transaction recorded")

	return earned, nil
}

// History retrieves a student's transaction history, newest first
func (s *LedgerService) History(ctx context.Context, studentID int64) ([]*models.Transaction, error) {
	return s.transactionRepo.ListByStudent(ctx, studentID)
}
