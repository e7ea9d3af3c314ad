package services

import (
	"context"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/app/repositories"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

// RewardService handles the reward catalog and point redemption
type RewardService struct {
	txManager   repositories.TxManager
	rewardRepo  repositories.RewardRepository
	studentRepo repositories.StudentRepository
}

// NewRewardService creates a new reward service instance
func NewRewardService(
	txManager repositories.TxManager,
	rewardRepo repositories.RewardRepository,
	studentRepo repositories.StudentRepository,
) *RewardService {
	return &RewardService{
		txManager:   txManager,
		rewardRepo:  rewardRepo,
		studentRepo: studentRepo,
	}
}

// ListAvailable retrieves all redeemable rewards
func (s *RewardService) ListAvailable(ctx context.Context) ([]*models.Reward, error) {
	return s.rewardRepo.ListAvailable(ctx)
}

// Redeem debits a student by exactly the reward's required points. The
// student row is locked while the balance is checked and debited, so
// concurrent redemptions cannot spend the same points twice. An
// insufficient balance fails the redemption with no mutation. The reward
// row itself never changes.
func (s *RewardService) Redeem(ctx context.Context, studentID, rewardID int64) (*models.Reward, error) {
	var reward *models.Reward
	err := s.txManager.WithTx(ctx, func(ctx context.Context) error {
		student, err := s.studentRepo.GetForUpdate(ctx, studentID)
		if err != nil {
			return err
		}

		reward, err = s.rewardRepo.GetByID(ctx, rewardID)
		if err != nil {
			return err
		}
		if !reward.IsAvailable {
			return apperrors.ErrRewardNotFound
		}

		if student.ExperiencePoints < reward.PointsRequired {
			return apperrors.ErrInsufficientPoints
		}

		applied, err := s.studentRepo.DebitPoints(ctx, studentID, reward.PointsRequired)
		if err != nil {
			return err
		}
		if !applied {
			return apperrors.ErrInsufficientPoints
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return reward, nil
}
