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

type rewardFixture struct {
	txManager   *mocks.TxManager
	rewardRepo  *mocks.RewardRepository
	studentRepo *mocks.StudentRepository
	svc         *services.RewardService
}

func newRewardFixture() *rewardFixture {
	f := &rewardFixture{
		txManager:   &mocks.TxManager{},
		rewardRepo:  &mocks.RewardRepository{},
		studentRepo: &mocks.StudentRepository{},
	}
	f.svc = services.NewRewardService(f.txManager, f.rewardRepo, f.studentRepo)
	return f
}

func TestReward_Redeem(t *testing.T) {
	ctx := context.Background()

	printingCredits := &models.Reward{
		ID:             3,
		Name:           "Printing Credits",
		PointsRequired: 75,
		IsAvailable:    true,
	}

	t.Run("sufficient balance debits exactly the required points", func(t *testing.T) {
		f := newRewardFixture()

		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.studentRepo.On("GetForUpdate", mock.Anything, int64(1)).Return(&models.Student{
			ID:               1,
			ExperiencePoints: 100,
		}, nil)
		f.rewardRepo.On("GetByID", mock.Anything, int64(3)).Return(printingCredits, nil)
		f.studentRepo.On("DebitPoints", mock.Anything, int64(1), 75).Return(true, nil)

		reward, err := f.svc.Redeem(ctx, 1, 3)
		require.NoError(t, err)
		assert.Equal(t, printingCredits, reward)
		f.studentRepo.AssertExpectations(t)
	})

	t.Run("exact balance succeeds", func(t *testing.T) {
		f := newRewardFixture()

		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.studentRepo.On("GetForUpdate", mock.Anything, int64(1)).Return(&models.Student{
			ID:               1,
			ExperiencePoints: 75,
		}, nil)
		f.rewardRepo.On("GetByID", mock.Anything, int64(3)).Return(printingCredits, nil)
		f.studentRepo.On("DebitPoints", mock.Anything, int64(1), 75).Return(true, nil)

		_, err := f.svc.Redeem(ctx, 1, 3)
		require.NoError(t, err)
	})

	t.Run("insufficient balance leaves the student untouched", func(t *testing.T) {
		f := newRewardFixture()

		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.studentRepo.On("GetForUpdate", mock.Anything, int64(1)).Return(&models.Student{
			ID:               1,
			ExperiencePoints: 50,
		}, nil)
		f.rewardRepo.On("GetByID", mock.Anything, int64(3)).Return(printingCredits, nil)

		_, err := f.svc.Redeem(ctx, 1, 3)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPoints)
		f.studentRepo.AssertNotCalled(t, "DebitPoints", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("unavailable reward reads as missing", func(t *testing.T) {
		f := newRewardFixture()

		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.studentRepo.On("GetForUpdate", mock.Anything, int64(1)).Return(&models.Student{
			ID:               1,
			ExperiencePoints: 500,
		}, nil)
		f.rewardRepo.On("GetByID", mock.Anything, int64(8)).Return(&models.Reward{
			ID:             8,
			Name:           "Retired Perk",
			PointsRequired: 10,
			IsAvailable:    false,
		}, nil)

		_, err := f.svc.Redeem(ctx, 1, 8)
		assert.ErrorIs(t, err, apperrors.ErrRewardNotFound)
	})

	t.Run("missing student", func(t *testing.T) {
		f := newRewardFixture()

		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.studentRepo.On("GetForUpdate", mock.Anything, int64(99)).
			Return(nil, apperrors.ErrStudentNotFound)

		_, err := f.svc.Redeem(ctx, 99, 3)
		assert.ErrorIs(t, err, apperrors.ErrStudentNotFound)
		f.rewardRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("lost debit race reports insufficient points", func(t *testing.T) {
		f := newRewardFixture()

		f.txManager.On("WithTx", mock.Anything, mock.Anything).Return(nil)
		f.studentRepo.On("GetForUpdate", mock.Anything, int64(1)).Return(&models.Student{
			ID:               1,
			ExperiencePoints: 100,
		}, nil)
		f.rewardRepo.On("GetByID", mock.Anything, int64(3)).Return(printingCredits, nil)
		f.studentRepo.On("DebitPoints", mock.Anything, int64(1), 75).Return(false, nil)

		_, err := f.svc.Redeem(ctx, 1, 3)
		assert.ErrorIs(t, err, apperrors.ErrInsufficientPoints)
	})
}

func TestReward_ListAvailable(t *testing.T) {
	f := newRewardFixture()

	catalog := []*models.Reward{
		{ID: 2, Name: "Stationary Discount", PointsRequired: 50, IsAvailable: true},
		{ID: 3, Name: "Printing Credits", PointsRequired: 75, IsAvailable: true},
		{ID: 1, Name: "Library Extension", PointsRequired: 100, IsAvailable: true},
	}
	f.rewardRepo.On("ListAvailable", mock.Anything).Return(catalog, nil)

	rewards, err := f.svc.ListAvailable(context.Background())
	require.NoError(t, err)
	assert.Equal(t, catalog, rewards)
}
