package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appModels "github.com/campusshare/campusshare/internal/app/models"
	appRepos "github.com/campusshare/campusshare/internal/app/repositories"
)

// defaultRewards is the reward catalog created at first startup
var defaultRewards = []appModels.Reward{
	{Name: "Library Extension", Description: "Extended library access for 1 month", PointsRequired: 100},
	{Name: "Stationary Discount", Description: "20% off on stationary items", PointsRequired: 50},
	{Name: "Printing Credits", Description: "100 pages free printing", PointsRequired: 75},
}

// CreateDefaultData seeds the reward catalog if the rewards don't exist yet.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	rewardRepo := appRepos.NewRewardRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data (Rewards)...")
	var finalErr error

	for _, reward := range defaultRewards {
		exists, err := rewardRepo.ExistsByName(ctx, reward.Name)
		if err != nil {
			lgr.Error().Err(err).Str("reward", reward.Name).Msg("Error checking default reward")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		if err := rewardRepo.Create(ctx, &reward); err != nil {
			lgr.Error().Err(err).Str("reward", reward.Name).Msg("Error creating default reward")
			finalErr = errors.Join(finalErr, err)
		} else {
			lgr.Info().Str("reward", reward.Name).Int("pointsRequired", reward.PointsRequired).Msg("Default reward created")
		}
	}

	return finalErr
}
