package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

// RewardRepository handles database operations for the reward catalog
type RewardRepository interface {
	Create(ctx context.Context, reward *models.Reward) error
	GetByID(ctx context.Context, id int64) (*models.Reward, error)
	ListAvailable(ctx context.Context) ([]*models.Reward, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type rewardRepository struct {
	db *pgxpool.Pool
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *pgxpool.Pool) RewardRepository {
	return &rewardRepository{db: db}
}

// Create adds a reward to the catalog
func (r *rewardRepository) Create(ctx context.Context, reward *models.Reward) error {
	query := `
		INSERT INTO rewards (name, description, points_required)
		VALUES ($1, $2, $3)
		RETURNING id, is_available
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		reward.Name,
		reward.Description,
		reward.PointsRequired,
	).Scan(&reward.ID, &reward.IsAvailable)
	if err != nil {
		return fmt.Errorf("error creating reward: %w", err)
	}

	return nil
}

// GetByID retrieves a reward by ID
func (r *rewardRepository) GetByID(ctx context.Context, id int64) (*models.Reward, error) {
	query := `
		SELECT id, name, description, points_required, is_available
		FROM rewards
		WHERE id = $1
	`

	var reward models.Reward
	err := querierFrom(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&reward.ID,
		&reward.Name,
		&reward.Description,
		&reward.PointsRequired,
		&reward.IsAvailable,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrRewardNotFound
		}
		return nil, fmt.Errorf("error retrieving reward: %w", err)
	}

	return &reward, nil
}

// ListAvailable retrieves all redeemable rewards
func (r *rewardRepository) ListAvailable(ctx context.Context) ([]*models.Reward, error) {
	query := `
		SELECT id, name, description, points_required, is_available
		FROM rewards
		WHERE is_available = TRUE
		ORDER BY points_required
	`

	rows, err := querierFrom(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing rewards: %w", err)
	}
	defer rows.Close()

	var rewards []*models.Reward
	for rows.Next() {
		var reward models.Reward
		if err := rows.Scan(
			&reward.ID,
			&reward.Name,
			&reward.Description,
			&reward.PointsRequired,
			&reward.IsAvailable,
		); err != nil {
			return nil, err
		}
		rewards = append(rewards, &reward)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return rewards, nil
}

// ExistsByName checks if a reward exists by name
func (r *rewardRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM rewards WHERE name = $1)`
	if err := querierFrom(ctx, r.db).QueryRow(ctx, query, name).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking reward existence: %w", err)
	}
	return exists, nil
}
