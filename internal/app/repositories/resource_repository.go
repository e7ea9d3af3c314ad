package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/embedding"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
	"github.com/campusshare/campusshare/internal/pkg/dberrors"
)

// ResourceRepository handles database operations for shareable resources
type ResourceRepository interface {
	Create(ctx context.Context, resource *models.Resource) error
	GetByID(ctx context.Context, id int64) (*models.Resource, error)
	GetForUpdate(ctx context.Context, id int64) (*models.Resource, error)
	ListAvailable(ctx context.Context) ([]*models.Resource, error)
	MarkUnavailable(ctx context.Context, id int64) error
}

type resourceRepository struct {
	db *pgxpool.Pool
}

// NewResourceRepository creates a new resource repository
func NewResourceRepository(db *pgxpool.Pool) ResourceRepository {
	return &resourceRepository{db: db}
}

// Create persists a resource together with its embedding. The embedding is
// written once here and never updated afterwards.
func (r *resourceRepository) Create(ctx context.Context, resource *models.Resource) error {
	query := `
		INSERT INTO resources (type, name, description, owner_id, status, cost, embedding)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, is_available, created_at
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		resource.Type,
		resource.Name,
		resource.Description,
		resource.OwnerID,
		resource.Status,
		resource.Cost,
		embedding.EncodeVector(resource.Embedding),
	).Scan(&resource.ID, &resource.IsAvailable, &resource.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return &apperrors.CustomError{
				Err:     apperrors.ErrValidationFailed,
				Message: fmt.Sprintf("owner %d does not reference an existing student", resource.OwnerID),
			}
		}
		return fmt.Errorf("error creating resource: %w", err)
	}

	return nil
}

// GetByID retrieves a resource by ID
func (r *resourceRepository) GetByID(ctx context.Context, id int64) (*models.Resource, error) {
	return r.getByID(ctx, id, "")
}

// GetForUpdate retrieves a resource by ID holding a row lock until the
// surrounding transaction ends, serializing concurrent transactions over
// the same resource.
func (r *resourceRepository) GetForUpdate(ctx context.Context, id int64) (*models.Resource, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *resourceRepository) getByID(ctx context.Context, id int64, locking string) (*models.Resource, error) {
	query := fmt.Sprintf(`
		SELECT id, type, name, description, owner_id, status, cost, embedding, is_available, created_at
		FROM resources
		WHERE id = $1
		%s
	`, locking)

	resource, err := scanResource(querierFrom(ctx, r.db).QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrResourceNotFound
		}
		return nil, fmt.Errorf("error retrieving resource: %w", err)
	}

	return resource, nil
}

// ListAvailable retrieves every available resource joined with owner
// contact details, ordered by creation so similarity ties keep a stable
// catalog order.
func (r *resourceRepository) ListAvailable(ctx context.Context) ([]*models.Resource, error) {
	query := `
		SELECT r.id, r.type, r.name, r.description, r.owner_id, r.status, r.cost,
		       r.embedding, r.is_available, r.created_at, s.name, s.email
		FROM resources r
		JOIN students s ON r.owner_id = s.id
		WHERE r.is_available = TRUE
		ORDER BY r.id
	`

	rows, err := querierFrom(ctx, r.db).Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing available resources: %w", err)
	}
	defer rows.Close()

	var resources []*models.Resource
	for rows.Next() {
		var resource models.Resource
		var encoded []byte
		if err := rows.Scan(
			&resource.ID,
			&resource.Type,
			&resource.Name,
			&resource.Description,
			&resource.OwnerID,
			&resource.Status,
			&resource.Cost,
			&encoded,
			&resource.IsAvailable,
			&resource.CreatedAt,
			&resource.OwnerName,
			&resource.OwnerEmail,
		); err != nil {
			return nil, err
		}
		if resource.Embedding, err = embedding.DecodeVector(encoded); err != nil {
			return nil, fmt.Errorf("resource %d: %w", resource.ID, err)
		}
		resources = append(resources, &resource)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return resources, nil
}

// MarkUnavailable transitions a resource to unavailable. The transition is
// idempotent: marking an already-unavailable or absent resource is a no-op,
// since the ledger invokes this once per transaction and must not fail it.
func (r *resourceRepository) MarkUnavailable(ctx context.Context, id int64) error {
	query := `
		UPDATE resources
		SET is_available = FALSE
		WHERE id = $1 AND is_available = TRUE
	`

	if _, err := querierFrom(ctx, r.db).Exec(ctx, query, id); err != nil {
		return fmt.Errorf("error marking resource unavailable: %w", err)
	}
	return nil
}

func scanResource(row pgx.Row) (*models.Resource, error) {
	var resource models.Resource
	var encoded []byte
	err := row.Scan(
		&resource.ID,
		&resource.Type,
		&resource.Name,
		&resource.Description,
		&resource.OwnerID,
		&resource.Status,
		&resource.Cost,
		&encoded,
		&resource.IsAvailable,
		&resource.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if resource.Embedding, err = embedding.DecodeVector(encoded); err != nil {
		return nil, fmt.Errorf("resource %d: %w", resource.ID, err)
	}
	return &resource, nil
}
