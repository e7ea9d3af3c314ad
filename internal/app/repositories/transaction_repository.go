package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusshare/campusshare/internal/app/models"
)

// TransactionRepository handles database operations for the append-only
// transaction ledger. Rows are only ever inserted and read.
type TransactionRepository interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	ListByStudent(ctx context.Context, studentID int64) ([]*models.Transaction, error)
}

type transactionRepository struct {
	db *pgxpool.Pool
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *pgxpool.Pool) TransactionRepository {
	return &transactionRepository{db: db}
}

// Create appends a transaction record
func (r *transactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	query := `
		INSERT INTO transactions (resource_id, provider_id, receiver_id, transaction_type, points_earned)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query,
		transaction.ResourceID,
		transaction.ProviderID,
		transaction.ReceiverID,
		transaction.TransactionType,
		transaction.PointsEarned,
	).Scan(&transaction.ID, &transaction.CreatedAt)
	if err != nil {
		return fmt.Errorf("error recording transaction: %w", err)
	}

	return nil
}

// ListByStudent retrieves every transaction a student took part in, as
// provider or receiver, newest first.
func (r *transactionRepository) ListByStudent(ctx context.Context, studentID int64) ([]*models.Transaction, error) {
	query := `
		SELECT id, resource_id, provider_id, receiver_id, transaction_type, points_earned, created_at
		FROM transactions
		WHERE provider_id = $1 OR receiver_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := querierFrom(ctx, r.db).Query(ctx, query, studentID)
	if err != nil {
		return nil, fmt.Errorf("error listing transactions: %w", err)
	}
	defer rows.Close()

	var transactions []*models.Transaction
	for rows.Next() {
		var transaction models.Transaction
		if err := rows.Scan(
			&transaction.ID,
			&transaction.ResourceID,
			&transaction.ProviderID,
			&transaction.ReceiverID,
			&transaction.TransactionType,
			&transaction.PointsEarned,
			&transaction.CreatedAt,
		); err != nil {
			return nil, err
		}
		transactions = append(transactions, &transaction)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return transactions, nil
}
