package repositories

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusshare/campusshare/internal/db"
)

// Querier is the subset of pgx operations repositories need. Both
// *pgxpool.Pool and pgx.Tx satisfy it, so the same repository methods run
// inside or outside a transaction.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxManager runs a function within a database transaction. Repository
// calls made with the context it passes to fn join that transaction.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// PgxTxManager implements TxManager over the shared connection pool.
type PgxTxManager struct {
	db *db.PostgresDB
}

// NewTxManager creates a transaction manager bound to the database.
func NewTxManager(database *db.PostgresDB) *PgxTxManager {
	return &PgxTxManager{db: database}
}

// WithTx begins a transaction, stores it on the context, and commits or
// rolls back depending on fn's result.
func (m *PgxTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return m.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// querierFrom resolves the active transaction from the context, falling
// back to the pool.
func querierFrom(ctx context.Context, pool *pgxpool.Pool) Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return pool
}
