package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository     StudentRepository
	ResourceRepository    ResourceRepository
	TransactionRepository TransactionRepository
	RewardRepository      RewardRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:     NewStudentRepository(db),
		ResourceRepository:    NewResourceRepository(db),
		TransactionRepository: NewTransactionRepository(db),
		RewardRepository:      NewRewardRepository(db),
	}
}
