package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
	"github.com/campusshare/campusshare/internal/pkg/dberrors"
)

// StudentRepository handles database operations for students
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	GetForUpdate(ctx context.Context, id int64) (*models.Student, error)
	Exists(ctx context.Context, id int64) (bool, error)
	CreditPoints(ctx context.Context, id int64, amount int) error
	DebitPoints(ctx context.Context, id int64, amount int) (bool, error)
}

type studentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) StudentRepository {
	return &studentRepository{db: db}
}

// Create registers a new student with a zero point balance
func (r *studentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email)
		VALUES ($1, $2)
		RETURNING id, experience_points, created_at
	`

	err := querierFrom(ctx, r.db).QueryRow(ctx, query, student.Name, student.Email).
		Scan(&student.ID, &student.ExperiencePoints, &student.CreatedAt)
	if err != nil {
		if dberrors.IsUniqueViolation(err) {
			return apperrors.NewAlreadyExistsError("a student with this email already exists")
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *studentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return r.getByID(ctx, id, "")
}

// GetForUpdate retrieves a student by ID holding a row lock until the
// surrounding transaction ends. Point balance checks performed against the
// returned value stay valid for the rest of the transaction.
func (r *studentRepository) GetForUpdate(ctx context.Context, id int64) (*models.Student, error) {
	return r.getByID(ctx, id, "FOR UPDATE")
}

func (r *studentRepository) getByID(ctx context.Context, id int64, locking string) (*models.Student, error) {
	query := fmt.Sprintf(`
		SELECT id, name, email, experience_points, created_at
		FROM students
		WHERE id = $1
		%s
	`, locking)

	var student models.Student
	err := querierFrom(ctx, r.db).QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.Name,
		&student.Email,
		&student.ExperiencePoints,
		&student.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// Exists checks whether a student row exists
func (r *studentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`
	if err := querierFrom(ctx, r.db).QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}

// CreditPoints atomically increments a student's point balance
func (r *studentRepository) CreditPoints(ctx context.Context, id int64, amount int) error {
	query := `
		UPDATE students
		SET experience_points = experience_points + $1
		WHERE id = $2
	`

	tag, err := querierFrom(ctx, r.db).Exec(ctx, query, amount, id)
	if err != nil {
		return fmt.Errorf("error crediting points: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}
	return nil
}

// DebitPoints atomically decrements a student's point balance, guarded so
// the balance can never go below zero. It reports whether the debit was
// applied.
func (r *studentRepository) DebitPoints(ctx context.Context, id int64, amount int) (bool, error) {
	query := `
		UPDATE students
		SET experience_points = experience_points - $1
		WHERE id = $2 AND experience_points >= $1
	`

	tag, err := querierFrom(ctx, r.db).Exec(ctx, query, amount, id)
	if err != nil {
		return false, fmt.Errorf("error debiting points: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}
