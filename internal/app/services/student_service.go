package services

import (
	"context"
	"strings"

	"github.com/campusshare/campusshare/internal/app/models"
	"github.com/campusshare/campusshare/internal/app/repositories"
	"github.com/campusshare/campusshare/internal/pkg/apperrors"
)

// StudentService handles student registration and profile lookups
type StudentService struct {
	studentRepo repositories.StudentRepository
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo repositories.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// Register creates a new student with a zero point balance
func (s *StudentService) Register(ctx context.Context, name, email string) (*models.Student, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)

	if name == "" {
		return nil, apperrors.NewValidationError("name cannot be empty")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, apperrors.NewValidationError("a valid email is required")
	}

	student := &models.Student{Name: name, Email: email}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// GetByID retrieves a student profile including the point balance
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.studentRepo.GetByID(ctx, id)
}
