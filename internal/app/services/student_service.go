package services

import (
	"context"

	"github.com/davidmtz/escolar/internal/app/models"
)

// StudentService handles student CRUD operations
type StudentService struct {
	students StudentStore
}

// NewStudentService creates a new StudentService
func NewStudentService(students StudentStore) *StudentService {
	return &StudentService{students: students}
}

// Create persists a new student. The store rejects duplicate student numbers
// and emails.
func (s *StudentService) Create(ctx context.Context, student *models.Student) error {
	return s.students.Create(ctx, student)
}

// GetByID retrieves a student by ID
func (s *StudentService) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	return s.students.GetByID(ctx, id)
}

// List retrieves students with offset/limit pagination
func (s *StudentService) List(ctx context.Context, skip, limit int) ([]*models.Student, error) {
	return s.students.List(ctx, skip, limit)
}

// Update applies a partial update to an existing student
func (s *StudentService) Update(ctx context.Context, id int64, upd models.StudentUpdate) (*models.Student, error) {
	return s.students.Update(ctx, id, upd)
}

// Delete removes a student together with its grades and enrollments
func (s *StudentService) Delete(ctx context.Context, id int64) error {
	return s.students.Delete(ctx, id)
}
