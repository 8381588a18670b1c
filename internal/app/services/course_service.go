package services

import (
	"context"

	"github.com/davidmtz/escolar/internal/app/models"
)

// CourseService handles course CRUD operations
type CourseService struct {
	courses CourseStore
}

// NewCourseService creates a new CourseService
func NewCourseService(courses CourseStore) *CourseService {
	return &CourseService{courses: courses}
}

// Create persists a new course. The store rejects duplicate codes.
func (s *CourseService) Create(ctx context.Context, course *models.Course) error {
	return s.courses.Create(ctx, course)
}

// GetByID retrieves a course by ID
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courses.GetByID(ctx, id)
}

// List retrieves courses with offset/limit pagination
func (s *CourseService) List(ctx context.Context, skip, limit int) ([]*models.Course, error) {
	return s.courses.List(ctx, skip, limit)
}

// Update applies a partial update to an existing course
func (s *CourseService) Update(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error) {
	return s.courses.Update(ctx, id, upd)
}

// Delete removes a course together with its grades and enrollments
func (s *CourseService) Delete(ctx context.Context, id int64) error {
	return s.courses.Delete(ctx, id)
}
