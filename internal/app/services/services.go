// Package services holds the domain logic: credential verification, role
// rules, and the registry invariants for students, courses, enrollments and
// grades. Services depend on narrow store interfaces so tests can substitute
// in-memory fakes for the pgx-backed repositories.
package services

import (
	"context"

	"github.com/davidmtz/escolar/internal/app/models"
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
}

// StudentStore is the persistence surface for students.
type StudentStore interface {
	Create(ctx context.Context, student *models.Student) error
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	List(ctx context.Context, skip, limit int) ([]*models.Student, error)
	Update(ctx context.Context, id int64, upd models.StudentUpdate) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// CourseStore is the persistence surface for courses.
type CourseStore interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, skip, limit int) ([]*models.Course, error)
	Update(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// EnrollmentStore is the persistence surface for the student/course relation.
type EnrollmentStore interface {
	Insert(ctx context.Context, studentID, courseID int64) error
	Delete(ctx context.Context, studentID, courseID int64) error
	Exists(ctx context.Context, studentID, courseID int64) (bool, error)
	CoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error)
}

// GradeStore is the persistence surface for grades. Insert requires an
// enrollment for the pair at write time, not just at check time; a vanished
// enrollment surfaces as apperrors.ErrNotEnrolled.
type GradeStore interface {
	Insert(ctx context.Context, grade *models.Grade) error
	UpdateScore(ctx context.Context, studentID, courseID int64, score float64) (*models.Grade, error)
	ListForStudent(ctx context.Context, studentID int64) ([]*models.Grade, error)
}
