package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/davidmtz/escolar/internal/app/models"
	"github.com/davidmtz/escolar/internal/pkg/apperrors"
)

// EnrollmentService manages the student/course relation and its invariants:
// both sides must exist and a pair may be enrolled at most once at a time.
type EnrollmentService struct {
	students    StudentStore
	courses     CourseStore
	enrollments EnrollmentStore
	logger      zerolog.Logger
}

// NewEnrollmentService creates a new EnrollmentService
func NewEnrollmentService(students StudentStore, courses CourseStore, enrollments EnrollmentStore, logger zerolog.Logger) *EnrollmentService {
	return &EnrollmentService{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		logger:      logger,
	}
}

// Enroll adds a student to a course. The duplicate-pair check rides on the
// store's uniqueness guarantee, so racing enrolls cannot both succeed.
func (s *EnrollmentService) Enroll(ctx context.Context, studentID, courseID int64) error {
	if err := s.checkPairExists(ctx, studentID, courseID); err != nil {
		return err
	}

	if err := s.enrollments.Insert(ctx, studentID, courseID); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Student enrolled")
	return nil
}

// Withdraw removes a student from a course. Re-enrolling after a withdrawal
// is allowed.
func (s *EnrollmentService) Withdraw(ctx context.Context, studentID, courseID int64) error {
	if err := s.checkPairExists(ctx, studentID, courseID); err != nil {
		return err
	}

	if err := s.enrollments.Delete(ctx, studentID, courseID); err != nil {
		return err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("courseID", courseID).Msg("Student withdrawn")
	return nil
}

// CoursesForStudent lists the courses a student is enrolled in.
func (s *EnrollmentService) CoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	return s.enrollments.CoursesForStudent(ctx, studentID)
}

// checkPairExists verifies that both the student and the course resolve.
func (s *EnrollmentService) checkPairExists(ctx context.Context, studentID, courseID int64) error {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrStudentNotFound
	}

	exists, err = s.courses.Exists(ctx, courseID)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrCourseNotFound
	}

	return nil
}
