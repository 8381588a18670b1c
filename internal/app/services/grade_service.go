package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/davidmtz/escolar/internal/app/models"
	"github.com/davidmtz/escolar/internal/app/models/dto"
	"github.com/davidmtz/escolar/internal/pkg/apperrors"
)

// GradeService manages grades. A grade requires an active enrollment for the
// (student, course) pair and at most one grade may exist per pair; later
// create attempts are rejected, never overwritten.
type GradeService struct {
	students    StudentStore
	courses     CourseStore
	enrollments EnrollmentStore
	grades      GradeStore
	logger      zerolog.Logger
}

// NewGradeService creates a new GradeService
func NewGradeService(students StudentStore, courses CourseStore, enrollments EnrollmentStore, grades GradeStore, logger zerolog.Logger) *GradeService {
	return &GradeService{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		grades:      grades,
		logger:      logger,
	}
}

// Record creates a grade for an enrolled (student, course) pair.
func (s *GradeService) Record(ctx context.Context, studentID, courseID int64, score float64) (*models.Grade, error) {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	exists, err = s.courses.Exists(ctx, courseID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrCourseNotFound
	}

	enrolled, err := s.enrollments.Exists(ctx, studentID, courseID)
	if err != nil {
		return nil, err
	}
	if !enrolled {
		return nil, apperrors.ErrNotEnrolled
	}

	grade := &models.Grade{
		StudentID: studentID,
		CourseID:  courseID,
		Score:     score,
	}
	if err := s.grades.Insert(ctx, grade); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("studentID", studentID).Int64("courseID", courseID).Float64("score", score).Msg("Grade recorded")
	return grade, nil
}

// Update overwrites the score of an existing grade for the pair.
func (s *GradeService) Update(ctx context.Context, studentID, courseID int64, score float64) (*models.Grade, error) {
	return s.grades.UpdateScore(ctx, studentID, courseID, score)
}

// ListForStudent retrieves all grades of a student.
func (s *GradeService) ListForStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	return s.grades.ListForStudent(ctx, studentID)
}

// AverageForStudent returns the arithmetic mean over all of the student's
// grades, 0.0 when the student has none.
func (s *GradeService) AverageForStudent(ctx context.Context, studentID int64) (float64, error) {
	grades, err := s.ListForStudent(ctx, studentID)
	if err != nil {
		return 0, err
	}
	return averageScore(grades), nil
}

// StatsForStudent aggregates enrollment count, grade average and credit sum
// for a student.
func (s *GradeService) StatsForStudent(ctx context.Context, studentID int64) (*dto.StudentStatsResponse, error) {
	exists, err := s.students.Exists(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrStudentNotFound
	}

	courses, err := s.enrollments.CoursesForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	grades, err := s.grades.ListForStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	credits := 0
	for _, course := range courses {
		credits += course.Credits
	}

	return &dto.StudentStatsResponse{
		TotalCourses:   len(courses),
		OverallAverage: averageScore(grades),
		CreditsTaken:   credits,
	}, nil
}

func averageScore(grades []*models.Grade) float64 {
	if len(grades) == 0 {
		return 0.0
	}

	total := 0.0
	for _, grade := range grades {
		total += grade.Score
	}
	return total / float64(len(grades))
}
