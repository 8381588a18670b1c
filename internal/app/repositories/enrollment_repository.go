package repositories

import (
	"context"
	"fmt"

	"github.com/davidmtz/escolar/internal/app/models"
	"github.com/davidmtz/escolar/internal/db"
	"github.com/davidmtz/escolar/internal/pkg/apperrors"
	"github.com/davidmtz/escolar/internal/pkg/dberrors"
)

// EnrollmentRepository handles the student/course join table. The relation
// has no identity of its own: a row is the (student_id, course_id) pair.
type EnrollmentRepository struct {
	db *db.PostgresDB
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(database *db.PostgresDB) *EnrollmentRepository {
	return &EnrollmentRepository{db: database}
}

// Insert adds an enrollment. Under concurrent enrolls for the same pair the
// composite primary key lets exactly one insert win; the loser surfaces as
// apperrors.ErrAlreadyEnrolled.
func (r *EnrollmentRepository) Insert(ctx context.Context, studentID, courseID int64) error {
	_, err := r.db.Pool.Exec(ctx,
		`INSERT INTO enrollments (student_id, course_id) VALUES ($1, $2)`,
		studentID, courseID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_pkey") {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error creating enrollment: %w", err)
	}

	return nil
}

// Delete removes an enrollment. Withdrawing a pair that is not enrolled
// yields apperrors.ErrNotEnrolled.
func (r *EnrollmentRepository) Delete(ctx context.Context, studentID, courseID int64) error {
	cmdTag, err := r.db.Pool.Exec(ctx,
		`DELETE FROM enrollments WHERE student_id = $1 AND course_id = $2`,
		studentID, courseID)
	if err != nil {
		return fmt.Errorf("error deleting enrollment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotEnrolled
	}

	return nil
}

// Exists checks if an enrollment exists for the (student, course) pair.
func (r *EnrollmentRepository) Exists(ctx context.Context, studentID, courseID int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2)`,
		studentID, courseID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking enrollment existence: %w", err)
	}
	return exists, nil
}

// CoursesForStudent retrieves all courses a student is enrolled in, in
// enrollment insertion order.
func (r *EnrollmentRepository) CoursesForStudent(ctx context.Context, studentID int64) ([]*models.Course, error) {
	query := `
		SELECT c.id, c.name, c.code, c.credits, c.created_at, c.updated_at
		FROM courses c
		JOIN enrollments e ON e.course_id = c.id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at, c.id
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Code,
			&course.Credits,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}
