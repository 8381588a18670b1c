package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/davidmtz/escolar/internal/app/models"
	"github.com/davidmtz/escolar/internal/db"
	"github.com/davidmtz/escolar/internal/pkg/apperrors"
	"github.com/davidmtz/escolar/internal/pkg/dberrors"
)

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *db.PostgresDB
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(database *db.PostgresDB) *CourseRepository {
	return &CourseRepository{db: database}
}

// Create inserts a new course. The courses_code_key constraint guards code
// uniqueness under concurrent creates.
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, code, credits)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query, course.Name, course.Code, course.Credits).
		Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "courses_code_key") {
			return apperrors.ErrCourseCodeExists
		}
		return fmt.Errorf("error creating course: %w", err)
	}

	return nil
}

// GetByID retrieves a course by ID
func (r *CourseRepository) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	query := `
		SELECT id, name, code, credits, created_at, updated_at
		FROM courses
		WHERE id = $1
	`

	var course models.Course
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.Credits,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error retrieving course: %w", err)
	}

	return &course, nil
}

// List retrieves courses in insertion order with offset/limit pagination.
func (r *CourseRepository) List(ctx context.Context, skip, limit int) ([]*models.Course, error) {
	query := `
		SELECT id, name, code, credits, created_at, updated_at
		FROM courses
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, skip, limit)
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

// Update applies a partial update. Nil fields keep their stored value.
func (r *CourseRepository) Update(ctx context.Context, id int64, upd models.CourseUpdate) (*models.Course, error) {
	query := `
		UPDATE courses
		SET name = COALESCE($2, name),
		    credits = COALESCE($3, credits),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, name, code, credits, created_at, updated_at
	`

	var course models.Course
	err := r.db.Pool.QueryRow(ctx, query, id, upd.Name, upd.Credits).Scan(
		&course.ID,
		&course.Name,
		&course.Code,
		&course.Credits,
		&course.CreatedAt,
		&course.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCourseNotFound
		}
		return nil, fmt.Errorf("error updating course: %w", err)
	}

	return &course, nil
}

// Delete removes a course and its dependent grades and enrollments in one
// transaction.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM grades WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course grades: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE course_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting course enrollments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting course: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrCourseNotFound
		}

		return nil
	})
}

// Exists checks if a course with the given ID exists
func (r *CourseRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM courses WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking course existence: %w", err)
	}
	return exists, nil
}
