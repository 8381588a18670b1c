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

// GradeRepository handles database operations for grades
type GradeRepository struct {
	db *db.PostgresDB
}

// NewGradeRepository creates a new grade repository
func NewGradeRepository(database *db.PostgresDB) *GradeRepository {
	return &GradeRepository{db: database}
}

// Insert adds a grade. The enrollment prerequisite is part of the statement,
// so a withdraw committing after a caller's pre-check still surfaces as
// apperrors.ErrNotEnrolled instead of an orphan grade. The per-pair unique
// constraint decides races between concurrent inserts for the same pair.
func (r *GradeRepository) Insert(ctx context.Context, grade *models.Grade) error {
	query := `
		INSERT INTO grades (student_id, course_id, score)
		SELECT $1, $2, $3
		WHERE EXISTS (
			SELECT 1 FROM enrollments WHERE student_id = $1 AND course_id = $2
		)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query, grade.StudentID, grade.CourseID, grade.Score).
		Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotEnrolled
		}
		if dberrors.IsDuplicateConstraintError(err, "grades_student_id_course_id_key") {
			return apperrors.ErrGradeAlreadyExists
		}
		return fmt.Errorf("error creating grade: %w", err)
	}

	return nil
}

// UpdateScore overwrites the score of the grade for the (student, course)
// pair. A missing grade yields apperrors.ErrGradeNotFound.
func (r *GradeRepository) UpdateScore(ctx context.Context, studentID, courseID int64, score float64) (*models.Grade, error) {
	query := `
		UPDATE grades
		SET score = $3, updated_at = NOW()
		WHERE student_id = $1 AND course_id = $2
		RETURNING id, student_id, course_id, score, created_at, updated_at
	`

	var grade models.Grade
	err := r.db.Pool.QueryRow(ctx, query, studentID, courseID, score).Scan(
		&grade.ID,
		&grade.StudentID,
		&grade.CourseID,
		&grade.Score,
		&grade.CreatedAt,
		&grade.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrGradeNotFound
		}
		return nil, fmt.Errorf("error updating grade: %w", err)
	}

	return &grade, nil
}

// ListForStudent retrieves all grades of a student in insertion order.
func (r *GradeRepository) ListForStudent(ctx context.Context, studentID int64) ([]*models.Grade, error) {
	query := `
		SELECT id, student_id, course_id, score, created_at, updated_at
		FROM grades
		WHERE student_id = $1
		ORDER BY id
	`

	rows, err := r.db.Pool.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grades := make([]*models.Grade, 0)
	for rows.Next() {
		var grade models.Grade
		if err := rows.Scan(
			&grade.ID,
			&grade.StudentID,
			&grade.CourseID,
			&grade.Score,
			&grade.CreatedAt,
			&grade.UpdatedAt,
		); err != nil {
			return nil, err
		}
		grades = append(grades, &grade)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return grades, nil
}
