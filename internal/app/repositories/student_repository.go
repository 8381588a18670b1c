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

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *db.PostgresDB
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(database *db.PostgresDB) *StudentRepository {
	return &StudentRepository{db: database}
}

// Create inserts a new student. Uniqueness of student_number and email is
// enforced by the table constraints, so concurrent creates cannot slip a
// duplicate past a pre-check.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (first_name, last_name, student_number, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool.QueryRow(ctx, query,
		student.FirstName, student.LastName, student.StudentNumber, student.Email).
		Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "students_student_number_key") {
			return apperrors.ErrStudentNumberExists
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return apperrors.ErrStudentEmailExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// GetByID retrieves a student by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, student_number, email, created_at, updated_at
		FROM students
		WHERE id = $1
	`

	var student models.Student
	err := r.db.Pool.QueryRow(ctx, query, id).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.StudentNumber,
		&student.Email,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return &student, nil
}

// List retrieves students in insertion order with offset/limit pagination.
func (r *StudentRepository) List(ctx context.Context, skip, limit int) ([]*models.Student, error) {
	query := `
		SELECT id, first_name, last_name, student_number, email, created_at, updated_at
		FROM students
		ORDER BY id
		OFFSET $1 LIMIT $2
	`

	rows, err := r.db.Pool.Query(ctx, query, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	students := make([]*models.Student, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.FirstName,
			&student.LastName,
			&student.StudentNumber,
			&student.Email,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Update applies a partial update. Nil fields keep their stored value.
func (r *StudentRepository) Update(ctx context.Context, id int64, upd models.StudentUpdate) (*models.Student, error) {
	query := `
		UPDATE students
		SET first_name = COALESCE($2, first_name),
		    last_name = COALESCE($3, last_name),
		    email = COALESCE($4, email),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, student_number, email, created_at, updated_at
	`

	var student models.Student
	err := r.db.Pool.QueryRow(ctx, query, id, upd.FirstName, upd.LastName, upd.Email).Scan(
		&student.ID,
		&student.FirstName,
		&student.LastName,
		&student.StudentNumber,
		&student.Email,
		&student.CreatedAt,
		&student.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		if dberrors.IsDuplicateConstraintError(err, "students_email_key") {
			return nil, apperrors.ErrStudentEmailExists
		}
		return nil, fmt.Errorf("error updating student: %w", err)
	}

	return &student, nil
}

// Delete removes a student and its dependent grades and enrollments in one
// transaction. The explicit fan-out keeps the cascade visible in code; the
// schema's ON DELETE CASCADE is only a backstop.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM grades WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student grades: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM enrollments WHERE student_id = $1`, id); err != nil {
			return fmt.Errorf("error deleting student enrollments: %w", err)
		}

		cmdTag, err := tx.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("error deleting student: %w", err)
		}
		if cmdTag.RowsAffected() == 0 {
			return apperrors.ErrStudentNotFound
		}

		return nil
	})
}

// Exists checks if a student with the given ID exists
func (r *StudentRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM students WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking student existence: %w", err)
	}
	return exists, nil
}
