package models

import "time"

// Grade records the score a student earned in a course. At most one grade
// exists per (student, course) pair, and a grade requires an active
// enrollment for that pair at creation time.
type Grade struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	CourseID  int64     `json:"courseId" db:"course_id"`
	Score     float64   `json:"score" db:"score"` // Score in [0.0, 10.0]
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
