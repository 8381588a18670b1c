package models

import "time"

// Course represents a course students can enroll in.
type Course struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Code      string    `json:"code" db:"code"` // Course code (unique)
	Credits   int       `json:"credits" db:"credits"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}

// CourseUpdate carries the optional fields of a partial course update.
// The course code is immutable after creation.
type CourseUpdate struct {
	Name    *string
	Credits *int
}
