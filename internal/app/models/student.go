package models

import "time"

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64     `json:"id" db:"id" example:"1"`                           // Unique identifier for the student record
	FirstName     string    `json:"firstName" db:"first_name" example:"Ana"`          // Student's first name
	LastName      string    `json:"lastName" db:"last_name" example:"García"`         // Student's last name
	StudentNumber string    `json:"studentNumber" db:"student_number" example:"A0012345"` // Student's unique number (unique)
	Email         string    `json:"email" db:"email" example:"ana@school.com"`        // Student's email address (unique)
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}

// StudentUpdate carries the optional fields of a partial student update.
// A nil field leaves the stored value untouched. The student number is
// immutable after creation and deliberately has no slot here.
type StudentUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
}
