package dto

import "github.com/davidmtz/escolar/internal/app/models"

// CreateStudentRequest represents the payload for creating a student.
type CreateStudentRequest struct {
	FirstName     string `form:"first_name" json:"firstName" binding:"required,min=2,max=50"`
	LastName      string `form:"last_name" json:"lastName" binding:"required,min=2,max=50"`
	StudentNumber string `form:"student_number" json:"studentNumber" binding:"required,min=5,max=20"`
	Email         string `form:"email" json:"email" binding:"required,email"`
}

// ToModel converts the request to a student model.
func (r *CreateStudentRequest) ToModel() *models.Student {
	return &models.Student{
		FirstName:     r.FirstName,
		LastName:      r.LastName,
		StudentNumber: r.StudentNumber,
		Email:         r.Email,
	}
}

// UpdateStudentRequest represents a partial student update. Absent fields
// leave the stored value untouched.
type UpdateStudentRequest struct {
	FirstName *string `form:"first_name" json:"firstName" binding:"omitempty,min=2,max=50"`
	LastName  *string `form:"last_name" json:"lastName" binding:"omitempty,min=2,max=50"`
	Email     *string `form:"email" json:"email" binding:"omitempty,email"`
}

// ToUpdate converts the request to the repository update struct.
func (r *UpdateStudentRequest) ToUpdate() models.StudentUpdate {
	return models.StudentUpdate{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Email:     r.Email,
	}
}
