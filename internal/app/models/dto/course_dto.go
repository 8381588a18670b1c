package dto

import "github.com/davidmtz/escolar/internal/app/models"

// CreateCourseRequest represents the payload for creating a course.
type CreateCourseRequest struct {
	Name    string `form:"name" json:"name" binding:"required,min=2,max=100"`
	Code    string `form:"code" json:"code" binding:"required,min=2,max=20"`
	Credits int    `form:"credits" json:"credits" binding:"required,min=1,max=30"`
}

// ToModel converts the request to a course model.
func (r *CreateCourseRequest) ToModel() *models.Course {
	return &models.Course{
		Name:    r.Name,
		Code:    r.Code,
		Credits: r.Credits,
	}
}

// UpdateCourseRequest represents a partial course update. Absent fields
// leave the stored value untouched; the code is immutable.
type UpdateCourseRequest struct {
	Name    *string `form:"name" json:"name" binding:"omitempty,min=2,max=100"`
	Credits *int    `form:"credits" json:"credits" binding:"omitempty,min=1,max=30"`
}

// ToUpdate converts the request to the repository update struct.
func (r *UpdateCourseRequest) ToUpdate() models.CourseUpdate {
	return models.CourseUpdate{
		Name:    r.Name,
		Credits: r.Credits,
	}
}
