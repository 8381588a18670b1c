package dto

// RecordGradeRequest represents the payload for recording a grade. Score is
// a pointer so that a legitimate 0.0 passes the required check.
type RecordGradeRequest struct {
	StudentID int64    `form:"student_id" json:"studentId" binding:"required,min=1"`
	CourseID  int64    `form:"course_id" json:"courseId" binding:"required,min=1"`
	Score     *float64 `form:"score" json:"score" binding:"required,min=0,max=10"`
}

// UpdateGradeRequest carries the new score for an existing grade.
type UpdateGradeRequest struct {
	Score *float64 `form:"score" json:"score" binding:"required,min=0,max=10"`
}

// StudentStatsResponse aggregates a student's academic numbers.
type StudentStatsResponse struct {
	TotalCourses   int     `json:"total_courses"`
	OverallAverage float64 `json:"overall_average"`
	CreditsTaken   int     `json:"credits_taken"`
}
