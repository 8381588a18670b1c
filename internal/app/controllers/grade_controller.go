package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidmtz/escolar/internal/app/models/dto"
	"github.com/davidmtz/escolar/internal/app/services"
	"github.com/davidmtz/escolar/internal/middleware"
)

// GradeController handles grade-related operations
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// RecordGrade records a grade for an enrolled student
// @Summary Record a grade
// @Description Records a grade for an enrolled (student, course) pair; at most one grade per pair
// @Tags grades
// @Accept x-www-form-urlencoded
// @Produce json
// @Security BearerAuth
// @Param student_id formData int true "Student ID"
// @Param course_id formData int true "Course ID"
// @Param score formData number true "Score between 0 and 10"
// @Success 201 {object} dto.APIResponse{data=models.Grade} "Grade recorded successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid data, student not enrolled, or grade already exists"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /grades [post]
func (c *GradeController) RecordGrade(ctx *gin.Context) {
	var req dto.RecordGradeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grade, err := c.gradeService.Record(ctx, req.StudentID, req.CourseID, *req.Score)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// UpdateGrade overwrites the score of an existing grade
// @Summary Update a grade
// @Description Replaces the score of the grade for the (student, course) pair
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Param course_id path int true "Course ID"
// @Param request body dto.UpdateGradeRequest true "New score"
// @Success 200 {object} dto.APIResponse{data=models.Grade} "Grade updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Router /grades/{student_id}/{course_id} [put]
func (c *GradeController) UpdateGrade(ctx *gin.Context) {
	studentID, courseID, err := parsePairParams(ctx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid grade IDs")
		errorDetail = errorDetail.WithDetails("Student ID and course ID must be valid numbers")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateGradeRequest
	if err := ctx.ShouldBind(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	grade, err := c.gradeService.Update(ctx, studentID, courseID, *req.Score)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grade,
		Timestamp: time.Now(),
	})
}

// ListGradesForStudent retrieves all grades of a student
// @Summary List a student's grades
// @Description Retrieves all grades recorded for the student
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Grade} "Grades retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /grades/student/{student_id} [get]
func (c *GradeController) ListGradesForStudent(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "student_id")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	grades, err := c.gradeService.ListForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      grades,
		Timestamp: time.Now(),
	})
}

// StudentStats aggregates a student's academic numbers
// @Summary Get student statistics
// @Description Returns enrollment count, overall grade average and credit sum for a student
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=dto.StudentStatsResponse} "Statistics retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /grades/stats/student/{student_id} [get]
func (c *GradeController) StudentStats(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "student_id")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	stats, err := c.gradeService.StatsForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stats,
		Timestamp: time.Now(),
	})
}
