package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/davidmtz/escolar/internal/app/models/dto"
	"github.com/davidmtz/escolar/internal/app/services"
	"github.com/davidmtz/escolar/internal/middleware"
)

// EnrollmentController handles enrollment-related operations
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{
		enrollmentService: enrollmentService,
	}
}

// Enroll adds a student to a course
// @Summary Enroll a student in a course
// @Description Creates an enrollment for the (student, course) pair
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Param course_id path int true "Course ID"
// @Success 201 {object} dto.APIResponse{data=dto.MessageResponse} "Student enrolled successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid IDs or student already enrolled"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /enroll/{student_id}/{course_id} [post]
func (c *EnrollmentController) Enroll(ctx *gin.Context) {
	studentID, courseID, err := parsePairParams(ctx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment IDs")
		errorDetail = errorDetail.WithDetails("Student ID and course ID must be valid numbers")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.enrollmentService.Enroll(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      dto.MessageResponse{Message: "Student enrolled successfully"},
		Timestamp: time.Now(),
	})
}

// Withdraw removes a student from a course
// @Summary Withdraw a student from a course
// @Description Deletes the enrollment for the (student, course) pair
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Param course_id path int true "Course ID"
// @Success 200 {object} dto.APIResponse{data=dto.MessageResponse} "Student withdrawn successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid IDs or student not enrolled"
// @Failure 403 {object} dto.ErrorResponse "Forbidden - Administrator role required"
// @Failure 404 {object} dto.ErrorResponse "Student or course not found"
// @Router /enroll/{student_id}/{course_id} [delete]
func (c *EnrollmentController) Withdraw(ctx *gin.Context) {
	studentID, courseID, err := parsePairParams(ctx)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid enrollment IDs")
		errorDetail = errorDetail.WithDetails("Student ID and course ID must be valid numbers")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.enrollmentService.Withdraw(ctx, studentID, courseID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.MessageResponse{Message: "Student withdrawn successfully"},
		Timestamp: time.Now(),
	})
}

// CoursesForStudent lists the courses a student is enrolled in
// @Summary List a student's courses
// @Description Retrieves the courses the student is currently enrolled in
// @Tags enrollments
// @Produce json
// @Security BearerAuth
// @Param student_id path int true "Student ID"
// @Success 200 {object} dto.APIResponse{data=[]models.Course} "Courses retrieved successfully"
// @Failure 404 {object} dto.ErrorResponse "Student not found"
// @Router /enrollments/student/{student_id} [get]
func (c *EnrollmentController) CoursesForStudent(ctx *gin.Context) {
	studentID, err := parseIDParam(ctx, "student_id")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid student ID")
		errorDetail = errorDetail.WithDetails("Student ID must be a valid number")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	courses, err := c.enrollmentService.CoursesForStudent(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      courses,
		Timestamp: time.Now(),
	})
}

// parsePairParams parses the student/course path parameter pair.
func parsePairParams(ctx *gin.Context) (studentID, courseID int64, err error) {
	studentID, err = parseIDParam(ctx, "student_id")
	if err != nil {
		return 0, 0, err
	}
	courseID, err = parseIDParam(ctx, "course_id")
	if err != nil {
		return 0, 0, err
	}
	return studentID, courseID, nil
}
