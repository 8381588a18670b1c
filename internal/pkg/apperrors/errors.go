package apperrors

import "errors"

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
)

// Authorization errors
var (
	ErrPermissionDenied = errors.New("permission denied")
)

// Student errors
var (
	ErrStudentNotFound      = errors.New("student not found")
	ErrStudentNumberExists  = errors.New("student number already registered")
	ErrStudentEmailExists   = errors.New("student email already registered")
)

// Course errors
var (
	ErrCourseNotFound   = errors.New("course not found")
	ErrCourseCodeExists = errors.New("course with this code already exists")
)

// Enrollment errors
var (
	ErrAlreadyEnrolled = errors.New("student is already enrolled in this course")
	ErrNotEnrolled     = errors.New("student is not enrolled in this course")
)

// Grade errors
var (
	ErrGradeNotFound      = errors.New("grade not found")
	ErrGradeAlreadyExists = errors.New("a grade already exists for this student and course")
)

// Is returns whether err matches target or any of the errors in errList.
// It eases using errors.Is against several sentinels at once.
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}
	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}
	return false
}
