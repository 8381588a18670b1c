package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/davidmtz/escolar/internal/app/models/dto"
	"github.com/davidmtz/escolar/internal/pkg/apperrors"
)

func TestHandleAPIErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   dto.ErrorCode
	}{
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials},
		{"expired token", apperrors.ErrTokenExpired, http.StatusUnauthorized, dto.ErrorCodeExpiredToken},
		{"invalid token", apperrors.ErrTokenInvalid, http.StatusUnauthorized, dto.ErrorCodeInvalidToken},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, dto.ErrorCodeForbidden},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"course not found", apperrors.ErrCourseNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"grade not found", apperrors.ErrGradeNotFound, http.StatusNotFound, dto.ErrorCodeResourceNotFound},
		{"email exists", apperrors.ErrEmailAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"student number exists", apperrors.ErrStudentNumberExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"course code exists", apperrors.ErrCourseCodeExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"grade exists", apperrors.ErrGradeAlreadyExists, http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusBadRequest, dto.ErrorCodeRelationViolation},
		{"not enrolled", apperrors.ErrNotEnrolled, http.StatusBadRequest, dto.ErrorCodeRelationViolation},
		{"unknown error", errBoom, http.StatusInternalServerError, dto.ErrorCodeInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIError(c, tt.err)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}

			var resp dto.ErrorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("unmarshal response: %v", err)
			}
			if resp.Error == nil {
				t.Fatal("expected error detail in response")
			}
			if resp.Error.Code != tt.wantCode {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.wantCode)
			}
		})
	}
}

// errBoom is an error outside the sentinel set.
var errBoom = &customError{}

type customError struct{}

func (*customError) Error() string { return "boom" }

// Internal failures must not leak details to the client.
func TestHandleAPIErrorHidesInternals(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	HandleAPIError(c, &customError{})

	var resp dto.ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Error.Message != "Internal server error" {
		t.Errorf("message = %q, leaked internal error text", resp.Error.Message)
	}
}
