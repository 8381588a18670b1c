package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davidmtz/escolar/internal/app/controllers"
	"github.com/davidmtz/escolar/internal/middleware"
)

// SetupRouter configures all application routes. Write operations on records
// are gated behind the administrator role; reads only require a valid token.
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	enrollmentController *controllers.EnrollmentController,
	gradeController *controllers.GradeController,
	authMiddleware *middleware.AuthMiddleware,
) {
	// --- Public routes ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/token", authController.Token)
	router.POST("/register", authController.Register)

	// --- Authenticated routes ---
	authenticated := router.Group("")
	authenticated.Use(authMiddleware.RequireAuth())

	authenticated.GET("/users/me", authController.Me)

	students := authenticated.Group("/students")
	{
		students.GET("", studentController.ListStudents)
		students.GET("/:id", studentController.GetStudentByID)

		studentsAdmin := students.Group("")
		studentsAdmin.Use(authMiddleware.RequireAdmin())
		{
			studentsAdmin.POST("", studentController.CreateStudent)
			studentsAdmin.PUT("/:id", studentController.UpdateStudent)
			studentsAdmin.DELETE("/:id", studentController.DeleteStudent)
		}
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", courseController.ListCourses)
		courses.GET("/:id", courseController.GetCourseByID)

		coursesAdmin := courses.Group("")
		coursesAdmin.Use(authMiddleware.RequireAdmin())
		{
			coursesAdmin.POST("", courseController.CreateCourse)
			coursesAdmin.PUT("/:id", courseController.UpdateCourse)
			coursesAdmin.DELETE("/:id", courseController.DeleteCourse)
		}
	}

	enroll := authenticated.Group("/enroll")
	enroll.Use(authMiddleware.RequireAdmin())
	{
		enroll.POST("/:student_id/:course_id", enrollmentController.Enroll)
		enroll.DELETE("/:student_id/:course_id", enrollmentController.Withdraw)
	}

	authenticated.GET("/enrollments/student/:student_id", enrollmentController.CoursesForStudent)

	grades := authenticated.Group("/grades")
	{
		grades.GET("/student/:student_id", gradeController.ListGradesForStudent)
		grades.GET("/stats/student/:student_id", gradeController.StudentStats)

		gradesAdmin := grades.Group("")
		gradesAdmin.Use(authMiddleware.RequireAdmin())
		{
			gradesAdmin.POST("", gradeController.RecordGrade)
			gradesAdmin.PUT("/:student_id/:course_id", gradeController.UpdateGrade)
		}
	}
}
