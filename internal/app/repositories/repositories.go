package repositories

import (
	"github.com/davidmtz/escolar/internal/db"
)

// Repositories groups all database repositories behind one constructor so
// bootstrap can wire them in a single call.
type Repositories struct {
	User       *UserRepository
	Student    *StudentRepository
	Course     *CourseRepository
	Enrollment *EnrollmentRepository
	Grade      *GradeRepository
}

// NewRepositories creates all repositories sharing the same database handle.
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		User:       NewUserRepository(database),
		Student:    NewStudentRepository(database),
		Course:     NewCourseRepository(database),
		Enrollment: NewEnrollmentRepository(database),
		Grade:      NewGradeRepository(database),
	}
}
