package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/davidmtz/escolar/internal/app/models"
	"github.com/davidmtz/escolar/internal/pkg/apperrors"
)

type enrollmentFixture struct {
	students    *fakeStudentStore
	courses     *fakeCourseStore
	enrollments *fakeEnrollmentStore
	svc         *EnrollmentService
}

func newEnrollmentFixture(t *testing.T) *enrollmentFixture {
	t.Helper()
	students := newFakeStudentStore()
	courses := newFakeCourseStore()
	enrollments := newFakeEnrollmentStore(courses)
	return &enrollmentFixture{
		students:    students,
		courses:     courses,
		enrollments: enrollments,
		svc:         NewEnrollmentService(students, courses, enrollments, zerolog.Nop()),
	}
}

func (f *enrollmentFixture) addStudent(t *testing.T, number, email string) int64 {
	t.Helper()
	student := &models.Student{FirstName: "Ana", LastName: "García", StudentNumber: number, Email: email}
	if err := f.students.Create(context.Background(), student); err != nil {
		t.Fatalf("add student: %v", err)
	}
	return student.ID
}

func (f *enrollmentFixture) addCourse(t *testing.T, code string, credits int) int64 {
	t.Helper()
	course := &models.Course{Name: "Course " + code, Code: code, Credits: credits}
	if err := f.courses.Create(context.Background(), course); err != nil {
		t.Fatalf("add course: %v", err)
	}
	return course.ID
}

func TestEnrollSuccess(t *testing.T) {
	f := newEnrollmentFixture(t)
	studentID := f.addStudent(t, "A0012345", "ana@school.com")
	courseID := f.addCourse(t, "MATH101", 8)

	if err := f.svc.Enroll(context.Background(), studentID, courseID); err != nil {
		t.Fatalf("Enroll: %v", err)
	}

	courses, err := f.svc.CoursesForStudent(context.Background(), studentID)
	if err != nil {
		t.Fatalf("CoursesForStudent: %v", err)
	}
	if len(courses) != 1 || courses[0].ID != courseID {
		t.Errorf("courses = %+v, want single course %d", courses, courseID)
	}
}

func TestEnrollDuplicatePair(t *testing.T) {
	f := newEnrollmentFixture(t)
	studentID := f.addStudent(t, "A0012345", "ana@school.com")
	courseID := f.addCourse(t, "MATH101", 8)

	if err := f.svc.Enroll(context.Background(), studentID, courseID); err != nil {
		t.Fatalf("first Enroll: %v", err)
	}
	err := f.svc.Enroll(context.Background(), studentID, courseID)
	if !errors.Is(err, apperrors.ErrAlreadyEnrolled) {
		t.Errorf("Enroll error = %v, want ErrAlreadyEnrolled", err)
	}
}

func TestEnrollMissingSides(t *testing.T) {
	f := newEnrollmentFixture(t)
	studentID := f.addStudent(t, "A0012345", "ana@school.com")
	courseID := f.addCourse(t, "MATH101", 8)

	if err := f.svc.Enroll(context.Background(), 999, courseID); !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("Enroll with unknown student error = %v, want ErrStudentNotFound", err)
	}
	if err := f.svc.Enroll(context.Background(), studentID, 999); !errors.Is(err, apperrors.ErrCourseNotFound) {
		t.Errorf("Enroll with unknown course error = %v, want ErrCourseNotFound", err)
	}
}

func TestWithdrawAndReenroll(t *testing.T) {
	f := newEnrollmentFixture(t)
	studentID := f.addStudent(t, "A0012345", "ana@school.com")
	courseID := f.addCourse(t, "MATH101", 8)

	if err := f.svc.Enroll(context.Background(), studentID, courseID); err != nil {
		t.Fatalf("Enroll: %v", err)
	}
	if err := f.svc.Withdraw(context.Background(), studentID, courseID); err != nil {
		t.Fatalf("Withdraw: %v", err)
	}

	courses, err := f.svc.CoursesForStudent(context.Background(), studentID)
	if err != nil {
		t.Fatalf("CoursesForStudent: %v", err)
	}
	if len(courses) != 0 {
		t.Errorf("courses after withdraw = %+v, want none", courses)
	}

	if err := f.svc.Enroll(context.Background(), studentID, courseID); err != nil {
		t.Errorf("re-enroll after withdraw: %v", err)
	}
}

func TestWithdrawNotEnrolled(t *testing.T) {
	f := newEnrollmentFixture(t)
	studentID := f.addStudent(t, "A0012345", "ana@school.com")
	courseID := f.addCourse(t, "MATH101", 8)

	err := f.svc.Withdraw(context.Background(), studentID, courseID)
	if !errors.Is(err, apperrors.ErrNotEnrolled) {
		t.Errorf("Withdraw error = %v, want ErrNotEnrolled", err)
	}
}

// Racing enrolls for one pair must produce exactly one enrollment; in
// production the composite primary key guarantees this, in tests the fake
// store's locked insert does.
func TestConcurrentEnrollSinglePair(t *testing.T) {
	f := newEnrollmentFixture(t)
	studentID := f.addStudent(t, "A0012345", "ana@school.com")
	courseID := f.addCourse(t, "MATH101", 8)

	const workers = 16
	start := make(chan struct{})
	results := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			results <- f.svc.Enroll(context.Background(), studentID, courseID)
		}()
	}
	close(start)
	wg.Wait()
	close(results)

	var succeeded, duplicates int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, apperrors.ErrAlreadyEnrolled):
			duplicates++
		default:
			t.Errorf("unexpected Enroll error: %v", err)
		}
	}

	if succeeded != 1 {
		t.Errorf("successful enrolls = %d, want exactly 1", succeeded)
	}
	if duplicates != workers-1 {
		t.Errorf("duplicate enrolls = %d, want %d", duplicates, workers-1)
	}

	courses, err := f.svc.CoursesForStudent(context.Background(), studentID)
	if err != nil {
		t.Fatalf("CoursesForStudent: %v", err)
	}
	if len(courses) != 1 {
		t.Errorf("enrolled courses = %d, want 1", len(courses))
	}
}

func TestCoursesForUnknownStudent(t *testing.T) {
	f := newEnrollmentFixture(t)

	_, err := f.svc.CoursesForStudent(context.Background(), 999)
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		t.Errorf("CoursesForStudent error = %v, want ErrStudentNotFound", err)
	}
}
