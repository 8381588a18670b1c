package services

import (
	"context"
	"sort"
	"sync"

	"github.com/davidmtz/escolar/internal/app/models"
	"github.com/davidmtz/escolar/internal/pkg/apperrors"
)

// In-memory store fakes mirroring the guarantees the pgx-backed repositories
// get from database constraints: uniqueness, the enrollment prerequisite on
// grade inserts, and safety under concurrent calls.

type fakeUserStore struct {
	mu     sync.Mutex
	users  map[string]*models.User
	nextID int64
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[string]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return apperrors.ErrEmailAlreadyExists
	}
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.Email] = &copied
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

type fakeStudentStore struct {
	mu       sync.Mutex
	students map[int64]*models.Student
	nextID   int64
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{students: make(map[int64]*models.Student)}
}

func (s *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.students {
		if existing.StudentNumber == student.StudentNumber {
			return apperrors.ErrStudentNumberExists
		}
		if existing.Email == student.Email {
			return apperrors.ErrStudentEmailExists
		}
	}
	s.nextID++
	student.ID = s.nextID
	copied := *student
	s.students[student.ID] = &copied
	return nil
}

func (s *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	copied := *student
	return &copied, nil
}

func (s *fakeStudentStore) List(_ context.Context, skip, limit int) ([]*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.students))
	for id := range s.students {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*models.Student
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		copied := *s.students[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeStudentStore) Update(_ context.Context, id int64, upd models.StudentUpdate) (*models.Student, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	student, ok := s.students[id]
	if !ok {
		return nil, apperrors.ErrStudentNotFound
	}
	if upd.Email != nil {
		for otherID, other := range s.students {
			if otherID != id && other.Email == *upd.Email {
				return nil, apperrors.ErrStudentEmailExists
			}
		}
		student.Email = *upd.Email
	}
	if upd.FirstName != nil {
		student.FirstName = *upd.FirstName
	}
	if upd.LastName != nil {
		student.LastName = *upd.LastName
	}
	copied := *student
	return &copied, nil
}

func (s *fakeStudentStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.students[id]; !ok {
		return apperrors.ErrStudentNotFound
	}
	delete(s.students, id)
	return nil
}

func (s *fakeStudentStore) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.students[id]
	return ok, nil
}

type fakeCourseStore struct {
	mu      sync.Mutex
	courses map[int64]*models.Course
	nextID  int64
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{courses: make(map[int64]*models.Course)}
}

func (s *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	s.nextID++
	course.ID = s.nextID
	copied := *course
	s.courses[course.ID] = &copied
	return nil
}

func (s *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.getLocked(id)
}

func (s *fakeCourseStore) getLocked(id int64) (*models.Course, error) {
	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	copied := *course
	return &copied, nil
}

func (s *fakeCourseStore) List(_ context.Context, skip, limit int) ([]*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids := make([]int64, 0, len(s.courses))
	for id := range s.courses {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*models.Course
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		copied := *s.courses[id]
		out = append(out, &copied)
	}
	return out, nil
}

func (s *fakeCourseStore) Update(_ context.Context, id int64, upd models.CourseUpdate) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	course, ok := s.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	if upd.Name != nil {
		course.Name = *upd.Name
	}
	if upd.Credits != nil {
		course.Credits = *upd.Credits
	}
	copied := *course
	return &copied, nil
}

func (s *fakeCourseStore) Delete(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.courses[id]; !ok {
		return apperrors.ErrCourseNotFound
	}
	delete(s.courses, id)
	return nil
}

func (s *fakeCourseStore) Exists(_ context.Context, id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.courses[id]
	return ok, nil
}

type enrollmentPair struct {
	studentID int64
	courseID  int64
}

type fakeEnrollmentStore struct {
	mu      sync.Mutex
	pairs   []enrollmentPair
	courses *fakeCourseStore
}

func newFakeEnrollmentStore(courses *fakeCourseStore) *fakeEnrollmentStore {
	return &fakeEnrollmentStore{courses: courses}
}

func (s *fakeEnrollmentStore) Insert(_ context.Context, studentID, courseID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.existsLocked(studentID, courseID) {
		return apperrors.ErrAlreadyEnrolled
	}
	s.pairs = append(s.pairs, enrollmentPair{studentID: studentID, courseID: courseID})
	return nil
}

func (s *fakeEnrollmentStore) Delete(_ context.Context, studentID, courseID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, pair := range s.pairs {
		if pair.studentID == studentID && pair.courseID == courseID {
			s.pairs = append(s.pairs[:i], s.pairs[i+1:]...)
			return nil
		}
	}
	return apperrors.ErrNotEnrolled
}

func (s *fakeEnrollmentStore) Exists(_ context.Context, studentID, courseID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.existsLocked(studentID, courseID), nil
}

func (s *fakeEnrollmentStore) existsLocked(studentID, courseID int64) bool {
	for _, pair := range s.pairs {
		if pair.studentID == studentID && pair.courseID == courseID {
			return true
		}
	}
	return false
}

func (s *fakeEnrollmentStore) CoursesForStudent(_ context.Context, studentID int64) ([]*models.Course, error) {
	s.mu.Lock()
	pairs := make([]enrollmentPair, len(s.pairs))
	copy(pairs, s.pairs)
	s.mu.Unlock()

	var out []*models.Course
	for _, pair := range pairs {
		if pair.studentID != studentID {
			continue
		}
		if course, err := s.courses.GetByID(context.Background(), pair.courseID); err == nil {
			out = append(out, course)
		}
	}
	return out, nil
}

// fakeGradeStore checks the enrollment prerequisite at insert time, the way
// the real repository's conditional insert does.
type fakeGradeStore struct {
	mu          sync.Mutex
	grades      []*models.Grade
	nextID      int64
	enrollments *fakeEnrollmentStore
}

func newFakeGradeStore(enrollments *fakeEnrollmentStore) *fakeGradeStore {
	return &fakeGradeStore{enrollments: enrollments}
}

func (s *fakeGradeStore) Insert(ctx context.Context, grade *models.Grade) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	enrolled, err := s.enrollments.Exists(ctx, grade.StudentID, grade.CourseID)
	if err != nil {
		return err
	}
	if !enrolled {
		return apperrors.ErrNotEnrolled
	}

	for _, existing := range s.grades {
		if existing.StudentID == grade.StudentID && existing.CourseID == grade.CourseID {
			return apperrors.ErrGradeAlreadyExists
		}
	}
	s.nextID++
	grade.ID = s.nextID
	copied := *grade
	s.grades = append(s.grades, &copied)
	return nil
}

func (s *fakeGradeStore) UpdateScore(_ context.Context, studentID, courseID int64, score float64) (*models.Grade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.grades {
		if existing.StudentID == studentID && existing.CourseID == courseID {
			existing.Score = score
			copied := *existing
			return &copied, nil
		}
	}
	return nil, apperrors.ErrGradeNotFound
}

func (s *fakeGradeStore) ListForStudent(_ context.Context, studentID int64) ([]*models.Grade, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*models.Grade
	for _, grade := range s.grades {
		if grade.StudentID == studentID {
			copied := *grade
			out = append(out, &copied)
		}
	}
	return out, nil
}
