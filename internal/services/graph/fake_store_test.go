package graph

import (
	"context"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yungbote/academics-backend/internal/domain/academics"
)

const (
	opTeachersByIDs        = "teachers_by_ids"
	opCoursesByTeacherIDs  = "courses_by_teacher_ids"
	opDepartmentsByHeadIDs = "departments_by_head_ids"
	opStudentsByCourseIDs  = "students_by_course_ids"
	opCoursesByStudentIDs  = "courses_by_student_ids"
)

var errNotConcurrent = errors.New("sibling fetch never started")

type enrollment struct {
	studentID int64
	courseID  int64
}

// fakeStore is an in-memory Reader that records every call and its key set.
type fakeStore struct {
	teachers    map[int64]*academics.Teacher
	students    map[int64]*academics.Student
	courses     []*academics.Course
	departments []*academics.Department
	enrollments []enrollment

	// reverse answers every batch in reverse order.
	reverse bool
	// fail makes the named operation return the error.
	fail map[string]error
	// block makes every call wait for ctx to end.
	block bool
	// rendezvous makes each call wait until this many calls are in flight.
	rendezvous int32

	inFlight atomic.Int32
	allIn    chan struct{}
	once     sync.Once

	mu    sync.Mutex
	calls map[string][][]int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		teachers: map[int64]*academics.Teacher{},
		students: map[int64]*academics.Student{},
		fail:     map[string]error{},
		calls:    map[string][][]int64{},
		allIn:    make(chan struct{}),
	}
}

func (f *fakeStore) addTeacher(id int64, name string) *academics.Teacher {
	t := &academics.Teacher{ID: id, Name: name}
	f.teachers[id] = t
	return t
}

func (f *fakeStore) addCourse(id int64, title string, teacherID *int64) *academics.Course {
	c := &academics.Course{ID: id, Title: title, TeacherID: teacherID}
	f.courses = append(f.courses, c)
	return c
}

func (f *fakeStore) addStudent(id int64, name string) *academics.Student {
	s := &academics.Student{ID: id, Name: name, Email: name + "@example.com"}
	f.students[id] = s
	return s
}

func (f *fakeStore) enroll(studentID, courseID int64) {
	f.enrollments = append(f.enrollments, enrollment{studentID: studentID, courseID: courseID})
}

func (f *fakeStore) callCount(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls[op])
}

func (f *fakeStore) totalCalls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		n += len(c)
	}
	return n
}

func (f *fakeStore) keys(op string, i int) []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[op][i]
}

func (f *fakeStore) enter(ctx context.Context, op string, ids []int64) error {
	f.mu.Lock()
	f.calls[op] = append(f.calls[op], slices.Clone(ids))
	f.mu.Unlock()

	if f.rendezvous > 0 {
		if f.inFlight.Add(1) == f.rendezvous {
			f.once.Do(func() { close(f.allIn) })
		}
		select {
		case <-f.allIn:
		case <-time.After(2 * time.Second):
			return errNotConcurrent
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if f.block {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.fail[op]
}

func order[T any](f *fakeStore, rows []T) []T {
	if f.reverse {
		slices.Reverse(rows)
	}
	return rows
}

func (f *fakeStore) TeachersByIDs(ctx context.Context, ids []int64) ([]*academics.Teacher, error) {
	if err := f.enter(ctx, opTeachersByIDs, ids); err != nil {
		return nil, err
	}
	var out []*academics.Teacher
	for _, id := range ids {
		if t, ok := f.teachers[id]; ok {
			out = append(out, t)
		}
	}
	return order(f, out), nil
}

func (f *fakeStore) CoursesByTeacherIDs(ctx context.Context, teacherIDs []int64) ([]*academics.Course, error) {
	if err := f.enter(ctx, opCoursesByTeacherIDs, teacherIDs); err != nil {
		return nil, err
	}
	var out []*academics.Course
	for _, c := range f.courses {
		if c.TeacherID != nil && slices.Contains(teacherIDs, *c.TeacherID) {
			out = append(out, c)
		}
	}
	return order(f, out), nil
}

func (f *fakeStore) DepartmentsByHeadIDs(ctx context.Context, teacherIDs []int64) ([]*academics.Department, error) {
	if err := f.enter(ctx, opDepartmentsByHeadIDs, teacherIDs); err != nil {
		return nil, err
	}
	var out []*academics.Department
	for _, d := range f.departments {
		if d.HeadOfDepartmentID != nil && slices.Contains(teacherIDs, *d.HeadOfDepartmentID) {
			out = append(out, d)
		}
	}
	return order(f, out), nil
}

func (f *fakeStore) StudentsByCourseIDs(ctx context.Context, courseIDs []int64) ([]*academics.EnrolledStudent, error) {
	if err := f.enter(ctx, opStudentsByCourseIDs, courseIDs); err != nil {
		return nil, err
	}
	var out []*academics.EnrolledStudent
	for _, e := range f.enrollments {
		if !slices.Contains(courseIDs, e.courseID) {
			continue
		}
		if s, ok := f.students[e.studentID]; ok {
			out = append(out, &academics.EnrolledStudent{CourseID: e.courseID, Student: *s})
		}
	}
	return order(f, out), nil
}

func (f *fakeStore) CoursesByStudentIDs(ctx context.Context, studentIDs []int64) ([]*academics.EnrolledCourse, error) {
	if err := f.enter(ctx, opCoursesByStudentIDs, studentIDs); err != nil {
		return nil, err
	}
	var out []*academics.EnrolledCourse
	for _, e := range f.enrollments {
		if !slices.Contains(studentIDs, e.studentID) {
			continue
		}
		for _, c := range f.courses {
			if c.ID == e.courseID {
				out = append(out, &academics.EnrolledCourse{StudentID: e.studentID, Course: *c})
			}
		}
	}
	return order(f, out), nil
}

func ptr(v int64) *int64 { return &v }
