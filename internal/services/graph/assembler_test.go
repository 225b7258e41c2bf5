package graph

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/observability"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

func newAssembler(t *testing.T, f *fakeStore, opts ...Option) *Assembler {
	t.Helper()
	log, err := logger.New("test")
	require.NoError(t, err)
	opts = append([]Option{WithMetrics(observability.NewMetrics())}, opts...)
	return New(f, log, opts...)
}

func TestCoursesIssueOneCallPerRelationKind(t *testing.T) {
	for _, n := range []int{1, 10, 100} {
		t.Run(fmt.Sprintf("%d roots", n), func(t *testing.T) {
			f := newFakeStore()
			roots := make([]*academics.Course, 0, n)
			for i := 1; i <= n; i++ {
				teacherID := int64(i%7 + 1)
				f.addTeacher(teacherID, fmt.Sprintf("t%d", teacherID))
				f.addStudent(int64(i), fmt.Sprintf("s%d", i))
				roots = append(roots, f.addCourse(int64(i), fmt.Sprintf("c%d", i), ptr(teacherID)))
				f.enroll(int64(i), int64(i))
			}

			out, err := newAssembler(t, f).Courses(context.Background(), roots)
			require.NoError(t, err)
			require.Len(t, out, n)

			assert.Equal(t, 1, f.callCount(opTeachersByIDs))
			assert.Equal(t, 1, f.callCount(opStudentsByCourseIDs))
			assert.Equal(t, 2, f.totalCalls())
			assert.Len(t, f.keys(opTeachersByIDs, 0), min(n, 7), "teacher keys are distinct")
		})
	}
}

func TestEmptyRootsIssueNoCalls(t *testing.T) {
	f := newFakeStore()
	a := newAssembler(t, f)
	ctx := context.Background()

	courses, err := a.Courses(ctx, nil)
	require.NoError(t, err)
	assert.NotNil(t, courses)
	assert.Empty(t, courses)

	withTeacher, err := a.CoursesWithTeacher(ctx, []*academics.Course{})
	require.NoError(t, err)
	assert.Empty(t, withTeacher)

	students, err := a.Students(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, students)

	teachers, err := a.Teachers(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, teachers)

	departments, err := a.Departments(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, departments)

	assert.Zero(t, f.totalCalls())
}

func TestOutputOrderFollowsRoots(t *testing.T) {
	for _, reverse := range []bool{false, true} {
		t.Run(fmt.Sprintf("reverse=%v", reverse), func(t *testing.T) {
			f := newFakeStore()
			f.reverse = reverse
			f.addTeacher(1, "Grace")
			f.addTeacher(2, "Edsger")
			c3 := f.addCourse(3, "c3", ptr(2))
			c1 := f.addCourse(1, "c1", ptr(1))
			c2 := f.addCourse(2, "c2", ptr(2))
			f.addStudent(10, "ada")
			f.addStudent(11, "alan")
			f.enroll(10, 1)
			f.enroll(11, 1)
			f.enroll(11, 3)

			roots := []*academics.Course{c2, c3, c1}
			out, err := newAssembler(t, f).Courses(context.Background(), roots)
			require.NoError(t, err)
			require.Len(t, out, 3)
			for i, root := range roots {
				assert.Equal(t, root.ID, out[i].ID)
				require.NotNil(t, out[i].Teacher)
				assert.Equal(t, *root.TeacherID, out[i].Teacher.ID)
			}
			assert.Empty(t, out[0].Students)
			require.Len(t, out[1].Students, 1)
			assert.Equal(t, int64(11), out[1].Students[0].ID)
			assert.Len(t, out[2].Students, 2)
		})
	}
}

func TestNullTeacherIsExcludedFromKeySet(t *testing.T) {
	f := newFakeStore()
	f.addTeacher(5, "Grace")
	roots := []*academics.Course{
		f.addCourse(1, "c1", ptr(5)),
		f.addCourse(2, "c2", nil),
		f.addCourse(3, "c3", ptr(5)),
	}

	out, err := newAssembler(t, f).Courses(context.Background(), roots)
	require.NoError(t, err)

	require.NotNil(t, out[0].Teacher)
	assert.Equal(t, int64(5), out[0].Teacher.ID)
	assert.Nil(t, out[1].Teacher)
	require.NotNil(t, out[2].Teacher)
	assert.Equal(t, int64(5), out[2].Teacher.ID)

	require.Equal(t, 1, f.callCount(opTeachersByIDs))
	assert.Equal(t, []int64{5}, f.keys(opTeachersByIDs, 0))
}

func TestAllNullTeachersSkipTeacherFetch(t *testing.T) {
	f := newFakeStore()
	roots := []*academics.Course{f.addCourse(1, "c1", nil)}

	out, err := newAssembler(t, f).Courses(context.Background(), roots)
	require.NoError(t, err)
	assert.Nil(t, out[0].Teacher)
	assert.Zero(t, f.callCount(opTeachersByIDs))
	assert.Equal(t, 1, f.callCount(opStudentsByCourseIDs))
}

func TestVanishedTeacherLeavesRelationUnset(t *testing.T) {
	f := newFakeStore()
	f.addTeacher(5, "Grace")
	roots := []*academics.Course{
		f.addCourse(1, "c1", ptr(5)),
		f.addCourse(2, "c2", ptr(6)),
	}

	out, err := newAssembler(t, f).Courses(context.Background(), roots)
	require.NoError(t, err)
	require.NotNil(t, out[0].Teacher)
	assert.Nil(t, out[1].Teacher)
	assert.ElementsMatch(t, []int64{5, 6}, f.keys(opTeachersByIDs, 0))
}

func TestVanishedTeacherFailsUnderStrictPolicy(t *testing.T) {
	f := newFakeStore()
	roots := []*academics.Course{f.addCourse(2, "c2", ptr(6))}

	a := newAssembler(t, f, WithMissingRelationPolicy(FailOnMissing))
	out, err := a.Courses(context.Background(), roots)
	require.Error(t, err)
	assert.Nil(t, out)

	var e *academics.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, academics.CodeRelationMissing, e.Code)
	assert.Equal(t, academics.KindTeacher, e.Kind)
	assert.Equal(t, int64(6), e.ID)
}

func TestBranchFailureIsAggregateFailure(t *testing.T) {
	boom := errors.New("connection reset")
	f := newFakeStore()
	f.fail[opTeachersByIDs] = boom
	f.addTeacher(5, "Grace")
	roots := []*academics.Course{f.addCourse(1, "c1", ptr(5))}

	out, err := newAssembler(t, f).Courses(context.Background(), roots)
	assert.Nil(t, out, "no partial views")
	assert.True(t, academics.IsCode(err, academics.CodeAggregateFailure))
	assert.ErrorIs(t, err, boom)
}

func TestDeadlineCancelsOutstandingBranches(t *testing.T) {
	f := newFakeStore()
	f.block = true
	f.addTeacher(5, "Grace")
	roots := []*academics.Course{f.addCourse(1, "c1", ptr(5))}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		_, err := newAssembler(t, f).Courses(ctx, roots)
		done <- err
	}()

	select {
	case err := <-done:
		assert.True(t, academics.IsCode(err, academics.CodeAggregateFailure))
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	case <-time.After(2 * time.Second):
		t.Fatal("assembly did not return after the deadline")
	}
	assert.Equal(t, 2, f.totalCalls())
}

func TestIndependentFetchesRunConcurrently(t *testing.T) {
	t.Run("courses", func(t *testing.T) {
		f := newFakeStore()
		f.rendezvous = 2
		f.addTeacher(5, "Grace")
		roots := []*academics.Course{f.addCourse(1, "c1", ptr(5))}

		_, err := newAssembler(t, f).Courses(context.Background(), roots)
		require.NoError(t, err)
	})
	t.Run("teachers", func(t *testing.T) {
		f := newFakeStore()
		f.rendezvous = 2
		roots := []*academics.Teacher{f.addTeacher(5, "Grace")}

		_, err := newAssembler(t, f).Teachers(context.Background(), roots)
		require.NoError(t, err)
	})
}

func TestStudentsCarryCourseTeachers(t *testing.T) {
	f := newFakeStore()
	f.addTeacher(5, "Grace")
	f.addCourse(1, "Compilers", ptr(5))
	f.addCourse(2, "Algorithms", nil)
	f.addCourse(3, "Databases", ptr(5))
	ada := f.addStudent(10, "ada")
	alan := f.addStudent(11, "alan")
	idle := f.addStudent(12, "idle")
	f.enroll(10, 1)
	f.enroll(10, 2)
	f.enroll(11, 3)

	out, err := newAssembler(t, f).Students(context.Background(), []*academics.Student{alan, idle, ada})
	require.NoError(t, err)
	require.Len(t, out, 3)

	assert.Equal(t, alan.ID, out[0].ID)
	require.Len(t, out[0].Courses, 1)
	require.NotNil(t, out[0].Courses[0].Teacher)
	assert.Equal(t, int64(5), out[0].Courses[0].Teacher.ID)
	assert.Nil(t, out[0].Courses[0].Students, "nested courses carry no roster")

	assert.Equal(t, idle.ID, out[1].ID)
	assert.NotNil(t, out[1].Courses)
	assert.Empty(t, out[1].Courses)

	require.Len(t, out[2].Courses, 2)
	byID := map[int64]bool{}
	for _, c := range out[2].Courses {
		byID[c.ID] = c.Teacher != nil
	}
	assert.Equal(t, map[int64]bool{1: true, 2: false}, byID)

	assert.Equal(t, 1, f.callCount(opCoursesByStudentIDs))
	assert.Equal(t, 1, f.callCount(opTeachersByIDs))
	assert.Equal(t, []int64{5}, f.keys(opTeachersByIDs, 0))
}

func TestStudentsWithoutCoursesSkipTeacherFetch(t *testing.T) {
	f := newFakeStore()
	s := f.addStudent(10, "ada")

	view, err := newAssembler(t, f).Student(context.Background(), s)
	require.NoError(t, err)
	assert.Empty(t, view.Courses)
	assert.Equal(t, 1, f.totalCalls())
}

func TestTeachersAttachCoursesAndDepartment(t *testing.T) {
	f := newFakeStore()
	grace := f.addTeacher(5, "Grace")
	edsger := f.addTeacher(6, "Edsger")
	f.addCourse(1, "Compilers", ptr(5))
	f.addCourse(2, "Algorithms", ptr(5))
	f.addCourse(3, "Databases", nil)
	f.departments = []*academics.Department{{ID: 9, Name: "CS", HeadOfDepartmentID: ptr(6)}}

	out, err := newAssembler(t, f).Teachers(context.Background(), []*academics.Teacher{grace, edsger})
	require.NoError(t, err)

	require.Len(t, out[0].Courses, 2)
	assert.Equal(t, int64(1), out[0].Courses[0].ID)
	assert.Nil(t, out[0].Department)

	assert.Empty(t, out[1].Courses)
	require.NotNil(t, out[1].Department)
	assert.Equal(t, int64(9), out[1].Department.ID)

	assert.Equal(t, 1, f.callCount(opCoursesByTeacherIDs))
	assert.Equal(t, 1, f.callCount(opDepartmentsByHeadIDs))
}

func TestDepartmentsAttachHead(t *testing.T) {
	f := newFakeStore()
	f.addTeacher(5, "Grace")
	roots := []*academics.Department{
		{ID: 1, Name: "CS", HeadOfDepartmentID: ptr(5)},
		{ID: 2, Name: "Math"},
		{ID: 3, Name: "Physics", HeadOfDepartmentID: ptr(7)},
	}

	out, err := newAssembler(t, f).Departments(context.Background(), roots)
	require.NoError(t, err)
	require.NotNil(t, out[0].HeadOfDepartment)
	assert.Equal(t, "Grace", out[0].HeadOfDepartment.Name)
	assert.Nil(t, out[1].HeadOfDepartment)
	assert.Nil(t, out[2].HeadOfDepartment)
	assert.Equal(t, 1, f.callCount(opTeachersByIDs))

	f2 := newFakeStore()
	_, err = newAssembler(t, f2).Department(context.Background(), &academics.Department{ID: 2, Name: "Math"})
	require.NoError(t, err)
	assert.Zero(t, f2.totalCalls())
}

func TestParseMissingRelationPolicy(t *testing.T) {
	p, err := ParseMissingRelationPolicy("FAIL")
	require.NoError(t, err)
	assert.Equal(t, FailOnMissing, p)

	p, err = ParseMissingRelationPolicy("")
	require.NoError(t, err)
	assert.Equal(t, DropMissing, p)
	assert.Equal(t, "drop", p.String())

	_, err = ParseMissingRelationPolicy("ignore")
	assert.Error(t, err)
}
