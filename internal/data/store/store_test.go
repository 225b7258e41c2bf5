package store

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/data/repos/testutil"
	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/observability"
)

func newTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()
	db := testutil.DB(t)
	log := testutil.Logger(t)
	return New(db, log, NewRepos(db, log), observability.NewMetrics()), db
}

func TestWriteRelationship(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t)

	teacher := testutil.SeedTeacher(t, ctx, db, "Grace")
	course := testutil.SeedCourse(t, ctx, db, "Compilers", nil)
	dept := testutil.SeedDepartment(t, ctx, db, "CS", nil)
	student := testutil.SeedStudent(t, ctx, db, "Ada", "ada@example.com")

	require.NoError(t, s.WriteRelationship(ctx, academics.EdgeCourseTeacher, course.ID, teacher.ID))
	require.NoError(t, s.WriteRelationship(ctx, academics.EdgeDepartmentHead, dept.ID, teacher.ID))
	require.NoError(t, s.WriteRelationship(ctx, academics.EdgeStudentCourse, student.ID, course.ID))

	got, err := s.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	require.NotNil(t, got.TeacherID)
	assert.Equal(t, teacher.ID, *got.TeacherID)

	roster, err := s.StudentsByCourseIDs(ctx, []int64{course.ID})
	require.NoError(t, err)
	require.Len(t, roster, 1)
	assert.Equal(t, student.ID, roster[0].ID)

	err = s.WriteRelationship(ctx, academics.EdgeStudentCourse, student.ID, course.ID)
	assert.True(t, academics.IsCode(err, academics.CodeConstraintViolation), "duplicate enrollment: %v", err)

	err = s.WriteRelationship(ctx, academics.EdgeCourseTeacher, 999, teacher.ID)
	var e *academics.Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, academics.CodeNotFound, e.Code)
	assert.Equal(t, academics.KindCourse, e.Kind)
	assert.Equal(t, int64(999), e.ID)

	err = s.WriteRelationship(ctx, academics.EdgeKind("nope"), 1, 1)
	assert.True(t, academics.IsCode(err, academics.CodeValidation))
}

func TestExistsByID(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t)
	teacher := testutil.SeedTeacher(t, ctx, db, "Grace")

	ok, err := s.ExistsByID(ctx, academics.KindTeacher, teacher.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.ExistsByID(ctx, academics.KindStudent, teacher.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.ExistsByID(ctx, academics.Kind("planet"), 1)
	assert.True(t, academics.IsCode(err, academics.CodeValidation))
}

func TestCRUD(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(t)

	st, err := s.CreateStudent(ctx, &academics.Student{Name: "Ada", Email: "ada@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, st.ID)

	_, err = s.CreateStudent(ctx, &academics.Student{Name: "Dup", Email: "ada@example.com"})
	assert.True(t, academics.IsCode(err, academics.CodeConstraintViolation), "got %v", err)

	require.NoError(t, s.UpdateStudent(ctx, st.ID, map[string]interface{}{"name": "Ada L."}))
	got, err := s.GetStudent(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada L.", got.Name)

	err = s.UpdateStudent(ctx, 999, map[string]interface{}{"name": "x"})
	assert.True(t, academics.IsCode(err, academics.CodeNotFound))
	err = s.UpdateStudent(ctx, 999, nil)
	assert.True(t, academics.IsCode(err, academics.CodeNotFound))
	require.NoError(t, s.UpdateStudent(ctx, st.ID, nil))

	require.NoError(t, s.DeleteStudent(ctx, st.ID))
	require.NoError(t, s.DeleteStudent(ctx, st.ID), "delete is idempotent")
	_, err = s.GetStudent(ctx, st.ID)
	assert.True(t, academics.IsCode(err, academics.CodeNotFound))

	list, err := s.ListStudents(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestDeleteTeacherClearsReferences(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t)

	teacher := testutil.SeedTeacher(t, ctx, db, "Grace")
	course := testutil.SeedCourse(t, ctx, db, "Compilers", testutil.PtrInt64(teacher.ID))
	dept := testutil.SeedDepartment(t, ctx, db, "CS", testutil.PtrInt64(teacher.ID))

	require.NoError(t, s.DeleteTeacher(ctx, teacher.ID))

	c, err := s.GetCourse(ctx, course.ID)
	require.NoError(t, err)
	assert.Nil(t, c.TeacherID)

	d, err := s.GetDepartment(ctx, dept.ID)
	require.NoError(t, err)
	assert.Nil(t, d.HeadOfDepartmentID)
}

func TestDeleteCourseRemovesRoster(t *testing.T) {
	ctx := context.Background()
	s, db := newTestStore(t)

	course := testutil.SeedCourse(t, ctx, db, "Compilers", nil)
	student := testutil.SeedStudent(t, ctx, db, "Ada", "ada@example.com")
	testutil.SeedEnrollment(t, ctx, db, student.ID, course.ID)

	require.NoError(t, s.DeleteCourse(ctx, course.ID))

	schedule, err := s.CoursesByStudentIDs(ctx, []int64{student.ID})
	require.NoError(t, err)
	assert.Empty(t, schedule)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want academics.ErrorCode
	}{
		{"record not found", gorm.ErrRecordNotFound, academics.CodeNotFound},
		{"pg unique", &pgconn.PgError{Code: "23505", Message: "duplicate key"}, academics.CodeConstraintViolation},
		{"pg foreign key", &pgconn.PgError{Code: "23503"}, academics.CodeConstraintViolation},
		{"sqlite unique", errors.New("UNIQUE constraint failed: student.email"), academics.CodeConstraintViolation},
		{"other", errors.New("connection reset"), academics.CodeInternal},
		{"already mapped", academics.NotFound("x", academics.KindCourse, 1), academics.CodeNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, academics.CodeOf(MapError("op", tt.err)))
		})
	}

	assert.NoError(t, MapError("op", nil))
	assert.ErrorIs(t, MapError("op", context.DeadlineExceeded), context.DeadlineExceeded)
	assert.Equal(t, academics.ErrorCode(""), academics.CodeOf(MapError("op", context.Canceled)))
}
