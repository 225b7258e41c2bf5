package records

import (
	"context"
	"testing"

	"github.com/yungbote/academics-backend/internal/data/repos/testutil"
)

func TestCourseRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewCourseRepo(db, testutil.Logger(t))

	teacher := testutil.SeedTeacher(t, ctx, tx, "Grace")
	other := testutil.SeedTeacher(t, ctx, tx, "Edsger")
	c1 := testutil.SeedCourse(t, ctx, tx, "Compilers", testutil.PtrInt64(teacher.ID))
	c2 := testutil.SeedCourse(t, ctx, tx, "Algorithms", nil)

	rows, err := repo.GetByTeacherIDs(ctx, tx, []int64{teacher.ID, other.ID})
	if err != nil || len(rows) != 1 || rows[0].ID != c1.ID {
		t.Fatalf("GetByTeacherIDs: err=%v len=%d", err, len(rows))
	}

	if n, err := repo.SetTeacher(ctx, tx, c2.ID, other.ID); err != nil || n != 1 {
		t.Fatalf("SetTeacher: err=%v n=%d", err, n)
	}
	if n, err := repo.SetTeacher(ctx, tx, 999, other.ID); err != nil || n != 0 {
		t.Fatalf("SetTeacher(missing course): err=%v n=%d", err, n)
	}
	got, err := repo.GetByIDs(ctx, tx, []int64{c2.ID})
	if err != nil || len(got) != 1 || got[0].TeacherID == nil || *got[0].TeacherID != other.ID {
		t.Fatalf("GetByIDs after SetTeacher: err=%v rows=%+v", err, got)
	}

	if err := repo.ClearTeacher(ctx, tx, []int64{other.ID}); err != nil {
		t.Fatalf("ClearTeacher: %v", err)
	}
	got, err = repo.GetByIDs(ctx, tx, []int64{c2.ID})
	if err != nil || len(got) != 1 || got[0].TeacherID != nil {
		t.Fatalf("GetByIDs after ClearTeacher: err=%v rows=%+v", err, got)
	}
}
