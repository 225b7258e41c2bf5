package records

import (
	"context"
	"testing"

	"github.com/yungbote/academics-backend/internal/data/repos/testutil"
	"github.com/yungbote/academics-backend/internal/domain/academics"
)

func TestTeacherRepo(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)

	ctx := context.Background()
	repo := NewTeacherRepo(db, testutil.Logger(t))

	created, err := repo.Create(ctx, tx, []*academics.Teacher{{Name: "Grace"}})
	if err != nil || len(created) != 1 || created[0].ID == 0 {
		t.Fatalf("Create: err=%v rows=%+v", err, created)
	}
	id := created[0].ID

	if n, err := repo.UpdateFields(ctx, tx, id, map[string]interface{}{"name": "Grace H."}); err != nil || n != 1 {
		t.Fatalf("UpdateFields: err=%v n=%d", err, n)
	}
	rows, err := repo.GetByIDs(ctx, tx, []int64{id})
	if err != nil || len(rows) != 1 || rows[0].Name != "Grace H." {
		t.Fatalf("GetByIDs: err=%v rows=%+v", err, rows)
	}
	if n, err := repo.DeleteByIDs(ctx, tx, []int64{id, 999}); err != nil || n != 1 {
		t.Fatalf("DeleteByIDs: err=%v n=%d", err, n)
	}
}
