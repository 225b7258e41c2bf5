package services

import (
	"context"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/ctxutil"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/views"
)

type TeacherService interface {
	Create(ctx context.Context, in TeacherInput) (views.TeacherView, error)
	List(ctx context.Context) ([]views.TeacherView, error)
	Get(ctx context.Context, id int64) (views.TeacherView, error)
	Update(ctx context.Context, id int64, patch TeacherPatch) (views.TeacherView, error)
	Delete(ctx context.Context, id int64) error
}

type teacherService struct {
	log       *logger.Logger
	store     Store
	assembler Assembler
}

func NewTeacherService(baseLog *logger.Logger, store Store, assembler Assembler) TeacherService {
	serviceLog := baseLog.With("service", "TeacherService")
	return &teacherService{log: serviceLog, store: store, assembler: assembler}
}

func (ts *teacherService) Create(ctx context.Context, in TeacherInput) (views.TeacherView, error) {
	name, err := required("create teacher", "name", in.Name)
	if err != nil {
		return views.TeacherView{}, err
	}
	created, err := ts.store.CreateTeacher(ctx, &academics.Teacher{Name: name})
	if err != nil {
		return views.TeacherView{}, err
	}
	ts.log.Info("Teacher created", append([]interface{}{"teacher_id", created.ID}, ctxutil.LogFields(ctx)...)...)
	return views.TeacherWith(created, nil, nil), nil
}

func (ts *teacherService) List(ctx context.Context) ([]views.TeacherView, error) {
	roots, err := ts.store.ListTeachers(ctx)
	if err != nil {
		return nil, err
	}
	return ts.assembler.Teachers(ctx, roots)
}

func (ts *teacherService) Get(ctx context.Context, id int64) (views.TeacherView, error) {
	root, err := ts.store.GetTeacher(ctx, id)
	if err != nil {
		return views.TeacherView{}, err
	}
	return ts.assembler.Teacher(ctx, root)
}

func (ts *teacherService) Update(ctx context.Context, id int64, patch TeacherPatch) (views.TeacherView, error) {
	updates := map[string]interface{}{}
	if err := patchField("update teacher", "name", patch.Name, updates); err != nil {
		return views.TeacherView{}, err
	}
	if err := ts.store.UpdateTeacher(ctx, id, updates); err != nil {
		return views.TeacherView{}, err
	}
	return ts.Get(ctx, id)
}

// Delete also clears the teacher from the courses it taught and the
// department it headed.
func (ts *teacherService) Delete(ctx context.Context, id int64) error {
	if err := ts.store.DeleteTeacher(ctx, id); err != nil {
		return err
	}
	ts.log.Info("Teacher deleted", append([]interface{}{"teacher_id", id}, ctxutil.LogFields(ctx)...)...)
	return nil
}
