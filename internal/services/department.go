package services

import (
	"context"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/ctxutil"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"github.com/yungbote/academics-backend/internal/views"
)

type DepartmentService interface {
	Create(ctx context.Context, in DepartmentInput) (views.DepartmentView, error)
	List(ctx context.Context) ([]views.DepartmentView, error)
	Get(ctx context.Context, id int64) (views.DepartmentView, error)
	Update(ctx context.Context, id int64, patch DepartmentPatch) (views.DepartmentView, error)
	Delete(ctx context.Context, id int64) error
	AppointHead(ctx context.Context, departmentID, teacherID int64) (views.DepartmentView, error)
}

type departmentService struct {
	log       *logger.Logger
	store     Store
	assembler Assembler
	mutator   Mutator
}

func NewDepartmentService(baseLog *logger.Logger, store Store, assembler Assembler, mutator Mutator) DepartmentService {
	serviceLog := baseLog.With("service", "DepartmentService")
	return &departmentService{
		log:       serviceLog,
		store:     store,
		assembler: assembler,
		mutator:   mutator,
	}
}

func (ds *departmentService) Create(ctx context.Context, in DepartmentInput) (views.DepartmentView, error) {
	name, err := required("create department", "name", in.Name)
	if err != nil {
		return views.DepartmentView{}, err
	}
	created, err := ds.store.CreateDepartment(ctx, &academics.Department{Name: name})
	if err != nil {
		return views.DepartmentView{}, err
	}
	ds.log.Info("Department created", append([]interface{}{"department_id", created.ID}, ctxutil.LogFields(ctx)...)...)
	return views.DepartmentWith(created, nil), nil
}

func (ds *departmentService) List(ctx context.Context) ([]views.DepartmentView, error) {
	roots, err := ds.store.ListDepartments(ctx)
	if err != nil {
		return nil, err
	}
	return ds.assembler.Departments(ctx, roots)
}

func (ds *departmentService) Get(ctx context.Context, id int64) (views.DepartmentView, error) {
	root, err := ds.store.GetDepartment(ctx, id)
	if err != nil {
		return views.DepartmentView{}, err
	}
	return ds.assembler.Department(ctx, root)
}

func (ds *departmentService) Update(ctx context.Context, id int64, patch DepartmentPatch) (views.DepartmentView, error) {
	updates := map[string]interface{}{}
	if err := patchField("update department", "name", patch.Name, updates); err != nil {
		return views.DepartmentView{}, err
	}
	if err := ds.store.UpdateDepartment(ctx, id, updates); err != nil {
		return views.DepartmentView{}, err
	}
	return ds.Get(ctx, id)
}

func (ds *departmentService) Delete(ctx context.Context, id int64) error {
	if err := ds.store.DeleteDepartment(ctx, id); err != nil {
		return err
	}
	ds.log.Info("Department deleted", append([]interface{}{"department_id", id}, ctxutil.LogFields(ctx)...)...)
	return nil
}

func (ds *departmentService) AppointHead(ctx context.Context, departmentID, teacherID int64) (views.DepartmentView, error) {
	return ds.mutator.AppointDepartmentHead(ctx, departmentID, teacherID)
}
