package records

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

type DepartmentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, departments []*academics.Department) ([]*academics.Department, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, departmentIDs []int64) ([]*academics.Department, error)
	List(ctx context.Context, tx *gorm.DB) ([]*academics.Department, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, departmentID int64, updates map[string]interface{}) (int64, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, departmentIDs []int64) (int64, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, departmentID int64) (bool, error)
	GetByHeadIDs(ctx context.Context, tx *gorm.DB, teacherIDs []int64) ([]*academics.Department, error)
	SetHead(ctx context.Context, tx *gorm.DB, departmentID, teacherID int64) (int64, error)
	ClearHead(ctx context.Context, tx *gorm.DB, teacherIDs []int64) error
}

type departmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDepartmentRepo(db *gorm.DB, baseLog *logger.Logger) DepartmentRepo {
	repoLog := baseLog.With("repo", "DepartmentRepo")
	return &departmentRepo{db: db, log: repoLog}
}

func (r *departmentRepo) Create(ctx context.Context, tx *gorm.DB, departments []*academics.Department) ([]*academics.Department, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(departments) == 0 {
		return []*academics.Department{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (r *departmentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, departmentIDs []int64) ([]*academics.Department, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Department
	if len(departmentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", departmentIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *departmentRepo) List(ctx context.Context, tx *gorm.DB) ([]*academics.Department, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Department
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *departmentRepo) UpdateFields(ctx context.Context, tx *gorm.DB, departmentID int64, updates map[string]interface{}) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(updates) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&academics.Department{}).
		Where("id = ?", departmentID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *departmentRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, departmentIDs []int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(departmentIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("id IN ?", departmentIDs).
		Delete(&academics.Department{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *departmentRepo) ExistsByID(ctx context.Context, tx *gorm.DB, departmentID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&academics.Department{}).
		Where("id = ?", departmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *departmentRepo) GetByHeadIDs(ctx context.Context, tx *gorm.DB, teacherIDs []int64) ([]*academics.Department, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Department
	if len(teacherIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("head_of_department_id IN ?", teacherIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// SetHead reports the number of matched rows; zero means the department
// does not exist. A teacher already heading another department is rejected
// by idx_department_head.
func (r *departmentRepo) SetHead(ctx context.Context, tx *gorm.DB, departmentID, teacherID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&academics.Department{}).
		Where("id = ?", departmentID).
		Update("head_of_department_id", teacherID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *departmentRepo) ClearHead(ctx context.Context, tx *gorm.DB, teacherIDs []int64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(teacherIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&academics.Department{}).
		Where("head_of_department_id IN ?", teacherIDs).
		Update("head_of_department_id", nil).Error
}
