package records

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

type TeacherRepo interface {
	Create(ctx context.Context, tx *gorm.DB, teachers []*academics.Teacher) ([]*academics.Teacher, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, teacherIDs []int64) ([]*academics.Teacher, error)
	List(ctx context.Context, tx *gorm.DB) ([]*academics.Teacher, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, teacherID int64, updates map[string]interface{}) (int64, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, teacherIDs []int64) (int64, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, teacherID int64) (bool, error)
}

type teacherRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTeacherRepo(db *gorm.DB, baseLog *logger.Logger) TeacherRepo {
	repoLog := baseLog.With("repo", "TeacherRepo")
	return &teacherRepo{db: db, log: repoLog}
}

func (r *teacherRepo) Create(ctx context.Context, tx *gorm.DB, teachers []*academics.Teacher) ([]*academics.Teacher, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(teachers) == 0 {
		return []*academics.Teacher{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&teachers).Error; err != nil {
		return nil, err
	}
	return teachers, nil
}

func (r *teacherRepo) GetByIDs(ctx context.Context, tx *gorm.DB, teacherIDs []int64) ([]*academics.Teacher, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Teacher
	if len(teacherIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", teacherIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *teacherRepo) List(ctx context.Context, tx *gorm.DB) ([]*academics.Teacher, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Teacher
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *teacherRepo) UpdateFields(ctx context.Context, tx *gorm.DB, teacherID int64, updates map[string]interface{}) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(updates) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&academics.Teacher{}).
		Where("id = ?", teacherID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *teacherRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, teacherIDs []int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(teacherIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("id IN ?", teacherIDs).
		Delete(&academics.Teacher{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *teacherRepo) ExistsByID(ctx context.Context, tx *gorm.DB, teacherID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&academics.Teacher{}).
		Where("id = ?", teacherID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
