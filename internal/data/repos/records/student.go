package records

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

type StudentRepo interface {
	Create(ctx context.Context, tx *gorm.DB, students []*academics.Student) ([]*academics.Student, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, studentIDs []int64) ([]*academics.Student, error)
	List(ctx context.Context, tx *gorm.DB) ([]*academics.Student, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, studentID int64, updates map[string]interface{}) (int64, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, studentIDs []int64) (int64, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, studentID int64) (bool, error)
}

type studentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	repoLog := baseLog.With("repo", "StudentRepo")
	return &studentRepo{db: db, log: repoLog}
}

func (r *studentRepo) Create(ctx context.Context, tx *gorm.DB, students []*academics.Student) ([]*academics.Student, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(students) == 0 {
		return []*academics.Student{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) GetByIDs(ctx context.Context, tx *gorm.DB, studentIDs []int64) ([]*academics.Student, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Student
	if len(studentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", studentIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *studentRepo) List(ctx context.Context, tx *gorm.DB) ([]*academics.Student, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Student
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *studentRepo) UpdateFields(ctx context.Context, tx *gorm.DB, studentID int64, updates map[string]interface{}) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(updates) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&academics.Student{}).
		Where("id = ?", studentID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *studentRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, studentIDs []int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(studentIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("id IN ?", studentIDs).
		Delete(&academics.Student{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *studentRepo) ExistsByID(ctx context.Context, tx *gorm.DB, studentID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&academics.Student{}).
		Where("id = ?", studentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
