package records

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

type CourseRepo interface {
	Create(ctx context.Context, tx *gorm.DB, courses []*academics.Course) ([]*academics.Course, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []int64) ([]*academics.Course, error)
	List(ctx context.Context, tx *gorm.DB) ([]*academics.Course, error)
	UpdateFields(ctx context.Context, tx *gorm.DB, courseID int64, updates map[string]interface{}) (int64, error)
	DeleteByIDs(ctx context.Context, tx *gorm.DB, courseIDs []int64) (int64, error)
	ExistsByID(ctx context.Context, tx *gorm.DB, courseID int64) (bool, error)
	GetByTeacherIDs(ctx context.Context, tx *gorm.DB, teacherIDs []int64) ([]*academics.Course, error)
	SetTeacher(ctx context.Context, tx *gorm.DB, courseID, teacherID int64) (int64, error)
	ClearTeacher(ctx context.Context, tx *gorm.DB, teacherIDs []int64) error
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	repoLog := baseLog.With("repo", "CourseRepo")
	return &courseRepo{db: db, log: repoLog}
}

func (r *courseRepo) Create(ctx context.Context, tx *gorm.DB, courses []*academics.Course) ([]*academics.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(courses) == 0 {
		return []*academics.Course{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByIDs(ctx context.Context, tx *gorm.DB, courseIDs []int64) ([]*academics.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Course
	if len(courseIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", courseIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) List(ctx context.Context, tx *gorm.DB) ([]*academics.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Course
	if err := transaction.WithContext(ctx).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRepo) UpdateFields(ctx context.Context, tx *gorm.DB, courseID int64, updates map[string]interface{}) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(updates) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Model(&academics.Course{}).
		Where("id = ?", courseID).
		Updates(updates)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *courseRepo) DeleteByIDs(ctx context.Context, tx *gorm.DB, courseIDs []int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(courseIDs) == 0 {
		return 0, nil
	}

	res := transaction.WithContext(ctx).
		Where("id IN ?", courseIDs).
		Delete(&academics.Course{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *courseRepo) ExistsByID(ctx context.Context, tx *gorm.DB, courseID int64) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&academics.Course{}).
		Where("id = ?", courseID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *courseRepo) GetByTeacherIDs(ctx context.Context, tx *gorm.DB, teacherIDs []int64) ([]*academics.Course, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.Course
	if len(teacherIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("teacher_id IN ?", teacherIDs).
		Order("id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// SetTeacher points course.teacher_id at teacherID and reports the number of
// matched rows; zero means the course does not exist.
func (r *courseRepo) SetTeacher(ctx context.Context, tx *gorm.DB, courseID, teacherID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).
		Model(&academics.Course{}).
		Where("id = ?", courseID).
		Update("teacher_id", teacherID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *courseRepo) ClearTeacher(ctx context.Context, tx *gorm.DB, teacherIDs []int64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(teacherIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Model(&academics.Course{}).
		Where("teacher_id IN ?", teacherIDs).
		Update("teacher_id", nil).Error
}
