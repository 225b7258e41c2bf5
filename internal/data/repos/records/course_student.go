package records

import (
	"context"

	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/platform/logger"
)

type CourseStudentRepo interface {
	Enroll(ctx context.Context, tx *gorm.DB, studentID, courseID int64) (int64, error)
	StudentsByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []int64) ([]*academics.EnrolledStudent, error)
	CoursesByStudentIDs(ctx context.Context, tx *gorm.DB, studentIDs []int64) ([]*academics.EnrolledCourse, error)
	DeleteByStudentIDs(ctx context.Context, tx *gorm.DB, studentIDs []int64) error
	DeleteByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []int64) error
}

type courseStudentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseStudentRepo(db *gorm.DB, baseLog *logger.Logger) CourseStudentRepo {
	repoLog := baseLog.With("repo", "CourseStudentRepo")
	return &courseStudentRepo{db: db, log: repoLog}
}

// Enroll inserts the join row only while the student row exists and reports
// the number of inserted rows. A repeated enrollment violates the primary key.
func (r *courseStudentRepo) Enroll(ctx context.Context, tx *gorm.DB, studentID, courseID int64) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	res := transaction.WithContext(ctx).Exec(`
		INSERT INTO course_student (course_id, student_id)
		SELECT ?, ?
		WHERE EXISTS (SELECT 1 FROM student WHERE id = ?)
	`, courseID, studentID, studentID)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *courseStudentRepo) StudentsByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []int64) ([]*academics.EnrolledStudent, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.EnrolledStudent
	if len(courseIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Table("student AS s").
		Select("cs.course_id AS course_id, s.id AS id, s.name AS name, s.email AS email").
		Joins("JOIN course_student AS cs ON cs.student_id = s.id").
		Where("cs.course_id IN ?", courseIDs).
		Order("cs.course_id ASC, s.id ASC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseStudentRepo) CoursesByStudentIDs(ctx context.Context, tx *gorm.DB, studentIDs []int64) ([]*academics.EnrolledCourse, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*academics.EnrolledCourse
	if len(studentIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Table("course AS c").
		Select("cs.student_id AS student_id, c.id AS id, c.title AS title, c.teacher_id AS teacher_id").
		Joins("JOIN course_student AS cs ON cs.course_id = c.id").
		Where("cs.student_id IN ?", studentIDs).
		Order("cs.student_id ASC, c.id ASC").
		Scan(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseStudentRepo) DeleteByStudentIDs(ctx context.Context, tx *gorm.DB, studentIDs []int64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(studentIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("student_id IN ?", studentIDs).
		Delete(&academics.CourseStudent{}).Error
}

func (r *courseStudentRepo) DeleteByCourseIDs(ctx context.Context, tx *gorm.DB, courseIDs []int64) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if len(courseIDs) == 0 {
		return nil
	}

	return transaction.WithContext(ctx).
		Where("course_id IN ?", courseIDs).
		Delete(&academics.CourseStudent{}).Error
}
