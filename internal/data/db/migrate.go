package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/domain/academics"
)

func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&academics.Teacher{},
		&academics.Department{},
		&academics.Course{},
		&academics.Student{},
		&academics.CourseStudent{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	// Roster lookups go through course_id (the primary key prefix); schedule
	// lookups need the reverse direction.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_course_student_student_course
		ON course_student (student_id, course_id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_course_student_student_course: %w", err)
	}

	return nil
}
