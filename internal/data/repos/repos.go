package repos

import (
	"github.com/yungbote/academics-backend/internal/data/repos/records"
	"github.com/yungbote/academics-backend/internal/platform/logger"
	"gorm.io/gorm"
)

type StudentRepo = records.StudentRepo
type CourseRepo = records.CourseRepo
type TeacherRepo = records.TeacherRepo
type DepartmentRepo = records.DepartmentRepo
type CourseStudentRepo = records.CourseStudentRepo

func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	return records.NewStudentRepo(db, baseLog)
}
func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return records.NewCourseRepo(db, baseLog)
}
func NewTeacherRepo(db *gorm.DB, baseLog *logger.Logger) TeacherRepo {
	return records.NewTeacherRepo(db, baseLog)
}
func NewDepartmentRepo(db *gorm.DB, baseLog *logger.Logger) DepartmentRepo {
	return records.NewDepartmentRepo(db, baseLog)
}
func NewCourseStudentRepo(db *gorm.DB, baseLog *logger.Logger) CourseStudentRepo {
	return records.NewCourseStudentRepo(db, baseLog)
}
