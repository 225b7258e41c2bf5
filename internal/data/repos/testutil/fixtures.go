package testutil

import (
	"context"
	"testing"

	"gorm.io/gorm"

	"github.com/yungbote/academics-backend/internal/domain/academics"
)

func SeedTeacher(tb testing.TB, ctx context.Context, tx *gorm.DB, name string) *academics.Teacher {
	tb.Helper()
	t := &academics.Teacher{Name: name}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed teacher: %v", err)
	}
	return t
}

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, title string, teacherID *int64) *academics.Course {
	tb.Helper()
	c := &academics.Course{Title: title, TeacherID: teacherID}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedStudent(tb testing.TB, ctx context.Context, tx *gorm.DB, name, email string) *academics.Student {
	tb.Helper()
	s := &academics.Student{Name: name, Email: email}
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return s
}

func SeedDepartment(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, headID *int64) *academics.Department {
	tb.Helper()
	d := &academics.Department{Name: name, HeadOfDepartmentID: headID}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed department: %v", err)
	}
	return d
}

func SeedEnrollment(tb testing.TB, ctx context.Context, tx *gorm.DB, studentID, courseID int64) {
	tb.Helper()
	row := &academics.CourseStudent{CourseID: courseID, StudentID: studentID}
	if err := tx.WithContext(ctx).Create(row).Error; err != nil {
		tb.Fatalf("seed enrollment: %v", err)
	}
}

func PtrInt64(v int64) *int64 { return &v }
