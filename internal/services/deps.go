package services

import (
	"context"

	"github.com/yungbote/academics-backend/internal/domain/academics"
	"github.com/yungbote/academics-backend/internal/views"
)

// Store is the entity store surface the application services use.
type Store interface {
	GetStudent(ctx context.Context, id int64) (*academics.Student, error)
	GetCourse(ctx context.Context, id int64) (*academics.Course, error)
	GetTeacher(ctx context.Context, id int64) (*academics.Teacher, error)
	GetDepartment(ctx context.Context, id int64) (*academics.Department, error)
	ExistsByID(ctx context.Context, kind academics.Kind, id int64) (bool, error)
	CoursesByStudentIDs(ctx context.Context, studentIDs []int64) ([]*academics.EnrolledCourse, error)

	ListStudents(ctx context.Context) ([]*academics.Student, error)
	ListCourses(ctx context.Context) ([]*academics.Course, error)
	ListTeachers(ctx context.Context) ([]*academics.Teacher, error)
	ListDepartments(ctx context.Context) ([]*academics.Department, error)

	CreateStudent(ctx context.Context, s *academics.Student) (*academics.Student, error)
	CreateCourse(ctx context.Context, c *academics.Course) (*academics.Course, error)
	CreateTeacher(ctx context.Context, t *academics.Teacher) (*academics.Teacher, error)
	CreateDepartment(ctx context.Context, d *academics.Department) (*academics.Department, error)

	UpdateStudent(ctx context.Context, id int64, updates map[string]interface{}) error
	UpdateCourse(ctx context.Context, id int64, updates map[string]interface{}) error
	UpdateTeacher(ctx context.Context, id int64, updates map[string]interface{}) error
	UpdateDepartment(ctx context.Context, id int64, updates map[string]interface{}) error

	DeleteStudent(ctx context.Context, id int64) error
	DeleteCourse(ctx context.Context, id int64) error
	DeleteTeacher(ctx context.Context, id int64) error
	DeleteDepartment(ctx context.Context, id int64) error
}

// Assembler builds nested views with batched lookups.
type Assembler interface {
	Courses(ctx context.Context, roots []*academics.Course) ([]views.CourseView, error)
	Course(ctx context.Context, root *academics.Course) (views.CourseView, error)
	CoursesWithTeacher(ctx context.Context, roots []*academics.Course) ([]views.CourseView, error)
	Students(ctx context.Context, roots []*academics.Student) ([]views.StudentView, error)
	Student(ctx context.Context, root *academics.Student) (views.StudentView, error)
	Teachers(ctx context.Context, roots []*academics.Teacher) ([]views.TeacherView, error)
	Teacher(ctx context.Context, root *academics.Teacher) (views.TeacherView, error)
	Departments(ctx context.Context, roots []*academics.Department) ([]views.DepartmentView, error)
	Department(ctx context.Context, root *academics.Department) (views.DepartmentView, error)
}

// Mutator sets association edges after validating both endpoints.
type Mutator interface {
	AssignCourseTeacher(ctx context.Context, courseID, teacherID int64) (views.CourseView, error)
	AppointDepartmentHead(ctx context.Context, departmentID, teacherID int64) (views.DepartmentView, error)
	EnrollStudent(ctx context.Context, studentID, courseID int64) (views.StudentView, error)
}
