// Package views converts stored entities plus their joined relations into the
// nested shapes returned by the API. Every function is pure, keeps the order
// of its inputs and tolerates nil relations.
package views

import "github.com/yungbote/academics-backend/internal/domain/academics"

type StudentView struct {
	ID      int64        `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Courses []CourseView `json:"courses"`
}

type CourseView struct {
	ID       int64         `json:"id"`
	Title    string        `json:"title"`
	Teacher  *TeacherView  `json:"teacher"`
	Students []StudentView `json:"students"`
}

type TeacherView struct {
	ID         int64           `json:"id"`
	Name       string          `json:"name"`
	Courses    []CourseView    `json:"courses"`
	Department *DepartmentView `json:"department"`
}

type DepartmentView struct {
	ID               int64        `json:"id"`
	Name             string       `json:"name"`
	HeadOfDepartment *TeacherView `json:"head_of_department"`
}

// Student maps a bare student; relations stay unset.
func Student(s *academics.Student) StudentView {
	if s == nil {
		return StudentView{}
	}
	return StudentView{ID: s.ID, Name: s.Name, Email: s.Email}
}

func Course(c *academics.Course) CourseView {
	if c == nil {
		return CourseView{}
	}
	return CourseView{ID: c.ID, Title: c.Title}
}

func Teacher(t *academics.Teacher) TeacherView {
	if t == nil {
		return TeacherView{}
	}
	return TeacherView{ID: t.ID, Name: t.Name}
}

func Department(d *academics.Department) DepartmentView {
	if d == nil {
		return DepartmentView{}
	}
	return DepartmentView{ID: d.ID, Name: d.Name}
}

// TeacherRef returns nil for a nil teacher.
func TeacherRef(t *academics.Teacher) *TeacherView {
	if t == nil {
		return nil
	}
	v := Teacher(t)
	return &v
}

func DepartmentRef(d *academics.Department) *DepartmentView {
	if d == nil {
		return nil
	}
	v := Department(d)
	return &v
}

// CourseWithTeacher attaches only the teacher; the roster stays unset.
func CourseWithTeacher(c *academics.Course, teacher *academics.Teacher) CourseView {
	v := Course(c)
	v.Teacher = TeacherRef(teacher)
	return v
}

// CourseWith attaches the teacher and the full roster. An empty roster is
// rendered as an empty list.
func CourseWith(c *academics.Course, teacher *academics.Teacher, students []*academics.Student) CourseView {
	v := CourseWithTeacher(c, teacher)
	v.Students = make([]StudentView, 0, len(students))
	for _, s := range students {
		v.Students = append(v.Students, Student(s))
	}
	return v
}

func StudentWith(s *academics.Student, courses []CourseView) StudentView {
	v := Student(s)
	v.Courses = make([]CourseView, 0, len(courses))
	v.Courses = append(v.Courses, courses...)
	return v
}

func TeacherWith(t *academics.Teacher, courses []*academics.Course, department *academics.Department) TeacherView {
	v := Teacher(t)
	v.Courses = make([]CourseView, 0, len(courses))
	for _, c := range courses {
		v.Courses = append(v.Courses, Course(c))
	}
	v.Department = DepartmentRef(department)
	return v
}

func DepartmentWith(d *academics.Department, head *academics.Teacher) DepartmentView {
	v := Department(d)
	v.HeadOfDepartment = TeacherRef(head)
	return v
}
