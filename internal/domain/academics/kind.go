package academics

// Kind names an entity kind in errors, logs and store dispatch.
type Kind string

const (
	KindStudent    Kind = "student"
	KindCourse     Kind = "course"
	KindTeacher    Kind = "teacher"
	KindDepartment Kind = "department"
)

// EdgeKind names a mutable relationship between two entity kinds.
type EdgeKind string

const (
	EdgeCourseTeacher  EdgeKind = "course_teacher"
	EdgeDepartmentHead EdgeKind = "department_head"
	EdgeStudentCourse  EdgeKind = "student_course"
)

// Endpoints returns the owner and target kinds of an edge.
func (e EdgeKind) Endpoints() (owner, target Kind, ok bool) {
	switch e {
	case EdgeCourseTeacher:
		return KindCourse, KindTeacher, true
	case EdgeDepartmentHead:
		return KindDepartment, KindTeacher, true
	case EdgeStudentCourse:
		return KindStudent, KindCourse, true
	default:
		return "", "", false
	}
}
