package academics

// CourseStudent is the pure join row between course and student.
type CourseStudent struct {
	CourseID  int64 `gorm:"column:course_id;primaryKey;autoIncrement:false"`
	StudentID int64 `gorm:"column:student_id;primaryKey;autoIncrement:false"`
}

func (CourseStudent) TableName() string { return "course_student" }

// EnrolledStudent is a flat row from a roster lookup: one student per
// course it is enrolled in.
type EnrolledStudent struct {
	CourseID int64 `gorm:"column:course_id"`
	Student  `gorm:"embedded"`
}

// EnrolledCourse is a flat row from a schedule lookup: one course per
// student enrolled in it.
type EnrolledCourse struct {
	StudentID int64 `gorm:"column:student_id"`
	Course    `gorm:"embedded"`
}
