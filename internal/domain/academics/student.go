package academics

// Student is a row of the student table. Enrollments live in course_student.
type Student struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"column:name;not null" json:"name"`
	Email string `gorm:"column:email;not null;uniqueIndex:idx_student_email" json:"email"`
}

func (Student) TableName() string { return "student" }
