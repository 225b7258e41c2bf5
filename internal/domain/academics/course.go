package academics

type Course struct {
	ID        int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Title     string `gorm:"column:title;not null;uniqueIndex:idx_course_title" json:"title"`
	TeacherID *int64 `gorm:"column:teacher_id;index:idx_course_teacher_id" json:"teacher_id,omitempty"`
}

func (Course) TableName() string { return "course" }
