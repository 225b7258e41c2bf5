package academics

// Teacher owns courses through course.teacher_id and at most one headship
// through department.head_of_department_id.
type Teacher struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"column:name;not null" json:"name"`
}

func (Teacher) TableName() string { return "teacher" }
