package academics

type Department struct {
	ID                 int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name               string `gorm:"column:name;not null;uniqueIndex:idx_department_name" json:"name"`
	HeadOfDepartmentID *int64 `gorm:"column:head_of_department_id;uniqueIndex:idx_department_head" json:"head_of_department_id,omitempty"`
}

func (Department) TableName() string { return "department" }
