package model

// Task is a single unit of work with a deadline.
//
// Deadline is kept as text in the deadline.Layout format so the stored
// value is exactly what the user confirmed in the form.
type Task struct {
	ID          uint    `gorm:"primaryKey"`
	Title       string  `gorm:"type:text;not null;check:chk_tasks_title,title <> ''"`
	Description *string `gorm:"type:text"`
	Deadline    string  `gorm:"type:text;not null;check:chk_tasks_deadline,deadline <> ''"`
}

// TableName pins the table name to "tasks".
func (Task) TableName() string {
	return "tasks"
}

// DescriptionText returns the description or an empty string when none was stored.
func (t Task) DescriptionText() string {
	if t.Description == nil {
		return ""
	}
	return *t.Description
}
