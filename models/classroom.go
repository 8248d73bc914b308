package models

import "time"

// Classroom is one homeroom, e.g. class level "ม.1" room "2".
// AdvisorID links the homeroom teacher; a teacher's advisees are the
// students of the classrooms they advise.
type Classroom struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	ClassLevel string    `gorm:"size:20;not null;uniqueIndex:idx_class_room" json:"class_level"`
	Room       string    `gorm:"size:10;not null;uniqueIndex:idx_class_room" json:"room"`
	AdvisorID  uint      `gorm:"index" json:"advisor_id"` // teachers.id
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
