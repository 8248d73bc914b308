package models

import "time"

// Section is one offering of a subject in a term: taught by one teacher,
// open to one classroom, with a seat capacity.
type Section struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	SubjectID   uint      `gorm:"index;not null" json:"subject_id"`
	TeacherID   uint      `gorm:"index;not null" json:"teacher_id"`
	ClassroomID uint      `gorm:"index" json:"classroom_id"`
	Year        int       `gorm:"index;not null" json:"year"`     // พ.ศ. เช่น 2568
	Semester    int       `gorm:"index;not null" json:"semester"` // 1 | 2
	Capacity    int       `gorm:"not null;default:40" json:"capacity"`
	DayOfWeek   int       `json:"day_of_week"` // 1=Mon .. 7=Sun
	StartTime   string    `gorm:"size:5" json:"start_time"` // HH:MM
	EndTime     string    `gorm:"size:5" json:"end_time"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
