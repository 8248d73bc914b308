package models

import "time"

// Daily attendance of a student in a section.
type Attendance struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	StudentID uint      `json:"student_id" gorm:"index;not null"`
	SectionID uint      `json:"section_id" gorm:"index;not null"`
	Date      string    `json:"date" gorm:"size:10;not null"`   // YYYY-MM-DD
	Status    string    `json:"status" gorm:"size:20;not null"` // present|late|absent|leave
	Note      string    `json:"note" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
