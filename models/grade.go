package models

import "time"

type Grade struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"index;not null;uniqueIndex:idx_grade_term" json:"student_id"`
	SectionID uint      `gorm:"index;not null;uniqueIndex:idx_grade_term" json:"section_id"`
	Year      int       `gorm:"not null;uniqueIndex:idx_grade_term" json:"year"`
	Semester  int       `gorm:"not null;uniqueIndex:idx_grade_term" json:"semester"`
	Score     float64   `json:"score"`                // 0-100
	Letter    string    `gorm:"size:4" json:"letter"` // "4", "3.5", ... "0"
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
