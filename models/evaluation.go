package models

import "time"

// Teaching evaluation submitted by a student for one of their sections.
// One row per student+section+term; re-submitting updates the row.
type Evaluation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"index;not null;uniqueIndex:idx_eval_term" json:"student_id"`
	SectionID uint      `gorm:"index;not null;uniqueIndex:idx_eval_term" json:"section_id"`
	Year      int       `gorm:"not null;uniqueIndex:idx_eval_term" json:"year"`
	Semester  int       `gorm:"not null;uniqueIndex:idx_eval_term" json:"semester"`
	Score     int       `gorm:"not null" json:"score"` // 1-5
	Comment   string    `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
