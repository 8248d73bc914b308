package models

import "time"

// Registration has two states only: absent and registered.
// Adding creates the row, removing deletes it; there is no staged cart.
type Registration struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	StudentID uint      `gorm:"index;not null;uniqueIndex:idx_reg_term" json:"student_id"`
	SectionID uint      `gorm:"index;not null;uniqueIndex:idx_reg_term" json:"section_id"`
	Year      int       `gorm:"not null;uniqueIndex:idx_reg_term" json:"year"`
	Semester  int       `gorm:"not null;uniqueIndex:idx_reg_term" json:"semester"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
