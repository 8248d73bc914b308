package models

import "time"

type FinanceRecord struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	StudentID uint       `gorm:"index;not null" json:"student_id"`
	Year      int        `gorm:"index;not null" json:"year"`
	Semester  int        `gorm:"index;not null" json:"semester"`
	Item      string     `gorm:"size:100;not null" json:"item"` // ค่าเทอม, ค่ากิจกรรม, ...
	Amount    float64    `gorm:"not null" json:"amount"`
	Status    string     `gorm:"size:20;not null;default:'unpaid'" json:"status"` // unpaid|paid
	PaidAt    *time.Time `json:"paid_at,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
