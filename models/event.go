package models

import "time"

// School calendar event, shown on the director dashboard.
type Event struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:100;not null"`
	Detail    string    `json:"detail" gorm:"type:text"`
	EventDate string    `json:"event_date" gorm:"type:date;not null;index"` // YYYY-MM-DD
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
