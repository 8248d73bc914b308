package models

import "time"

type Student struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Code        string    `gorm:"size:20;uniqueIndex;not null" json:"code"`
	Prefix      string    `gorm:"size:20" json:"prefix"`
	FirstName   string    `gorm:"size:50;not null" json:"first_name"`
	LastName    string    `gorm:"size:50;not null" json:"last_name"`
	ClassLevel  string    `gorm:"size:20;not null" json:"class_level"` // เช่น "ม.1"
	Room        string    `gorm:"size:10;not null" json:"room"`
	ClassroomID uint      `gorm:"index" json:"classroom_id"`
	Phone       string    `gorm:"size:15" json:"phone"`
	Status      string    `gorm:"size:20;not null;default:'active'" json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
