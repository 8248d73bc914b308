package models

import "time"

// Login account. Code is what the person types at the login form
// (เช่น "S001" for students, "T001" for teachers, "D001" for the director).
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Code         string    `json:"code" gorm:"uniqueIndex;size:20;not null"`
	PasswordHash string    `json:"-" gorm:"not null"`
	Role         string    `json:"role" gorm:"size:20;not null"` // "director" | "teacher" | "student"
	Name         string    `json:"name" gorm:"size:120"`
	RefID        uint      `json:"ref_id"` // students.id / teachers.id, 0 for director
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

const (
	RoleDirector = "director"
	RoleTeacher  = "teacher"
	RoleStudent  = "student"
)
