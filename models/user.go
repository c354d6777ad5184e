package models

import "time"

type User struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"not null" json:"first_name"`
	LastName  string    `gorm:"not null" json:"last_name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Phone     string    `gorm:"not null" json:"phone"`
	Password  string    `gorm:"not null" json:"-"` // bcrypt hash
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}
