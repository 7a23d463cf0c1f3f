package models

import "time"

// User represents the admin account that owns the dashboard.
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Name  string `json:"name" gorm:"not null"`
	Email string `json:"email" gorm:"uniqueIndex;not null"`

	// Password holds the bcrypt hash. It is never serialized.
	Password string `json:"-" gorm:"not null"`

	Role      string    `json:"role" gorm:"not null;default:admin"`
	CreatedAt time.Time `json:"created_at"`
}
