package models

import "time"

// User is an account identified by a unique, lowercased email address.
// The password is only ever stored as a bcrypt hash.
type User struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	CreatedAt    time.Time   `json:"-"`
	UpdatedAt    time.Time   `json:"-"`
	Email        string      `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PasswordHash []byte      `gorm:"not null" json:"-"`
	Tokens       []AuthToken `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}
