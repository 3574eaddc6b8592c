package models

import "time"

// AuthToken is one active session for a user. Only a SHA-256 digest of the
// signed token is stored; deleting the row revokes the session even though
// the token itself stays cryptographically valid.
type AuthToken struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UserID    uint   `gorm:"index;not null"`
	Access    string `gorm:"size:32;not null"`
	TokenHash string `gorm:"size:128;not null;uniqueIndex"`
}
