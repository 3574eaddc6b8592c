package models

import "time"

// TestEntry is a diagnostic echo record used for smoke testing the stack.
// It has no business meaning.
type TestEntry struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"-"`
	Text      string    `gorm:"size:1024;not null" json:"text"`
}
