package models

import "time"

// BudgetOperation is a single dated financial entry belonging to exactly one
// user. CreatorID is set from the authenticated caller at creation time and
// never changes afterwards.
type BudgetOperation struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
	Value       float64   `gorm:"not null" json:"value"`
	Date        time.Time `gorm:"not null" json:"date"`
	Description string    `gorm:"size:1024" json:"description"`
	CreatorID   uint      `gorm:"index;not null" json:"creator"`
}
