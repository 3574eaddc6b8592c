package store

import (
	"errors"
	"strings"

	"budgetapp/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned for unknown ids and for records owned by a
	// different user; callers cannot tell the two apart.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already in use")
)

// Store wraps the database connection behind the app's queries.
type Store struct {
	db *gorm.DB
}

// Open connects to Postgres and migrates the schema.
func Open(dsn string) (*Store, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}
	return New(db)
}

// New wraps an existing connection (tests use sqlite here) and migrates.
func New(db *gorm.DB) (*Store, error) {
	for _, model := range []interface{}{
		&models.User{},
		&models.AuthToken{},
		&models.BudgetOperation{},
		&models.TestEntry{},
	} {
		if err := db.AutoMigrate(model); err != nil {
			return nil, err
		}
	}
	return &Store{db: db}, nil
}

// DB exposes the underlying connection for collaborators that need it.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "already exists")
}
