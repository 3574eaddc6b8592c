package store

import (
	"budgetapp/internal/models"

	"gorm.io/gorm"
)

// CreateUser persists a new account. The email must already be normalized.
func (s *Store) CreateUser(email string, passwordHash []byte) (*models.User, error) {
	// pre-check existing (optimistic)
	var existing models.User
	if err := s.db.Where("email = ?", email).First(&existing).Error; err == nil {
		return nil, ErrEmailTaken
	}
	user := &models.User{Email: email, PasswordHash: passwordHash}
	if err := s.db.Create(user).Error; err != nil {
		if isUniqueConstraintError(err) { // race after the initial check
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// UserByEmail looks up an account by exact email match.
func (s *Store) UserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UserByID looks up an account by id.
func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}
