package store

import "budgetapp/internal/models"

// CreateTestEntry stores a diagnostic echo record.
func (s *Store) CreateTestEntry(text string) (*models.TestEntry, error) {
	entry := &models.TestEntry{Text: text}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}
