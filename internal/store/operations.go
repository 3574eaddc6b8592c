package store

import (
	"time"

	"budgetapp/internal/models"

	"gorm.io/gorm"
)

// OperationUpdate carries the fields of a partial update. Nil pointers mean
// "leave unchanged". Validation happens before this struct is built, so a
// populated field is always safe to apply.
type OperationUpdate struct {
	Value       *float64
	Date        *time.Time
	Description *string
}

// CreateOperation inserts an entry owned by creatorID. The owner comes from
// the authenticated caller, never from the request body.
func (s *Store) CreateOperation(creatorID uint, value float64, date time.Time, description string) (*models.BudgetOperation, error) {
	op := &models.BudgetOperation{
		Value:       value,
		Date:        date,
		Description: description,
		CreatorID:   creatorID,
	}
	if err := s.db.Create(op).Error; err != nil {
		return nil, err
	}
	return op, nil
}

// OperationsByCreator returns the caller's entries in insertion order.
func (s *Store) OperationsByCreator(creatorID uint) ([]models.BudgetOperation, error) {
	ops := []models.BudgetOperation{}
	if err := s.db.Where("creator_id = ?", creatorID).Order("id asc").Find(&ops).Error; err != nil {
		return nil, err
	}
	return ops, nil
}

// OperationByID fetches a single entry. An id owned by someone else yields
// the same ErrNotFound as an id that does not exist.
func (s *Store) OperationByID(creatorID, id uint) (*models.BudgetOperation, error) {
	var op models.BudgetOperation
	if err := s.db.Where("id = ? AND creator_id = ?", id, creatorID).First(&op).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &op, nil
}

// UpdateOperation applies the populated fields of upd to the caller's entry.
// Absent fields keep their prior values.
func (s *Store) UpdateOperation(creatorID, id uint, upd OperationUpdate) (*models.BudgetOperation, error) {
	op, err := s.OperationByID(creatorID, id)
	if err != nil {
		return nil, err
	}
	if upd.Value != nil {
		op.Value = *upd.Value
	}
	if upd.Date != nil {
		op.Date = *upd.Date
	}
	if upd.Description != nil {
		op.Description = *upd.Description
	}
	if err := s.db.Save(op).Error; err != nil {
		return nil, err
	}
	return op, nil
}

// DeleteOperation removes the caller's entry and returns the record as it
// was before deletion.
func (s *Store) DeleteOperation(creatorID, id uint) (*models.BudgetOperation, error) {
	op, err := s.OperationByID(creatorID, id)
	if err != nil {
		return nil, err
	}
	if err := s.db.Delete(op).Error; err != nil {
		return nil, err
	}
	return op, nil
}
