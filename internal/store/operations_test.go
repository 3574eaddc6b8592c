package store

import (
	"testing"
	"time"

	"budgetapp/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type OperationsSuite struct {
	suite.Suite
	store *Store
	alice *models.User
	bob   *models.User
}

func (s *OperationsSuite) SetupTest() {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(s.T(), err)
	s.store, err = New(db)
	require.NoError(s.T(), err)

	s.alice, err = s.store.CreateUser("alice@example.com", []byte("hash-a"))
	require.NoError(s.T(), err)
	s.bob, err = s.store.CreateUser("bob@example.com", []byte("hash-b"))
	require.NoError(s.T(), err)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func (s *OperationsSuite) TestCreateSetsCreator() {
	op, err := s.store.CreateOperation(s.alice.ID, 11.11, date("2018-07-18"), "x")
	require.NoError(s.T(), err)
	assert.NotZero(s.T(), op.ID)
	assert.Equal(s.T(), s.alice.ID, op.CreatorID)
	assert.Equal(s.T(), 11.11, op.Value)
}

func (s *OperationsSuite) TestGetByIDScopedToCreator() {
	op, err := s.store.CreateOperation(s.alice.ID, 11.11, date("2018-07-18"), "x")
	require.NoError(s.T(), err)

	got, err := s.store.OperationByID(s.alice.ID, op.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), op.ID, got.ID)

	// non-owner and nonexistent id produce the same error
	_, err = s.store.OperationByID(s.bob.ID, op.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)
	_, err = s.store.OperationByID(s.alice.ID, 99999)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *OperationsSuite) TestListReturnsOnlyOwnInInsertionOrder() {
	_, err := s.store.CreateOperation(s.alice.ID, 1, date("2018-01-01"), "first")
	require.NoError(s.T(), err)
	_, err = s.store.CreateOperation(s.bob.ID, 2, date("2018-01-02"), "bobs")
	require.NoError(s.T(), err)
	_, err = s.store.CreateOperation(s.alice.ID, 3, date("2018-01-03"), "second")
	require.NoError(s.T(), err)

	ops, err := s.store.OperationsByCreator(s.alice.ID)
	require.NoError(s.T(), err)
	require.Len(s.T(), ops, 2)
	assert.Equal(s.T(), "first", ops[0].Description)
	assert.Equal(s.T(), "second", ops[1].Description)
	for _, op := range ops {
		assert.Equal(s.T(), s.alice.ID, op.CreatorID)
	}
}

func (s *OperationsSuite) TestListEmpty() {
	ops, err := s.store.OperationsByCreator(s.alice.ID)
	require.NoError(s.T(), err)
	assert.Empty(s.T(), ops)
}

func (s *OperationsSuite) TestUpdatePartialKeepsOmittedFields() {
	op, err := s.store.CreateOperation(s.alice.ID, 11.11, date("2018-07-18"), "x")
	require.NoError(s.T(), err)

	desc := "new"
	updated, err := s.store.UpdateOperation(s.alice.ID, op.ID, OperationUpdate{Description: &desc})
	require.NoError(s.T(), err)
	assert.Equal(s.T(), "new", updated.Description)
	assert.Equal(s.T(), 11.11, updated.Value)
	assert.True(s.T(), updated.Date.Equal(op.Date))
}

func (s *OperationsSuite) TestUpdateByNonOwnerChangesNothing() {
	op, err := s.store.CreateOperation(s.alice.ID, 11.11, date("2018-07-18"), "x")
	require.NoError(s.T(), err)

	value := 0.12
	_, err = s.store.UpdateOperation(s.bob.ID, op.ID, OperationUpdate{Value: &value})
	assert.ErrorIs(s.T(), err, ErrNotFound)

	got, err := s.store.OperationByID(s.alice.ID, op.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), 11.11, got.Value)
	assert.Equal(s.T(), "x", got.Description)
}

func (s *OperationsSuite) TestDeleteReturnsRecordAndRemovesIt() {
	op, err := s.store.CreateOperation(s.alice.ID, 11.11, date("2018-07-18"), "x")
	require.NoError(s.T(), err)

	deleted, err := s.store.DeleteOperation(s.alice.ID, op.ID)
	require.NoError(s.T(), err)
	assert.Equal(s.T(), op.ID, deleted.ID)
	assert.Equal(s.T(), 11.11, deleted.Value)

	_, err = s.store.OperationByID(s.alice.ID, op.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)
}

func (s *OperationsSuite) TestDeleteByNonOwnerLeavesRecord() {
	op, err := s.store.CreateOperation(s.alice.ID, 11.11, date("2018-07-18"), "x")
	require.NoError(s.T(), err)

	_, err = s.store.DeleteOperation(s.bob.ID, op.ID)
	assert.ErrorIs(s.T(), err, ErrNotFound)

	_, err = s.store.OperationByID(s.alice.ID, op.ID)
	assert.NoError(s.T(), err)
}

func TestOperationsSuite(t *testing.T) {
	suite.Run(t, new(OperationsSuite))
}
