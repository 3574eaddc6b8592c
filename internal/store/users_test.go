package store

import (
	"testing"

	"budgetapp/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	st, err := New(db)
	require.NoError(t, err)
	return st
}

func TestCreateUser(t *testing.T) {
	st := newTestStore(t)

	user, err := st.CreateUser("valid@node.pl", []byte("some-hash"))
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "valid@node.pl", user.Email)
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	st := newTestStore(t)

	_, err := st.CreateUser("valid@node.pl", []byte("some-hash"))
	require.NoError(t, err)
	_, err = st.CreateUser("valid@node.pl", []byte("other-hash"))
	assert.ErrorIs(t, err, ErrEmailTaken)

	var count int64
	require.NoError(t, st.DB().Model(&models.User{}).Where("email = ?", "valid@node.pl").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestUserLookups(t *testing.T) {
	st := newTestStore(t)

	created, err := st.CreateUser("valid@node.pl", []byte("some-hash"))
	require.NoError(t, err)

	byEmail, err := st.UserByEmail("valid@node.pl")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byEmail.ID)

	byID, err := st.UserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "valid@node.pl", byID.Email)

	_, err = st.UserByEmail("missing@node.pl")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = st.UserByID(99999)
	assert.ErrorIs(t, err, ErrNotFound)
}
