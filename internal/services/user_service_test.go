package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserIsIdempotent(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	first, err := svc.CreateUser("alice")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.Equal(t, "alice", first.Username)

	second, err := svc.CreateUser("alice")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.Username, second.Username)

	users, err := svc.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}

func TestGetUserByID(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	created, err := svc.CreateUser("bob")
	require.NoError(t, err)

	got, err := svc.GetUserByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "bob", got.Username)

	_, err = svc.GetUserByID("9b6f0b8e-0000-4000-8000-000000000000")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGetAllUsers(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	users, err := svc.GetAllUsers()
	require.NoError(t, err)
	assert.Empty(t, users)

	_, err = svc.CreateUser("alice")
	require.NoError(t, err)
	_, err = svc.CreateUser("bob")
	require.NoError(t, err)

	users, err = svc.GetAllUsers()
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
