package store

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStaticStore_FindByEmailAndPassword(t *testing.T) {
	s := NewStaticStore(SeedUsers())

	user, err := s.FindByEmailAndPassword("testuser@test.com", "testpassword")
	require.NoError(t, err)
	require.Equal(t, 3, user.ID)
	require.Equal(t, "Test User", user.Name)

	// Wrong password and unknown email yield the same sentinel
	_, err = s.FindByEmailAndPassword("testuser@test.com", "wrong")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindByEmailAndPassword("nobody@test.com", "testpassword")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStaticStore_FindByID(t *testing.T) {
	s := NewStaticStore(SeedUsers())

	user, err := s.FindByID(1)
	require.NoError(t, err)
	require.Equal(t, "john.doe@example.com", user.Email)

	_, err = s.FindByID(42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestHashedStore_SameContract(t *testing.T) {
	s, err := NewHashedStore(SeedUsers())
	require.NoError(t, err)

	// Plaintext credentials still verify, now against bcrypt hashes
	user, err := s.FindByEmailAndPassword("jane.doe@example.com", "password")
	require.NoError(t, err)
	require.Equal(t, 2, user.ID)

	_, err = s.FindByEmailAndPassword("jane.doe@example.com", "wrong")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.FindByEmailAndPassword("nobody@test.com", "password")
	require.ErrorIs(t, err, ErrNotFound)

	byID, err := s.FindByID(2)
	require.NoError(t, err)
	require.Equal(t, "jane.doe@example.com", byID.Email)
}
