package store

import (
	"fmt"

	"github.com/Dan9191/calculator-service/internal/models"
	"golang.org/x/crypto/bcrypt"
)

// HashedStore verifies passwords against bcrypt hashes instead of plaintext.
// It satisfies the same Store contract, so swapping it in requires no caller
// changes.
type HashedStore struct {
	users []models.User // Password holds the bcrypt hash
}

// NewHashedStore hashes the plaintext passwords of the given users and
// returns a store over the hashed records
func NewHashedStore(users []models.User) (*HashedStore, error) {
	hashed := make([]models.User, len(users))
	for i, u := range users {
		h, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		u.Password = string(h)
		hashed[i] = u
	}
	return &HashedStore{users: hashed}, nil
}

// FindByEmailAndPassword matches email exactly and verifies the password
// against the stored hash
func (s *HashedStore) FindByEmailAndPassword(email, password string) (*models.User, error) {
	for i := range s.users {
		u := &s.users[i]
		if u.Email != email {
			continue
		}
		if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
			return nil, ErrNotFound
		}
		return u, nil
	}
	return nil, ErrNotFound
}

// FindByID retrieves a user by id
func (s *HashedStore) FindByID(id int) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], nil
		}
	}
	return nil, ErrNotFound
}
