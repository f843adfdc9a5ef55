package store

import (
	"errors"

	"github.com/Dan9191/calculator-service/internal/models"
)

// ErrNotFound is returned for every failed lookup. Unknown email and wrong
// password are deliberately indistinguishable to callers.
var ErrNotFound = errors.New("user not found")

// Store provides read-only credential lookups
type Store interface {
	FindByEmailAndPassword(email, password string) (*models.User, error)
	FindByID(id int) (*models.User, error)
}

// StaticStore holds a fixed in-memory user set, immutable after startup
type StaticStore struct {
	users []models.User
}

// NewStaticStore initializes a store over a fixed user set
func NewStaticStore(users []models.User) *StaticStore {
	return &StaticStore{users: users}
}

// FindByEmailAndPassword matches both fields by exact string comparison.
// Password handling is isolated here so a hashed scheme can replace it
// without touching callers.
func (s *StaticStore) FindByEmailAndPassword(email, password string) (*models.User, error) {
	for i := range s.users {
		u := &s.users[i]
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

// FindByID retrieves a user by id
func (s *StaticStore) FindByID(id int) (*models.User, error) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], nil
		}
	}
	return nil, ErrNotFound
}

// SeedUsers returns the built-in user set used when no database is configured
func SeedUsers() []models.User {
	return []models.User{
		{ID: 1, Name: "John Doe", Email: "john.doe@example.com", Password: "password"},
		{ID: 2, Name: "Jane Doe", Email: "jane.doe@example.com", Password: "password"},
		{ID: 3, Name: "Test User", Email: "testuser@test.com", Password: "testpassword"},
	}
}
