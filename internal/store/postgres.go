package store

import (
	"database/sql"
	"fmt"

	"github.com/Dan9191/calculator-service/internal/models"
)

// PostgresStore reads users from the calculator.users table:
//
//	id SERIAL PRIMARY KEY, name TEXT, email TEXT UNIQUE, password TEXT
//
// Lookups only; the service never writes.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore initializes a store over an open database handle
func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// FindByEmailAndPassword retrieves a user by email and verifies the password
func (s *PostgresStore) FindByEmailAndPassword(email, password string) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, email, password
		FROM calculator.users
		WHERE email = $1`
	err := s.db.QueryRow(query, email).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if user.Password != password {
		return nil, ErrNotFound
	}
	return user, nil
}

// FindByID retrieves a user by id
func (s *PostgresStore) FindByID(id int) (*models.User, error) {
	user := &models.User{}
	query := `
		SELECT id, name, email, password
		FROM calculator.users
		WHERE id = $1`
	err := s.db.QueryRow(query, id).
		Scan(&user.ID, &user.Name, &user.Email, &user.Password)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}
