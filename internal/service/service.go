package service

import (
	"errors"
	"fmt"

	"github.com/Dan9191/calculator-service/internal/auth"
	"github.com/Dan9191/calculator-service/internal/store"
	"github.com/sirupsen/logrus"
)

var (
	// ErrInvalidInput means an operand did not parse as a finite number.
	ErrInvalidInput = errors.New("invalid input parameters")
	// ErrDivisionByZero means the divisor was exactly zero.
	ErrDivisionByZero = errors.New("cannot divide by zero")
)

// Service handles business logic
type Service struct {
	store  store.Store
	issuer *auth.Issuer
	log    *logrus.Logger
}

// NewService initializes a new service
func NewService(s store.Store, issuer *auth.Issuer, log *logrus.Logger) *Service {
	return &Service{store: s, issuer: issuer, log: log}
}

// Login authenticates a user and returns a signed bearer token
func (s *Service) Login(email, password string) (string, error) {
	user, err := s.store.FindByEmailAndPassword(email, password)
	if err != nil {
		return "", fmt.Errorf("invalid credentials")
	}

	tokenString, err := s.issuer.Issue(user)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	s.log.Infof("User logged in: %s", user.Email)
	return tokenString, nil
}

// Add returns the sum of two numbers
func (s *Service) Add(a, b float64) float64 {
	result := a + b
	s.log.Infof("Performed addition of %v and %v to get %v", a, b, result)
	return result
}

// Subtract returns the difference of two numbers
func (s *Service) Subtract(a, b float64) float64 {
	result := a - b
	s.log.Infof("Performed subtraction of %v from %v to get %v", b, a, result)
	return result
}

// Multiply returns the product of two numbers
func (s *Service) Multiply(a, b float64) float64 {
	result := a * b
	s.log.Infof("Performed multiplication of %v and %v to get %v", a, b, result)
	return result
}

// Divide returns the quotient of two numbers, rejecting a zero divisor
func (s *Service) Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}
	result := a / b
	s.log.Infof("Performed division of %v by %v to get %v", a, b, result)
	return result, nil
}
