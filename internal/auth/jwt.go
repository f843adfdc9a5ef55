package auth

import (
	"errors"
	"fmt"

	"github.com/Dan9191/calculator-service/internal/models"
	"github.com/Dan9191/calculator-service/internal/store"
	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMissingToken means no bearer token was presented.
	ErrMissingToken = errors.New("authorization token missing")
	// ErrInvalidToken means the token was malformed or its signature did not verify.
	ErrInvalidToken = errors.New("invalid token")
	// ErrUnknownSubject means the token was valid but its id resolves to no user.
	ErrUnknownSubject = errors.New("unknown token subject")
)

// Claims carries the token payload: the user id and nothing else. Name and
// email are looked up on verification instead of being embedded, so they
// never go stale.
type Claims struct {
	jwt.RegisteredClaims
	UserID int `json:"id"`
}

// Issuer mints signed bearer tokens
type Issuer struct {
	secret []byte
}

// NewIssuer initializes an issuer with the shared signing secret
func NewIssuer(secret []byte) *Issuer {
	return &Issuer{secret: secret}
}

// Issue signs a token for an already-verified user. No expiry is set, so
// tokens are long-lived; verification still honors an exp claim if a future
// issuer adds one.
func (i *Issuer) Issue(user *models.User) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{UserID: user.ID})
	tokenString, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// Verifier checks bearer tokens and resolves them back to users
type Verifier struct {
	secret []byte
	store  store.Store
}

// NewVerifier initializes a verifier with the shared secret and the store
// tokens resolve against
func NewVerifier(secret []byte, s store.Store) *Verifier {
	return &Verifier{secret: secret, store: s}
}

// Verify validates the signature and re-resolves the embedded id against the
// store on every call, so a subject removed after issuance is rejected even
// though its signature still verifies.
func (v *Verifier) Verify(tokenString string) (*models.User, error) {
	if tokenString == "" {
		return nil, ErrMissingToken
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return v.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	user, err := v.store.FindByID(claims.UserID)
	if err != nil {
		return nil, ErrUnknownSubject
	}
	return user, nil
}
