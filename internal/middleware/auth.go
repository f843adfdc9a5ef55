package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Dan9191/calculator-service/internal/auth"
	"github.com/Dan9191/calculator-service/internal/models"
	"github.com/gorilla/mux"
)

type contextKey int

const userContextKey contextKey = iota

// UserFromContext returns the authenticated user attached by Auth
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userContextKey).(*models.User)
	return user, ok
}

// Auth guards downstream handlers behind token verification. Every failure
// class (missing header, bad token, unknown subject) produces the same 401
// response; the distinction survives only in the error values the verifier
// returns.
func Auth(verifier *auth.Verifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := verifier.Verify(bearerToken(r))
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": false,
					"message": "Invalid or expired token",
				})
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header, returning "" when the header is absent or not a bearer credential.
// The scheme match is case-insensitive per RFC 7235.
func bearerToken(r *http.Request) string {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return token
}
