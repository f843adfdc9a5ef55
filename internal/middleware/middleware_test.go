package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Dan9191/calculator-service/internal/auth"
	"github.com/Dan9191/calculator-service/internal/store"
	"github.com/sirupsen/logrus"
)

func testVerifier() (*auth.Issuer, *auth.Verifier, *store.StaticStore) {
	secret := []byte("test-secret")
	s := store.NewStaticStore(store.SeedUsers())
	return auth.NewIssuer(secret), auth.NewVerifier(secret, s), s
}

func TestAuth_RejectsWithoutToken(t *testing.T) {
	_, verifier, _ := testVerifier()

	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	rr := httptest.NewRecorder()
	Auth(verifier)(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Invalid or expired token") {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
	if called {
		t.Fatal("next handler ran despite rejection")
	}
}

func TestAuth_RejectsGarbageToken(t *testing.T) {
	_, verifier, _ := testVerifier()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler ran despite rejection")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	Auth(verifier)(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}

func TestAuth_AttachesUserToContext(t *testing.T) {
	issuer, verifier, s := testVerifier()

	user, err := s.FindByID(3)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, ok := UserFromContext(r.Context())
		if !ok {
			t.Fatal("no user in context")
		}
		if got.ID != user.ID {
			t.Fatalf("user id mismatch: got %d want %d", got.ID, user.ID)
		}
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	Auth(verifier)(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAuth_SchemeCaseInsensitive(t *testing.T) {
	issuer, verifier, s := testVerifier()

	user, err := s.FindByID(1)
	if err != nil {
		t.Fatalf("FindByID error: %v", err)
	}
	token, err := issuer.Issue(user)
	if err != nil {
		t.Fatalf("Issue error: %v", err)
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	for _, scheme := range []string{"bearer", "BEARER", "Bearer"} {
		req := httptest.NewRequest(http.MethodGet, "/api/protected", nil)
		req.Header.Set("Authorization", scheme+" "+token)
		rr := httptest.NewRecorder()
		Auth(verifier)(next).ServeHTTP(rr, req)

		if rr.Code != http.StatusNoContent {
			t.Fatalf("scheme %q: expected 204, got %d body=%s", scheme, rr.Code, rr.Body.String())
		}
	}
}

func TestRequestLogger_PassesThroughAndCounts(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("short and stout"))
	})

	before := RequestCount()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rr := httptest.NewRecorder()
	RequestLogger(logger)(next).ServeHTTP(rr, req)

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", rr.Code)
	}
	if rr.Body.String() != "short and stout" {
		t.Fatalf("body was altered: %s", rr.Body.String())
	}
	if RequestCount() != before+1 {
		t.Fatalf("request count did not advance: before=%d after=%d", before, RequestCount())
	}
}
