package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/notekeeper/internal/handler"
	"github.com/msomdec/notekeeper/internal/repository/sqlite"
	"github.com/msomdec/notekeeper/internal/service"
)

const testJWTSecret = "test-secret-for-handler-tests-0123456789"

func newTestServices(t *testing.T) (*service.AuthService, *service.NoteService) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New DB: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return service.NewAuthService(db.Users(), db.Sessions(), testJWTSecret, 4, time.Hour),
		service.NewNoteService(db.Notes())
}

// signupAndLogin creates an account and returns a valid auth token for it.
func signupAndLogin(t *testing.T, auth *service.AuthService, username string) string {
	t.Helper()
	ctx := context.Background()
	if _, err := auth.Signup(ctx, username, username+"@example.com", "password123"); err != nil {
		t.Fatalf("Signup: %v", err)
	}
	token, err := auth.Login(ctx, username, "password123")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	return token
}

func TestRequireAuth_ValidToken(t *testing.T) {
	auth, _ := newTestServices(t)
	token := signupAndLogin(t, auth, "valid")

	var gotUser string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user := handler.UserFromContext(r.Context()); user != nil {
			gotUser = user.Username
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, inner).ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if gotUser != "valid" {
		t.Fatalf("expected user 'valid' in context, got %q", gotUser)
	}
}

func TestRequireAuth_RedirectsAnonymous(t *testing.T) {
	auth, _ := newTestServices(t)

	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	tests := map[string]*http.Cookie{
		"no cookie":     nil,
		"garbage token": {Name: "auth_token", Value: "not-a-jwt"},
	}
	for name, cookie := range tests {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if cookie != nil {
				req.AddCookie(cookie)
			}
			w := httptest.NewRecorder()

			handler.RequireAuth(auth, inner).ServeHTTP(w, req)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("expected 303, got %d", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/login" {
				t.Fatalf("expected redirect to /login, got %s", loc)
			}
		})
	}
	if called {
		t.Fatal("inner handler must not run for anonymous requests")
	}
}

func TestRequireAuth_RevokedSession(t *testing.T) {
	auth, _ := newTestServices(t)
	token := signupAndLogin(t, auth, "revoked")

	if err := auth.Logout(context.Background(), token); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: token})
	w := httptest.NewRecorder()

	handler.RequireAuth(auth, http.NotFoundHandler()).ServeHTTP(w, req)

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303 for a revoked session, got %d", w.Code)
	}
}

func TestRequireAuthJSON_Unauthorized(t *testing.T) {
	auth, _ := newTestServices(t)

	req := httptest.NewRequest(http.MethodPost, "/notes/update", nil)
	w := httptest.NewRecorder()

	handler.RequireAuthJSON(auth, http.NotFoundHandler()).ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected JSON response, got %s", ct)
	}
}

func TestSecurityHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.SecurityHeaders(inner).ServeHTTP(w, req)

	for _, h := range []string{"X-Content-Type-Options", "X-Frame-Options", "Referrer-Policy", "Content-Security-Policy"} {
		if w.Header().Get(h) == "" {
			t.Fatalf("expected %s header to be set", h)
		}
	}
}

func TestRateLimit(t *testing.T) {
	limiter := service.NewTokenBucket(0.001, 2)
	defer limiter.Stop()

	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := handler.RateLimit(limiter, inner)

	do := func(remote string) int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		req.RemoteAddr = remote
		w := httptest.NewRecorder()
		h.ServeHTTP(w, req)
		return w.Code
	}

	for i := 0; i < 2; i++ {
		if code := do("10.0.0.1:1234"); code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i, code)
		}
	}
	if code := do("10.0.0.1:5678"); code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 once the bucket is empty, got %d", code)
	}
	if code := do("10.0.0.2:1234"); code != http.StatusOK {
		t.Fatalf("other clients must not be limited, got %d", code)
	}
}

func TestRateLimit_NilLimiter(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	w := httptest.NewRecorder()
	handler.RateLimit(nil, inner).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	if w.Code != http.StatusNoContent {
		t.Fatalf("expected pass-through, got %d", w.Code)
	}
}

func TestLogRequests_PassesStatus(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	w := httptest.NewRecorder()
	handler.LogRequests(inner).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	if w.Code != http.StatusTeapot {
		t.Fatalf("expected 418, got %d", w.Code)
	}
}
