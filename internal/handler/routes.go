package handler

import (
	"net/http"

	"github.com/msomdec/notekeeper/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux. limiter may be nil
// to disable rate limiting of the credential endpoints.
func RegisterRoutes(mux *http.ServeMux, auth *service.AuthService, notes *service.NoteService, limiter *service.TokenBucket, cookieSecure bool) {
	authHandler := NewAuthHandler(auth, cookieSecure)
	noteHandler := NewNoteHandler(notes, cookieSecure)

	requireAuth := func(fn http.HandlerFunc) http.Handler { return RequireAuth(auth, fn) }
	rateLimited := func(fn http.HandlerFunc) http.Handler { return RateLimit(limiter, fn) }

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("GET /signup", authHandler.HandleSignupPage)
	mux.Handle("POST /signup", rateLimited(authHandler.HandleSignup))
	mux.HandleFunc("GET /login", authHandler.HandleLoginPage)
	mux.Handle("POST /login", rateLimited(authHandler.HandleLogin))
	mux.HandleFunc("GET /logout", authHandler.HandleLogout)

	mux.Handle("GET /{$}", requireAuth(noteHandler.HandleList))
	mux.Handle("POST /notes", requireAuth(noteHandler.HandleCreate))
	mux.Handle("POST /notes/update", RequireAuthJSON(auth, http.HandlerFunc(noteHandler.HandleUpdate)))
	mux.Handle("POST /notes/{id}/delete", requireAuth(noteHandler.HandleDelete))
}
