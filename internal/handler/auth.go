package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/msomdec/notekeeper/internal/domain"
	"github.com/msomdec/notekeeper/internal/service"
	"github.com/msomdec/notekeeper/internal/view"
)

// AuthHandler handles signup, login and logout.
type AuthHandler struct {
	auth         *service.AuthService
	cookieSecure bool
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, cookieSecure bool) *AuthHandler {
	return &AuthHandler{auth: auth, cookieSecure: cookieSecure}
}

// HandleSignupPage renders the signup form.
// GET /signup
func (h *AuthHandler) HandleSignupPage(w http.ResponseWriter, r *http.Request) {
	msgs := consumeFlash(w, r)
	view.SignupPage(msgs).Render(r.Context(), w)
}

// HandleSignup processes the signup form.
// POST /signup
func (h *AuthHandler) HandleSignup(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	_, err := h.auth.Signup(r.Context(), r.FormValue("username"), r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		var fe domain.FieldErrors
		switch {
		case errors.Is(err, domain.ErrDuplicateUsername):
			redirectWithFlash(w, r, h.cookieSecure, "/signup", errorMsgs("User already exists")...)
		case errors.Is(err, domain.ErrDuplicateEmail):
			redirectWithFlash(w, r, h.cookieSecure, "/signup", errorMsgs("An account with that email already exists.")...)
		case errors.As(err, &fe):
			redirectWithFlash(w, r, h.cookieSecure, "/signup", errorMsgs(fe.Messages()...)...)
		default:
			slog.Error("signup user", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	redirectWithFlash(w, r, h.cookieSecure, "/login", successMsg("You have successfully signed up!"))
}

// HandleLoginPage renders the login form.
// GET /login
func (h *AuthHandler) HandleLoginPage(w http.ResponseWriter, r *http.Request) {
	msgs := consumeFlash(w, r)
	view.LoginPage(msgs).Render(r.Context(), w)
}

// HandleLogin authenticates the form credentials and sets the session cookie.
// POST /login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	token, err := h.auth.Login(r.Context(), r.FormValue("username"), r.FormValue("password"))
	if err != nil {
		var fe domain.FieldErrors
		switch {
		case errors.As(err, &fe):
			redirectWithFlash(w, r, h.cookieSecure, "/login", errorMsgs(fe.Messages()...)...)
		case errors.Is(err, domain.ErrUnauthorized):
			redirectWithFlash(w, r, h.cookieSecure, "/login", errorMsgs("User does not exist")...)
		default:
			slog.Error("login user", "error", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		}
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(h.auth.SessionTTL().Seconds()),
	})
	redirectWithFlash(w, r, h.cookieSecure, "/", successMsg("You have successfully logged in!"))
}

// HandleLogout revokes the server-side session, clears the cookie and sends
// the browser home, which in turn bounces to the login page.
// GET /logout
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(authCookieName); err == nil {
		if err := h.auth.Logout(r.Context(), cookie.Value); err != nil {
			slog.Error("logout user", "error", err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
