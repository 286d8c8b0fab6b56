package handler

import (
	"encoding/base64"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/msomdec/notekeeper/internal/view"
)

const flashCookieName = "flash"

// setFlash stores messages for the next page render. It must be called
// before the response header is written.
func setFlash(w http.ResponseWriter, secure bool, msgs ...view.Message) {
	if len(msgs) == 0 {
		return
	}
	data, err := json.Marshal(msgs)
	if err != nil {
		slog.Error("encode flash", "error", err)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    base64.RawURLEncoding.EncodeToString(data),
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// consumeFlash returns the pending messages and clears the cookie.
func consumeFlash(w http.ResponseWriter, r *http.Request) []view.Message {
	cookie, err := r.Cookie(flashCookieName)
	if err != nil {
		return nil
	}
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	data, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}
	var msgs []view.Message
	if err := json.Unmarshal(data, &msgs); err != nil {
		return nil
	}
	return msgs
}

func successMsg(text string) view.Message {
	return view.Message{Level: view.LevelSuccess, Text: text}
}

func errorMsgs(texts ...string) []view.Message {
	msgs := make([]view.Message, 0, len(texts))
	for _, t := range texts {
		msgs = append(msgs, view.Message{Level: view.LevelError, Text: t})
	}
	return msgs
}

// redirectWithFlash stores msgs and redirects with 303 See Other.
func redirectWithFlash(w http.ResponseWriter, r *http.Request, secure bool, to string, msgs ...view.Message) {
	setFlash(w, secure, msgs...)
	http.Redirect(w, r, to, http.StatusSeeOther)
}
