package service

import (
	"fmt"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/msomdec/notekeeper/internal/domain"
)

const (
	MaxUsernameLen = 50
	MaxPasswordLen = 50
	MaxEmailLen    = 250
	MaxTitleLen    = 250

	// bcrypt only hashes the first 72 bytes and rejects longer input.
	MaxPasswordBytes = 72
)

const msgRequired = "This field is required."

func maxLenMsg(limit, got int) string {
	return fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", limit, got)
}

// checkRequired records a required error when value is blank and reports
// whether the value was present.
func checkRequired(fe domain.FieldErrors, field, value, msg string) bool {
	if strings.TrimSpace(value) == "" {
		fe.Add(field, msg)
		return false
	}
	return true
}

func checkMaxLen(fe domain.FieldErrors, field, value string, limit int, msg string) {
	if n := utf8.RuneCountInString(value); n > limit {
		if msg == "" {
			msg = maxLenMsg(limit, n)
		}
		fe.Add(field, msg)
	}
}

// validEmail accepts a bare address whose domain has at least one dot.
func validEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndexByte(s, '@')
	domainPart := s[at+1:]
	return strings.Contains(domainPart, ".") && !strings.HasSuffix(domainPart, ".")
}

func validateSignup(username, email, password string) error {
	fe := domain.FieldErrors{}
	if checkRequired(fe, "username", username, msgRequired) {
		checkMaxLen(fe, "username", username, MaxUsernameLen, "")
	}
	if checkRequired(fe, "email", email, msgRequired) {
		checkMaxLen(fe, "email", email, MaxEmailLen, "")
		if !validEmail(email) {
			fe.Add("email", "Enter a valid email address.")
		}
	}
	if checkRequired(fe, "password", password, msgRequired) {
		checkMaxLen(fe, "password", password, MaxPasswordLen, "")
		if len(fe["password"]) == 0 && len(password) > MaxPasswordBytes {
			fe.Add("password", fmt.Sprintf("Ensure this value has at most %d bytes (it has %d).", MaxPasswordBytes, len(password)))
		}
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

func validateLogin(username, password string) error {
	fe := domain.FieldErrors{}
	if checkRequired(fe, "username", username, "Please enter your username.") {
		checkMaxLen(fe, "username", username, MaxUsernameLen, "username cannot exceed 50 characters.")
	}
	if checkRequired(fe, "password", password, "Please enter your password.") {
		checkMaxLen(fe, "password", password, MaxPasswordLen, "password cannot exceed 50 characters.")
	}
	if len(fe) > 0 {
		return fe
	}
	return nil
}

func validateNote(title, body string) error {
	fe := domain.FieldErrors{}
	if checkRequired(fe, "title", title, msgRequired) {
		checkMaxLen(fe, "title", title, MaxTitleLen, "")
	}
	checkRequired(fe, "body", body, msgRequired)
	if len(fe) > 0 {
		return fe
	}
	return nil
}
