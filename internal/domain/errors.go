package domain

import (
	"errors"
	"sort"
	"strings"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrDuplicateEmail    = errors.New("email already exists")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidInput      = errors.New("invalid input")
)

// FieldErrors collects validation messages keyed by form field name.
type FieldErrors map[string][]string

// Add records a message for field.
func (fe FieldErrors) Add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// Fields returns the field names with errors in sorted order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// Messages flattens the errors into "field: message" strings in field order.
func (fe FieldErrors) Messages() []string {
	var msgs []string
	for _, f := range fe.Fields() {
		for _, m := range fe[f] {
			msgs = append(msgs, f+": "+m)
		}
	}
	return msgs
}

func (fe FieldErrors) Error() string {
	return ErrInvalidInput.Error() + ": " + strings.Join(fe.Messages(), "; ")
}

// Is makes errors.Is(fe, ErrInvalidInput) hold.
func (fe FieldErrors) Is(target error) bool {
	return target == ErrInvalidInput
}
