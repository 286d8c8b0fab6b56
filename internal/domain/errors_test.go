package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/msomdec/notekeeper/internal/domain"
)

func TestFieldErrors_IsInvalidInput(t *testing.T) {
	fe := domain.FieldErrors{}
	fe.Add("title", "This field is required.")

	wrapped := fmt.Errorf("create note: %w", fe)
	if !errors.Is(wrapped, domain.ErrInvalidInput) {
		t.Fatal("expected wrapped FieldErrors to match ErrInvalidInput")
	}

	var got domain.FieldErrors
	if !errors.As(wrapped, &got) {
		t.Fatal("expected errors.As to recover FieldErrors")
	}
	if len(got["title"]) != 1 {
		t.Fatalf("expected one title error, got %v", got["title"])
	}
}

func TestFieldErrors_MessagesSorted(t *testing.T) {
	fe := domain.FieldErrors{}
	fe.Add("username", "too long")
	fe.Add("email", "invalid")
	fe.Add("email", "too long")

	msgs := fe.Messages()
	want := []string{"email: invalid", "email: too long", "username: too long"}
	if len(msgs) != len(want) {
		t.Fatalf("expected %d messages, got %v", len(want), msgs)
	}
	for i := range want {
		if msgs[i] != want[i] {
			t.Fatalf("message %d: expected %q, got %q", i, want[i], msgs[i])
		}
	}
}
