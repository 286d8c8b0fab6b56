package service_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/msomdec/notekeeper/internal/domain"
	"github.com/msomdec/notekeeper/internal/repository/sqlite"
	"github.com/msomdec/notekeeper/internal/service"
)

func newTestNoteService(t *testing.T) (*service.NoteService, *sqlite.DB) {
	t.Helper()
	db := newTestDB(t)
	return service.NewNoteService(db.Notes()), db
}

func seedUserForTest(t *testing.T, db *sqlite.DB, username string) int64 {
	t.Helper()
	u := &domain.User{Username: username, Email: username + "@example.com", PasswordHash: "hash"}
	if err := db.Users().Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u.ID
}

func seedNotes(t *testing.T, svc *service.NoteService, userID int64, n int) []*domain.Note {
	t.Helper()
	notes := make([]*domain.Note, 0, n)
	for i := 0; i < n; i++ {
		note, err := svc.Create(context.Background(), userID, fmt.Sprintf("note %d", i), "body")
		if err != nil {
			t.Fatalf("seed note %d: %v", i, err)
		}
		notes = append(notes, note)
	}
	return notes
}

func TestNoteService_Create_Success(t *testing.T) {
	svc, db := newTestNoteService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "creator")

	note, err := svc.Create(ctx, userID, "  Title  ", "Body text")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if note.ID == 0 || note.UserID != userID {
		t.Fatalf("unexpected note: %+v", note)
	}
	if note.Title != "Title" {
		t.Fatalf("expected trimmed title, got %q", note.Title)
	}
}

func TestNoteService_Create_Invalid(t *testing.T) {
	svc, db := newTestNoteService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "invalid")

	tests := []struct {
		name  string
		title string
		body  string
		field string
	}{
		{"empty title", "", "body", "title"},
		{"blank title", "   ", "body", "title"},
		{"empty body", "title", "", "body"},
		{"long title", strings.Repeat("t", 251), "body", "title"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, userID, tc.title, tc.body)
			var fe domain.FieldErrors
			if !errors.As(err, &fe) {
				t.Fatalf("expected FieldErrors, got %v", err)
			}
			if len(fe[tc.field]) == 0 {
				t.Fatalf("expected error on %s, got %v", tc.field, fe)
			}
		})
	}

	page, err := svc.List(ctx, userID, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.TotalItems != 0 {
		t.Fatalf("invalid creates must not store notes, have %d", page.TotalItems)
	}
}

func TestNoteService_List_Pagination(t *testing.T) {
	svc, db := newTestNoteService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "pager")
	seedNotes(t, svc, userID, 25)

	tests := []struct {
		request    int
		wantNumber int
		wantLen    int
	}{
		{1, 1, 10},
		{2, 2, 10},
		{3, 3, 5},
		{4, 3, 5},
		{99, 3, 5},
		{0, 3, 5},
		{-1, 3, 5},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("page %d", tc.request), func(t *testing.T) {
			page, err := svc.List(ctx, userID, tc.request)
			if err != nil {
				t.Fatalf("List: %v", err)
			}
			if page.Number != tc.wantNumber {
				t.Fatalf("expected page %d, got %d", tc.wantNumber, page.Number)
			}
			if len(page.Notes) != tc.wantLen {
				t.Fatalf("expected %d notes, got %d", tc.wantLen, len(page.Notes))
			}
			if page.TotalPages != 3 || page.TotalItems != 25 {
				t.Fatalf("unexpected totals: pages=%d items=%d", page.TotalPages, page.TotalItems)
			}
		})
	}
}

func TestNoteService_List_Empty(t *testing.T) {
	svc, db := newTestNoteService(t)
	userID := seedUserForTest(t, db, "empty")

	page, err := svc.List(context.Background(), userID, 5)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if page.Number != 1 || page.TotalPages != 1 || len(page.Notes) != 0 {
		t.Fatalf("unexpected empty page: %+v", page)
	}
	if page.HasNext() || page.HasPrev() {
		t.Fatal("empty page should have no neighbours")
	}
}

func TestNoteService_List_OnlyOwnNotes(t *testing.T) {
	svc, db := newTestNoteService(t)
	ctx := context.Background()
	alice := seedUserForTest(t, db, "alice")
	bob := seedUserForTest(t, db, "bob")
	seedNotes(t, svc, alice, 3)
	seedNotes(t, svc, bob, 2)

	page, err := svc.List(ctx, bob, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Notes) != 2 {
		t.Fatalf("expected 2 notes for bob, got %d", len(page.Notes))
	}
	for _, n := range page.Notes {
		if n.UserID != bob {
			t.Fatalf("bob's listing contains note %d of user %d", n.ID, n.UserID)
		}
	}
}

func TestNoteService_Update(t *testing.T) {
	svc, db := newTestNoteService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "updater")
	orig := seedNotes(t, svc, userID, 1)[0]

	updated, err := svc.Update(ctx, userID, orig.ID, "New title", "New body")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.ID != orig.ID || updated.UserID != userID {
		t.Fatalf("id or owner changed: %+v", updated)
	}

	got, err := db.Notes().GetByID(ctx, orig.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "New title" || got.Body != "New body" {
		t.Fatalf("update not persisted: %+v", got)
	}
	if got.UserID != userID {
		t.Fatalf("owner changed to %d", got.UserID)
	}
}

func TestNoteService_Update_StoresValuesAsSubmitted(t *testing.T) {
	svc, db := newTestNoteService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "verbatim")
	note := seedNotes(t, svc, userID, 1)[0]

	if _, err := svc.Update(ctx, userID, note.ID, "  padded title ", "\tbody\n"); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := db.Notes().GetByID(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != "  padded title " || got.Body != "\tbody\n" {
		t.Fatalf("expected values stored as submitted, got (%q, %q)", got.Title, got.Body)
	}

	if _, err := svc.Update(ctx, userID, note.ID, "   ", "body"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("blank title must still be rejected, got %v", err)
	}
}

func TestNoteService_Update_NotFound(t *testing.T) {
	svc, db := newTestNoteService(t)
	userID := seedUserForTest(t, db, "missing")

	_, err := svc.Update(context.Background(), userID, 4242, "t", "b")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestNoteService_Update_OtherUsersNote(t *testing.T) {
	svc, db := newTestNoteService(t)
	ctx := context.Background()
	owner := seedUserForTest(t, db, "owner")
	intruder := seedUserForTest(t, db, "intruder")
	note := seedNotes(t, svc, owner, 1)[0]

	_, err := svc.Update(ctx, intruder, note.ID, "pwned", "pwned")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign note, got %v", err)
	}

	got, err := db.Notes().GetByID(ctx, note.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Title != note.Title {
		t.Fatalf("foreign update leaked through: %+v", got)
	}
}

func TestNoteService_Update_Invalid(t *testing.T) {
	svc, db := newTestNoteService(t)
	userID := seedUserForTest(t, db, "badupdate")
	note := seedNotes(t, svc, userID, 1)[0]

	_, err := svc.Update(context.Background(), userID, note.ID, "", "")
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestNoteService_Delete(t *testing.T) {
	svc, db := newTestNoteService(t)
	ctx := context.Background()
	userID := seedUserForTest(t, db, "deleter")
	notes := seedNotes(t, svc, userID, 3)

	if err := svc.Delete(ctx, userID, notes[1].ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	page, err := svc.List(ctx, userID, 1)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(page.Notes) != 2 {
		t.Fatalf("expected 2 remaining notes, got %d", len(page.Notes))
	}
	for _, n := range page.Notes {
		if n.ID == notes[1].ID {
			t.Fatal("deleted note still listed")
		}
	}
}

func TestNoteService_Delete_NotFoundAndForeign(t *testing.T) {
	svc, db := newTestNoteService(t)
	ctx := context.Background()
	owner := seedUserForTest(t, db, "owner")
	other := seedUserForTest(t, db, "other")
	note := seedNotes(t, svc, owner, 1)[0]

	if err := svc.Delete(ctx, owner, 999999); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing note, got %v", err)
	}
	if err := svc.Delete(ctx, other, note.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for foreign note, got %v", err)
	}
	if _, err := db.Notes().GetByID(ctx, note.ID); err != nil {
		t.Fatalf("note should survive a foreign delete: %v", err)
	}
}
