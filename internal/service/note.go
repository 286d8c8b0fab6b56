package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/msomdec/notekeeper/internal/domain"
)

// NoteService handles note CRUD scoped to the authenticated user.
type NoteService struct {
	notes domain.NoteRepository
}

// NewNoteService creates a new NoteService.
func NewNoteService(notes domain.NoteRepository) *NoteService {
	return &NoteService{notes: notes}
}

// List returns one page of the user's notes, newest first. The page number
// is clamped rather than rejected.
func (s *NoteService) List(ctx context.Context, userID int64, page int) (*Page, error) {
	total, err := s.notes.CountByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("count notes: %w", err)
	}

	number, totalPages := clampPage(page, total, NotesPageSize)
	notes, err := s.notes.ListByUser(ctx, userID, NotesPageSize, (number-1)*NotesPageSize)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return &Page{
		Notes:      notes,
		Number:     number,
		Size:       NotesPageSize,
		TotalItems: total,
		TotalPages: totalPages,
	}, nil
}

// Create validates and stores a new note owned by userID.
func (s *NoteService) Create(ctx context.Context, userID int64, title, body string) (*domain.Note, error) {
	if err := validateNote(title, body); err != nil {
		return nil, err
	}

	note := &domain.Note{
		UserID: userID,
		Title:  strings.TrimSpace(title),
		Body:   strings.TrimSpace(body),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("create note: %w", err)
	}
	return note, nil
}

// Update replaces the title and body of a note the user owns. The values are
// validated like Create but stored exactly as submitted.
func (s *NoteService) Update(ctx context.Context, userID, noteID int64, title, body string) (*domain.Note, error) {
	note, err := s.getOwned(ctx, userID, noteID)
	if err != nil {
		return nil, err
	}

	if err := validateNote(title, body); err != nil {
		return nil, err
	}

	note.Title = title
	note.Body = body
	if err := s.notes.Update(ctx, note); err != nil {
		return nil, fmt.Errorf("update note: %w", err)
	}
	return note, nil
}

// Delete removes a note the user owns.
func (s *NoteService) Delete(ctx context.Context, userID, noteID int64) error {
	if _, err := s.getOwned(ctx, userID, noteID); err != nil {
		return err
	}
	return s.notes.Delete(ctx, noteID)
}

// getOwned loads a note and hides notes owned by someone else behind
// ErrNotFound, so ids of other users' notes are not confirmed.
func (s *NoteService) getOwned(ctx context.Context, userID, noteID int64) (*domain.Note, error) {
	note, err := s.notes.GetByID(ctx, noteID)
	if err != nil {
		return nil, err
	}
	if note.UserID != userID {
		return nil, domain.ErrNotFound
	}
	return note, nil
}
