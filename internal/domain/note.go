package domain

import (
	"context"
	"time"
)

// Note is a titled text record owned by exactly one user.
type Note struct {
	ID        int64
	UserID    int64
	Title     string
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NoteRepository defines persistence operations for notes.
type NoteRepository interface {
	Create(ctx context.Context, note *Note) error
	GetByID(ctx context.Context, id int64) (*Note, error)
	// ListByUser returns a window of the user's notes, newest first.
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]Note, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
	// Update persists Title and Body. Owner and ID are never changed.
	Update(ctx context.Context, note *Note) error
	Delete(ctx context.Context, id int64) error
}
