package domain

import (
	"context"
	"time"
)

// User is a registered account. Username and email are each unique.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	// Delete removes the user. The store cascades the delete to the user's notes
	// and sessions.
	Delete(ctx context.Context, id int64) error
}
