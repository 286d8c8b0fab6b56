package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/msomdec/notekeeper/internal/domain"
)

// noteRepo implements domain.NoteRepository using SQLite.
type noteRepo struct {
	db *sql.DB
}

func (r *noteRepo) Create(ctx context.Context, note *domain.Note) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO notes (user_id, title, body, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?)`,
		note.UserID, note.Title, note.Body, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert note: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get note id: %w", err)
	}

	note.ID = id
	note.CreatedAt = now
	note.UpdatedAt = now
	return nil
}

func (r *noteRepo) GetByID(ctx context.Context, id int64) (*domain.Note, error) {
	n := &domain.Note{}
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, title, body, created_at, updated_at
		 FROM notes WHERE id = ?`, id,
	).Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get note: %w", err)
	}
	return n, nil
}

func (r *noteRepo) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]domain.Note, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, user_id, title, body, created_at, updated_at
		 FROM notes WHERE user_id = ? ORDER BY id DESC LIMIT ? OFFSET ?`,
		userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}
	defer rows.Close()

	var notes []domain.Note
	for rows.Next() {
		var n domain.Note
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Body, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		notes = append(notes, n)
	}
	return notes, rows.Err()
}

func (r *noteRepo) CountByUser(ctx context.Context, userID int64) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM notes WHERE user_id = ?", userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count notes: %w", err)
	}
	return count, nil
}

func (r *noteRepo) Update(ctx context.Context, note *domain.Note) error {
	now := time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`UPDATE notes SET title = ?, body = ?, updated_at = ? WHERE id = ?`,
		note.Title, note.Body, now, note.ID,
	)
	if err != nil {
		return fmt.Errorf("update note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}

	note.UpdatedAt = now
	return nil
}

func (r *noteRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete note: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
