package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/msomdec/notekeeper/internal/domain"
	"github.com/msomdec/notekeeper/internal/repository/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite connection and hands out the repositories backed by it.
type DB struct {
	SqlDB *sql.DB
}

// New opens a SQLite database at the given path and configures it for use.
// It enables WAL mode and foreign keys.
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// WAL gives concurrent readers while a write is in progress.
	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	// Notes and sessions rely on ON DELETE CASCADE.
	if _, err := db.ExecContext(context.Background(), "PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable foreign keys: %w", err)
	}

	// PRAGMAs are per connection, so keep exactly one.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate applies the embedded schema files.
func (db *DB) Migrate(ctx context.Context) error {
	_, err := migrations.Run(ctx, db.SqlDB)
	return err
}

func (db *DB) Close() error {
	return db.SqlDB.Close()
}

func (db *DB) Users() domain.UserRepository {
	return NewUserRepository(db)
}

func (db *DB) Notes() domain.NoteRepository {
	return &noteRepo{db: db.SqlDB}
}

func (db *DB) Sessions() domain.SessionRepository {
	return &sessionRepo{db: db.SqlDB}
}

// uniqueViolation maps a SQLite UNIQUE constraint failure on the users table
// to the matching domain error. It returns nil for any other error.
func uniqueViolation(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	if !strings.Contains(msg, "UNIQUE constraint failed") {
		return nil
	}
	switch {
	case strings.Contains(msg, "users.username"):
		return domain.ErrDuplicateUsername
	case strings.Contains(msg, "users.email"):
		return domain.ErrDuplicateEmail
	}
	return nil
}
