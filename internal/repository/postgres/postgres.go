// Package postgres implements the domain repositories on PostgreSQL through
// the pgx database/sql driver, with schema managed by goose.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/msomdec/notekeeper/internal/domain"
	"github.com/msomdec/notekeeper/internal/repository/postgres/migrations"
	"github.com/pressly/goose/v3"
)

// DBTX is the subset of *sql.DB and *sql.Tx the repositories need.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// DB wraps a Postgres connection pool.
type DB struct {
	SqlDB *sql.DB
}

// New opens a pool for dsn and verifies connectivity.
func New(ctx context.Context, dsn string) (*DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &DB{SqlDB: db}, nil
}

// Migrate runs the embedded goose migrations up to the latest version.
func (db *DB) Migrate(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}
	if err := goose.UpContext(ctx, db.SqlDB, "."); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.SqlDB.Close()
}

func (db *DB) Users() domain.UserRepository {
	return NewUserRepository(db.SqlDB)
}

func (db *DB) Notes() domain.NoteRepository {
	return NewNoteRepository(db.SqlDB)
}

func (db *DB) Sessions() domain.SessionRepository {
	return NewSessionRepository(db.SqlDB)
}

const uniqueViolationCode = "23505"

// uniqueViolation maps a unique_violation on the users table to the matching
// domain error. It returns nil for any other error.
func uniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return nil
	}
	switch pgErr.ConstraintName {
	case "users_username_key":
		return domain.ErrDuplicateUsername
	case "users_email_key":
		return domain.ErrDuplicateEmail
	}
	return nil
}
