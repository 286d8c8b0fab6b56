// Package redisstore keeps login sessions in Redis so several app instances
// can share them. Keys expire on their own, which replaces the periodic purge
// the SQL backends need.
package redisstore

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/msomdec/notekeeper/internal/domain"
	"github.com/redis/go-redis/v9"
)

const sessionKeyPrefix = "session:"

// SessionStore implements domain.SessionRepository on a Redis hash per session.
type SessionStore struct {
	rdb *redis.Client
}

// NewSessionStore returns a store backed by rdb.
func NewSessionStore(rdb *redis.Client) *SessionStore {
	return &SessionStore{rdb: rdb}
}

// Connect parses a redis:// or rediss:// URL and pings the server.
func Connect(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	rdb := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return rdb, nil
}

func (s *SessionStore) Create(ctx context.Context, sess *domain.Session) error {
	if sess.CreatedAt.IsZero() {
		sess.CreatedAt = time.Now().UTC()
	}
	key := sessionKeyPrefix + sess.ID
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, key,
			"user_id", sess.UserID,
			"created_at", sess.CreatedAt.Unix(),
			"expires_at", sess.ExpiresAt.Unix(),
		)
		pipe.ExpireAt(ctx, key, sess.ExpiresAt)
		return nil
	})
	if err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

func (s *SessionStore) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	vals, err := s.rdb.HGetAll(ctx, sessionKeyPrefix+id).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if len(vals) == 0 {
		return nil, domain.ErrNotFound
	}

	userID, err := strconv.ParseInt(vals["user_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session user: %w", err)
	}
	created, err := strconv.ParseInt(vals["created_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session created_at: %w", err)
	}
	expires, err := strconv.ParseInt(vals["expires_at"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse session expires_at: %w", err)
	}

	return &domain.Session{
		ID:        id,
		UserID:    userID,
		CreatedAt: time.Unix(created, 0).UTC(),
		ExpiresAt: time.Unix(expires, 0).UTC(),
	}, nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKeyPrefix+id).Err()
}

// DeleteExpired is a no-op: Redis evicts keys at their ExpireAt.
func (s *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	return 0, nil
}
