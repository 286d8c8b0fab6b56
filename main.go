package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/msomdec/notekeeper/internal/config"
	"github.com/msomdec/notekeeper/internal/domain"
	"github.com/msomdec/notekeeper/internal/handler"
	"github.com/msomdec/notekeeper/internal/repository/postgres"
	"github.com/msomdec/notekeeper/internal/repository/redisstore"
	"github.com/msomdec/notekeeper/internal/repository/sqlite"
	"github.com/msomdec/notekeeper/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	level, _ := cfg.Log.SlogLevel()
	logOpts := &slog.HandlerOptions{Level: level}
	logger := slog.New(slog.NewMultiHandler(
		slog.NewTextHandler(os.Stdout, logOpts),
		slog.NewJSONHandler(os.Stderr, logOpts),
	))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := openDatabase(ctx, cfg.Database)
	if err != nil {
		slog.Error("failed to open database", "driver", cfg.Database.Driver, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("database migrations applied", "driver", cfg.Database.Driver)

	sessions := db.Sessions()
	if cfg.Redis.URL != "" {
		rdb, err := redisstore.Connect(ctx, cfg.Redis.URL)
		if err != nil {
			slog.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		sessions = redisstore.NewSessionStore(rdb)
		slog.Info("sessions stored in redis")
	}

	authService := service.NewAuthService(db.Users(), sessions, cfg.Auth.JWTSecret, cfg.Auth.BcryptCost, cfg.Auth.SessionTTL)
	noteService := service.NewNoteService(db.Notes())

	limiter := service.NewTokenBucket(cfg.Auth.LoginRate, cfg.Auth.LoginBurst)
	defer limiter.Stop()

	go purgeSessions(ctx, authService, cfg.Auth.PurgeInterval)

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux, authService, noteService, limiter, cfg.Auth.CookieSecure)

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           handler.LogRequests(handler.SecurityHeaders(mux)),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		MaxHeaderBytes:    1 << 20, // 1MB
	}

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

func openDatabase(ctx context.Context, cfg config.DatabaseConfig) (domain.Database, error) {
	if cfg.Driver == config.DriverPostgres {
		return postgres.New(ctx, cfg.URL)
	}
	return sqlite.New(cfg.Path)
}

// purgeSessions deletes expired sessions every interval until ctx is done.
func purgeSessions(ctx context.Context, auth *service.AuthService, every time.Duration) {
	if every <= 0 {
		return
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := auth.PurgeExpiredSessions(ctx)
			if err != nil {
				slog.Error("purge expired sessions", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("purged expired sessions", "count", n)
			}
		}
	}
}
