package config

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "notekeeper.db", cfg.Database.Path)
	assert.True(t, cfg.Auth.CookieSecure)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, 24*time.Hour, cfg.Auth.SessionTTL)
	assert.Empty(t, cfg.Redis.URL)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", testSecret)
	t.Setenv("PORT", "9090")
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://u:p@localhost:5432/notes")
	t.Setenv("COOKIE_SECURE", "false")
	t.Setenv("BCRYPT_COST", "4")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.False(t, cfg.Auth.CookieSecure)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
	assert.Equal(t, 30*time.Minute, cfg.Auth.SessionTTL)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Database: DatabaseConfig{Driver: DriverSQLite, Path: "x.db"},
			Auth:     AuthConfig{JWTSecret: testSecret, BcryptCost: 10, SessionTTL: time.Hour, LoginBurst: 5},
			Log:      LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"short secret", func(c *Config) { c.Auth.JWTSecret = "short" }, "JWT_SECRET"},
		{"cost too low", func(c *Config) { c.Auth.BcryptCost = 3 }, "BCRYPT_COST"},
		{"cost too high", func(c *Config) { c.Auth.BcryptCost = 15 }, "BCRYPT_COST"},
		{"zero ttl", func(c *Config) { c.Auth.SessionTTL = 0 }, "SESSION_TTL"},
		{"postgres without url", func(c *Config) { c.Database.Driver = DriverPostgres }, "DATABASE_URL"},
		{"unknown driver", func(c *Config) { c.Database.Driver = "mysql" }, "DATABASE_DRIVER"},
		{"bad log level", func(c *Config) { c.Log.Level = "loud" }, "LOG_LEVEL"},
		{"zero burst", func(c *Config) { c.Auth.LoginBurst = 0 }, "LOGIN_BURST"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := valid()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tc.wantErr), "error %q should mention %s", err, tc.wantErr)
		})
	}
}
