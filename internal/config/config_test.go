package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_DRIVER", "")
	t.Setenv("DB_PATH", "")
	t.Setenv("CORS_ALLOW_ORIGINS", "")

	cfg := Load()

	assert.Equal(t, "5000", cfg.Server.Port)
	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "./data/finance.db", cfg.Database.Path)
	assert.Equal(t, []string{"*"}, cfg.Server.CORSAllowOrigins)
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "postgres")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_MAX_CONNECTIONS", "12")
	t.Setenv("DB_LOG_SQL", "true")
	t.Setenv("SERVER_READ_TIMEOUT", "3s")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, 12, cfg.Database.MaxConnections)
	assert.True(t, cfg.Database.LogSQL)
	assert.Equal(t, 3*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.CORSAllowOrigins)
	assert.Contains(t, cfg.Database.DSN(), "host=db.internal")
}

func TestLoad_InvalidNumbersFallBackToDefaults(t *testing.T) {
	t.Setenv("DB_MAX_CONNECTIONS", "many")
	t.Setenv("SERVER_WRITE_TIMEOUT", "soon")
	t.Setenv("DB_LOG_SQL", "maybe")

	cfg := Load()

	assert.Equal(t, 4, cfg.Database.MaxConnections)
	assert.Equal(t, 15*time.Second, cfg.Server.WriteTimeout)
	assert.False(t, cfg.Database.LogSQL)
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: "99999"},
		Database: DatabaseConfig{Driver: "oracle", MaxConnections: 0},
		Security: SecurityConfig{RateLimitPerSecond: 0},
		Logging:  LoggingConfig{Level: "loud"},
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 99999")
	assert.Contains(t, err.Error(), "invalid database driver 'oracle'")
	assert.Contains(t, err.Error(), "invalid max connections 0")
	assert.Contains(t, err.Error(), "invalid rate limit 0")
	assert.Contains(t, err.Error(), "invalid log level 'loud'")
}

func TestValidate_SQLiteRequiresPath(t *testing.T) {
	cfg := &Config{
		Server:   ServerConfig{Port: "5000"},
		Database: DatabaseConfig{Driver: DriverSQLite, Path: "  ", MaxConnections: 1},
		Security: SecurityConfig{RateLimitPerSecond: 1},
		Logging:  LoggingConfig{Level: "info"},
	}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path cannot be empty")
}

func TestDatabaseConfig_SQLiteDSN(t *testing.T) {
	cfg := DatabaseConfig{Driver: DriverSQLite, Path: "/tmp/finance.db"}

	assert.Equal(t, "/tmp/finance.db?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=off", cfg.DSN())

	cfg.Path = "file:ledger?mode=memory&cache=shared"
	assert.Equal(t, "file:ledger?mode=memory&cache=shared&_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=off", cfg.DSN())
}

func TestDatabaseConfig_EnsureDataDir(t *testing.T) {
	dir := t.TempDir()
	cfg := DatabaseConfig{Driver: DriverSQLite, Path: dir + "/nested/finance.db"}

	require.NoError(t, cfg.EnsureDataDir())
	assert.DirExists(t, dir+"/nested")
}

func TestLoggingConfig_SlogLevel(t *testing.T) {
	tests := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		cfg := LoggingConfig{Level: tt.level}
		assert.Equal(t, tt.want, cfg.SlogLevel(), tt.level)
	}
}
