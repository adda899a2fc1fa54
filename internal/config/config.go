package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Security SecurityConfig
	Logging  LoggingConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	LogSQL          bool
}

type SecurityConfig struct {
	RateLimitPerSecond int
	RateLimitBurst     int
}

type LoggingConfig struct {
	Level  string
	Format string
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; real environment
// variables always win over it.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded environment from .env")
	}

	config := &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "5000"),
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Environment:  getEnv("APP_ENV", "development"),
			ReadTimeout:  getDurationEnv("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDurationEnv("SERVER_WRITE_TIMEOUT", 15*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverSQLite),
			Path:            getEnv("DB_PATH", "./data/finance.db"),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finance"),
			Password:        getEnv("DB_PASSWORD", ""),
			Name:            getEnv("DB_NAME", "finance"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 4),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 2),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			LogSQL:          getBoolEnv("DB_LOG_SQL", false),
		},
		Security: SecurityConfig{
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 20),
			RateLimitBurst:     getIntEnv("RATE_LIMIT_BURST", 40),
		},
		Logging: LoggingConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
	}

	config.Server.CORSAllowOrigins = loadCORSAllowOrigins()

	return config
}

// Validate checks the configuration and reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Server.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.Database.Driver {
	case DriverSQLite:
		if strings.TrimSpace(c.Database.Path) == "" {
			problems = append(problems, "database path cannot be empty when using the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.Host == "" || c.Database.Name == "" {
			problems = append(problems, "database host and name are required when using the postgres driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid database driver '%s': must be one of [%s %s]",
			c.Database.Driver, DriverSQLite, DriverPostgres))
	}

	if c.Database.MaxConnections < 1 {
		problems = append(problems, fmt.Sprintf("invalid max connections %d: must be at least 1", c.Database.MaxConnections))
	}

	if c.Security.RateLimitPerSecond < 1 {
		problems = append(problems, fmt.Sprintf("invalid rate limit %d: must be at least 1", c.Security.RateLimitPerSecond))
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.Logging.Level))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}

	return nil
}

// DSN returns the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
	}
	sep := "?"
	if strings.Contains(c.Path, "?") {
		sep = "&"
	}
	return c.Path + sep + "_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=off"
}

// EnsureDataDir creates the directory holding the sqlite file.
func (c *DatabaseConfig) EnsureDataDir() error {
	if c.Driver != DriverSQLite {
		return nil
	}
	dir := filepath.Dir(c.Path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

// SlogLevel maps the configured level name onto slog.
func (c *LoggingConfig) SlogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// loadCORSAllowOrigins splits CORS_ALLOW_ORIGINS on commas, defaulting to all origins.
func loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
