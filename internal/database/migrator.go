package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-tracker/internal/config"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

var (
	maxRetries    = 30
	retryInterval = 2 * time.Second
)

// MigrationRunner applies the embedded SQL migrations. It owns its *sql.DB:
// closing the runner closes that connection, so it must not be the pool the
// repositories use.
type MigrationRunner struct {
	db      *sql.DB
	driver  string
	migrate *migrate.Migrate
}

func NewMigrationRunner(db *sql.DB, driver string) *MigrationRunner {
	return &MigrationRunner{
		db:     db,
		driver: driver,
	}
}

// OpenMigrationRunner opens a dedicated connection for migrations.
func OpenMigrationRunner(cfg *config.DatabaseConfig) (*MigrationRunner, error) {
	driverName := "sqlite3"
	if cfg.Driver == config.DriverPostgres {
		driverName = "postgres"
	}

	db, err := sql.Open(driverName, cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open migration database: %w", err)
	}

	return NewMigrationRunner(db, cfg.Driver), nil
}

// WaitForDatabase waits for the database to be ready
func (mr *MigrationRunner) WaitForDatabase() error {
	for i := 0; i < maxRetries; i++ {
		err := mr.db.Ping()
		if err == nil {
			return nil
		}

		slog.Warn("database not ready", "attempt", i+1, "max_attempts", maxRetries, "error", err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database not ready after %d attempts", maxRetries)
}

func (mr *MigrationRunner) instance() (*migrate.Migrate, error) {
	if mr.migrate != nil {
		return mr.migrate, nil
	}

	if mr.driver != config.DriverSQLite && mr.driver != config.DriverPostgres {
		return nil, fmt.Errorf("unsupported migration driver %q", mr.driver)
	}

	source, err := iofs.New(migrationsFS, "migrations/"+mr.driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create iofs source: %w", err)
	}

	var driver migratedb.Driver
	if mr.driver == config.DriverPostgres {
		driver, err = postgres.WithInstance(mr.db, &postgres.Config{})
	} else {
		driver, err = sqlite3.WithInstance(mr.db, &sqlite3.Config{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create %s driver: %w", mr.driver, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, mr.driver, driver)
	if err != nil {
		return nil, fmt.Errorf("failed to create migration instance: %w", err)
	}

	mr.migrate = m
	return m, nil
}

// RunMigrations executes all pending migrations
func (mr *MigrationRunner) RunMigrations() error {
	m, err := mr.instance()
	if err != nil {
		return err
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	if dirty {
		slog.Warn("database is in dirty state, forcing version", "version", version)
		if err := m.Force(int(version)); err != nil {
			return fmt.Errorf("failed to force version: %w", err)
		}
	}

	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		slog.Debug("no new migrations to apply", "version", version)
		return nil
	}
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	newVersion, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("failed to get new migration version: %w", err)
	}
	slog.Info("applied migrations", "version", newVersion)

	return nil
}

// GetMigrationStatus returns the current migration status
func (mr *MigrationRunner) GetMigrationStatus() (version uint, dirty bool, err error) {
	m, err := mr.instance()
	if err != nil {
		return 0, false, err
	}
	return m.Version()
}

// Close releases the runner's connection.
func (mr *MigrationRunner) Close() error {
	if mr.migrate == nil {
		return mr.db.Close()
	}
	sourceErr, dbErr := mr.migrate.Close()
	if sourceErr != nil {
		return sourceErr
	}
	return dbErr
}
