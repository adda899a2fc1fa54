package database

import (
	"context"
	"fmt"
	"testing"

	"finance-tracker/internal/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// TestDB is a migrated and seeded in-memory SQLite database private to one test.
type TestDB struct {
	*DB
	t *testing.T
}

// NewTestDB opens a named shared-cache in-memory database so the migration
// connection and the pool see the same tables. The pool keeps one idle
// connection, which keeps the database alive until Cleanup closes it.
func NewTestDB(t *testing.T) *TestDB {
	t.Helper()

	cfg := &config.DatabaseConfig{
		Driver:         config.DriverSQLite,
		Path:           fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxConnections: 1,
		MaxIdleConns:   1,
	}

	db, err := New(cfg)
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}
	db.DB = db.DB.Session(&gorm.Session{Logger: logger.Default.LogMode(logger.Silent)})

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	tdb := &TestDB{DB: db, t: t}
	t.Cleanup(tdb.Cleanup)
	return tdb
}

// Truncate empties the ledger tables, leaving the seeded categories in place.
func (tdb *TestDB) Truncate() {
	tdb.t.Helper()

	for _, table := range []string{"transactions", "debts", "investments"} {
		if err := tdb.DB.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			tdb.t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}

func (tdb *TestDB) Cleanup() {
	if err := tdb.Close(); err != nil {
		tdb.t.Logf("failed to close test database: %v", err)
	}
}
