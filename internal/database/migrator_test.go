package database

import (
	"errors"
	"strings"
	"testing"
	"time"

	"finance-tracker/internal/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withFastRetries(t *testing.T) {
	t.Helper()

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 10 * time.Millisecond
	t.Cleanup(func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	})
}

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db, config.DriverSQLite)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, config.DriverSQLite, runner.driver)
	assert.Nil(t, runner.migrate)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db, config.DriverSQLite)

	assert.NoError(t, runner.WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	withFastRetries(t)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("database is locked"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db, config.DriverSQLite)

	assert.NoError(t, runner.WaitForDatabase())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_AlwaysFails(t *testing.T) {
	withFastRetries(t)

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	for i := 0; i < maxRetries; i++ {
		mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	}

	runner := NewMigrationRunner(db, config.DriverSQLite)
	err = runner.WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestRunMigrations_UnsupportedDriver(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectClose()

	runner := NewMigrationRunner(db, "oracle")
	err = runner.RunMigrations()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported migration driver")
	assert.NoError(t, runner.Close())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestEmbeddedMigrations_PresentForEveryDriver(t *testing.T) {
	for _, driver := range []string{config.DriverSQLite, config.DriverPostgres} {
		entries, err := migrationsFS.ReadDir("migrations/" + driver)
		require.NoError(t, err, driver)

		var up, down int
		for _, entry := range entries {
			switch {
			case strings.HasSuffix(entry.Name(), ".up.sql"):
				up++
			case strings.HasSuffix(entry.Name(), ".down.sql"):
				down++
			}
		}
		assert.Equal(t, up, down, driver)
		assert.Positive(t, up, driver)
	}
}

func TestRunMigrations_SQLiteReportsVersion(t *testing.T) {
	tdb := NewTestDB(t)

	runner, err := OpenMigrationRunner(tdb.config)
	require.NoError(t, err)
	defer runner.Close()

	// Already applied by NewTestDB.
	require.NoError(t, runner.RunMigrations())

	version, dirty, err := runner.GetMigrationStatus()
	require.NoError(t, err)
	assert.Equal(t, uint(1), version)
	assert.False(t, dirty)
}
