// Package integrationtest provides db helpers used in integration tests.
//
// Integration tests share one database and truncate it on cleanup, so run
// them one package at a time: go test -p 1 -tags integration ./...
package integrationtest

import (
	"database/sql"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-petr/ledger/cmd/httpserver"
	"github.com/go-petr/ledger/internal/middleware"
	"github.com/go-petr/ledger/pkg/configpkg"
	"github.com/go-petr/ledger/pkg/dbpkg"
	"github.com/rs/zerolog"
)

// LoadConfig loads the application config from the configs dir at path.
func LoadConfig(t *testing.T, path string) configpkg.Config {
	t.Helper()

	config, err := configpkg.Load(path)
	if err != nil {
		t.Fatalf(`configpkg.Load(%q) returned error: %v`, path, err)
	}

	return config
}

// SetupServer returns test server that cleans up database after each integration test.
func SetupServer(t *testing.T, configPath string) *httpserver.Server {
	t.Helper()

	config := LoadConfig(t, configPath)

	zerolog.SetGlobalLevel(zerolog.FatalLevel)

	logger := middleware.CreateLogger(config)

	db := SetupDB(t, config.DBDriver, config.DBSource)

	gin.SetMode(gin.ReleaseMode)

	server, err := httpserver.New(db, logger, config)
	if err != nil {
		t.Fatalf(`httpserver.New(db, logger, config) returned error: %v`, err)
	}

	return server
}

// Flush flushes all db tables without droping.
func Flush(t *testing.T, db *sql.DB) {
	t.Helper()

	var tables string

	const query = `
	SELECT string_agg(table_name, ', ')
	FROM information_schema.tables
	WHERE table_schema='public' AND table_name <> 'schema_migrations';`

	row := db.QueryRow(query)

	err := row.Scan(&tables)
	if err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}

	if _, err := db.Exec(`TRUNCATE TABLE ` + tables + " CASCADE"); err != nil {
		t.Fatalf("db cleanup failed. err: %v", err)
	}
}

// MigrateDB brings the database at source up to the latest schema in configs/db/migration.
func MigrateDB(t *testing.T, source string) {
	t.Helper()

	_, filename, _, _ := runtime.Caller(0)
	migrations := filepath.Join(filepath.Dir(filename), "../../configs/db/migration")

	if err := dbpkg.Migrate("file://"+filepath.ToSlash(migrations), source); err != nil {
		t.Fatalf("db migration failed. err: %v", err)
	}
}

// SetupDB sets up connection with a migrated clean database for testing and cleans it
// again after the test.
func SetupDB(t *testing.T, driver, source string) *sql.DB {
	t.Helper()

	MigrateDB(t, source)

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	Flush(t, db)

	t.Cleanup(func() {
		Flush(t, db)

		if err := db.Close(); err != nil {
			t.Fatalf("db cleanup failed. err: %v", err)
		}
	})

	return db
}

// SetupTX sets up a database transaction to be used in tests.
//
// Once the tests are done it will rollback the transaction.
func SetupTX(t *testing.T, driver, source string) *sql.Tx {
	t.Helper()

	db, err := dbpkg.Setup(driver, source)
	if err != nil {
		t.Fatalf("db initialization failed. err: %v", err)
	}

	tx, err := db.Begin()
	if err != nil {
		t.Fatalf("db.Begin() failed: %v", err)
	}

	t.Cleanup(func() {
		if err := tx.Rollback(); err != nil {
			t.Fatalf("tx.Rollback() failed: %v", err)
		}
		if err := db.Close(); err != nil {
			t.Fatalf("db.Close() failed: %v", err)
		}
	})

	return tx
}
