// Package testutil provides shared test helpers.
package testutil

import (
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/harshbadhann2/society-home-connect/internal/database"
)

// Logger returns a logger that discards everything below error.
func Logger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

var quietGoose sync.Once

// DB opens a migrated SQLite database in a temp dir. It is closed when the
// test ends.
func DB(t *testing.T) *sql.DB {
	t.Helper()
	quietGoose.Do(func() { goose.SetLogger(goose.NopLogger()) })
	path := filepath.Join(t.TempDir(), "society-test.db")
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	// a single connection keeps writes serialized
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if err := database.Migrate(db, database.DialectSQLite); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
