package database

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/mysql/*.sql migrations/sqlite/*.sql
var migrations embed.FS

// Dialects understood by Migrate.
const (
	DialectMySQL  = "mysql"
	DialectSQLite = "sqlite3"
)

// Migrate applies all pending migrations for dialect.
func Migrate(db *sql.DB, dialect string) error {
	dir := "migrations/mysql"
	if dialect == DialectSQLite {
		dir = "migrations/sqlite"
	}
	goose.SetBaseFS(migrations)
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("setting dialect: %w", err)
	}
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
