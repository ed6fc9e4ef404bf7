package database

import (
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

const (
	DriverPostgres = "postgres"
	DriverSqlite   = "sqlite3"
)

// DriverFor picks the SQL driver from the database URL. Anything that is
// not a postgres URL is treated as a SQLite file path, which is the
// local-dev default.
func DriverFor(databaseURL string) string {
	if strings.HasPrefix(databaseURL, "postgres://") || strings.HasPrefix(databaseURL, "postgresql://") {
		return DriverPostgres
	}
	return DriverSqlite
}

// Connect opens the database, verifies the connection and ensures the
// schema exists.
func Connect(databaseURL string) (*sql.DB, error) {
	driver := DriverFor(databaseURL)

	db, err := sql.Open(driver, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database is unreachable: %w", err)
	}

	if err := Migrate(db, driver); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}

// Migrate creates the scheduled_posts table and its indexes if missing.
func Migrate(db *sql.DB, driver string) error {
	idColumn := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if driver == DriverPostgres {
		idColumn = "BIGSERIAL PRIMARY KEY"
	}

	schema := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS scheduled_posts (
		id %s,
		platform TEXT NOT NULL,
		caption TEXT NOT NULL,
		scheduled_datetime TIMESTAMP NOT NULL,
		link_or_asset_note TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL,
		is_posted BOOLEAN NOT NULL DEFAULT FALSE
	);

	CREATE INDEX IF NOT EXISTS idx_scheduled_posts_platform ON scheduled_posts(platform);
	CREATE INDEX IF NOT EXISTS idx_scheduled_posts_scheduled_datetime ON scheduled_posts(scheduled_datetime);
	`, idColumn)

	_, err := db.Exec(schema)
	return err
}
