package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS studies (
		id     TEXT PRIMARY KEY,
		method TEXT NOT NULL,
		title  TEXT NOT NULL,
		date   TEXT NOT NULL,
		data   TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_studies_date ON studies(date)`,
	`CREATE INDEX IF NOT EXISTS idx_studies_method ON studies(method)`,

	// Theme preference, per-provider credentials and the transient
	// "edit this study" handoff all live in one key-value table.
	`CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`,
}
