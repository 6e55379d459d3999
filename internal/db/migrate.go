package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate applies the schema. Every statement is idempotent so it runs on
// each open.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form in SQLite.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS saved_deadlines (
		id                   TEXT PRIMARY KEY,
		title                TEXT NOT NULL CHECK(length(trim(title)) > 0),
		reference_date       TEXT NOT NULL,
		duration_value       INTEGER NOT NULL,
		duration_unit        TEXT NOT NULL
		                     CHECK(duration_unit IN ('day','week','month')),
		apply_recess         INTEGER NOT NULL DEFAULT 1,
		due_date             TEXT NOT NULL,
		date_label           TEXT NOT NULL,
		created_at           TEXT NOT NULL,
		updated_at           TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_saved_deadlines_due ON saved_deadlines(due_date)`,
	`CREATE INDEX IF NOT EXISTS idx_saved_deadlines_created ON saved_deadlines(created_at)`,

	// Whether the recess extension fired when the entry was last computed.
	`ALTER TABLE saved_deadlines ADD COLUMN recess_triggered INTEGER NOT NULL DEFAULT 0`,
}
