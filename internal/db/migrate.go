package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is idempotent.
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
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id         TEXT PRIMARY KEY,
		at         TEXT NOT NULL,
		op         TEXT NOT NULL
		           CHECK(op IN ('add','delete','add_college')),
		kind       TEXT NOT NULL,
		college    TEXT NOT NULL DEFAULT '',
		program    TEXT NOT NULL DEFAULT '',
		record_id  TEXT NOT NULL DEFAULT '',
		summary    TEXT NOT NULL DEFAULT '',
		ok         INTEGER NOT NULL DEFAULT 0,
		error      TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE INDEX IF NOT EXISTS idx_journal_at ON journal_entries(at)`,

	`ALTER TABLE journal_entries ADD COLUMN base_url TEXT NOT NULL DEFAULT ''`,
}
