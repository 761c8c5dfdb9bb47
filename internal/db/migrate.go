package db

import (
	"database/sql"
	"fmt"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS journal_entries (
		id TEXT PRIMARY KEY,
		kind TEXT NOT NULL CHECK (kind IN ('checkin', 'break')),
		checkin_type TEXT NOT NULL DEFAULT '',
		break_type TEXT NOT NULL DEFAULT '',
		break_id TEXT NOT NULL DEFAULT '',
		mood INTEGER NOT NULL DEFAULT 0,
		energy INTEGER NOT NULL DEFAULT 0,
		stress INTEGER NOT NULL DEFAULT 0,
		duration_min INTEGER NOT NULL DEFAULT 0,
		note TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_created_at ON journal_entries(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_journal_kind ON journal_entries(kind)`,
}
