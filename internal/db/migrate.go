package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Statements are idempotent and re-run
// on every open.
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
	`CREATE TABLE IF NOT EXISTS llm_calls (
		id          TEXT PRIMARY KEY,
		session_id  TEXT NOT NULL DEFAULT '',
		task        TEXT NOT NULL CHECK(task IN ('itinerary','revision')),
		provider    TEXT NOT NULL,
		model       TEXT NOT NULL,
		latency_ms  INTEGER NOT NULL DEFAULT 0,
		success     INTEGER NOT NULL CHECK(success IN (0,1)),
		error_code  TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_llm_calls_created ON llm_calls(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_llm_calls_session ON llm_calls(session_id)`,
	`ALTER TABLE llm_calls ADD COLUMN error_class TEXT NOT NULL DEFAULT ''`,
}
