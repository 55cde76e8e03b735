package db

import (
	"database/sql"
	"fmt"
)

// steps[i] upgrades the schema from user_version i to i+1. Append only.
var steps = [][]string{
	{
		`CREATE TABLE generation_runs (
			id             TEXT PRIMARY KEY,
			view           TEXT NOT NULL CHECK(view IN ('roadmap','invention','study')),
			schema_name    TEXT NOT NULL,
			schema_version INTEGER NOT NULL DEFAULT 1,
			model          TEXT NOT NULL DEFAULT '',
			status         TEXT NOT NULL CHECK(status IN ('ok','failed')),
			record_count   INTEGER NOT NULL DEFAULT 0,
			error_code     TEXT NOT NULL DEFAULT '',
			latency_ms     INTEGER NOT NULL DEFAULT 0,
			started_at     TEXT NOT NULL
		)`,
		`CREATE INDEX idx_generation_runs_started ON generation_runs(started_at)`,
		`CREATE INDEX idx_generation_runs_view_status ON generation_runs(view, status)`,
	},
}

// SchemaVersion is the user_version a fully migrated database reports.
func SchemaVersion() int { return len(steps) }

// Migrate applies every step above the database's user_version, one
// transaction per step.
func Migrate(db *sql.DB) error {
	var current int
	if err := db.QueryRow(`PRAGMA user_version`).Scan(&current); err != nil {
		return fmt.Errorf("reading schema version: %w", err)
	}
	if current > len(steps) {
		return fmt.Errorf("database schema version %d is newer than this build (%d)", current, len(steps))
	}

	for v := current; v < len(steps); v++ {
		if err := applyStep(db, v); err != nil {
			return fmt.Errorf("migration %d: %w", v+1, err)
		}
	}
	return nil
}

func applyStep(db *sql.DB, v int) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range steps[v] {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}
	// PRAGMA does not accept bound parameters.
	if _, err := tx.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, v+1)); err != nil {
		return err
	}
	return tx.Commit()
}
