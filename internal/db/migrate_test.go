package db

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := OpenDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Migrate(db))
	require.NoError(t, Migrate(db))

	var v int
	require.NoError(t, db.QueryRow(`PRAGMA user_version`).Scan(&v))
	assert.Equal(t, SchemaVersion(), v)
}

func TestMigrate_RefusesNewerSchema(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(fmt.Sprintf(`PRAGMA user_version = %d`, SchemaVersion()+1))
	require.NoError(t, err)

	err = Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than this build")
}

func TestMigrate_CreatesRunsTable(t *testing.T) {
	db := openTestDB(t)

	var name string
	err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='table' AND name='generation_runs'`).Scan(&name)
	require.NoError(t, err)
	assert.Equal(t, "generation_runs", name)

	for _, idx := range []string{"idx_generation_runs_started", "idx_generation_runs_view_status"} {
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&name)
		require.NoError(t, err, "index %s should exist", idx)
	}
}

func TestMigrate_RejectsUnknownStatus(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(`INSERT INTO generation_runs (id, view, schema_name, status, started_at)
		VALUES ('r1', 'roadmap', 'roadmap_items', 'pending', '2026-01-01T00:00:00Z')`)
	assert.Error(t, err)
}

func TestOpenDB_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "uniprep.db")

	db, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	assert.FileExists(t, path)

	var mode string
	require.NoError(t, db.QueryRow(`PRAGMA journal_mode`).Scan(&mode))
	assert.Equal(t, "wal", mode)
}

func TestOpenDB_ReopenKeepsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "uniprep.db")

	first, err := OpenDB(path)
	require.NoError(t, err)
	_, err = first.Exec(`INSERT INTO generation_runs (id, view, schema_name, status, started_at)
		VALUES ('r1', 'study', 'study_resources', 'ok', '2026-01-01T00:00:00Z')`)
	require.NoError(t, err)
	require.NoError(t, first.Close())

	second, err := OpenDB(path)
	require.NoError(t, err)
	t.Cleanup(func() { second.Close() })

	var n int
	require.NoError(t, second.QueryRow(`SELECT COUNT(*) FROM generation_runs`).Scan(&n))
	assert.Equal(t, 1, n)
}
