package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/jangyunsu11/UniversityPrepApp/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated history database in a per-test directory, so
// the WAL setup runs exactly as it does for ~/.uniprep/uniprep.db.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(filepath.Join(t.TempDir(), "uniprep.db"))
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// NewFailingUoW behaves like the real unit of work except that the
// failOn-th ExecContext inside each transaction returns err. Reads are not
// counted.
func NewFailingUoW(database *sql.DB, failOn int, err error) db.UnitOfWork {
	return &failingUoW{inner: db.NewSQLiteUnitOfWork(database), failOn: failOn, err: err}
}

type failingUoW struct {
	inner  db.UnitOfWork
	failOn int
	err    error
}

func (u *failingUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return u.inner.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &countingTx{DBTX: tx, failOn: u.failOn, err: u.err})
	})
}

type countingTx struct {
	db.DBTX
	execs  int
	failOn int
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.execs++
	if c.execs == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
