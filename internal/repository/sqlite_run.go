package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jangyunsu11/UniversityPrepApp/internal/db"
	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

const runColumns = `id, view, schema_name, schema_version, model, status, record_count, error_code, latency_ms, started_at`

// SQLiteRunRepo implements RunRepo using a SQLite database.
type SQLiteRunRepo struct {
	db db.DBTX
}

// NewSQLiteRunRepo creates a new SQLiteRunRepo. tx may be a *sql.DB or a
// *sql.Tx.
func NewSQLiteRunRepo(tx db.DBTX) *SQLiteRunRepo {
	return &SQLiteRunRepo{db: tx}
}

func (r *SQLiteRunRepo) Create(ctx context.Context, run generation.Run) error {
	query := `INSERT INTO generation_runs (` + runColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		run.ID,
		string(run.View),
		run.Schema,
		run.SchemaVersion,
		run.Model,
		string(run.Status),
		run.Records,
		run.ErrorCode,
		run.LatencyMs,
		formatTime(run.StartedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting generation run: %w", err)
	}
	return nil
}

func (r *SQLiteRunRepo) GetByID(ctx context.Context, id string) (*generation.Run, error) {
	query := `SELECT ` + runColumns + ` FROM generation_runs WHERE id = ?`
	run, err := scanRun(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("generation run: %w", ErrNotFound)
		}
		return nil, err
	}
	return &run, nil
}

func (r *SQLiteRunRepo) ListRecent(ctx context.Context, limit int) ([]generation.Run, error) {
	if limit <= 0 {
		return []generation.Run{}, nil
	}
	query := `SELECT ` + runColumns + ` FROM generation_runs
		ORDER BY started_at DESC, rowid DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent runs: %w", err)
	}
	defer rows.Close()

	runs := []generation.Run{}
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating runs: %w", err)
	}
	return runs, nil
}

func (r *SQLiteRunRepo) CountByStatus(ctx context.Context, kind domain.ViewKind) (StatusCounts, error) {
	query := `SELECT
			COALESCE(SUM(CASE WHEN status = 'ok' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN status = 'failed' THEN 1 ELSE 0 END), 0)
		FROM generation_runs WHERE (? = '' OR view = ?)`
	var c StatusCounts
	if err := r.db.QueryRowContext(ctx, query, string(kind), string(kind)).Scan(&c.OK, &c.Failed); err != nil {
		return StatusCounts{}, fmt.Errorf("counting runs by status: %w", err)
	}
	return c, nil
}

func (r *SQLiteRunRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}
	query := `DELETE FROM generation_runs WHERE rowid NOT IN (
		SELECT rowid FROM generation_runs ORDER BY started_at DESC, rowid DESC LIMIT ?)`
	res, err := r.db.ExecContext(ctx, query, keep)
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("pruning runs: %w", err)
	}
	return n, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (generation.Run, error) {
	var (
		run       generation.Run
		view      string
		status    string
		startedAt string
	)
	err := row.Scan(
		&run.ID, &view, &run.Schema, &run.SchemaVersion, &run.Model, &status,
		&run.Records, &run.ErrorCode, &run.LatencyMs, &startedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return generation.Run{}, err
		}
		return generation.Run{}, fmt.Errorf("scanning generation run: %w", err)
	}
	run.View = domain.ViewKind(view)
	run.Status = generation.RunStatus(status)
	run.StartedAt, err = parseTime(startedAt)
	if err != nil {
		return generation.Run{}, fmt.Errorf("parsing started_at: %w", err)
	}
	return run, nil
}
