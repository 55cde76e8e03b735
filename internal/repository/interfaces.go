package repository

import (
	"context"
	"errors"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("not found")

// StatusCounts is the number of runs per terminal status.
type StatusCounts struct {
	OK     int
	Failed int
}

// Total returns OK + Failed.
func (c StatusCounts) Total() int { return c.OK + c.Failed }

// RunRepo stores generation run metadata.
type RunRepo interface {
	Create(ctx context.Context, run generation.Run) error
	GetByID(ctx context.Context, id string) (*generation.Run, error)
	// ListRecent returns at most limit runs, newest first.
	ListRecent(ctx context.Context, limit int) ([]generation.Run, error)
	// CountByStatus counts runs for one view; an empty kind counts all views.
	CountByStatus(ctx context.Context, kind domain.ViewKind) (StatusCounts, error)
	// Prune deletes all but the newest keep runs and returns how many went.
	Prune(ctx context.Context, keep int) (int64, error)
}
