package repository

import (
	"context"
	"time"

	"github.com/jangyunsu11/UniversityPrepApp/internal/db"
	"github.com/jangyunsu11/UniversityPrepApp/internal/generation"
	"go.uber.org/zap"
)

// DefaultHistoryRetention is the number of runs kept after each write.
const DefaultHistoryRetention = 500

// HistoryObserver records every generation run in SQLite. Write failures
// are logged and never reach the views.
type HistoryObserver struct {
	uow     db.UnitOfWork
	log     *zap.Logger
	keep    int
	timeout time.Duration
}

// NewHistoryObserver creates a HistoryObserver. keep <= 0 disables pruning.
func NewHistoryObserver(uow db.UnitOfWork, log *zap.Logger, keep int) *HistoryObserver {
	if log == nil {
		log = zap.NewNop()
	}
	return &HistoryObserver{uow: uow, log: log, keep: keep, timeout: 2 * time.Second}
}

func (o *HistoryObserver) OnRun(run generation.Run) {
	ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
	defer cancel()

	err := o.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := NewSQLiteRunRepo(tx)
		if err := repo.Create(ctx, run); err != nil {
			return err
		}
		if o.keep > 0 {
			if _, err := repo.Prune(ctx, o.keep); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		o.log.Warn("recording generation run failed",
			zap.String("run_id", run.ID),
			zap.String("view", string(run.View)),
			zap.Error(err))
	}
}
