package generation

import (
	"time"

	"github.com/jangyunsu11/UniversityPrepApp/internal/domain"
)

// RunStatus is the terminal state of one generation run.
type RunStatus string

const (
	RunOK     RunStatus = "ok"
	RunFailed RunStatus = "failed"
)

// Run is the metadata of one completed generation call. Generated content
// is deliberately absent.
type Run struct {
	ID            string
	View          domain.ViewKind
	Schema        string
	SchemaVersion int
	Model         string
	Status        RunStatus
	Records       int
	ErrorCode     string
	LatencyMs     int64
	StartedAt     time.Time
}

// RunObserver receives a Run after every generation call.
type RunObserver interface {
	OnRun(run Run)
}

