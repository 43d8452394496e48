package driven

import (
	"context"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
)

// RunStore persists research run history.
type RunStore interface {
	// SaveRun records a completed research run.
	SaveRun(ctx context.Context, run domain.ResearchRun) error

	// ListRuns returns the most recent runs, newest first.
	// A limit of zero or less returns all runs.
	ListRuns(ctx context.Context, limit int) ([]domain.ResearchRun, error)

	// Close releases the underlying storage.
	Close() error
}
