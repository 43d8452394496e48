package driving

import (
	"context"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
)

// KeywordResearch is the primary driving port: generate keyword ideas
// and keep a record of runs.
type KeywordResearch interface {
	// Research normalises and validates the request, then generates
	// keyword ideas through the configured planner. Returns at most
	// req.MaxResults ideas.
	Research(ctx context.Context, req domain.ResearchRequest) ([]domain.KeywordIdea, error)

	// RecordRun persists a run record for history. A nil run store makes
	// this a no-op; the returned run is still populated.
	RecordRun(ctx context.Context, req domain.ResearchRequest, resultCount int, outputFile string) (domain.ResearchRun, error)

	// History returns the most recent runs, newest first.
	History(ctx context.Context, limit int) ([]domain.ResearchRun, error)
}
