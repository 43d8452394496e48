package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driving"
	"github.com/Meganathan02/seo-keyword-code/internal/logger"
)

// Ensure ResearchService implements the interface.
var _ driving.KeywordResearch = (*ResearchService)(nil)

// ResearchService orchestrates keyword idea generation.
type ResearchService struct {
	planner driven.KeywordPlanner
	runs    driven.RunStore
	now     func() time.Time
}

// NewResearchService creates a new research service.
// The run store may be nil; runs are then not recorded.
func NewResearchService(planner driven.KeywordPlanner, runs driven.RunStore) *ResearchService {
	return &ResearchService{
		planner: planner,
		runs:    runs,
		now:     time.Now,
	}
}

// Research normalises and validates the request, then asks the planner
// for keyword ideas. The result is capped at req.MaxResults even if the
// planner returns more.
func (s *ResearchService) Research(ctx context.Context, req domain.ResearchRequest) ([]domain.KeywordIdea, error) {
	if s.planner == nil {
		return nil, domain.ErrNotImplemented
	}

	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	logger.Debug("researching %d seed(s) for %s (max %d)", len(req.Seeds), req.Location, req.MaxResults)

	ideas, err := s.planner.GenerateKeywordIdeas(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generating keyword ideas: %w", err)
	}

	if len(ideas) > req.MaxResults {
		ideas = ideas[:req.MaxResults]
	}

	logger.Debug("planner returned %d keyword idea(s)", len(ideas))
	return ideas, nil
}

// RecordRun persists a run record. With a nil run store the record is
// returned but not stored.
func (s *ResearchService) RecordRun(ctx context.Context, req domain.ResearchRequest, resultCount int, outputFile string) (domain.ResearchRun, error) {
	req.Normalize()

	run := domain.ResearchRun{
		ID:          uuid.NewString(),
		CreatedAt:   s.now().UTC(),
		Seeds:       req.Seeds,
		Location:    req.Location,
		ResultCount: resultCount,
		OutputFile:  outputFile,
	}

	if s.runs == nil {
		return run, nil
	}
	if err := s.runs.SaveRun(ctx, run); err != nil {
		return run, fmt.Errorf("saving run: %w", err)
	}
	return run, nil
}

// History returns recent runs, newest first.
func (s *ResearchService) History(ctx context.Context, limit int) ([]domain.ResearchRun, error) {
	if s.runs == nil {
		return nil, nil
	}
	return s.runs.ListRuns(ctx, limit)
}
