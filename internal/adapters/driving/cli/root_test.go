package cli

import (
	"context"
	"time"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
)

// mockResearch is a stub KeywordResearch implementation for command tests.
type mockResearch struct {
	ideas    []domain.KeywordIdea
	runs     []domain.ResearchRun
	err      error
	lastReq  domain.ResearchRequest
	recorded []domain.ResearchRun
}

func (m *mockResearch) Research(_ context.Context, req domain.ResearchRequest) ([]domain.KeywordIdea, error) {
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.ideas, nil
}

func (m *mockResearch) RecordRun(_ context.Context, req domain.ResearchRequest, resultCount int, outputFile string) (domain.ResearchRun, error) {
	run := domain.ResearchRun{
		ID:          "run-1",
		CreatedAt:   time.Now().UTC(),
		Seeds:       req.Seeds,
		Location:    req.Location,
		ResultCount: resultCount,
		OutputFile:  outputFile,
	}
	m.recorded = append(m.recorded, run)
	return run, nil
}

func (m *mockResearch) History(_ context.Context, limit int) ([]domain.ResearchRun, error) {
	if m.err != nil {
		return nil, m.err
	}
	if limit > 0 && len(m.runs) > limit {
		return m.runs[:limit], nil
	}
	return m.runs, nil
}

// setupTestServices swaps in a mock research service with canned results.
// The returned cleanup restores the previous wiring.
func setupTestServices() (*mockResearch, func()) {
	mock := &mockResearch{
		ideas: []domain.KeywordIdea{
			{
				Keyword:          "standing desk",
				SearchVolume:     12000,
				Competition:      domain.CompetitionHigh,
				CompetitionIndex: 85,
				LowBidUSD:        1.25,
				HighBidUSD:       4.8,
			},
			{
				Keyword:          "standing desk converter",
				SearchVolume:     800,
				Competition:      domain.CompetitionLow,
				CompetitionIndex: 20,
				LowBidUSD:        0.6,
				HighBidUSD:       2.1,
			},
		},
	}

	oldResearch := researchService
	researchService = mock

	return mock, func() {
		researchService = oldResearch
	}
}
