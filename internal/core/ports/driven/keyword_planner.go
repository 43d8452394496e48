package driven

import (
	"context"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
)

// KeywordPlanner generates keyword ideas for seed keywords.
// The Google Ads adapter is the production implementation.
type KeywordPlanner interface {
	// GenerateKeywordIdeas expands the request's seed keywords into ideas
	// with historical metrics. Implementations return at most
	// req.MaxResults ideas.
	GenerateKeywordIdeas(ctx context.Context, req domain.ResearchRequest) ([]domain.KeywordIdea, error)
}

// AccountManager provisions Ads accounts under a manager (MCC) account.
type AccountManager interface {
	// CreateTestAccount creates a test client account with the given
	// descriptive name and returns its resource name.
	CreateTestAccount(ctx context.Context, descriptiveName string) (string, error)
}
