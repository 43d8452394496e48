package googleads

import (
	"context"
	"fmt"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
	"github.com/Meganathan02/seo-keyword-code/internal/logger"
)

// Ensure Client implements the planner port.
var _ driven.KeywordPlanner = (*Client)(nil)

// GenerateKeywordIdeas issues one KeywordPlanIdeaService request and maps
// the results to domain keyword ideas. A single page is requested; result
// sets larger than req.MaxResults are truncated, not paginated.
func (c *Client) GenerateKeywordIdeas(ctx context.Context, req domain.ResearchRequest) ([]domain.KeywordIdea, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}

	body := generateKeywordIdeasRequest{
		Language:             "languageConstants/" + domain.LanguageConstantEnglish,
		GeoTargetConstants:   []string{"geoTargetConstants/" + domain.GeoTargetID(req.Location)},
		KeywordPlanNetwork:   keywordPlanNetworkSearch,
		IncludeAdultKeywords: req.IncludeAdultKeywords,
		PageSize:             req.MaxResults,
		KeywordSeed:          &keywordSeed{Keywords: req.Seeds},
	}

	path := fmt.Sprintf("/%s/customers/%s:generateKeywordIdeas", apiVersion, c.customerID)

	var resp generateKeywordIdeasResponse
	if err := c.post(ctx, path, body, &resp); err != nil {
		return nil, err
	}

	logger.Debug("keyword plan returned %d of %d total ideas", len(resp.Results), int64(resp.TotalSize))

	ideas := make([]domain.KeywordIdea, 0, len(resp.Results))
	for _, result := range resp.Results {
		if len(ideas) >= req.MaxResults {
			break
		}
		ideas = append(ideas, toKeywordIdea(result))
	}
	return ideas, nil
}

// toKeywordIdea maps one wire result to the domain type. Ideas without
// metrics keep zero values and UNKNOWN competition.
func toKeywordIdea(r keywordIdeaResult) domain.KeywordIdea {
	idea := domain.KeywordIdea{
		Keyword:     r.Text,
		Competition: domain.CompetitionUnknown,
	}
	if r.Metrics == nil {
		return idea
	}

	idea.SearchVolume = int64(r.Metrics.AvgMonthlySearches)
	idea.Competition = domain.ParseCompetition(r.Metrics.Competition)
	idea.CompetitionIndex = float64(r.Metrics.CompetitionIndex)
	idea.LowBidUSD = domain.MicrosToUSD(int64(r.Metrics.LowTopOfPageBidMicros))
	idea.HighBidUSD = domain.MicrosToUSD(int64(r.Metrics.HighTopOfPageBidMicros))
	return idea
}
