package googleads

import (
	"bytes"
	"fmt"
	"strconv"
)

// flexInt64 decodes Ads REST int64 fields. Per the proto3 JSON mapping
// these arrive as quoted strings ("12345"), but plain numbers are
// tolerated too. null and absent fields decode to zero.
type flexInt64 int64

func (f *flexInt64) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if data[0] == '"' {
		data = bytes.Trim(data, `"`)
		if len(data) == 0 {
			*f = 0
			return nil
		}
	}
	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		return fmt.Errorf("parsing int64 field: %w", err)
	}
	*f = flexInt64(v)
	return nil
}

// keywordPlanNetworkSearch restricts ideas to Google Search (no partners).
const keywordPlanNetworkSearch = "GOOGLE_SEARCH"

type keywordSeed struct {
	Keywords []string `json:"keywords"`
}

type generateKeywordIdeasRequest struct {
	Language             string       `json:"language,omitempty"`
	GeoTargetConstants   []string     `json:"geoTargetConstants,omitempty"`
	KeywordPlanNetwork   string       `json:"keywordPlanNetwork,omitempty"`
	IncludeAdultKeywords bool         `json:"includeAdultKeywords"`
	PageSize             int          `json:"pageSize,omitempty"`
	KeywordSeed          *keywordSeed `json:"keywordSeed,omitempty"`
}

type keywordIdeaMetrics struct {
	AvgMonthlySearches     flexInt64 `json:"avgMonthlySearches"`
	Competition            string    `json:"competition"`
	CompetitionIndex       flexInt64 `json:"competitionIndex"`
	LowTopOfPageBidMicros  flexInt64 `json:"lowTopOfPageBidMicros"`
	HighTopOfPageBidMicros flexInt64 `json:"highTopOfPageBidMicros"`
}

type keywordIdeaResult struct {
	Text    string              `json:"text"`
	Metrics *keywordIdeaMetrics `json:"keywordIdeaMetrics"`
}

type generateKeywordIdeasResponse struct {
	Results   []keywordIdeaResult `json:"results"`
	TotalSize flexInt64           `json:"totalSize"`
}

type customerClient struct {
	DescriptiveName string `json:"descriptiveName"`
	CurrencyCode    string `json:"currencyCode"`
	TimeZone        string `json:"timeZone"`
}

type createCustomerClientRequest struct {
	CustomerClient customerClient `json:"customerClient"`
}

type createCustomerClientResponse struct {
	ResourceName string `json:"resourceName"`
}
