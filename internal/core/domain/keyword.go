package domain

import "strings"

// CompetitionLevel is the planner's advertiser competition bucket
// for a keyword.
type CompetitionLevel string

// Competition levels as reported by the Keyword Planner.
const (
	CompetitionUnknown CompetitionLevel = "UNKNOWN"
	CompetitionLow     CompetitionLevel = "LOW"
	CompetitionMedium  CompetitionLevel = "MEDIUM"
	CompetitionHigh    CompetitionLevel = "HIGH"
)

// microsPerUnit is the micro-amount scale the Ads API uses for money fields.
const microsPerUnit = 1_000_000

// KeywordIdea is one keyword suggestion returned by the planner together
// with its historical metrics. Bid estimates are converted from micros to
// account-currency units (USD for the accounts this tool targets).
type KeywordIdea struct {
	// Keyword is the suggested keyword text.
	Keyword string `json:"keyword"`
	// SearchVolume is the average monthly search count.
	SearchVolume int64 `json:"search_volume"`
	// Competition is the advertiser competition bucket.
	Competition CompetitionLevel `json:"competition"`
	// CompetitionIndex is the competition level on a 0-100 scale.
	CompetitionIndex float64 `json:"competition_index"`
	// LowBidUSD is the low top-of-page bid estimate.
	LowBidUSD float64 `json:"low_bid_usd"`
	// HighBidUSD is the high top-of-page bid estimate.
	HighBidUSD float64 `json:"high_bid_usd"`
}

// MicrosToUSD converts an Ads API micro-amount to currency units.
func MicrosToUSD(micros int64) float64 {
	return float64(micros) / microsPerUnit
}

// ParseCompetition maps the planner's competition enum string to a
// CompetitionLevel. Unknown or unspecified values map to CompetitionUnknown.
func ParseCompetition(s string) CompetitionLevel {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case string(CompetitionLow):
		return CompetitionLow
	case string(CompetitionMedium):
		return CompetitionMedium
	case string(CompetitionHigh):
		return CompetitionHigh
	default:
		return CompetitionUnknown
	}
}
