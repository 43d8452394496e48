package domain

import (
	"fmt"
	"sort"
	"strings"
)

// DefaultMaxResults caps the number of keyword ideas returned when the
// caller does not specify a limit.
const DefaultMaxResults = 50

// DefaultLocation is the location used when none is given.
const DefaultLocation = "United States"

// LanguageConstantEnglish is the Ads API language constant criterion ID
// for English. All requests target English, matching the planner UI default.
const LanguageConstantEnglish = "1000"

// geoTargets maps human location names (lowercased) to Ads API geo target
// constant criterion IDs.
var geoTargets = map[string]string{
	"united states":  "2840",
	"us":             "2840",
	"usa":            "2840",
	"united kingdom": "2826",
	"uk":             "2826",
	"canada":         "2124",
	"australia":      "2036",
	"germany":        "2276",
	"india":          "2356",
}

// GeoTargetID returns the geo target constant criterion ID for a location
// name. Unrecognised locations fall back to the United States.
func GeoTargetID(location string) string {
	if id, ok := geoTargets[strings.ToLower(strings.TrimSpace(location))]; ok {
		return id
	}
	return geoTargets["united states"]
}

// ResearchRequest describes one keyword idea generation run.
type ResearchRequest struct {
	// Seeds are the seed keywords to expand.
	Seeds []string
	// Location is a human location name (e.g. "United States", "UK").
	Location string
	// MaxResults caps the number of ideas returned. Zero means
	// DefaultMaxResults.
	MaxResults int
	// IncludeAdultKeywords controls whether adult ideas are returned.
	IncludeAdultKeywords bool
}

// Normalize trims seed keywords, drops empties, and applies defaults.
func (r *ResearchRequest) Normalize() {
	seeds := make([]string, 0, len(r.Seeds))
	for _, s := range r.Seeds {
		if s = strings.TrimSpace(s); s != "" {
			seeds = append(seeds, s)
		}
	}
	r.Seeds = seeds

	if strings.TrimSpace(r.Location) == "" {
		r.Location = DefaultLocation
	}
	if r.MaxResults <= 0 {
		r.MaxResults = DefaultMaxResults
	}
}

// Validate checks the request is usable. Call Normalize first.
func (r ResearchRequest) Validate() error {
	if len(r.Seeds) == 0 {
		return ErrNoSeedKeywords
	}
	if r.MaxResults < 0 {
		return fmt.Errorf("%w: max results must be positive", ErrInvalidInput)
	}
	return nil
}

// HighVolumeThreshold separates "high volume" keywords in summaries.
const HighVolumeThreshold = 1000

// topKeywordCount is how many top keywords a summary carries.
const topKeywordCount = 3

// Summary aggregates the outcome of a research run.
type Summary struct {
	// Total is the number of keyword ideas.
	Total int
	// AvgSearchVolume is the mean monthly search volume.
	AvgSearchVolume float64
	// HighVolume counts ideas above HighVolumeThreshold monthly searches.
	HighVolume int
	// LowCompetition counts ideas with LOW competition.
	LowCompetition int
	// Top holds the top ideas by search volume, highest first.
	Top []KeywordIdea
}

// Summarize computes summary statistics over a set of keyword ideas.
func Summarize(ideas []KeywordIdea) Summary {
	s := Summary{Total: len(ideas)}
	if len(ideas) == 0 {
		return s
	}

	var volumeSum int64
	for _, idea := range ideas {
		volumeSum += idea.SearchVolume
		if idea.SearchVolume > HighVolumeThreshold {
			s.HighVolume++
		}
		if idea.Competition == CompetitionLow {
			s.LowCompetition++
		}
	}
	s.AvgSearchVolume = float64(volumeSum) / float64(len(ideas))

	top := make([]KeywordIdea, len(ideas))
	copy(top, ideas)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].SearchVolume > top[j].SearchVolume
	})
	if len(top) > topKeywordCount {
		top = top[:topKeywordCount]
	}
	s.Top = top

	return s
}
