package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeoTargetID(t *testing.T) {
	tests := []struct {
		name     string
		location string
		want     string
	}{
		{"default united states", "United States", "2840"},
		{"us shorthand", "US", "2840"},
		{"uk", "uk", "2826"},
		{"united kingdom", "United Kingdom", "2826"},
		{"canada", "Canada", "2124"},
		{"unknown falls back to US", "Atlantis", "2840"},
		{"empty falls back to US", "", "2840"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GeoTargetID(tt.location))
		})
	}
}

func TestResearchRequest_Normalize(t *testing.T) {
	req := ResearchRequest{
		Seeds: []string{"  python programming  ", "", "go tutorials"},
	}
	req.Normalize()

	assert.Equal(t, []string{"python programming", "go tutorials"}, req.Seeds)
	assert.Equal(t, DefaultLocation, req.Location)
	assert.Equal(t, DefaultMaxResults, req.MaxResults)
}

func TestResearchRequest_Normalize_KeepsExplicitValues(t *testing.T) {
	req := ResearchRequest{
		Seeds:      []string{"seo"},
		Location:   "Canada",
		MaxResults: 10,
	}
	req.Normalize()

	assert.Equal(t, "Canada", req.Location)
	assert.Equal(t, 10, req.MaxResults)
}

func TestResearchRequest_Validate(t *testing.T) {
	t.Run("no seeds", func(t *testing.T) {
		req := ResearchRequest{Seeds: []string{"   "}}
		req.Normalize()
		assert.ErrorIs(t, req.Validate(), ErrNoSeedKeywords)
	})

	t.Run("valid", func(t *testing.T) {
		req := ResearchRequest{Seeds: []string{"seo"}}
		req.Normalize()
		assert.NoError(t, req.Validate())
	})
}

func TestSummarize(t *testing.T) {
	ideas := []KeywordIdea{
		{Keyword: "a", SearchVolume: 100, Competition: CompetitionLow},
		{Keyword: "b", SearchVolume: 5000, Competition: CompetitionHigh},
		{Keyword: "c", SearchVolume: 2000, Competition: CompetitionLow},
		{Keyword: "d", SearchVolume: 900, Competition: CompetitionMedium},
	}

	s := Summarize(ideas)

	assert.Equal(t, 4, s.Total)
	assert.InDelta(t, 2000.0, s.AvgSearchVolume, 1e-9)
	assert.Equal(t, 2, s.HighVolume)
	assert.Equal(t, 2, s.LowCompetition)

	require.Len(t, s.Top, 3)
	assert.Equal(t, "b", s.Top[0].Keyword)
	assert.Equal(t, "c", s.Top[1].Keyword)
	assert.Equal(t, "d", s.Top[2].Keyword)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.Total)
	assert.Zero(t, s.AvgSearchVolume)
	assert.Empty(t, s.Top)
}

func TestSummarize_FewerThanTopCount(t *testing.T) {
	s := Summarize([]KeywordIdea{{Keyword: "only", SearchVolume: 10}})

	require.Len(t, s.Top, 1)
	assert.Equal(t, "only", s.Top[0].Keyword)
}
