package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
)

func TestHistoryCmd_Use(t *testing.T) {
	assert.Equal(t, "history", historyCmd.Use)
}

func TestHistoryCmd_PrintsRuns(t *testing.T) {
	mock, cleanup := setupTestServices()
	defer cleanup()
	mock.runs = []domain.ResearchRun{
		{
			ID:          "run-2",
			CreatedAt:   time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC),
			Seeds:       []string{"ergonomic chair"},
			Location:    "United Kingdom",
			ResultCount: 40,
			OutputFile:  "keywords_20250602_093000.csv",
		},
		{
			ID:          "run-1",
			CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Seeds:       []string{"standing desk", "desk riser"},
			Location:    "United States",
			ResultCount: 50,
		},
	}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "ergonomic chair")
	assert.Contains(t, out, "40 results, United Kingdom -> keywords_20250602_093000.csv")
	assert.Contains(t, out, "standing desk, desk riser")
	assert.Contains(t, out, "50 results, United States")
}

func TestHistoryCmd_Empty(t *testing.T) {
	_, cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"history"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, buf.String(), "No research runs recorded yet.")
}

func TestHistoryCmd_LimitFlag(t *testing.T) {
	flag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, flag)
	assert.Equal(t, "n", flag.Shorthand)
	assert.Equal(t, "10", flag.DefValue)
}
