package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driven/export"
	"github.com/Meganathan02/seo-keyword-code/internal/adapters/driving/tui"
	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/logger"
)

var (
	researchLocation    string
	researchMaxResults  int
	researchFormat      string
	researchOutput      string
	researchAdult       bool
	researchInteractive bool
)

var researchCmd = &cobra.Command{
	Use:   "research [keywords...]",
	Short: "Generate keyword ideas from seed keywords",
	Long: `Expands one or more seed keywords into keyword ideas using the
Google Ads Keyword Planner. Each idea carries average monthly searches,
a competition rating and top-of-page bid estimates.

Results are exported to a timestamped file in the working directory
unless --output is given.

Examples:
  seokw research "standing desk"
  seokw research "standing desk" "ergonomic chair" --location UK -n 100
  seokw research "standing desk" --format json --output desks.json
  seokw research "standing desk" --interactive`,
	Args: cobra.MinimumNArgs(1),
	RunE: runResearch,
}

func init() {
	researchCmd.Flags().StringVarP(
		&researchLocation, "location", "l", domain.DefaultLocation, "target location (e.g. \"United States\", UK, Canada)")
	researchCmd.Flags().IntVarP(
		&researchMaxResults, "max-results", "n", domain.DefaultMaxResults, "maximum number of keyword ideas")
	researchCmd.Flags().StringVarP(
		&researchFormat, "format", "f", export.FormatCSV, "export format (csv, json)")
	researchCmd.Flags().StringVarP(
		&researchOutput, "output", "o", "", "output file path (default keywords_<timestamp>.<ext>)")
	researchCmd.Flags().BoolVar(
		&researchAdult, "adult", false, "include adult keyword ideas")
	researchCmd.Flags().BoolVarP(
		&researchInteractive, "interactive", "i", false, "browse results in an interactive table")
	rootCmd.AddCommand(researchCmd)
}

func runResearch(cmd *cobra.Command, args []string) error {
	exporter, err := export.ForFormat(researchFormat)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := ensureResearchService(ctx); err != nil {
		return err
	}
	if researchService == nil {
		return errors.New("research service not configured")
	}

	req := domain.ResearchRequest{
		Seeds:                args,
		Location:             researchLocation,
		MaxResults:           researchMaxResults,
		IncludeAdultKeywords: researchAdult,
	}

	ideas, err := researchService.Research(ctx, req)
	if err != nil {
		return fmt.Errorf("research failed: %w", err)
	}

	if len(ideas) == 0 {
		cmd.Println("No keyword ideas found.")
		return nil
	}

	printSummary(cmd, domain.Summarize(ideas))

	path := researchOutput
	if path == "" {
		path = export.DefaultFilename(exporter.Extension(), time.Now())
	}
	if err := exporter.Export(ideas, path); err != nil {
		return fmt.Errorf("exporting results: %w", err)
	}
	cmd.Printf("\nSaved %d keyword ideas to %s\n", len(ideas), path)

	if _, err := researchService.RecordRun(ctx, req, len(ideas), path); err != nil {
		logger.Warn("recording run: %v", err)
	}

	if researchInteractive {
		return tui.Run(ideas)
	}
	return nil
}

func printSummary(cmd *cobra.Command, s domain.Summary) {
	cmd.Printf("Found %d keyword ideas\n", s.Total)
	cmd.Printf("  Average monthly searches: %.0f\n", s.AvgSearchVolume)
	cmd.Printf("  High volume (>%d/mo): %d\n", domain.HighVolumeThreshold, s.HighVolume)
	cmd.Printf("  Low competition: %d\n", s.LowCompetition)

	if len(s.Top) == 0 {
		return
	}
	cmd.Println("  Top keywords:")
	for _, idea := range s.Top {
		cmd.Printf("    %s (%d/mo, %s)\n", idea.Keyword, idea.SearchVolume, idea.Competition)
	}
}
