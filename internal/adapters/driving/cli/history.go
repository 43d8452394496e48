package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Meganathan02/seo-keyword-code/internal/core/services"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent research runs",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of runs to show")
	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, _ []string) error {
	// History needs only the run store, not Ads credentials.
	if researchService == nil {
		researchService = services.NewResearchService(nil, ensureRunStore())
	}

	runs, err := researchService.History(cmd.Context(), historyLimit)
	if err != nil {
		return fmt.Errorf("loading history: %w", err)
	}

	if len(runs) == 0 {
		cmd.Println("No research runs recorded yet.")
		return nil
	}

	for _, run := range runs {
		cmd.Printf("%s  %s\n",
			run.CreatedAt.Local().Format("2006-01-02 15:04"),
			strings.Join(run.Seeds, ", "))
		cmd.Printf("    %d results, %s", run.ResultCount, run.Location)
		if run.OutputFile != "" {
			cmd.Printf(" -> %s", run.OutputFile)
		}
		cmd.Println()
	}
	return nil
}
