package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
)

// csvHeader is the fixed column order of the output contract.
var csvHeader = []string{
	"keyword",
	"search_volume",
	"competition",
	"competition_index",
	"low_bid_usd",
	"high_bid_usd",
}

// Ensure CSVExporter implements the interface.
var _ driven.ResultExporter = CSVExporter{}

// CSVExporter writes keyword ideas as CSV: one header row plus exactly
// one data row per idea.
type CSVExporter struct{}

// Extension returns "csv".
func (CSVExporter) Extension() string { return FormatCSV }

// Export writes the ideas to path.
func (CSVExporter) Export(ideas []domain.KeywordIdea, path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, idea := range ideas {
		record := []string{
			idea.Keyword,
			strconv.FormatInt(idea.SearchVolume, 10),
			string(idea.Competition),
			strconv.FormatFloat(idea.CompetitionIndex, 'f', -1, 64),
			strconv.FormatFloat(idea.LowBidUSD, 'f', 2, 64),
			strconv.FormatFloat(idea.HighBidUSD, 'f', 2, 64),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}
