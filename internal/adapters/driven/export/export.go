// Package export provides file-based implementations of the
// ResultExporter port. CSV and JSON are supported; the CSV column order
// is fixed and forms the tool's output contract.
package export

import (
	"fmt"
	"strings"
	"time"

	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
)

// Supported export formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// ForFormat returns the exporter for a format name.
func ForFormat(format string) (driven.ResultExporter, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatCSV, "":
		return CSVExporter{}, nil
	case FormatJSON:
		return JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported export format %q", format)
	}
}

// DefaultFilename builds the timestamped default output filename,
// e.g. keywords_20250601_120000.csv.
func DefaultFilename(extension string, now time.Time) string {
	return fmt.Sprintf("keywords_%s.%s", now.Format("20060102_150405"), extension)
}
