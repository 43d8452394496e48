package driven

import "github.com/Meganathan02/seo-keyword-code/internal/core/domain"

// ResultExporter persists keyword ideas to a file.
// Implementations define the serialisation format (CSV, JSON).
type ResultExporter interface {
	// Export writes the ideas to path, creating or truncating the file.
	// The output contains exactly one record per idea.
	Export(ideas []domain.KeywordIdea, path string) error

	// Extension returns the file extension for this format, without dot.
	Extension() string
}
