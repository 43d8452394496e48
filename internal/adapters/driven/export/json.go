package export

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Meganathan02/seo-keyword-code/internal/core/domain"
	"github.com/Meganathan02/seo-keyword-code/internal/core/ports/driven"
)

// Ensure JSONExporter implements the interface.
var _ driven.ResultExporter = JSONExporter{}

// JSONExporter writes keyword ideas as an indented JSON array.
type JSONExporter struct{}

// Extension returns "json".
func (JSONExporter) Extension() string { return FormatJSON }

// Export writes the ideas to path.
func (JSONExporter) Export(ideas []domain.KeywordIdea, path string) error {
	if ideas == nil {
		ideas = []domain.KeywordIdea{}
	}
	data, err := json.MarshalIndent(ideas, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding results: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
