// Package report renders an analysis result to exportable files.
// Report writers are glue around the pipeline output; they never change it.
package report

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jdevries/Banking-Insights-Backend/internal/model"
)

// WriteJSON writes the full analysis as an indented JSON document.
func WriteJSON(path string, analysis model.Analysis) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(analysis); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
