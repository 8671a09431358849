// Package report renders completed scrape runs to disk as a JSON data file
// and optional HTML pages.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ternarybob/arbor"

	"github.com/ternarybob/scrutor/internal/common"
	"github.com/ternarybob/scrutor/internal/models"
)

const dataFileName = "repositories.json"

// Writer renders scrape runs into the configured output directory.
type Writer struct {
	config *common.OutputConfig
	logger arbor.ILogger
}

// NewWriter creates a report writer.
func NewWriter(config *common.OutputConfig, logger arbor.ILogger) *Writer {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &Writer{
		config: config,
		logger: logger,
	}
}

// Write renders the run. The JSON data file is always written; HTML pages
// are added when enabled.
func (w *Writer) Write(run *models.ScrapeRun) error {
	if err := os.MkdirAll(w.config.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", w.config.Dir, err)
	}

	if err := w.writeJSON(run); err != nil {
		return err
	}

	if w.config.HTML {
		if err := w.writeHTML(run); err != nil {
			return err
		}
	}

	w.logger.Info().
		Str("dir", w.config.Dir).
		Int("repositories", len(run.Repositories)).
		Msg("Report written")
	return nil
}

func (w *Writer) writeJSON(run *models.ScrapeRun) error {
	data, err := json.MarshalIndent(run, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	path := filepath.Join(w.config.Dir, dataFileName)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
