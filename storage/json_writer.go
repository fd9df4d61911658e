package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Ayushm74/olx-car-info/models"
	"github.com/Ayushm74/olx-car-info/utils"
)

// JSONWriter saves listings wrapped in the export envelope: timestamp,
// search query, listing count, then the records themselves.
type JSONWriter struct {
	path  string
	query string
	log   *utils.Logger
}

func NewJSONWriter(path, query string, log *utils.Logger) *JSONWriter {
	return &JSONWriter{path: path, query: query, log: log}
}

func (w *JSONWriter) Write(listings []models.Listing) error {
	if len(listings) == 0 {
		w.log.Warn("No listings to write")
		return nil
	}

	export := models.Export{
		Timestamp:     time.Now().Format(time.RFC3339),
		SearchQuery:   w.query,
		TotalListings: len(listings),
		Listings:      listings,
	}

	data, err := json.MarshalIndent(export, "", "  ")
	if err != nil {
		return fmt.Errorf("could not marshal listings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0644); err != nil {
		return fmt.Errorf("could not write file: %w", err)
	}

	w.log.Success("Saved %d listings → %s", len(listings), w.path)
	return nil
}
