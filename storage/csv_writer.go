package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Ayushm74/olx-car-info/models"
	"github.com/Ayushm74/olx-car-info/utils"
)

// CSVWriter saves listings to a CSV file with the fixed column order
// title,price,location,date,url.
type CSVWriter struct {
	path string
	log  *utils.Logger
}

func NewCSVWriter(path string, log *utils.Logger) *CSVWriter {
	return &CSVWriter{path: path, log: log}
}

// Write saves all listings to the CSV file.
// Creates the output directory if it does not exist.
func (w *CSVWriter) Write(listings []models.Listing) error {
	if len(listings) == 0 {
		w.log.Warn("No listings to write")
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(w.path), 0755); err != nil {
		return fmt.Errorf("could not create output dir: %w", err)
	}

	file, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	defer file.Close()

	// csv.NewWriter handles quoting, commas inside fields, line endings
	writer := csv.NewWriter(file)
	defer writer.Flush() // IMPORTANT — must flush or data stays in buffer

	writer.Write([]string{"title", "price", "location", "date", "url"})

	for _, l := range listings {
		writer.Write([]string{l.Title, l.Price, l.Location, l.Date, l.URL})
	}

	if err := writer.Error(); err != nil {
		return fmt.Errorf("csv write error: %w", err)
	}

	w.log.Success("Saved %d listings → %s", len(listings), w.path)
	return nil
}
