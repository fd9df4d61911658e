package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Ayushm74/olx-car-info/config"
	"github.com/Ayushm74/olx-car-info/models"
	"github.com/Ayushm74/olx-car-info/scraper/olx"
	"github.com/Ayushm74/olx-car-info/services"
	"github.com/Ayushm74/olx-car-info/storage"
	"github.com/Ayushm74/olx-car-info/utils"
)

func main() {
	fmt.Println("OLX Car Cover Scraper")
	fmt.Println(strings.Repeat("=", 50))

	cfg := config.DefaultConfig()
	log := utils.NewLogger(os.Stdout)
	log.Info("Scraper starting | query=%q scrolls=%d selector-timeout=%v",
		cfg.SearchQuery, cfg.MaxScrolls, cfg.SelectorTimeout)

	listings := collectListings(cfg, log, olx.NewSession(log, cfg.Headless, cfg.RequestTimeout))

	if len(listings) == 0 {
		printNoResultHints()
		return
	}

	cleaned := services.CleanListings(listings)
	if len(cleaned) == 0 {
		log.Warn("No valid listings after cleaning.")
		printNoResultHints()
		return
	}

	stamp := time.Now().Format("20060102_150405")
	csvPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("olx_car_covers_%s.csv", stamp))
	jsonPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("olx_car_covers_%s.json", stamp))

	csvWriter := storage.NewCSVWriter(csvPath, log)
	if err := csvWriter.Write(cleaned); err != nil {
		log.Error("Failed to save CSV: %v", err)
		os.Exit(1)
	}

	jsonWriter := storage.NewJSONWriter(jsonPath, cfg.SearchQuery, log)
	if err := jsonWriter.Write(cleaned); err != nil {
		log.Error("Failed to save JSON: %v", err)
		os.Exit(1)
	}

	saveToPostgres(cfg, log, cleaned)

	printSummary(cleaned)
	services.PrintReport(services.GenerateReport(cleaned))
	printSample(cleaned)
}

// browserSession is the scraper's view of the browser plus its lifetime.
type browserSession interface {
	olx.Page
	Close()
}

// collectListings runs the scrape with the browser scoped to this call.
// The session is released the moment the records are in hand — the export
// phase below may exit the process on failure and must never leave a
// Chrome process behind.
func collectListings(cfg *config.Config, log *utils.Logger, session browserSession) []models.Listing {
	defer session.Close()
	return olx.NewScraper(cfg, log, session).Scrape()
}

// saveToPostgres is best-effort: the flat files are the primary artifact,
// so a missing database downgrades to a warning instead of aborting.
func saveToPostgres(cfg *config.Config, log *utils.Logger, listings []models.Listing) {
	if !cfg.DBEnabled {
		return
	}

	pgWriter, err := storage.NewPostgresWriter(cfg)
	if err != nil {
		log.Warn("PostgreSQL unavailable, skipping database save: %v", err)
		return
	}
	defer pgWriter.Close()

	if err := pgWriter.EnsureSchema(); err != nil {
		log.Warn("Failed to ensure PostgreSQL schema: %v", err)
		return
	}
	if err := pgWriter.WriteBatch(listings); err != nil {
		log.Warn("Failed to save listings to PostgreSQL: %v", err)
		return
	}
	log.Success("Saved %d listings to PostgreSQL", len(listings))
}

func printSummary(listings []models.Listing) {
	fmt.Println()
	fmt.Println("╔══════════════════════════════════════════════╗")
	fmt.Println("║                SCRAPE COMPLETE               ║")
	fmt.Println("╠══════════════════════════════════════════════╣")
	fmt.Printf("║  Total listings : %-26d ║\n", len(listings))
	fmt.Println("╚══════════════════════════════════════════════╝")
	fmt.Println()
}

func printSample(listings []models.Listing) {
	fmt.Println("Sample listings:")
	fmt.Println(strings.Repeat("-", 50))

	limit := len(listings)
	if limit > 5 {
		limit = 5
	}
	for i, l := range listings[:limit] {
		fmt.Printf("\n%d. %s\n", i+1, l.Title)
		fmt.Printf("   Price: ₹%s\n", l.Price)
		fmt.Printf("   Location: %s\n", l.Location)
		fmt.Printf("   Date: %s\n", l.Date)
		if l.URL != models.NA {
			fmt.Printf("   URL: %s\n", l.URL)
		}
	}

	if len(listings) > 5 {
		fmt.Printf("\n... and %d more listings\n", len(listings)-5)
	}
}

// printNoResultHints explains a zero-result run. The scraper cannot tell a
// genuinely empty search apart from a failed one, so it lists likely causes
// instead of guessing.
func printNoResultHints() {
	fmt.Println()
	fmt.Println("No car cover listings found.")
	fmt.Println("This could be due to:")
	fmt.Println("1. OLX website structure changes")
	fmt.Println("2. Network connectivity issues")
	fmt.Println("3. Anti-bot measures")
	fmt.Println()
	fmt.Println("Check the generated page_source_*.html file for debugging.")
}
