package services

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/Ayushm74/olx-car-info/models"
)

type Report struct {
	TotalListings      int
	PricedListings     int
	AveragePrice       float64
	MinPrice           float64
	MaxPrice           float64
	MostExpensive      models.Listing
	ListingsByLocation map[string]int
}

// GenerateReport computes summary stats over the cleaned record set.
// Prices arrive as digit-only strings; records without one still count in
// the totals but are excluded from the price stats.
func GenerateReport(listings []models.Listing) Report {
	report := Report{
		TotalListings:      len(listings),
		ListingsByLocation: make(map[string]int),
	}

	if len(listings) == 0 {
		return report
	}

	var (
		priceSum float64
		maxPrice = -1.0
		minPrice = math.MaxFloat64
	)

	for _, l := range listings {
		report.ListingsByLocation[normalizeLocation(l.Location)]++

		if !l.HasPrice() {
			continue
		}
		price, err := strconv.ParseFloat(l.Price, 64)
		if err != nil || price <= 0 {
			continue
		}

		priceSum += price
		report.PricedListings++

		if price > maxPrice {
			maxPrice = price
			report.MostExpensive = l
		}
		if price < minPrice {
			minPrice = price
		}
	}

	if report.PricedListings > 0 {
		report.AveragePrice = priceSum / float64(report.PricedListings)
		report.MinPrice = minPrice
		report.MaxPrice = maxPrice
	}

	return report
}

func PrintReport(report Report) {
	fmt.Println()
	fmt.Println("┌──────────────────────────────────────────────────────────────┐")
	fmt.Println("│                  Car Cover Market Insights                   │")
	fmt.Println("├───────────────────────────────┬──────────────────────────────┤")
	fmt.Printf("│ %-29s │ %-28d │\n", "Total Listings Scraped", report.TotalListings)
	fmt.Printf("│ %-29s │ %-28d │\n", "Listings With Price", report.PricedListings)
	fmt.Printf("│ %-29s │ ₹%-27.0f │\n", "Average Price", report.AveragePrice)
	fmt.Printf("│ %-29s │ ₹%-27.0f │\n", "Minimum Price", report.MinPrice)
	fmt.Printf("│ %-29s │ ₹%-27.0f │\n", "Maximum Price", report.MaxPrice)
	fmt.Println("└───────────────────────────────┴──────────────────────────────┘")

	if report.MostExpensive.Title != "" {
		fmt.Println()
		fmt.Println("┌──────────────────────────────────────────────────────────────┐")
		fmt.Println("│                    Most Expensive Listing                    │")
		fmt.Println("├───────────────────────────────┬──────────────────────────────┤")
		fmt.Printf("│ %-29s │ ₹%-27s │\n", "Price", report.MostExpensive.Price)
		fmt.Printf("│ %-29s │ %-28s │\n", "Location", truncateText(normalizeLocation(report.MostExpensive.Location), 28))
		fmt.Println("└───────────────────────────────┴──────────────────────────────┘")
		fmt.Printf("Title: %s\n", report.MostExpensive.Title)
	}

	fmt.Println()
	fmt.Println("┌──────────────────────────────────────────────┬───────────────┐")
	fmt.Println("│ Listings per Location                        │ Count         │")
	fmt.Println("├──────────────────────────────────────────────┼───────────────┤")
	for _, loc := range sortedLocations(report.ListingsByLocation) {
		fmt.Printf("│ %-44s │ %-13d │\n", truncateText(loc, 44), report.ListingsByLocation[loc])
	}
	fmt.Println("└──────────────────────────────────────────────┴───────────────┘")
}

// CleanListings trims fields, drops records without a title, and dedupes by
// URL. Records with no URL (degraded mode) cannot be deduped that way and
// are all kept.
func CleanListings(listings []models.Listing) []models.Listing {
	seen := make(map[string]bool)
	cleaned := make([]models.Listing, 0, len(listings))

	for _, l := range listings {
		l.Title = strings.TrimSpace(l.Title)
		l.Location = strings.TrimSpace(l.Location)
		l.Date = strings.TrimSpace(l.Date)
		l.URL = strings.TrimSpace(l.URL)

		if l.Title == "" || l.Title == models.NA {
			continue
		}

		if l.URL != models.NA && l.URL != "" {
			if seen[l.URL] {
				continue
			}
			seen[l.URL] = true
		}

		cleaned = append(cleaned, l)
	}

	return cleaned
}

func normalizeLocation(location string) string {
	location = strings.TrimSpace(location)
	if location == "" || location == models.NA {
		return "Unknown"
	}
	return location
}

func sortedLocations(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func truncateText(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
