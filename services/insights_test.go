package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayushm74/olx-car-info/models"
)

func listing(title, price, location, url string) models.Listing {
	l := models.NewListing()
	l.Title = title
	l.Price = price
	l.Location = location
	l.URL = url
	return l
}

func TestCleanListings(t *testing.T) {
	input := []models.Listing{
		listing("Car Cover A", "500", "Mumbai", "/item/a"),
		listing("Car Cover A duplicate", "500", "Mumbai", "/item/a"),
		listing("  Car Cover B  ", "750", "Delhi", "/item/b"),
		listing(models.NA, "900", "Pune", "/item/c"),
		listing("Degraded record", "300", models.NA, models.NA),
		listing("Another degraded record", "350", models.NA, models.NA),
	}

	cleaned := CleanListings(input)

	require.Len(t, cleaned, 4)
	assert.Equal(t, "Car Cover A", cleaned[0].Title)
	assert.Equal(t, "Car Cover B", cleaned[1].Title, "titles are trimmed")
	// N/A URLs cannot be deduped by URL; both degraded records survive.
	assert.Equal(t, "Degraded record", cleaned[2].Title)
	assert.Equal(t, "Another degraded record", cleaned[3].Title)
}

func TestGenerateReport(t *testing.T) {
	input := []models.Listing{
		listing("Car Cover A", "500", "Mumbai", "/item/a"),
		listing("Car Cover B", "1500", "Delhi", "/item/b"),
		listing("Car Cover C", models.NA, "Mumbai", "/item/c"),
	}

	report := GenerateReport(input)

	assert.Equal(t, 3, report.TotalListings)
	assert.Equal(t, 2, report.PricedListings)
	assert.InDelta(t, 1000.0, report.AveragePrice, 0.001)
	assert.InDelta(t, 500.0, report.MinPrice, 0.001)
	assert.InDelta(t, 1500.0, report.MaxPrice, 0.001)
	assert.Equal(t, "Car Cover B", report.MostExpensive.Title)
	assert.Equal(t, 2, report.ListingsByLocation["Mumbai"])
	assert.Equal(t, 1, report.ListingsByLocation["Delhi"])
}

func TestGenerateReportEmptyInput(t *testing.T) {
	report := GenerateReport(nil)

	assert.Zero(t, report.TotalListings)
	assert.Zero(t, report.PricedListings)
	assert.Zero(t, report.AveragePrice)
	assert.Empty(t, report.ListingsByLocation)
}
