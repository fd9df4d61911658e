package models

// NA marks a field the page did not provide. Export formats expect the
// literal string, never an empty value or a missing key.
const NA = "N/A"

// Listing is one scraped car-cover ad. Price, when known, holds digits only.
type Listing struct {
	Title    string `json:"title"`
	Price    string `json:"price"`
	Location string `json:"location"`
	Date     string `json:"date"`
	URL      string `json:"url"`
}

// NewListing returns a Listing with every field set to NA.
func NewListing() Listing {
	return Listing{Title: NA, Price: NA, Location: NA, Date: NA, URL: NA}
}

// HasPrice reports whether the listing carries a real price.
func (l Listing) HasPrice() bool {
	return l.Price != NA && l.Price != ""
}

// Export is the JSON envelope written next to the CSV file.
type Export struct {
	Timestamp     string    `json:"timestamp"`
	SearchQuery   string    `json:"search_query"`
	TotalListings int       `json:"total_listings"`
	Listings      []Listing `json:"listings"`
}
