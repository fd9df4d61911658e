package olx

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Ayushm74/olx-car-info/models"
)

var (
	// A rupee amount, optionally trailed by cover-related words on the same
	// text run. Anchoring on the price keeps false positives down: layout
	// chrome rarely contains ₹ amounts.
	degradedPricePattern = regexp.MustCompile(`(?i)₹\s*[\d,]+(?:\s*[^<\n]*(?:car\s*cover|seat\s*cover|body\s*cover)[^<\n]*)?`)

	// A cover keyword plus whatever follows it up to the next tag boundary.
	degradedTitlePattern = regexp.MustCompile(`(?i)(?:car\s*cover|seat\s*cover|body\s*cover|wheel\s*cover)[^<>]*`)
)

// contextWindow bounds how far around a price match the title search looks.
const contextWindow = 200

// ExtractFromMarkup salvages approximate records straight from raw markup.
// It runs when no container selector matched at all — typically a full
// layout redesign or an anti-automation interstitial. Each price-shaped
// match anchors a search for a nearby cover keyword to use as the title;
// matches with no such keyword in reach are dropped, since there is not
// enough context to call them listings. Location, date and URL cannot be
// recovered this way and stay NA.
//
// The scan is deterministic: the same markup always yields the same records,
// ordered by the position of the price match.
func ExtractFromMarkup(markup string) []models.Listing {
	var listings []models.Listing

	for _, loc := range degradedPricePattern.FindAllStringIndex(markup, -1) {
		start, end := runeWindow(markup, loc[0], loc[1])
		context := markup[start:end]

		title := degradedTitlePattern.FindString(context)
		if title == "" {
			continue
		}

		l := models.NewListing()
		l.Title = strings.TrimSpace(title)
		if price := NormalizePrice(markup[loc[0]:loc[1]]); price != "" {
			l.Price = price
		}
		listings = append(listings, l)
	}

	return listings
}

// runeWindow widens [start,end) by up to contextWindow runes on each side,
// clamped to the markup. Counting runes rather than bytes keeps the window
// a constant width across rupee signs and Devanagari text, and the
// boundaries never split a multi-byte rune.
func runeWindow(s string, start, end int) (int, int) {
	for i := 0; i < contextWindow && start > 0; i++ {
		_, size := utf8.DecodeLastRuneInString(s[:start])
		start -= size
	}
	for i := 0; i < contextWindow && end < len(s); i++ {
		_, size := utf8.DecodeRuneInString(s[end:])
		end += size
	}
	return start, end
}
