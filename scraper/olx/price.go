package olx

import (
	"regexp"
	"strings"
)

var (
	priceJunk = regexp.MustCompile(`[₹,\s]`)
	digitRuns = regexp.MustCompile(`\d+`)
)

// NormalizePrice reduces raw price text to its digits. OLX interleaves the
// rupee sign, thousands separators and markup artifacts inconsistently, and
// a digit run split by leftover markup still belongs to one amount, so all
// runs are concatenated in order rather than taking only the first.
// Returns "" when the text holds no digits.
func NormalizePrice(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := priceJunk.ReplaceAllString(strings.TrimSpace(raw), "")

	runs := digitRuns.FindAllString(cleaned, -1)
	if runs == nil {
		return ""
	}
	return strings.Join(runs, "")
}
