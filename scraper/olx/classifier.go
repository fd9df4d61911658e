package olx

import (
	"strings"

	"github.com/Ayushm74/olx-car-info/models"
)

// IsRelevant reports whether a record is genuinely a car-cover ad.
// OLX's search ranking returns real-estate results sharing generic terms
// ("2BHK flat with covered parking"), so a target-vocabulary hit counts
// only when no real-estate marker appears in the title.
func IsRelevant(l models.Listing) bool {
	title := strings.ToLower(l.Title)

	hasTarget := false
	for _, kw := range coverKeywords {
		if strings.Contains(title, kw) {
			hasTarget = true
			break
		}
	}
	if !hasTarget {
		return false
	}

	for _, kw := range excludeKeywords {
		if strings.Contains(title, kw) {
			return false
		}
	}
	return true
}
