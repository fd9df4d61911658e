package olx

import (
	"time"

	"github.com/Ayushm74/olx-car-info/utils"
)

// LocateListings finds which container selector matches the current render.
// Each candidate gets its own bounded wait; the first one that appears wins.
// An empty return means no known layout variant matched — the caller falls
// back to degraded extraction instead of treating it as an error.
func LocateListings(page Page, log *utils.Logger, timeout time.Duration) string {
	for _, sel := range ContainerSelectors {
		if page.WaitFor(sel, timeout) {
			log.Info("Listings found using selector: %s", sel)
			return sel
		}
	}

	log.Warn("No listings found with any selector")
	return ""
}
