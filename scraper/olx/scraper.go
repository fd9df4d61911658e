package olx

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Ayushm74/olx-car-info/config"
	"github.com/Ayushm74/olx-car-info/models"
	"github.com/Ayushm74/olx-car-info/utils"
)

// Scraper drives one scrape session end to end: load, locate, scroll,
// extract, filter. Faults are contained at the smallest scope that can
// handle them; callers only ever see a (possibly empty) slice of records.
type Scraper struct {
	cfg  *config.Config
	log  *utils.Logger
	page Page
}

func NewScraper(cfg *config.Config, log *utils.Logger, page Page) *Scraper {
	return &Scraper{cfg: cfg, log: log, page: page}
}

// Scrape runs the whole session and returns the relevant records. An empty
// result means "no data" — callers cannot distinguish a genuinely empty
// search from a failed one, and should not try.
func (s *Scraper) Scrape() []models.Listing {
	s.log.Info("Navigating to: %s", s.cfg.SearchURL)

	err := utils.Retry(s.log, s.cfg.MaxRetries, func() error {
		return s.page.Navigate(s.cfg.SearchURL)
	})
	if err != nil {
		s.log.Error("Could not load search page: %v", err)
		return nil
	}

	time.Sleep(s.cfg.SettleDelay)

	containerSel := LocateListings(s.page, s.log, s.cfg.SelectorTimeout)
	if containerSel == "" {
		return s.scrapeDegraded()
	}

	s.scrollToLoadMore()

	nodes, err := s.page.Containers(containerSel)
	if err != nil {
		s.log.Error("Could not enumerate listings: %v", err)
		return nil
	}
	s.log.Info("Found %d listing elements", len(nodes))

	var listings []models.Listing
	for i, node := range nodes {
		l := ExtractListing(node)
		if !IsRelevant(l) {
			continue
		}
		listings = append(listings, l)
		s.log.Info("Extracted listing %d: %s", i+1, truncate(l.Title, 50))
	}

	s.log.Success("Successfully extracted %d car cover listings", len(listings))
	return listings
}

// scrollToLoadMore extends the result list with up to MaxScrolls
// scroll-and-settle cycles, stopping as soon as the page stops growing.
func (s *Scraper) scrollToLoadMore() {
	for attempt := 1; attempt <= s.cfg.MaxScrolls; attempt++ {
		grew, err := s.scrollOnce()
		if err != nil {
			s.log.Warn("Scroll failed: %v", err)
			return
		}
		if !grew {
			return
		}
		s.log.Info("Scrolled %d/%d times", attempt, s.cfg.MaxScrolls)
	}
}

func (s *Scraper) scrollOnce() (bool, error) {
	last, err := s.page.ScrollHeight()
	if err != nil {
		return false, err
	}

	if err := s.page.ScrollToBottom(); err != nil {
		return false, err
	}
	time.Sleep(s.cfg.ScrollDelay)

	next, err := s.page.ScrollHeight()
	if err != nil {
		return false, err
	}
	return next > last, nil
}

// scrapeDegraded is the salvage path for a page where no container selector
// matched. The raw markup is kept on disk so the new layout can be studied
// offline, then mined with the regex extractor. Degraded records are
// returned as-is, without the relevance filter: the title already had to
// contain a cover keyword to be emitted at all.
func (s *Scraper) scrapeDegraded() []models.Listing {
	s.log.Info("Trying alternative content extraction...")

	markup, err := s.page.HTML()
	if err != nil {
		s.log.Error("Could not read page source: %v", err)
		return nil
	}

	s.dumpPageSource(markup)

	listings := ExtractFromMarkup(markup)
	s.log.Success("Recovered %d listings from raw markup", len(listings))
	return listings
}

func (s *Scraper) dumpPageSource(markup string) {
	if s.cfg.PageDumpDir == "" {
		return
	}
	if err := os.MkdirAll(s.cfg.PageDumpDir, 0755); err != nil {
		s.log.Warn("Could not create page dump dir: %v", err)
		return
	}

	name := fmt.Sprintf("page_source_%s.html", time.Now().Format("20060102_150405"))
	path := filepath.Join(s.cfg.PageDumpDir, name)
	if err := os.WriteFile(path, []byte(markup), 0644); err != nil {
		s.log.Warn("Could not dump page source: %v", err)
		return
	}
	s.log.Info("Page source saved to %s for debugging", path)
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
