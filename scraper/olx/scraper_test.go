package olx

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ayushm74/olx-car-info/config"
	"github.com/Ayushm74/olx-car-info/utils"
)

// fakePage is an in-memory Page: selector availability, a scripted sequence
// of page heights, and canned container/markup content.
type fakePage struct {
	navErr       error
	available    map[string]bool
	waitedFor    []string
	heights      []int64
	heightIdx    int
	scrolls      int
	containers   []Node
	containerErr error
	html         string
	htmlErr      error
	htmlCalls    int
}

func (p *fakePage) Navigate(url string) error { return p.navErr }

func (p *fakePage) WaitFor(sel string, timeout time.Duration) bool {
	p.waitedFor = append(p.waitedFor, sel)
	return p.available[sel]
}

func (p *fakePage) ScrollHeight() (int64, error) {
	if len(p.heights) == 0 {
		return 0, nil
	}
	h := p.heights[p.heightIdx]
	if p.heightIdx < len(p.heights)-1 {
		p.heightIdx++
	}
	return h, nil
}

func (p *fakePage) ScrollToBottom() error {
	p.scrolls++
	return nil
}

func (p *fakePage) Containers(sel string) ([]Node, error) {
	return p.containers, p.containerErr
}

func (p *fakePage) HTML() (string, error) {
	p.htmlCalls++
	return p.html, p.htmlErr
}

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.SettleDelay = 0
	cfg.ScrollDelay = 0
	cfg.MaxRetries = 1
	cfg.SelectorTimeout = time.Millisecond
	cfg.PageDumpDir = ""
	return cfg
}

func testScraper(page Page) *Scraper {
	return NewScraper(testConfig(), utils.NewLogger(io.Discard), page)
}

func TestScrapeHappyPath(t *testing.T) {
	coverCard := mustNode(t, fullCardHTML)
	estateCard := mustNode(t, `
		<li data-aut-id="itemBox">
			<span data-aut-id="itemTitle">3BHK flat with covered car parking</span>
			<span data-aut-id="itemPrice">₹ 85,00,000</span>
		</li>`)

	page := &fakePage{
		available:  map[string]bool{ContainerSelectors[0]: true},
		heights:    []int64{1000, 1000},
		containers: []Node{coverCard, estateCard},
	}

	listings := testScraper(page).Scrape()

	require.Len(t, listings, 1)
	assert.Equal(t, "Waterproof Car Cover for Sedan", listings[0].Title)
	assert.Equal(t, "1299", listings[0].Price)
	assert.Zero(t, page.htmlCalls, "degraded path must not run when a selector matched")
}

func TestScrapeStopsScrollingWhenHeightIsStatic(t *testing.T) {
	page := &fakePage{
		available: map[string]bool{ContainerSelectors[0]: true},
		heights:   []int64{1000, 1000},
	}

	testScraper(page).Scrape()

	assert.Equal(t, 1, page.scrolls, "a static page gets exactly one scroll attempt")
}

func TestScrapeScrollsWhileHeightGrows(t *testing.T) {
	// Grows once, then settles: attempt 1 sees 1000→1800, attempt 2 sees
	// 1800→1800 and stops.
	page := &fakePage{
		available: map[string]bool{ContainerSelectors[0]: true},
		heights:   []int64{1000, 1800, 1800, 1800},
	}

	testScraper(page).Scrape()

	assert.Equal(t, 2, page.scrolls)
}

func TestScrapeScrollBoundIsRespected(t *testing.T) {
	page := &fakePage{
		available: map[string]bool{ContainerSelectors[0]: true},
		heights:   []int64{1000, 2000, 3000, 4000, 5000, 6000, 7000},
	}

	testScraper(page).Scrape()

	assert.Equal(t, testConfig().MaxScrolls, page.scrolls, "an ever-growing page stops at the scroll bound")
}

func TestScrapeDegradedPath(t *testing.T) {
	page := &fakePage{
		html: `<div>₹ 899 Waterproof Car Cover for Sedan</div>`,
	}

	listings := testScraper(page).Scrape()

	require.Len(t, listings, 1)
	assert.Contains(t, listings[0].Title, "Car Cover for Sedan")
	assert.Equal(t, "899", listings[0].Price)
	assert.Zero(t, page.scrolls, "scroll step is skipped on the degraded branch")
	assert.Equal(t, ContainerSelectors, page.waitedFor)
}

func TestScrapeDegradedPathDumpsPageSource(t *testing.T) {
	cfg := testConfig()
	cfg.PageDumpDir = t.TempDir()

	page := &fakePage{html: `<div>nothing useful</div>`}
	scraper := NewScraper(cfg, utils.NewLogger(io.Discard), page)

	listings := scraper.Scrape()

	assert.Empty(t, listings)
	entries, err := filesIn(cfg.PageDumpDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Contains(t, entries[0], "page_source_")
}

func filesIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names, nil
}

func TestScrapeNavigationFailureYieldsEmptyResult(t *testing.T) {
	page := &fakePage{navErr: errors.New("net::ERR_CONNECTION_RESET")}

	assert.Empty(t, testScraper(page).Scrape())
}

func TestScrapeContainerFaultYieldsEmptyResult(t *testing.T) {
	page := &fakePage{
		available:    map[string]bool{ContainerSelectors[0]: true},
		heights:      []int64{1000, 1000},
		containerErr: errors.New("target closed"),
	}

	assert.Empty(t, testScraper(page).Scrape())
}

func TestScrapeDegradedMarkupFaultYieldsEmptyResult(t *testing.T) {
	page := &fakePage{htmlErr: errors.New("target closed")}

	assert.Empty(t, testScraper(page).Scrape())
}
