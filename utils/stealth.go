package utils

import (
	"context"

	"github.com/chromedp/chromedp"
)

// userAgent — a fixed, realistic browser string. OLX serves an interstitial
// to clients that announce themselves as automation, so the session sends a
// plain desktop Chrome header instead.
const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// StealthOpts returns ChromeDP browser launch options that hide automation.
//
// Key flags:
//   - disable-blink-features=AutomationControlled → removes navigator.webdriver flag
//   - headless=new → uses Chrome's newer headless mode (harder to detect)
//   - WindowSize → bots often have tiny/default windows; we set a normal size
func StealthOpts(headless bool) []chromedp.ExecAllocatorOption {
	opts := []chromedp.ExecAllocatorOption{
		chromedp.NoFirstRun,
		chromedp.NoDefaultBrowserCheck,
		chromedp.Flag("disable-blink-features", "AutomationControlled"),
		chromedp.Flag("excludeSwitches", "enable-automation"),
		chromedp.Flag("useAutomationExtension", false),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.WindowSize(1920, 1080),
		chromedp.UserAgent(userAgent),
	}

	if headless {
		opts = append(opts, chromedp.Flag("headless", "new"))
	}

	return opts
}

// HideWebDriver injects JavaScript into the page to remove telltale signs
// of automation. Even with the launch flags above, some sites run their own
// JS checks; this patches those properties before any scraping happens.
func HideWebDriver() chromedp.Action {
	return chromedp.ActionFunc(func(ctx context.Context) error {
		return chromedp.Evaluate(`
			Object.defineProperty(navigator, 'webdriver', { get: () => undefined });
			Object.defineProperty(navigator, 'plugins', { get: () => [1, 2, 3, 4, 5] });
			Object.defineProperty(navigator, 'languages', { get: () => ['en-US', 'en'] });
		`, nil).Do(ctx)
	})
}
