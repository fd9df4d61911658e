package olx

import (
	"context"
	"fmt"
	"time"

	"github.com/chromedp/chromedp"

	"github.com/Ayushm74/olx-car-info/utils"
)

// Session owns the Chrome process for one scrape run and adapts it to the
// Page capability the core reads through. Everything here is mechanical
// browser plumbing; the decision logic lives in the locator, extractor and
// orchestrator.
type Session struct {
	log         *utils.Logger
	allocCancel context.CancelFunc
	tabCtx      context.Context
	tabCancel   context.CancelFunc
	opTimeout   time.Duration
}

// NewSession launches Chrome with stealth options and opens one tab.
// Close must be called on every exit path.
func NewSession(log *utils.Logger, headless bool, opTimeout time.Duration) *Session {
	log.Info("Launching Chrome browser...")

	allocCtx, allocCancel := chromedp.NewExecAllocator(
		context.Background(),
		utils.StealthOpts(headless)...,
	)
	tabCtx, tabCancel := chromedp.NewContext(allocCtx)

	log.Success("Browser ready")
	return &Session{
		log:         log,
		allocCancel: allocCancel,
		tabCtx:      tabCtx,
		tabCancel:   tabCancel,
		opTimeout:   opTimeout,
	}
}

func (s *Session) Close() {
	s.log.Info("Closing browser...")
	s.tabCancel()
	s.allocCancel()
}

// opContext bounds one browser operation. Each operation gets a fresh
// deadline derived from the unbounded tab context: a locator sweep that
// burns every per-selector wait must leave the markup read behind it with
// a full budget, so no deadline is shared across operations.
func (s *Session) opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(s.tabCtx, s.opTimeout)
}

func (s *Session) Navigate(url string) error {
	ctx, cancel := s.opContext()
	defer cancel()

	err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		utils.HideWebDriver(),
	)
	if err != nil {
		return fmt.Errorf("navigation failed: %w", err)
	}
	return nil
}

// WaitFor reports whether sel matched at least one element within timeout.
// A miss is an expected outcome here, not an error.
func (s *Session) WaitFor(sel string, timeout time.Duration) bool {
	ctx, cancel := context.WithTimeout(s.tabCtx, timeout)
	defer cancel()
	return chromedp.Run(ctx, chromedp.WaitReady(sel, chromedp.ByQuery)) == nil
}

func (s *Session) ScrollHeight() (int64, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	var height int64
	err := chromedp.Run(ctx,
		chromedp.Evaluate(`document.body.scrollHeight`, &height),
	)
	if err != nil {
		return 0, fmt.Errorf("scroll height read failed: %w", err)
	}
	return height, nil
}

func (s *Session) ScrollToBottom() error {
	ctx, cancel := s.opContext()
	defer cancel()

	err := chromedp.Run(ctx,
		chromedp.Evaluate(`window.scrollTo(0, document.body.scrollHeight)`, nil),
	)
	if err != nil {
		return fmt.Errorf("scroll failed: %w", err)
	}
	return nil
}

// Containers snapshots the outer HTML of every element matching sel and
// parses each into an independent Node. A card that fails to parse is
// logged and skipped; it never aborts the batch.
func (s *Session) Containers(sel string) ([]Node, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	var fragments []string
	err := chromedp.Run(ctx,
		chromedp.Evaluate(
			fmt.Sprintf(`Array.from(document.querySelectorAll(%q)).map(el => el.outerHTML)`, sel),
			&fragments,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("container snapshot failed: %w", err)
	}

	nodes := make([]Node, 0, len(fragments))
	for i, fragment := range fragments {
		node, err := NewNodeFromHTML(fragment)
		if err != nil {
			s.log.Warn("Skipping unparseable listing %d: %v", i+1, err)
			continue
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func (s *Session) HTML() (string, error) {
	ctx, cancel := s.opContext()
	defer cancel()

	var html string
	err := chromedp.Run(ctx,
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return "", fmt.Errorf("page source read failed: %w", err)
	}
	return html, nil
}
