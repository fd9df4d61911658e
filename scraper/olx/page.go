package olx

import (
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Node is the read-only view of one listing card's subtree. Extraction
// never needs more than "first descendant matching a selector".
type Node interface {
	// Text returns the trimmed text of the first descendant matching sel.
	Text(sel string) (string, bool)
	// Attr returns the named attribute of the first descendant matching sel.
	Attr(sel, attr string) (string, bool)
}

// Page is what the locator and orchestrator need from a live browser
// session. Session implements it over chromedp; tests substitute fakes.
type Page interface {
	Navigate(url string) error
	// WaitFor blocks until sel matches at least one element, or gives up
	// after timeout.
	WaitFor(sel string, timeout time.Duration) bool
	ScrollHeight() (int64, error)
	ScrollToBottom() error
	// Containers snapshots every element matching sel as an independent Node.
	Containers(sel string) ([]Node, error)
	// HTML returns the full page markup, for degraded-mode extraction.
	HTML() (string, error)
}

// htmlNode backs Node with a goquery document built from a snapshot of the
// card's outer HTML. The snapshot is immutable, so repeated reads always
// see the same subtree.
type htmlNode struct {
	sel *goquery.Selection
}

// NewNodeFromHTML parses one card's markup into a Node.
func NewNodeFromHTML(fragment string) (Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil, err
	}
	return htmlNode{sel: doc.Selection}, nil
}

func (n htmlNode) Text(sel string) (string, bool) {
	m := n.sel.Find(sel).First()
	if m.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(m.Text()), true
}

func (n htmlNode) Attr(sel, attr string) (string, bool) {
	m := n.sel.Find(sel).First()
	if m.Length() == 0 {
		return "", false
	}
	return m.Attr(attr)
}
