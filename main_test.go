package main

import (
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ayushm74/olx-car-info/config"
	"github.com/Ayushm74/olx-car-info/scraper/olx"
	"github.com/Ayushm74/olx-car-info/utils"
)

// stubSession is a browser that never finds anything and records whether
// its Close ran.
type stubSession struct {
	closed bool
}

func (s *stubSession) Navigate(url string) error                      { return nil }
func (s *stubSession) WaitFor(sel string, timeout time.Duration) bool { return false }
func (s *stubSession) ScrollHeight() (int64, error)                   { return 0, nil }
func (s *stubSession) ScrollToBottom() error                          { return nil }
func (s *stubSession) Containers(sel string) ([]olx.Node, error)      { return nil, nil }
func (s *stubSession) HTML() (string, error)                          { return "<html></html>", nil }
func (s *stubSession) Close()                                         { s.closed = true }

func TestCollectListingsClosesSession(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.SettleDelay = 0
	cfg.SelectorTimeout = time.Millisecond
	cfg.MaxRetries = 1
	cfg.PageDumpDir = ""

	session := &stubSession{}
	listings := collectListings(cfg, utils.NewLogger(io.Discard), session)

	assert.Empty(t, listings)
	assert.True(t, session.closed, "browser must be released before the export phase")
}
