package utils

import (
	"fmt"
	"time"
)

// Retry runs fn up to maxRetries times, waiting longer after each failed
// attempt (2s, 4s, 8s...). OLX throttles repeated page loads; hammering it
// again immediately only makes the block last longer.
//
// Usage:
//
//	err := utils.Retry(log, 3, func() error {
//	    return page.Navigate(url)
//	})
func Retry(log *Logger, maxRetries int, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}

		if attempt < maxRetries {
			wait := time.Duration(1<<uint(attempt)) * time.Second
			log.Warn("Attempt %d/%d failed: %v — retrying in %v", attempt, maxRetries, lastErr, wait)
			time.Sleep(wait)
		}
	}

	return fmt.Errorf("all %d attempts failed — last error: %w", maxRetries, lastErr)
}
