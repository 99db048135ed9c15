package curator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/mager/crossfade/camelot"
	"github.com/mager/crossfade/crossfade"
	"github.com/mager/crossfade/scoring"
)

// permanent reports errors that no amount of retrying will fix:
// the input itself is bad.
func permanent(err error) bool {
	return errors.Is(err, crossfade.ErrInvalidInput) ||
		errors.Is(err, camelot.ErrInvalidKey) ||
		errors.Is(err, camelot.ErrInvalidCode) ||
		errors.Is(err, scoring.ErrWeightConfiguration)
}

// withRetry runs one pipeline step under a bounded exponential backoff.
// Permanent errors and context cancellation stop the attempts early.
func (c *Curator) withRetry(ctx context.Context, step string, fn func() error) error {
	backoff := c.baseBackoff

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("curator: %s canceled: %w", step, err)
		}

		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if permanent(lastErr) {
			return lastErr
		}
		if attempt == c.maxRetries {
			break
		}

		c.log.Warnw("step failed, retrying",
			"step", step, "attempt", attempt, "backoff", backoff, "error", lastErr)

		select {
		case <-ctx.Done():
			return fmt.Errorf("curator: %s canceled: %w", step, ctx.Err())
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return fmt.Errorf("curator: %s failed after %d attempts: %w", step, c.maxRetries, lastErr)
}
