package store

import (
	"context"
	"time"

	"github.com/sethvargo/go-retry"
)

const (
	maxRetries       = 3
	initialRetryWait = 100 * time.Millisecond
)

// withRetry runs fn, repeating it while the classifier reports the failure
// as transient. Waits grow exponentially from initialRetryWait.
func (db *DB) withRetry(ctx context.Context, op string, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(maxRetries, retry.NewExponential(initialRetryWait))

	attempt := 0
	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := fn(ctx)
		if err == nil {
			return nil
		}

		if db.errorClassificator.Classify(err) == Retryable {
			db.logger.Warn().Err(err).
				Str("op", op).
				Int("attempt", attempt).
				Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}
