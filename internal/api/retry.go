package api

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// withRetry runs fn up to attempts times with a fixed delay between tries.
// No backoff multiplier: the cart fetch and the admin notification both use
// the same shape, 3 attempts 1s apart by default. The context aborts the
// wait between attempts.
func withRetry(ctx context.Context, log *zap.Logger, op string, attempts int, delay time.Duration, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		if err = fn(); err == nil {
			return nil
		}
		log.Warn("attempt failed",
			zap.String("op", op),
			zap.Int("attempt", attempt),
			zap.Int("attempts", attempts),
			zap.Error(err))

		if attempt == attempts {
			break
		}
		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}
