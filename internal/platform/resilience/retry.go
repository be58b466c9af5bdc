package resilience

import (
	"context"
	"math/rand/v2"
	"time"
)

// Retry runs fn up to attempts times, sleeping a randomized duration within
// [minBackoff, maxBackoff] between attempts. Only errors accepted by
// retryable are retried; any other error, or exhaustion of the attempt
// budget, returns the last error unchanged so callers can wrap it with the
// underlying cause.
func Retry(ctx context.Context, attempts int, minBackoff, maxBackoff time.Duration, retryable func(error) bool, fn func() error) error {
	if attempts < 1 {
		attempts = 1
	}

	var err error
	for attempt := 1; attempt <= attempts; attempt++ {
		err = fn()
		if err == nil {
			return nil
		}
		if retryable != nil && !retryable(err) {
			return err
		}
		if attempt == attempts {
			break
		}
		if sleepErr := sleepJittered(ctx, minBackoff, maxBackoff); sleepErr != nil {
			return err
		}
	}

	return err
}

func sleepJittered(ctx context.Context, min, max time.Duration) error {
	delay := min
	if max > min {
		delay = min + rand.N(max-min)
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
