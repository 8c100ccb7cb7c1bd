package llm

import (
	"context"
	"fmt"
	"time"

	"newsgen/internal/core"
)

// Policy defaults. The backend is a slow, occasionally stalling external
// call: the titles endpoint retries sequentially with a fixed delay, the news
// endpoint races escalating timeout tiers and takes the first success.
const (
	DefaultTimeout    = 90 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
)

// DefaultRaceTiers are the escalating timeouts raced by the news endpoint.
var DefaultRaceTiers = []time.Duration{90 * time.Second, 180 * time.Second, 270 * time.Second}

// AttemptFunc is one generation attempt. The same attempt may be invoked
// several times by a policy; it must be safe to call concurrently.
type AttemptFunc func(ctx context.Context) (string, error)

// WithTimeout waits at most d for one attempt. On expiry it stops waiting and
// returns a TimeoutError; the in-flight backend call is abandoned, not
// aborted, and its eventual result is discarded.
func WithTimeout(ctx context.Context, d time.Duration, fn AttemptFunc) (string, error) {
	type outcome struct {
		text string
		err  error
	}

	done := make(chan outcome, 1)
	go func() {
		text, err := fn(ctx)
		done <- outcome{text: text, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case out := <-done:
		return out.text, out.err
	case <-timer.C:
		return "", core.NewTimeoutError(fmt.Sprintf("generation timed out after %s", d))
	case <-ctx.Done():
		return "", core.NewTimeoutError(fmt.Sprintf("stopped waiting for generation: %v", ctx.Err()))
	}
}

// WithRetry runs fn up to maxRetries times with a fixed delay between
// attempts. The first success short-circuits; validation and configuration
// errors are never retried; the last error is surfaced when every attempt
// fails.
func WithRetry(ctx context.Context, maxRetries int, delay time.Duration, fn AttemptFunc) (string, error) {
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	if delay <= 0 {
		delay = DefaultRetryDelay
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		text, err := fn(ctx)
		if err == nil {
			return text, nil
		}
		if !core.IsRetryable(err) {
			return "", err
		}
		lastErr = err

		if attempt < maxRetries {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", core.NewTimeoutError(fmt.Sprintf("stopped retrying generation: %v", ctx.Err()))
			}
		}
	}
	return "", lastErr
}

// Race issues one concurrent attempt per timeout tier and returns the first
// success. Losing attempts are not cancelled; the backend may still finish
// them after the response is returned, a deliberate cost of trading redundant
// work for tail-latency robustness. When every tier fails the result is a
// single aggregate TimeoutError.
func Race(ctx context.Context, tiers []time.Duration, fn AttemptFunc) (string, error) {
	if len(tiers) == 0 {
		tiers = DefaultRaceTiers
	}

	type outcome struct {
		text string
		err  error
	}

	// Buffered so abandoned losers never block.
	results := make(chan outcome, len(tiers))
	for _, tier := range tiers {
		go func(d time.Duration) {
			text, err := WithTimeout(ctx, d, fn)
			results <- outcome{text: text, err: err}
		}(tier)
	}

	var lastErr error
	for range tiers {
		out := <-results
		if out.err == nil {
			return out.text, nil
		}
		if !core.IsRetryable(out.err) {
			return "", out.err
		}
		lastErr = out.err
	}

	return "", core.NewTimeoutError(fmt.Sprintf("all %d generation attempts failed or timed out (last: %v)", len(tiers), lastErr))
}
