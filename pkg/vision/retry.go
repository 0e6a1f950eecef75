package vision

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"time"
)

// RetryPolicy drives the per-provider retry loop. Rate-limited failures get
// a longer base delay than generic 5xx so the window actually clears.
type RetryPolicy struct {
	MaxAttempts    int
	BaseDelay      time.Duration
	RateLimitDelay time.Duration
	MaxDelay       time.Duration

	// rand is injectable for deterministic tests; nil uses math/rand.
	rand func() float64
}

// DefaultRetryPolicy matches the provider contract: up to 5 attempts,
// exponential backoff with ±20% jitter.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts:    5,
		BaseDelay:      2 * time.Second,
		RateLimitDelay: 10 * time.Second,
		MaxDelay:       2 * time.Minute,
	}
}

// Delay computes the wait before attempt n (1-based counting of the attempt
// that just failed). A Retry-After hint on the error overrides the computed
// backoff.
func (p RetryPolicy) Delay(attempt int, err error) time.Duration {
	if hint := RetryAfterHint(err); hint > 0 {
		if hint > p.MaxDelay {
			return p.MaxDelay
		}
		return hint
	}

	base := p.BaseDelay
	if IsRateLimited(err) {
		base = p.RateLimitDelay
	}
	delay := time.Duration(float64(base) * math.Pow(2, float64(attempt-1)))
	if delay > p.MaxDelay {
		delay = p.MaxDelay
	}

	random := p.rand
	if random == nil {
		random = rand.Float64
	}
	// ±20% jitter
	return time.Duration(float64(delay) * (0.8 + 0.4*random()))
}

// withRetry runs fn up to MaxAttempts times, sleeping the policy delay
// between retryable failures. Non-retryable errors return immediately.
func withRetry(ctx context.Context, policy RetryPolicy, provider string, fn func() error) error {
	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if !IsRetryable(lastErr) || attempt == policy.MaxAttempts {
			return lastErr
		}

		delay := policy.Delay(attempt, lastErr)
		slog.Warn("Provider call failed, retrying",
			"provider", provider,
			"attempt", attempt,
			"delay", delay,
			"error", lastErr,
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	return lastErr
}

// parseRetryAfter accepts both RFC 7231 forms of the Retry-After header:
// delay-seconds and HTTP-date.
func parseRetryAfter(value string, now time.Time) (time.Duration, bool) {
	if value == "" {
		return 0, false
	}
	if seconds, err := strconv.Atoi(value); err == nil {
		if seconds < 0 {
			return 0, false
		}
		return time.Duration(seconds) * time.Second, true
	}
	if at, err := http.ParseTime(value); err == nil {
		d := at.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, true
	}
	return 0, false
}
