package vision

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedRand(v float64) func() float64 {
	return func() float64 { return v }
}

func TestDelayExponentialBackoff(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 5,
		BaseDelay:   2 * time.Second,
		MaxDelay:    2 * time.Minute,
		rand:        fixedRand(0.5), // jitter factor exactly 1.0
	}
	err := &ProviderError{Kind: KindServer}

	assert.Equal(t, 2*time.Second, policy.Delay(1, err))
	assert.Equal(t, 4*time.Second, policy.Delay(2, err))
	assert.Equal(t, 8*time.Second, policy.Delay(3, err))
	assert.Equal(t, 16*time.Second, policy.Delay(4, err))
}

func TestDelayJitterBounds(t *testing.T) {
	base := RetryPolicy{MaxAttempts: 5, BaseDelay: 10 * time.Second, MaxDelay: time.Hour}
	err := &ProviderError{Kind: KindServer}

	low := base
	low.rand = fixedRand(0)
	high := base
	high.rand = fixedRand(1)

	assert.Equal(t, 8*time.Second, low.Delay(1, err))
	assert.Equal(t, 12*time.Second, high.Delay(1, err))
}

func TestDelayRateLimitedUsesLongerBase(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts:    5,
		BaseDelay:      2 * time.Second,
		RateLimitDelay: 10 * time.Second,
		MaxDelay:       2 * time.Minute,
		rand:           fixedRand(0.5),
	}

	assert.Equal(t, 10*time.Second, policy.Delay(1, &ProviderError{Kind: KindRateLimited}))
	// Overload is treated like a rate limit.
	assert.Equal(t, 20*time.Second, policy.Delay(2, &ProviderError{Kind: KindOverloaded}))
}

func TestDelayCappedAtMax(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts: 10,
		BaseDelay:   2 * time.Second,
		MaxDelay:    30 * time.Second,
		rand:        fixedRand(0.5),
	}
	assert.Equal(t, 30*time.Second, policy.Delay(9, &ProviderError{Kind: KindServer}))
}

func TestDelayHonorsRetryAfterHint(t *testing.T) {
	policy := DefaultRetryPolicy()
	policy.rand = fixedRand(0.5)

	err := &ProviderError{Kind: KindRateLimited, RetryAfter: 7 * time.Second}
	assert.Equal(t, 7*time.Second, policy.Delay(1, err), "hint overrides computed backoff")

	huge := &ProviderError{Kind: KindRateLimited, RetryAfter: time.Hour}
	assert.Equal(t, policy.MaxDelay, policy.Delay(1, huge), "hint is still capped")
}

func TestParseRetryAfter(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	d, ok := parseRetryAfter("30", now)
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, d)

	d, ok = parseRetryAfter(now.Add(90*time.Second).Format(time.RFC1123), now)
	require.True(t, ok)
	assert.Equal(t, 90*time.Second, d)

	// A date in the past clamps to zero rather than going negative.
	d, ok = parseRetryAfter(now.Add(-time.Minute).Format(time.RFC1123), now)
	require.True(t, ok)
	assert.Equal(t, time.Duration(0), d)

	_, ok = parseRetryAfter("", now)
	assert.False(t, ok)
	_, ok = parseRetryAfter("-5", now)
	assert.False(t, ok)
	_, ok = parseRetryAfter("soonish", now)
	assert.False(t, ok)
}

func TestWithRetryStopsOnNonRetryable(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, rand: fixedRand(0.5)}

	calls := 0
	err := withRetry(context.Background(), policy, "test", func() error {
		calls++
		return &ProviderError{Kind: KindRefusal, Message: "cannot process"}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls, "refusals must not be retried")
}

func TestWithRetryExhaustsBudget(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 3, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, rand: fixedRand(0.5)}

	calls := 0
	err := withRetry(context.Background(), policy, "test", func() error {
		calls++
		return &ProviderError{Kind: KindServer, Status: 500}
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetrySucceedsAfterTransientFailure(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Millisecond, MaxDelay: time.Millisecond, rand: fixedRand(0.5)}

	calls := 0
	err := withRetry(context.Background(), policy, "test", func() error {
		calls++
		if calls < 3 {
			return &ProviderError{Kind: KindNetwork, Err: errors.New("connection reset")}
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetryRespectsContext(t *testing.T) {
	policy := RetryPolicy{MaxAttempts: 5, BaseDelay: time.Hour, MaxDelay: time.Hour, rand: fixedRand(0.5)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := withRetry(ctx, policy, "test", func() error {
		return &ProviderError{Kind: KindServer, Status: 503}
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestKindForStatus(t *testing.T) {
	assert.Equal(t, KindRateLimited, kindForStatus(429))
	assert.Equal(t, KindOverloaded, kindForStatus(529))
	assert.Equal(t, KindServer, kindForStatus(500))
	assert.Equal(t, KindServer, kindForStatus(503))
	assert.Equal(t, KindTooLarge, kindForStatus(413))
	assert.Equal(t, KindInvalid, kindForStatus(400))
}
