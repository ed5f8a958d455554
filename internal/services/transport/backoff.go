package transport

import (
	"context"
	"net/http"
	"strconv"
	"time"
)

const (
	DefaultMaxAttempts = 3
	DefaultBaseDelay   = 500 * time.Millisecond
)

// RetryPolicy controls how failed requests are retried.
type RetryPolicy struct {
	// MaxAttempts is the total number of attempts (including the first).
	// If zero or negative, DefaultMaxAttempts is used.
	MaxAttempts int

	// BaseDelay is the starting delay. Each retry is doubled (exponential
	// backoff). If zero, DefaultBaseDelay is used.
	BaseDelay time.Duration

	// Sleeper allows tests to override sleeping. If nil, waiting is done
	// with a timer that honors request cancellation.
	Sleeper func(time.Duration)
}

// DefaultRetryPolicy returns the policy used when none is configured.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: DefaultMaxAttempts,
		BaseDelay:   DefaultBaseDelay,
	}
}

func (p RetryPolicy) attempts() int {
	if p.MaxAttempts <= 0 {
		return DefaultMaxAttempts
	}
	return p.MaxAttempts
}

// backoff returns the delay before the retry following attempt (0-based).
// No jitter for determinism in tests.
func (p RetryPolicy) backoff(attempt int) time.Duration {
	base := p.BaseDelay
	if base <= 0 {
		base = DefaultBaseDelay
	}
	return base * time.Duration(1<<attempt)
}

// sleep waits for d or until ctx is done, whichever comes first.
func (p RetryPolicy) sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	if p.Sleeper != nil {
		p.Sleeper(d)
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// retryableStatus reports whether a response status is worth retrying.
// 429 covers the API's per-domain rate limiting; 5xx covers transient
// server trouble.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

// RetryAfterDelay parses an HTTP Retry-After header value and returns the
// advised delay. If parsing fails or the header is empty, fallback is
// returned.
func RetryAfterDelay(header string, fallback time.Duration) time.Duration {
	if header == "" {
		return fallback
	}

	if secs, err := strconv.Atoi(header); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second
	}

	if ts, err := http.ParseTime(header); err == nil {
		now := time.Now()
		if ts.After(now) {
			return ts.Sub(now)
		}
		return 0
	}

	return fallback
}
