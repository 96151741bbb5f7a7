package registry

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"net/http"
	"time"
)

// RetryConfig controls how transient request failures are retried.
type RetryConfig struct {
	MaxRetries    int
	InitialDelay  time.Duration
	MaxDelay      time.Duration
	BackoffFactor float64
	JitterFactor  float64
}

// DefaultRetryConfig returns the retry configuration used when none is
// supplied.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:    3,
		InitialDelay:  500 * time.Millisecond,
		MaxDelay:      15 * time.Second,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
	}
}

// delay calculates the backoff delay before the given attempt (1-based).
func (c RetryConfig) delay(attempt int) time.Duration {
	d := float64(c.InitialDelay) * math.Pow(c.BackoffFactor, float64(attempt-1))
	if d > float64(c.MaxDelay) {
		d = float64(c.MaxDelay)
	}

	jitter := d * c.JitterFactor * (2*rand.Float64() - 1)
	d += jitter

	if d < 0 {
		d = 0
	}
	return time.Duration(d)
}

// isRetryable reports whether a request outcome is worth retrying. Network
// errors and throttling or server-side statuses are transient; everything
// else is not.
func isRetryable(statusCode int, err error) bool {
	if err != nil {
		// Context cancellation must win over retrying.
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return false
		}
		return true
	}

	switch {
	case statusCode == http.StatusTooManyRequests:
		return true
	case statusCode >= 500:
		return true
	default:
		return false
	}
}
