package registry

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRetryConfig_Delay(t *testing.T) {
	cfg := RetryConfig{
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      1 * time.Second,
		BackoffFactor: 2.0,
		JitterFactor:  0.1,
	}

	for attempt := 1; attempt <= 10; attempt++ {
		d := cfg.delay(attempt)
		assert.GreaterOrEqual(t, d, time.Duration(0), "delay must never be negative")
		assert.LessOrEqual(t, d, cfg.MaxDelay+cfg.MaxDelay/10, "delay must respect the cap (plus jitter)")
	}
}

func TestRetryConfig_DelayGrows(t *testing.T) {
	cfg := RetryConfig{
		InitialDelay:  100 * time.Millisecond,
		MaxDelay:      time.Minute,
		BackoffFactor: 2.0,
	}

	assert.Equal(t, 100*time.Millisecond, cfg.delay(1))
	assert.Equal(t, 200*time.Millisecond, cfg.delay(2))
	assert.Equal(t, 400*time.Millisecond, cfg.delay(3))
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		err        error
		want       bool
	}{
		{name: "network error", err: errors.New("connection refused"), want: true},
		{name: "context canceled", err: context.Canceled, want: false},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: false},
		{name: "throttled", statusCode: http.StatusTooManyRequests, want: true},
		{name: "server error", statusCode: http.StatusBadGateway, want: true},
		{name: "client error", statusCode: http.StatusBadRequest, want: false},
		{name: "conflict", statusCode: http.StatusConflict, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRetryable(tt.statusCode, tt.err))
		})
	}
}
