package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/nexent-labs/modelctl/internal/logger"
)

const (
	// DefaultTimeout is the default timeout for registry requests
	DefaultTimeout = 30 * time.Second

	createPath      = "/api/model/create"
	listPath        = "/api/model/list"
	deletePath      = "/api/model/delete"
	healthcheckPath = "/api/model/healthcheck"
)

// HTTPDoer is the minimal HTTP client surface needed by Client, allowing
// custom clients in tests.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// APIError is an error response from the registry service.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("registry returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("registry returned status %d: %s", e.StatusCode, e.Detail)
}

// Client talks to the remote model registry API.
type Client struct {
	baseURL   string
	token     string
	userAgent string

	http    HTTPDoer
	limiter *rate.Limiter
	retry   RetryConfig
	logger  logger.Logger
}

// Option is a function that configures the client
type Option func(*Client)

// WithToken sets the bearer token used to authenticate requests.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(httpClient HTTPDoer) Option {
	return func(c *Client) { c.http = httpClient }
}

// WithTimeout sets a custom timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if hc, ok := c.http.(*http.Client); ok {
			hc.Timeout = timeout
		}
	}
}

// WithRateLimit caps outgoing requests at the given requests per second.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithRetry sets the retry policy for transient failures.
func WithRetry(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// WithClientLogger sets the logger for request-level diagnostics.
func WithClientLogger(log logger.Logger) Option {
	return func(c *Client) { c.logger = log }
}

// NewClient creates a client for the registry at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:   strings.TrimRight(baseURL, "/"),
		userAgent: "modelctl/1.0",
		http:      &http.Client{Timeout: DefaultTimeout},
		retry:     DefaultRetryConfig(),
		logger:    logger.Discard,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CreateModel registers one model configuration with the registry.
func (c *Client) CreateModel(ctx context.Context, m ModelConfig) error {
	applyDefaults(&m)

	_, err := c.do(ctx, http.MethodPost, createPath, nil, m)
	if err != nil {
		return fmt.Errorf("creating model %q: %w", m.Label(), err)
	}
	return nil
}

// ListModels returns the models currently registered.
func (c *Client) ListModels(ctx context.Context) ([]RemoteModel, error) {
	body, err := c.do(ctx, http.MethodGet, listPath, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("listing models: %w", err)
	}

	var envelope struct {
		Data []RemoteModel `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("decoding model list: %w", err)
	}

	return envelope.Data, nil
}

// DeleteModel removes the model with the given display name.
func (c *Client) DeleteModel(ctx context.Context, displayName string) error {
	query := url.Values{"display_name": {displayName}}

	_, err := c.do(ctx, http.MethodPost, deletePath, query, nil)
	if err != nil {
		return fmt.Errorf("deleting model %q: %w", displayName, err)
	}
	return nil
}

// HealthCheck asks the registry to verify connectivity to the model
// endpoint. It returns the reported connectivity; a model unknown to the
// registry yields an error.
func (c *Client) HealthCheck(ctx context.Context, displayName string) (bool, error) {
	query := url.Values{"display_name": {displayName}}

	body, err := c.do(ctx, http.MethodPost, healthcheckPath, query, nil)
	if err != nil {
		return false, fmt.Errorf("verifying model %q: %w", displayName, err)
	}

	var envelope struct {
		Data struct {
			Connectivity bool `json:"connectivity"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return false, fmt.Errorf("decoding healthcheck response for %q: %w", displayName, err)
	}

	return envelope.Data.Connectivity, nil
}

// do performs one API request with rate limiting and retries on transient
// failures, returning the response body.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body interface{}) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshaling request body: %w", err)
		}
	}

	var lastErr error
	for attempt := 0; attempt <= c.retry.MaxRetries; attempt++ {
		if attempt > 0 {
			c.logger.Debugf("retrying %s %s (attempt %d/%d)", method, path, attempt, c.retry.MaxRetries)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(c.retry.delay(attempt)):
			}
		}

		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return nil, fmt.Errorf("rate limit wait: %w", err)
			}
		}

		data, retryable, err := c.doOnce(ctx, method, endpoint, payload)
		if err == nil {
			return data, nil
		}

		lastErr = err
		if !retryable {
			return nil, err
		}
	}

	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) doOnce(ctx context.Context, method, endpoint string, payload []byte) ([]byte, bool, error) {
	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reqBody)
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, isRetryable(0, err), fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading response body: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Detail: errorDetail(data)}
		return nil, isRetryable(resp.StatusCode, nil), apiErr
	}

	return data, false, nil
}

// errorDetail extracts the server's "detail" message from an error body,
// falling back to the raw body text.
func errorDetail(body []byte) string {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return payload.Detail
	}
	return strings.TrimSpace(string(body))
}
