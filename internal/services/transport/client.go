package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

const defaultTimeout = 30 * time.Second

// Client is the shared HTTP sender for the API bindings. It attaches the
// bearer token, executes the request, and retries throttled or transient
// failures with exponential backoff, honoring Retry-After when the server
// provides one. API clients stay oblivious to all of this: they build
// requests and decode responses.
type Client struct {
	token  string
	http   *http.Client
	policy RetryPolicy
	logger logrus.FieldLogger
}

// Option customizes a Client during construction.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithRetryPolicy overrides the default retry policy.
func WithRetryPolicy(p RetryPolicy) Option {
	return func(c *Client) {
		c.policy = p
	}
}

// WithLogger overrides the default logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewClient creates a transport client authenticating with token.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		token:  token,
		http:   &http.Client{Timeout: defaultTimeout},
		policy: DefaultRetryPolicy(),
		logger: logrus.StandardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do executes req with authorization attached. Requests that fail with a
// network error or a retryable status (429, 5xx) are retried up to the
// policy's attempt budget; the last response or error is returned as-is so
// callers see the real outcome. Requests with a body are only retried when
// the body can be replayed via GetBody.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))

	attempts := c.policy.attempts()
	if !replayable(req) {
		attempts = 1
	}

	var lastErr error
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			if err := rewind(req); err != nil {
				return nil, err
			}
		}

		resp, err := c.http.Do(req)
		if err != nil {
			lastErr = err
			if attempt == attempts-1 {
				break
			}
			delay := c.policy.backoff(attempt)
			c.logger.Debugf("%s %s failed (%v), retrying in %s", req.Method, req.URL, err, delay)
			if serr := c.policy.sleep(req.Context(), delay); serr != nil {
				return nil, serr
			}
			continue
		}

		if !retryableStatus(resp.StatusCode) || attempt == attempts-1 {
			return resp, nil
		}

		delay := RetryAfterDelay(resp.Header.Get("Retry-After"), c.policy.backoff(attempt))
		c.logger.Debugf("%s %s got %s, retrying in %s", req.Method, req.URL, resp.Status, delay)
		resp.Body.Close()
		lastErr = fmt.Errorf("%s %s: %s", req.Method, req.URL, resp.Status)
		if serr := c.policy.sleep(req.Context(), delay); serr != nil {
			return nil, serr
		}
	}

	return nil, lastErr
}

// replayable reports whether req can safely be sent more than once.
func replayable(req *http.Request) bool {
	return req.Body == nil || req.GetBody != nil
}

// rewind restores the request body before a re-send.
func rewind(req *http.Request) error {
	if req.Body == nil || req.GetBody == nil {
		return nil
	}
	body, err := req.GetBody()
	if err != nil {
		return fmt.Errorf("failed to rewind request body: %w", err)
	}
	req.Body = body
	return nil
}
