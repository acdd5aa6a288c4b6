package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	gh "github.com/google/go-github/v80/github"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2"

	"github.com/adnahmed/gaze-stars/internal/core/ports/driven"
)

// Ensure Client implements the interface.
var _ driven.StarSource = (*Client)(nil)

const (
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 10 * time.Second

	// MaxRetries is the maximum number of retries for transient errors.
	MaxRetries = 5

	// RetryWaitMin is the base delay between retries.
	RetryWaitMin = time.Second

	// RetryWaitMax caps the exponential backoff growth.
	RetryWaitMax = 30 * time.Second

	// PerPage is the page size for list requests.
	PerPage = 100
)

// retriableStatuses are the response codes retried at the transport
// layer. Anything else propagates immediately.
var retriableStatuses = map[int]bool{
	http.StatusTooManyRequests:     true,
	http.StatusInternalServerError: true,
	http.StatusBadGateway:          true,
	http.StatusServiceUnavailable:  true,
	http.StatusGatewayTimeout:      true,
}

// Client wraps the go-github client with retry, auth and rate limiting.
type Client struct {
	gh          *gh.Client
	rateLimiter *RateLimiter
}

// NewClient creates a GitHub API client with a static access token.
func NewClient(ctx context.Context, token string) *Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = MaxRetries
	retry.RetryWaitMin = RetryWaitMin
	retry.RetryWaitMax = RetryWaitMax
	retry.Logger = nil
	retry.CheckRetry = checkRetry
	retry.HTTPClient.Transport = &oauth2.Transport{
		Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
	}
	// Per-attempt timeout. The outer client carries no deadline so
	// backoff between attempts is not cut short.
	retry.HTTPClient.Timeout = DefaultTimeout

	return &Client{
		gh:          gh.NewClient(retry.StandardClient()),
		rateLimiter: NewRateLimiter(),
	}
}

// NewClientWithHTTPClient creates a client over a caller-supplied
// http.Client. Used by tests to point at a stub server.
func NewClientWithHTTPClient(httpClient *http.Client) *Client {
	return &Client{
		gh:          gh.NewClient(httpClient),
		rateLimiter: NewRateLimiter(),
	}
}

// checkRetry restricts retries to idempotent reads failing with one of
// the retriable statuses. Transport-level errors defer to the default
// policy so unrecoverable ones (TLS, too many redirects) are not retried.
func checkRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}
	if resp.Request != nil {
		switch resp.Request.Method {
		case http.MethodGet, http.MethodHead:
		default:
			return false, nil
		}
	}
	return retriableStatuses[resp.StatusCode], nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// Validate checks if the configured token is valid by making an API call.
func (c *Client) Validate(ctx context.Context) error {
	if err := c.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	_, resp, err := c.gh.Users.Get(ctx, "")
	if err != nil {
		return c.wrapError(err, "validate credentials")
	}

	c.updateRateLimitFromResponse(resp)
	return nil
}

// updateRateLimitFromResponse updates the rate limiter from GitHub
// response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) {
		return &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
			URL:        ghErr.Response.Request.URL.String(),
		}
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   c.rateLimiter.ResetTime(),
			Remaining: c.rateLimiter.Remaining(),
			Limit:     c.rateLimiter.Limit(),
		}
	}

	return fmt.Errorf("%s: %w", operation, err)
}
