package scraper

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

const (
	// DefaultTimeout is the per-request HTTP timeout.
	DefaultTimeout = 10 * time.Second

	// MaxRetries is the maximum number of retries for transient errors.
	MaxRetries = 5

	// RetryWaitMin is the base delay between retries.
	RetryWaitMin = time.Second

	// RetryWaitMax caps the exponential backoff growth.
	RetryWaitMax = 30 * time.Second

	// UserAgent identifies scrape requests upstream.
	UserAgent = "gaze-stars"
)

// NewHTTPClient returns the retrying client used for scrape requests.
// The default retry policy covers 429 and 5xx with exponential backoff;
// no scraper-specific retry is layered on top.
func NewHTTPClient() *http.Client {
	retry := retryablehttp.NewClient()
	retry.RetryMax = MaxRetries
	retry.RetryWaitMin = RetryWaitMin
	retry.RetryWaitMax = RetryWaitMax
	retry.Logger = nil
	// Per-attempt timeout. The outer client carries no deadline so
	// backoff between attempts is not cut short.
	retry.HTTPClient.Timeout = DefaultTimeout

	return retry.StandardClient()
}

// get fetches a page body. A non-2xx status that survived the retry
// policy is a hard failure.
func (s *Scraper) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("get %s: unexpected status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
