package github

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func responseWithHeaders(remaining, limit int, reset time.Time) *http.Response {
	h := http.Header{}
	h.Set(HeaderRateRemaining, strconv.Itoa(remaining))
	h.Set(HeaderRateLimit, strconv.Itoa(limit))
	h.Set(HeaderRateReset, strconv.FormatInt(reset.Unix(), 10))
	return &http.Response{Header: h}
}

func TestRateLimiter_UpdateFromResponse(t *testing.T) {
	t.Run("tracks headers", func(t *testing.T) {
		r := NewRateLimiter()
		reset := time.Now().Add(time.Hour)

		r.UpdateFromResponse(responseWithHeaders(42, 5000, reset))

		assert.Equal(t, 42, r.Remaining())
		assert.Equal(t, 5000, r.Limit())
		assert.Equal(t, reset.Unix(), r.ResetTime().Unix())
	})

	t.Run("ignores nil and headerless responses", func(t *testing.T) {
		r := NewRateLimiter()

		r.UpdateFromResponse(nil)
		r.UpdateFromResponse(&http.Response{Header: http.Header{}})

		assert.Equal(t, GitHubRateLimit, r.Remaining())
	})
}

func TestRateLimiter_Wait(t *testing.T) {
	t.Run("returns promptly while quota remains", func(t *testing.T) {
		r := NewRateLimiter()
		r.UpdateFromResponse(responseWithHeaders(100, 5000, time.Now().Add(time.Hour)))

		start := time.Now()
		err := r.Wait(context.Background())

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("sleeps past reset plus margin when quota is exhausted", func(t *testing.T) {
		r := NewRateLimiter()
		// Reset already ResetMargin in the past: reset+margin is now, so
		// the wait is a no-op rather than a real sleep.
		r.UpdateFromResponse(responseWithHeaders(0, 5000, time.Now().Add(-ResetMargin)))

		start := time.Now()
		err := r.Wait(context.Background())

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 2*time.Second)
	})

	t.Run("exhausted quota wait honors cancellation", func(t *testing.T) {
		r := NewRateLimiter()
		r.UpdateFromResponse(responseWithHeaders(0, 5000, time.Now().Add(time.Hour)))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		err := r.Wait(ctx)

		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("zero remaining before any response does not block", func(t *testing.T) {
		// Header state is only trusted once a response has been seen.
		r := NewRateLimiter()

		assert.NoError(t, r.Wait(context.Background()))
	})
}
