package cli

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/adnahmed/gaze-stars/internal/connectors/github"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driving"
)

// mockFetcher implements driving.Fetcher for testing.
type mockFetcher struct {
	stats driving.FetchStats
	err   error
}

func (m *mockFetcher) Fetch(_ context.Context) (driving.FetchStats, error) {
	return m.stats, m.err
}

func setupFetchTest(m *mockFetcher) func() {
	oldFetcher := starFetcher
	starFetcher = m
	return func() {
		starFetcher = oldFetcher
	}
}

func TestFetchCmd_Use(t *testing.T) {
	assert.Equal(t, "fetch", fetchCmd.Use)
}

func TestFetchCmd_Short(t *testing.T) {
	assert.Equal(t, "Fetch starred repositories into the record store", fetchCmd.Short)
}

func TestFetchCmd_Executes(t *testing.T) {
	cleanup := setupFetchTest(&mockFetcher{
		stats: driving.FetchStats{Repos: 150, Pages: 2},
	})
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"fetch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Fetched 150 starred repositories (2 pages).")
}

func TestFetchCmd_WrapsFailure(t *testing.T) {
	cleanup := setupFetchTest(&mockFetcher{err: errors.New("boom")})
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"fetch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "fetch failed")
}

func TestFetchCmd_UnauthorizedHint(t *testing.T) {
	cleanup := setupFetchTest(&mockFetcher{
		err: &github.APIError{StatusCode: 401, Message: "Bad credentials"},
	})
	defer cleanup()

	rootCmd.SetOut(new(bytes.Buffer))
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetArgs([]string{"fetch"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "check GITHUB_TOKEN")
}
