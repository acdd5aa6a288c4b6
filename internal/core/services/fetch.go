package services

import (
	"context"
	"fmt"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driven"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driving"
	"github.com/adnahmed/gaze-stars/internal/logger"
)

// Ensure FetchService implements the interface.
var _ driving.Fetcher = (*FetchService)(nil)

// FetchService runs the starred-repo fetch pass: every page from the
// source is appended to the store before the next page is requested, so
// memory stays bounded regardless of how many repos the account starred.
type FetchService struct {
	source driven.StarSource
	store  driven.StarStore
	user   string
}

// NewFetchService creates a fetch service for one account.
func NewFetchService(source driven.StarSource, store driven.StarStore, user string) *FetchService {
	return &FetchService{
		source: source,
		store:  store,
		user:   user,
	}
}

// Fetch validates credentials, truncates the store and streams all
// starred repositories into it. On error, pages already appended remain
// durably written; there is no further partial-success recovery.
func (s *FetchService) Fetch(ctx context.Context) (driving.FetchStats, error) {
	stats := driving.FetchStats{}

	if err := s.source.Validate(ctx); err != nil {
		return stats, fmt.Errorf("validate credentials: %w", err)
	}

	logger.Section("fetch starred repositories")

	w, err := s.store.Begin()
	if err != nil {
		return stats, fmt.Errorf("begin store pass: %w", err)
	}

	fetchErr := s.source.FetchStarred(ctx, s.user, func(page []*domain.StarredRepo) error {
		stats.Pages++
		for _, repo := range page {
			if err := w.Append(repo); err != nil {
				return fmt.Errorf("append %s: %w", repo.FullName, err)
			}
			stats.Repos++
		}
		return nil
	})

	closeErr := w.Close()
	if fetchErr != nil {
		return stats, fmt.Errorf("fetch starred: %w", fetchErr)
	}
	if closeErr != nil {
		return stats, fmt.Errorf("close store: %w", closeErr)
	}

	logger.Info("fetched %d repos across %d pages", stats.Repos, stats.Pages)
	return stats, nil
}
