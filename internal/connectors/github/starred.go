package github

import (
	"context"
	"fmt"

	gh "github.com/google/go-github/v80/github"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driven"
	"github.com/adnahmed/gaze-stars/internal/logger"
)

// FetchStarred paginates the account's starred repositories and hands
// each page to fn before requesting the next. The last response's
// NextPage (parsed from the Link header's rel="next") drives pagination
// until exhausted.
func (c *Client) FetchStarred(ctx context.Context, user string, fn driven.PageFunc) error {
	if user == "" {
		return domain.ErrMissingUsername
	}

	opts := &gh.ActivityListStarredOptions{
		ListOptions: gh.ListOptions{PerPage: PerPage},
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if err := c.rateLimiter.Wait(ctx); err != nil {
			return fmt.Errorf("rate limit wait: %w", err)
		}

		starred, resp, err := c.gh.Activity.ListStarred(ctx, user, opts)
		if err != nil {
			return c.wrapError(err, "list starred")
		}

		c.updateRateLimitFromResponse(resp)

		page := make([]*domain.StarredRepo, 0, len(starred))
		for _, s := range starred {
			repo := s.GetRepository()
			if repo == nil {
				continue
			}
			page = append(page, &domain.StarredRepo{
				FullName:    repo.GetFullName(),
				HTMLURL:     repo.GetHTMLURL(),
				Description: repo.GetDescription(),
				Listed:      false,
				Stars:       repo.GetStargazersCount(),
			})
		}

		logger.Debug("fetched starred page %d: %d repos (remaining quota %d)",
			opts.Page, len(page), c.rateLimiter.Remaining())

		if err := fn(page); err != nil {
			return fmt.Errorf("handle page: %w", err)
		}

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return nil
}
