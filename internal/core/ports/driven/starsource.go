package driven

import (
	"context"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
)

// PageFunc receives one page of starred repositories. Returning an error
// aborts the fetch.
type PageFunc func(page []*domain.StarredRepo) error

// StarSource fetches the repositories an account has starred.
type StarSource interface {
	// Validate checks that the configured credential is usable by making
	// a lightweight API call.
	Validate(ctx context.Context) error

	// FetchStarred paginates the account's starred repositories and
	// invokes fn once per page, in order, before requesting the next
	// page. Pages are never buffered across calls, so memory stays
	// bounded regardless of how many repos the account starred.
	FetchStarred(ctx context.Context, user string, fn PageFunc) error
}
