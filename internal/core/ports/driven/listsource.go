package driven

import (
	"context"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
)

// ListSource discovers an account's star lists and enumerates their
// member repositories.
type ListSource interface {
	// DiscoverLists returns the account's star lists in page order,
	// duplicates preserved if the source page duplicates them.
	DiscoverLists(ctx context.Context, user string) ([]domain.StarList, error)

	// ListRepos enumerates the members of one list by requesting
	// sequential numbered pages starting at 1, stopping at the first
	// page that yields no matches. A page whose markup stopped matching
	// looks the same as the true end of the list.
	ListRepos(ctx context.Context, user, slug string) ([]domain.RepoRef, error)
}

// ListPageParser is the narrow HTML-matching capability behind
// ListSource. It isolates the matching strategy (regex today) so it can
// be swapped for a DOM-based parser without touching the pipeline.
type ListPageParser interface {
	// ParseStarLists extracts (slug, name) pairs from the stars page.
	ParseStarLists(body string, user string) []domain.StarList

	// ParseListRepos extracts (owner, repo) pairs from one list page.
	ParseListRepos(body string) []domain.RepoRef
}
