package driving

import (
	"context"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
)

// FetchStats summarises a completed fetch pass.
type FetchStats struct {
	// Repos is the number of records written to the store.
	Repos int

	// Pages is the number of API pages consumed.
	Pages int
}

// GenerateStats summarises a completed render pass.
type GenerateStats struct {
	// Lists is the number of star lists discovered.
	Lists int

	// Categorized is the number of repositories claimed by a list table.
	Categorized int

	// Uncategorized is the number of repositories in the fallback table.
	Uncategorized int

	// Output is the path the document was written to.
	Output string
}

// Fetcher runs the starred-repo fetch pass into the durable store.
type Fetcher interface {
	Fetch(ctx context.Context) (FetchStats, error)
}

// Generator scrapes star lists, loads the store, and renders the README.
type Generator interface {
	Generate(ctx context.Context) (GenerateStats, error)
}

// ListInspector exposes discovered star lists for inspection commands.
type ListInspector interface {
	// Lists discovers the account's star lists. When withMembers is
	// true, each list's membership is enumerated as well.
	Lists(ctx context.Context, withMembers bool) ([]domain.StarList, domain.Membership, error)
}
