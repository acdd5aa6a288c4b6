package driven

import "github.com/adnahmed/gaze-stars/internal/core/domain"

// StarStore is the durable, append-only record stream for starred
// repositories. A fetch pass truncates and rewrites the store; a load
// pass reads it back in file order.
type StarStore interface {
	// Begin truncates the store and opens it for appending.
	// The returned writer must be closed by the caller.
	Begin() (StarWriter, error)

	// Load reads the store into an insertion-ordered index.
	// A missing store yields an empty index, not an error.
	// Malformed lines are skipped.
	Load() (*domain.RepoIndex, error)
}

// StarWriter appends records to an open store pass.
type StarWriter interface {
	// Append durably writes one record.
	Append(repo *domain.StarredRepo) error

	// Close flushes and releases the store.
	Close() error
}
