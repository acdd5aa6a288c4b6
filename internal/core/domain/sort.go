package domain

// SortMode controls table row ordering during rendering.
type SortMode string

const (
	// SortStars orders rows by star count, descending (stable).
	SortStars SortMode = "stars"

	// SortScrapeOrder is the fallback for any other value: rows are
	// emitted in the exact reverse of their input order.
	SortScrapeOrder SortMode = "scrape-order"
)

// ByStars reports whether rows should be ordered by star count.
// Any value other than "stars" means reverse-input-order.
func (m SortMode) ByStars() bool {
	return m == SortStars
}
