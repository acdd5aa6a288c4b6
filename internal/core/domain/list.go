package domain

// StarList is a user-curated star list (category) discovered from the
// user's stars page. Lists are read-only after discovery.
type StarList struct {
	// Slug is the opaque list identifier from the page URL, used to
	// request the list's numbered pages.
	Slug string

	// Name is the display name as it appears on the page.
	Name string
}

// Membership maps a list slug to its member repositories in page-scan
// order. The order reflects scraping, not any stable repository ordering.
type Membership map[string][]RepoRef
