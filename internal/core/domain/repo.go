package domain

import "fmt"

// StarredRepo is one starred repository as persisted in the record store.
// The JSON field names are the durable store contract and must not change.
type StarredRepo struct {
	// FullName is the "owner/repo" identifier and the unique record key.
	FullName string `json:"full_name"`

	// HTMLURL is the repository's web URL.
	HTMLURL string `json:"html_url"`

	// Description is the repository description, normalized to "" when absent.
	Description string `json:"description"`

	// Listed records category membership as of the last persisted render.
	// It is round-tripped through the store but never mutated by rendering;
	// the renderer derives membership with an explicit claimed-key pass.
	Listed bool `json:"listed"`

	// Stars is the stargazer count at fetch time.
	Stars int `json:"stars"`
}

// RepoIndex is the loaded view of the record store: a lookup by full name
// plus the file order, so order-sensitive rendering is deterministic.
type RepoIndex struct {
	// Repos maps full name to record.
	Repos map[string]*StarredRepo

	// Order holds full names in the order they were loaded.
	Order []string
}

// NewRepoIndex returns an empty index.
func NewRepoIndex() *RepoIndex {
	return &RepoIndex{Repos: make(map[string]*StarredRepo)}
}

// Add inserts a record, keeping first-seen order. A duplicate full name
// overwrites the record but keeps the original position.
func (ix *RepoIndex) Add(repo *StarredRepo) {
	if repo == nil || repo.FullName == "" {
		return
	}
	if _, ok := ix.Repos[repo.FullName]; !ok {
		ix.Order = append(ix.Order, repo.FullName)
	}
	ix.Repos[repo.FullName] = repo
}

// Get returns the record for a full name, or nil.
func (ix *RepoIndex) Get(fullName string) *StarredRepo {
	return ix.Repos[fullName]
}

// Len returns the number of records.
func (ix *RepoIndex) Len() int {
	return len(ix.Repos)
}

// RepoRef identifies a repository by owner and name, as scraped from a
// list page.
type RepoRef struct {
	Owner string
	Name  string
}

// FullName returns the "owner/repo" key for the reference.
func (r RepoRef) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}
