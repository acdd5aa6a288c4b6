package scraper

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driven"
)

// Ensure RegexParser implements the interface.
var _ driven.ListPageParser = (*RegexParser)(nil)

// listRepoPattern matches one repository heading on a list page:
// the owner inside the muted span, the repo name in the anchor text.
var listRepoPattern = regexp.MustCompile(
	`<h3>\s*<a href="[^"]*">\s*<span class="text-normal">(\S+) / </span>(\S+)\s+</a>\s*</h3>`)

// RegexParser extracts star-list data from page HTML with fixed
// patterns. Any upstream markup change is a breaking external contract
// change, not a bug here.
type RegexParser struct{}

// NewRegexParser creates a regex-based list page parser.
func NewRegexParser() *RegexParser {
	return &RegexParser{}
}

// ParseStarLists extracts (slug, name) pairs from the stars page, in
// page order, duplicates preserved.
func (p *RegexParser) ParseStarLists(body, user string) []domain.StarList {
	pattern := regexp.MustCompile(fmt.Sprintf(
		`(?s)href="/stars/%s/lists/(\S+)".*?<h3 class="f4 text-bold no-wrap mr-3">(.*?)</h3>`,
		regexp.QuoteMeta(user)))

	matches := pattern.FindAllStringSubmatch(body, -1)
	lists := make([]domain.StarList, 0, len(matches))
	for _, m := range matches {
		lists = append(lists, domain.StarList{
			Slug: m[1],
			Name: strings.TrimSpace(m[2]),
		})
	}
	return lists
}

// ParseListRepos extracts (owner, repo) pairs from one list page.
func (p *RegexParser) ParseListRepos(body string) []domain.RepoRef {
	matches := listRepoPattern.FindAllStringSubmatch(body, -1)
	refs := make([]domain.RepoRef, 0, len(matches))
	for _, m := range matches {
		refs = append(refs, domain.RepoRef{Owner: m[1], Name: m[2]})
	}
	return refs
}
