package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
)

const (
	// UncategorizedTitle heads the fallback table for unclaimed repos.
	UncategorizedTitle = "Uncategorized Repositories"

	tableHeader    = "| Repository | Description | Stars |\n|----------|------|-------|\n"
	placeholderRow = "| *All repositories are categorized* | | |\n"
)

// Result is a rendered document plus row accounting for reporting.
type Result struct {
	// Text is the document body: TOC followed by all section tables.
	Text string

	// Categorized is the number of rows emitted under list tables.
	Categorized int

	// Uncategorized is the number of rows in the fallback table.
	Uncategorized int
}

// row pairs a record key with its loaded record.
type row struct {
	key  string
	repo *domain.StarredRepo
}

// Readme renders the full document. Lists are processed in discovery
// order; a repository belongs to the first list whose membership claims
// it, and to the uncategorized table if no list does. Membership keys
// with no loaded record (unstarred after being categorized) are dropped.
func Readme(ix *domain.RepoIndex, lists []domain.StarList, members domain.Membership, mode domain.SortMode) Result {
	var b strings.Builder
	claimed := make(map[string]bool)
	res := Result{}

	sections := make([]string, 0, len(lists)+1)
	for _, list := range lists {
		sections = append(sections, list.Name)
	}
	sections = append(sections, UncategorizedTitle)

	for _, list := range lists {
		rows := make([]row, 0, len(members[list.Slug]))
		for _, ref := range members[list.Slug] {
			key := ref.FullName()
			if claimed[key] {
				continue
			}
			repo := ix.Get(key)
			if repo == nil {
				continue
			}
			claimed[key] = true
			rows = append(rows, row{key: key, repo: repo})
		}
		orderRows(rows, mode)

		fmt.Fprintf(&b, "## %s\n\n", list.Name)
		b.WriteString(tableHeader)
		for _, r := range rows {
			writeRow(&b, r)
		}
		b.WriteString("\n")
		res.Categorized += len(rows)
	}

	rows := make([]row, 0, ix.Len())
	for _, key := range ix.Order {
		if !claimed[key] {
			rows = append(rows, row{key: key, repo: ix.Get(key)})
		}
	}
	orderRows(rows, mode)

	fmt.Fprintf(&b, "## %s\n\n", UncategorizedTitle)
	b.WriteString(tableHeader)
	if len(rows) == 0 {
		b.WriteString(placeholderRow)
	}
	for _, r := range rows {
		writeRow(&b, r)
	}
	b.WriteString("\n")
	res.Uncategorized = len(rows)

	res.Text = BuildTOC(sections) + b.String()
	return res
}

// writeRow emits one table row. The repository link is derived from the
// full name; pipes in the description are escaped so the table survives.
func writeRow(b *strings.Builder, r row) {
	desc := strings.ReplaceAll(r.repo.Description, "|", "\\|")
	fmt.Fprintf(b, "| [%s](https://github.com/%s) | %s | ⭐%d |\n", r.key, r.key, desc, r.repo.Stars)
}

// orderRows applies the sort mode in place: star count descending
// (stable) for SortStars, exact reverse of input order otherwise.
func orderRows(rows []row, mode domain.SortMode) {
	if mode.ByStars() {
		sort.SliceStable(rows, func(i, j int) bool {
			return rows[i].repo.Stars > rows[j].repo.Stars
		})
		return
	}
	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
}
