package render

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultSlug is the fallback anchor for names that slugify to nothing.
const DefaultSlug = "section"

// Slug character classes match the rendering platform's anchor rules:
// word characters (unicode letters, digits, underscore), whitespace and
// hyphens survive; whitespace runs collapse to single hyphens.
var (
	slugStrip    = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	slugCollapse = regexp.MustCompile(`\s+`)
)

// Slugify derives an anchor slug from a section name.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugStrip.ReplaceAllString(slug, "")
	slug = slugCollapse.ReplaceAllString(slug, "-")
	if slug == "" {
		return DefaultSlug
	}
	return slug
}

// BuildTOC renders the table of contents for the given section names.
// Empty names are skipped; colliding slugs are disambiguated by
// appending -1, -2, ... in encounter order, mirroring the platform's
// anchor-collision behavior so links resolve. Returns "" when no
// sections remain.
func BuildTOC(sections []string) string {
	cleaned := make([]string, 0, len(sections))
	for _, s := range sections {
		if s != "" {
			cleaned = append(cleaned, s)
		}
	}
	if len(cleaned) == 0 {
		return ""
	}

	counts := make(map[string]int)
	lines := []string{"## TOC", ""}
	for _, section := range cleaned {
		slug := Slugify(section)
		unique := slug
		if n := counts[slug]; n > 0 {
			unique = fmt.Sprintf("%s-%d", slug, n)
		}
		counts[slug]++
		lines = append(lines, fmt.Sprintf("- [%s](#%s)", section, unique))
	}
	lines = append(lines, "")
	return strings.Join(lines, "\n")
}
