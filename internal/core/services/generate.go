package services

import (
	"context"
	"fmt"
	"os"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driven"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driving"
	"github.com/adnahmed/gaze-stars/internal/logger"
	"github.com/adnahmed/gaze-stars/internal/render"
)

// Ensure GenerateService implements the interfaces.
var (
	_ driving.Generator     = (*GenerateService)(nil)
	_ driving.ListInspector = (*GenerateService)(nil)
)

// GenerateService runs the render pass: discover star lists, enumerate
// their members, load the record store and write the categorized README.
type GenerateService struct {
	listSource   driven.ListSource
	store        driven.StarStore
	user         string
	templatePath string
	outputPath   string
	sortBy       domain.SortMode
}

// NewGenerateService creates a generate service for one account.
func NewGenerateService(
	listSource driven.ListSource,
	store driven.StarStore,
	user string,
	templatePath string,
	outputPath string,
	sortBy domain.SortMode,
) *GenerateService {
	return &GenerateService{
		listSource:   listSource,
		store:        store,
		user:         user,
		templatePath: templatePath,
		outputPath:   outputPath,
		sortBy:       sortBy,
	}
}

// Generate renders the README and overwrites the output file.
func (s *GenerateService) Generate(ctx context.Context) (driving.GenerateStats, error) {
	stats := driving.GenerateStats{}

	lists, members, err := s.discover(ctx)
	if err != nil {
		return stats, err
	}
	stats.Lists = len(lists)

	ix, err := s.store.Load()
	if err != nil {
		return stats, fmt.Errorf("load store: %w", err)
	}
	logger.Info("loaded %d repos from store", ix.Len())

	logger.Section("render readme")
	res := render.Readme(ix, lists, members, s.sortBy)
	stats.Categorized = res.Categorized
	stats.Uncategorized = res.Uncategorized

	doc, err := render.ApplyTemplate(s.templatePath, res.Text)
	if err != nil {
		return stats, err
	}

	if err := os.WriteFile(s.outputPath, []byte(doc), 0o644); err != nil {
		return stats, fmt.Errorf("write output %s: %w", s.outputPath, err)
	}
	stats.Output = s.outputPath

	logger.Info("wrote %s: %d categorized, %d uncategorized",
		s.outputPath, stats.Categorized, stats.Uncategorized)
	return stats, nil
}

// Lists exposes discovered star lists for inspection commands.
func (s *GenerateService) Lists(ctx context.Context, withMembers bool) ([]domain.StarList, domain.Membership, error) {
	if !withMembers {
		lists, err := s.listSource.DiscoverLists(ctx, s.user)
		return lists, domain.Membership{}, err
	}

	lists, members, err := s.discover(ctx)
	return lists, members, err
}

// discover runs list discovery then member enumeration. Duplicate slugs
// on the stars page are enumerated once; discovery order is preserved.
func (s *GenerateService) discover(ctx context.Context) ([]domain.StarList, domain.Membership, error) {
	logger.Section("scrape star lists")

	lists, err := s.listSource.DiscoverLists(ctx, s.user)
	if err != nil {
		return nil, nil, fmt.Errorf("discover lists: %w", err)
	}

	members := domain.Membership{}
	for _, list := range lists {
		if _, ok := members[list.Slug]; ok {
			continue
		}
		refs, err := s.listSource.ListRepos(ctx, s.user, list.Slug)
		if err != nil {
			return nil, nil, fmt.Errorf("enumerate list %s: %w", list.Slug, err)
		}
		members[list.Slug] = refs
	}

	return lists, members, nil
}
