package scraper

import (
	"context"
	"fmt"
	"net/http"

	"github.com/adnahmed/gaze-stars/internal/core/domain"
	"github.com/adnahmed/gaze-stars/internal/core/ports/driven"
	"github.com/adnahmed/gaze-stars/internal/logger"
)

// Ensure Scraper implements the interface.
var _ driven.ListSource = (*Scraper)(nil)

// BaseURL is the upstream host serving the star-list pages.
const BaseURL = "https://github.com"

// Scraper discovers star lists and enumerates their members.
type Scraper struct {
	http    *http.Client
	parser  driven.ListPageParser
	baseURL string
}

// Option customises a Scraper.
type Option func(*Scraper)

// WithHTTPClient overrides the HTTP client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(s *Scraper) { s.http = hc }
}

// WithBaseURL overrides the upstream host. Used by tests.
func WithBaseURL(url string) Option {
	return func(s *Scraper) { s.baseURL = url }
}

// New creates a scraper over the given parser.
func New(parser driven.ListPageParser, opts ...Option) *Scraper {
	s := &Scraper{
		http:    NewHTTPClient(),
		parser:  parser,
		baseURL: BaseURL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// DiscoverLists fetches the user's stars page and extracts the star
// lists in page order.
func (s *Scraper) DiscoverLists(ctx context.Context, user string) ([]domain.StarList, error) {
	if user == "" {
		return nil, domain.ErrMissingUsername
	}

	body, err := s.get(ctx, fmt.Sprintf("%s/%s?tab=stars", s.baseURL, user))
	if err != nil {
		return nil, fmt.Errorf("discover lists: %w", err)
	}

	lists := s.parser.ParseStarLists(body, user)
	logger.Debug("discovered %d star lists for %s", len(lists), user)
	return lists, nil
}

// ListRepos enumerates one list's members across its numbered pages.
// The first page yielding zero matches ends the list.
func (s *Scraper) ListRepos(ctx context.Context, user, slug string) ([]domain.RepoRef, error) {
	if user == "" {
		return nil, domain.ErrMissingUsername
	}

	var refs []domain.RepoRef
	for page := 1; ; page++ {
		url := fmt.Sprintf("%s/stars/%s/lists/%s?page=%d", s.baseURL, user, slug, page)
		body, err := s.get(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("list %s page %d: %w", slug, page, err)
		}

		matches := s.parser.ParseListRepos(body)
		if len(matches) == 0 {
			// A page with no matches ends the scan. A page whose
			// markup changed upstream looks the same.
			break
		}
		refs = append(refs, matches...)
	}

	logger.Debug("list %s: %d repos", slug, len(refs))
	return refs, nil
}
