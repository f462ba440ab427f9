package service

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/campushire/recruit-portal/internal/core/domain"
	"github.com/campushire/recruit-portal/internal/core/ports"
	"github.com/campushire/recruit-portal/internal/metrics"
)

// JobSearchService runs keyword/location searches over job listings and
// keeps the search state shareable through an encoded address. The address
// is the source of truth on entry (SeedFromURL); local state is the source
// of truth thereafter.
type JobSearchService struct {
	api ports.JobAPI
	log zerolog.Logger

	mu       sync.Mutex
	title    string
	position string
	location string
	results  []domain.JobListing
	loading  bool
	// searchGen implements last-initiated-wins: only the most recently
	// started search may publish results or clear the loading flag.
	searchGen uint64
}

func NewJobSearchService(api ports.JobAPI, log zerolog.Logger) *JobSearchService {
	return &JobSearchService{api: api, log: log}
}

// Search fetches listings for the given filters and replaces the result set.
// An empty query is valid and returns the unfiltered listing set. Overlapping
// searches are not sequenced; a stale response is discarded.
func (s *JobSearchService) Search(ctx context.Context, title, position, location string) error {
	s.mu.Lock()
	s.title = title
	s.position = position
	s.location = location
	s.loading = true
	s.searchGen++
	gen := s.searchGen
	s.mu.Unlock()

	query := strings.TrimSpace(strings.TrimSpace(title) + " " + strings.TrimSpace(position))
	filtered := "false"
	if query != "" || location != "" {
		filtered = "true"
	}
	metrics.SearchesTotal.WithLabelValues(filtered).Inc()

	jobs, err := s.api.List(ctx, query, location)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.searchGen {
		s.log.Debug().Str("q", query).Msg("discarding stale search result")
		return nil
	}
	s.loading = false
	if err != nil {
		return err
	}
	s.results = jobs
	s.log.Debug().Str("q", query).Str("location", location).Int("results", len(jobs)).Msg("search completed")
	return nil
}

// SeedFromURL applies address parameters on initial entry and runs the
// seeded search. Absent parameters stay empty.
func (s *JobSearchService) SeedFromURL(ctx context.Context, params url.Values) error {
	return s.Search(ctx, params.Get("title"), params.Get("position"), params.Get("location"))
}

// Address encodes the current filters as the navigable query string, so a
// reload or bookmark reproduces the same search. Written on explicit search
// only, never continuously.
func (s *JobSearchService) Address() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	params := url.Values{}
	if s.title != "" {
		params.Set("title", s.title)
	}
	if s.position != "" {
		params.Set("position", s.position)
	}
	if s.location != "" {
		params.Set("location", s.location)
	}
	return params.Encode()
}

// Results returns the current result set. Each search fully replaces it.
func (s *JobSearchService) Results() []domain.JobListing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.JobListing, len(s.results))
	copy(out, s.results)
	return out
}

// Loading reports whether the most recently initiated search is still in
// flight.
func (s *JobSearchService) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}
