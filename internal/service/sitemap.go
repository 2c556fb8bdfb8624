package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/hireloft/career-pages-api/internal/repository"
)

// IndexEntry is one externally linkable URL with freshness metadata.
type IndexEntry struct {
	URL          string    `json:"url"`
	LastModified time.Time `json:"last_modified"`
	Priority     float64   `json:"priority"`
}

// Priorities assigned per entry kind.
const (
	priorityRoot = 1.0
	priorityPage = 0.8
	priorityJob  = 0.6
)

// SitemapService derives the set of externally discoverable URLs from
// current publish flags. It is a pure derived view with no side effects
// and can be recomputed at any time from row state alone.
type SitemapService struct {
	companies repository.CompaniesRepository
	jobs      repository.JobsRepository
	baseURL   string
	now       func() time.Time
}

// NewSitemapService creates a new instance of SitemapService.
func NewSitemapService(companies repository.CompaniesRepository, jobs repository.JobsRepository, baseURL string) *SitemapService {
	return &SitemapService{
		companies: companies,
		jobs:      jobs,
		baseURL:   strings.TrimRight(baseURL, "/"),
		now:       time.Now,
	}
}

// BuildIndex enumerates published content: the site root, then each
// company with a published career page (most recently updated first), and
// under each the company's published jobs carrying a non-empty slug (most
// recently updated first). A published job under a draft page is never
// included. Ordering is cosmetic but stable for unchanged input.
func (s *SitemapService) BuildIndex(ctx context.Context) ([]IndexEntry, error) {
	entries := []IndexEntry{{
		URL:          s.baseURL + "/",
		LastModified: s.now().UTC(),
		Priority:     priorityRoot,
	}}

	published, err := s.companies.ListPublished(ctx)
	if err != nil {
		return nil, fmt.Errorf("enumerate published pages: %w", err)
	}

	for _, pc := range published {
		entries = append(entries, IndexEntry{
			URL:          fmt.Sprintf("%s/careers/%s", s.baseURL, pc.Company.Slug),
			LastModified: orGenerated(pc.PageUpdatedAt, s.now),
			Priority:     priorityPage,
		})

		jobs, err := s.jobs.ListByCompany(ctx, pc.Company.ID, true)
		if err != nil {
			return nil, fmt.Errorf("enumerate published jobs for %s: %w", pc.Company.Slug, err)
		}
		for _, job := range jobs {
			if job.JobSlug == "" {
				continue
			}
			entries = append(entries, IndexEntry{
				URL:          fmt.Sprintf("%s/careers/%s/jobs/%s", s.baseURL, pc.Company.Slug, job.JobSlug),
				LastModified: orGenerated(job.UpdatedAt, s.now),
				Priority:     priorityJob,
			})
		}
	}

	return entries, nil
}

func orGenerated(ts time.Time, now func() time.Time) time.Time {
	if ts.IsZero() {
		return now().UTC()
	}
	return ts.UTC()
}
