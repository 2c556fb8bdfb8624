package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hireloft/career-pages-api/internal/entity"
	"github.com/hireloft/career-pages-api/internal/repository"
)

// PagesService governs career page state: theme updates and the
// draft/published flip. A page has exactly two states and flipping has no
// precondition beyond existence and ownership.
type PagesService struct {
	companies repository.CompaniesRepository
	sections  repository.SectionsRepository
	jobs      repository.JobsRepository
}

// NewPagesService creates a new instance of PagesService.
func NewPagesService(companies repository.CompaniesRepository, sections repository.SectionsRepository, jobs repository.JobsRepository) *PagesService {
	return &PagesService{companies: companies, sections: sections, jobs: jobs}
}

// GetPage returns the owner's career page for a company.
func (s *PagesService) GetPage(ctx context.Context, companyID, ownerID uuid.UUID) (*entity.CareerPage, error) {
	if _, err := s.companies.FindByID(ctx, companyID, ownerID); err != nil {
		return nil, err
	}
	return s.companies.FindPage(ctx, companyID)
}

// UpdateTheme patches the page's theme.
func (s *PagesService) UpdateTheme(ctx context.Context, companyID, ownerID uuid.UUID, theme string) (*entity.CareerPage, error) {
	if _, err := s.companies.FindByID(ctx, companyID, ownerID); err != nil {
		return nil, err
	}
	return s.companies.UpdatePage(ctx, companyID, &theme, nil)
}

// SetPublished flips the page's publish flag. Unpublishing leaves the
// company's job flags untouched; discoverability conjoins both flags, so
// jobs under a draft page are never externally reachable.
func (s *PagesService) SetPublished(ctx context.Context, companyID, ownerID uuid.UUID, published bool) (*entity.CareerPage, error) {
	if _, err := s.companies.FindByID(ctx, companyID, ownerID); err != nil {
		return nil, err
	}
	return s.companies.UpdatePage(ctx, companyID, nil, &published)
}

// PublicPage is the externally visible rendering input for a published
// career page: visible sections in display order plus published jobs.
type PublicPage struct {
	Company  entity.Company       `json:"company"`
	Page     entity.CareerPage    `json:"page"`
	Sections []entity.PageSection `json:"sections"`
	Jobs     []entity.Job         `json:"jobs"`
}

// GetPublicPage assembles the public view for a company slug. It returns
// repository.ErrCareerPageNotFound when the page is absent or still a
// draft; external consumers cannot tell the two apart.
func (s *PagesService) GetPublicPage(ctx context.Context, slug string) (*PublicPage, error) {
	company, err := s.companies.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	page, err := s.companies.FindPage(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if !page.Published {
		return nil, repository.ErrCareerPageNotFound
	}

	sections, err := s.sections.List(ctx, page.ID)
	if err != nil {
		return nil, err
	}
	visible := make([]entity.PageSection, 0, len(sections))
	for _, section := range sections {
		if section.Visible {
			visible = append(visible, section)
		}
	}

	jobs, err := s.jobs.ListByCompany(ctx, company.ID, true)
	if err != nil {
		return nil, err
	}

	return &PublicPage{
		Company:  *company,
		Page:     *page,
		Sections: visible,
		Jobs:     jobs,
	}, nil
}

// GetPublicJob returns a published job on a published page. A published
// job under a draft page is not independently reachable.
func (s *PagesService) GetPublicJob(ctx context.Context, slug, jobSlug string) (*entity.Job, error) {
	company, err := s.companies.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	page, err := s.companies.FindPage(ctx, company.ID)
	if err != nil {
		return nil, err
	}
	if !page.Published {
		return nil, repository.ErrJobNotFound
	}

	return s.jobs.FindPublicBySlug(ctx, company.ID, jobSlug)
}
