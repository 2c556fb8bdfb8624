package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hireloft/career-pages-api/internal/entity"
	"github.com/hireloft/career-pages-api/internal/repository"
)

// CompaniesService exposes company lifecycle operations.
type CompaniesService struct {
	repo repository.CompaniesRepository
}

// NewCompaniesService creates a new instance of CompaniesService.
func NewCompaniesService(repo repository.CompaniesRepository) *CompaniesService {
	return &CompaniesService{repo: repo}
}

// CreateCompany validates the slug shape, then creates the company and its
// draft career page in one transaction. Validation failures never reach
// the store; a slug collision at persistence time surfaces as
// repository.ErrSlugTaken.
func (s *CompaniesService) CreateCompany(ctx context.Context, name, slug string, ownerID uuid.UUID) (*entity.Company, *entity.CareerPage, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil, ValidationError{Field: "name", Message: "must not be empty"}
	}

	slug = CanonicalSlug(slug)
	if slug == "" {
		slug = SlugFromName(name)
	}
	if err := ValidateSlug("slug", slug); err != nil {
		return nil, nil, err
	}

	return s.repo.CreateWithPage(ctx, name, slug, ownerID)
}

// ListCompanies returns the owner's companies, most recently created first.
func (s *CompaniesService) ListCompanies(ctx context.Context, ownerID uuid.UUID) ([]entity.Company, error) {
	return s.repo.ListByOwner(ctx, ownerID)
}

// GetCompany fetches one of the owner's companies.
func (s *CompaniesService) GetCompany(ctx context.Context, id, ownerID uuid.UUID) (*entity.Company, error) {
	return s.repo.FindByID(ctx, id, ownerID)
}
