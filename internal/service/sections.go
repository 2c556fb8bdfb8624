package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hireloft/career-pages-api/internal/entity"
	"github.com/hireloft/career-pages-api/internal/repository"
)

// SectionDefaults maps section types to the title and body a new section
// starts with. The mapping is injected so it is testable and swappable.
type SectionDefaults struct {
	Titles        map[entity.SectionType]string
	FallbackTitle string
}

// DefaultSectionDefaults returns the stock title table.
func DefaultSectionDefaults() SectionDefaults {
	return SectionDefaults{
		Titles: map[entity.SectionType]string{
			entity.SectionAbout:    "About Us",
			entity.SectionCulture:  "Our Culture",
			entity.SectionBenefits: "Benefits",
			entity.SectionTeam:     "Meet the Team",
			entity.SectionValues:   "Our Values",
		},
		FallbackTitle: "New Section",
	}
}

// TitleFor resolves the default title for a section type. Unknown types
// fall back to the generic label.
func (d SectionDefaults) TitleFor(sectionType entity.SectionType) string {
	if title, ok := d.Titles[sectionType]; ok {
		return title
	}
	return d.FallbackTitle
}

// SectionsService maintains the ordered composition of a career page.
type SectionsService struct {
	repo     repository.SectionsRepository
	defaults SectionDefaults
}

// NewSectionsService creates a new instance of SectionsService.
func NewSectionsService(repo repository.SectionsRepository, defaults SectionDefaults) *SectionsService {
	return &SectionsService{repo: repo, defaults: defaults}
}

// CreateSection appends a section at the end of the page's order. The
// order slot is assigned atomically in the store; strictly sequential
// appends yield exactly 0..n-1.
func (s *SectionsService) CreateSection(ctx context.Context, pageID uuid.UUID, rawType string, title *string) (*entity.PageSection, error) {
	sectionType := entity.SectionType(strings.ToLower(strings.TrimSpace(rawType)))
	if sectionType == "" {
		return nil, ValidationError{Field: "type", Message: "must not be empty"}
	}
	if !sectionType.Valid() {
		sectionType = entity.SectionCustom
	}

	resolvedTitle := s.defaults.TitleFor(sectionType)
	if title != nil && strings.TrimSpace(*title) != "" {
		resolvedTitle = strings.TrimSpace(*title)
	}

	return s.repo.Append(ctx, pageID, sectionType, resolvedTitle, "")
}

// GetSection fetches a single section by id.
func (s *SectionsService) GetSection(ctx context.Context, id uuid.UUID) (*entity.PageSection, error) {
	return s.repo.Find(ctx, id)
}

// UpdateSection applies only the supplied fields. It does not detect or
// repair gaps or duplicates a caller introduces through a raw order value;
// ReorderSections is the safe path for moving sections.
func (s *SectionsService) UpdateSection(ctx context.Context, id uuid.UUID, title, content *string, order *int, visible *bool) (*entity.PageSection, error) {
	if order != nil && *order < 0 {
		return nil, ValidationError{Field: "order", Message: "must not be negative"}
	}
	return s.repo.Update(ctx, id, title, content, order, visible)
}

// DeleteSection removes the section, leaving a gap in the order sequence.
func (s *SectionsService) DeleteSection(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}

// ListSections returns the page's sections sorted by order ascending.
func (s *SectionsService) ListSections(ctx context.Context, pageID uuid.UUID) ([]entity.PageSection, error) {
	return s.repo.List(ctx, pageID)
}

// ReorderSections atomically rewrites the page's order values to follow
// the supplied id sequence.
func (s *SectionsService) ReorderSections(ctx context.Context, pageID uuid.UUID, sectionIDs []uuid.UUID) error {
	if len(sectionIDs) == 0 {
		return ValidationError{Field: "section_ids", Message: "must not be empty"}
	}
	seen := make(map[uuid.UUID]struct{}, len(sectionIDs))
	for _, id := range sectionIDs {
		if _, dup := seen[id]; dup {
			return ValidationError{Field: "section_ids", Message: "contains duplicate ids"}
		}
		seen[id] = struct{}{}
	}
	return s.repo.Reorder(ctx, pageID, sectionIDs)
}
