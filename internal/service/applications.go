package service

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"
	"golang.org/x/net/idna"

	"github.com/hireloft/career-pages-api/internal/dto"
	"github.com/hireloft/career-pages-api/internal/entity"
	"github.com/hireloft/career-pages-api/internal/repository"
)

var (
	emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-']+@[a-z0-9.-]+\.[a-z]{2,}$`)
	idnaProfile  = idna.Lookup
)

const defaultPhoneRegion = "US"

// ApplicationsService accepts candidate submissions against published
// jobs and lists them for owners.
type ApplicationsService struct {
	pages        *PagesService
	companies    repository.CompaniesRepository
	jobs         repository.JobsRepository
	applications repository.ApplicationsRepository
	phoneRegion  string
}

// NewApplicationsService creates a new instance of ApplicationsService.
func NewApplicationsService(pages *PagesService, companies repository.CompaniesRepository, jobs repository.JobsRepository, applications repository.ApplicationsRepository, phoneRegion string) *ApplicationsService {
	region := strings.ToUpper(strings.TrimSpace(phoneRegion))
	if region == "" {
		region = defaultPhoneRegion
	}
	return &ApplicationsService{
		pages:        pages,
		companies:    companies,
		jobs:         jobs,
		applications: applications,
		phoneRegion:  region,
	}
}

// Apply records an application against a published job on a published
// page. Email and phone are normalized before the write; shape failures
// never reach the store.
func (s *ApplicationsService) Apply(ctx context.Context, slug, jobSlug string, req dto.ApplyRequest) (*entity.Application, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ValidationError{Field: "name", Message: "must not be empty"}
	}

	email, ok := normalizeEmail(req.Email)
	if !ok {
		return nil, ValidationError{Field: "email", Message: "must be a valid email address"}
	}

	var phone *string
	if raw := strings.TrimSpace(req.Phone); raw != "" {
		normalized := normalizePhone(raw, s.phoneRegion)
		if normalized == "" {
			return nil, ValidationError{Field: "phone", Message: "must be a valid phone number"}
		}
		phone = &normalized
	}

	var resumeURL *string
	if raw := strings.TrimSpace(req.ResumeURL); raw != "" {
		resumeURL = &raw
	}

	job, err := s.pages.GetPublicJob(ctx, slug, jobSlug)
	if err != nil {
		return nil, err
	}

	return s.applications.Create(ctx, &entity.Application{
		JobID:     job.ID,
		Name:      name,
		Email:     email,
		Phone:     phone,
		ResumeURL: resumeURL,
	})
}

// ListApplications returns a job's applications for its owner.
func (s *ApplicationsService) ListApplications(ctx context.Context, jobID, ownerID uuid.UUID) ([]entity.Application, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if _, err := s.companies.FindByID(ctx, job.CompanyID, ownerID); err != nil {
		return nil, err
	}
	return s.applications.ListByJob(ctx, jobID)
}

func normalizeEmail(raw string) (string, bool) {
	email := strings.ToLower(strings.TrimSpace(raw))
	parts := strings.SplitN(email, "@", 2)
	if len(parts) != 2 {
		return "", false
	}
	// Internationalized domains are folded to punycode before the shape
	// check, so the pattern only ever sees ASCII.
	asciiDomain, err := idnaProfile.ToASCII(parts[1])
	if err != nil || asciiDomain == "" {
		return "", false
	}
	email = parts[0] + "@" + asciiDomain
	if !emailPattern.MatchString(email) {
		return "", false
	}
	return email, true
}

func normalizePhone(raw, region string) string {
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return ""
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return ""
	}
	return phonenumbers.Format(number, phonenumbers.E164)
}
