package service

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/hireloft/career-pages-api/internal/dto"
	"github.com/hireloft/career-pages-api/internal/entity"
	"github.com/hireloft/career-pages-api/internal/repository"
)

// BulkAction enumerates the batch operations over job selections.
type BulkAction string

// Supported bulk actions.
const (
	BulkPublish   BulkAction = "publish"
	BulkUnpublish BulkAction = "unpublish"
	BulkDelete    BulkAction = "delete"
)

// JobsService exposes job posting operations, including the bulk
// mutation coordinator.
type JobsService struct {
	companies repository.CompaniesRepository
	jobs      repository.JobsRepository
}

// NewJobsService creates a new instance of JobsService.
func NewJobsService(companies repository.CompaniesRepository, jobs repository.JobsRepository) *JobsService {
	return &JobsService{companies: companies, jobs: jobs}
}

// CreateJob validates the job slug and inserts a draft posting.
func (s *JobsService) CreateJob(ctx context.Context, companyID, ownerID uuid.UUID, req dto.CreateJobRequest) (*entity.Job, error) {
	if _, err := s.companies.FindByID(ctx, companyID, ownerID); err != nil {
		return nil, err
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, ValidationError{Field: "title", Message: "must not be empty"}
	}

	jobSlug := CanonicalSlug(req.JobSlug)
	if jobSlug == "" {
		jobSlug = SlugFromName(req.Title)
	}
	if err := ValidateSlug("job_slug", jobSlug); err != nil {
		return nil, err
	}

	return s.jobs.Create(ctx, &entity.Job{
		CompanyID:   companyID,
		Title:       req.Title,
		Description: req.Description,
		JobSlug:     jobSlug,
		JobType:     strings.TrimSpace(req.JobType),
		Location:    strings.TrimSpace(req.Location),
	})
}

// ListJobs returns a company's jobs for its owner, newest activity first.
func (s *JobsService) ListJobs(ctx context.Context, companyID, ownerID uuid.UUID) ([]entity.Job, error) {
	if _, err := s.companies.FindByID(ctx, companyID, ownerID); err != nil {
		return nil, err
	}
	return s.jobs.ListByCompany(ctx, companyID, false)
}

// UpdateJob applies a partial update after ownership and slug checks.
func (s *JobsService) UpdateJob(ctx context.Context, jobID, ownerID uuid.UUID, req dto.UpdateJobRequest) (*entity.Job, error) {
	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if _, err := s.companies.FindByID(ctx, job.CompanyID, ownerID); err != nil {
		return nil, err
	}

	fields := repository.JobUpdate{
		Title:       req.Title,
		Description: req.Description,
		JobType:     req.JobType,
		Location:    req.Location,
		Published:   req.Published,
	}
	if req.JobSlug != nil {
		jobSlug := CanonicalSlug(*req.JobSlug)
		if err := ValidateSlug("job_slug", jobSlug); err != nil {
			return nil, err
		}
		fields.JobSlug = &jobSlug
	}

	return s.jobs.Update(ctx, jobID, fields)
}

// BulkJobAction applies one action to a non-empty set of job ids, scoped
// to one of the owner's companies. The store applies each action as a
// single statement; there is no cross-item transaction, so on error the
// batch state is uncertain and callers must re-fetch. The returned count
// is the number of rows the statement touched.
func (s *JobsService) BulkJobAction(ctx context.Context, companyID, ownerID uuid.UUID, ids []uuid.UUID, action BulkAction) (int64, error) {
	if len(ids) == 0 {
		return 0, ValidationError{Field: "job_ids", Message: "must not be empty"}
	}
	if _, err := s.companies.FindByID(ctx, companyID, ownerID); err != nil {
		return 0, err
	}

	switch action {
	case BulkPublish:
		return s.jobs.BulkSetPublished(ctx, companyID, ids, true)
	case BulkUnpublish:
		return s.jobs.BulkSetPublished(ctx, companyID, ids, false)
	case BulkDelete:
		return s.jobs.BulkDelete(ctx, companyID, ids)
	default:
		return 0, ValidationError{Field: "action", Message: "must be publish, unpublish or delete"}
	}
}
