package handler

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/cache"
	"github.com/hireloft/career-pages-api/internal/dto"
	"github.com/hireloft/career-pages-api/internal/entity"
	"github.com/hireloft/career-pages-api/internal/service"
)

// JobsHandler exposes job posting endpoints, including bulk actions.
type JobsHandler struct {
	jobs         *service.JobsService
	applications *service.ApplicationsService
	cache        *cache.Cache
}

// NewJobsHandler creates a new handler instance.
func NewJobsHandler(jobs *service.JobsService, applications *service.ApplicationsService, cache *cache.Cache) *JobsHandler {
	return &JobsHandler{jobs: jobs, applications: applications, cache: cache}
}

// Create handles POST /companies/:id/jobs requests.
func (h *JobsHandler) Create(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}
	companyID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	var req dto.CreateJobRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	job, err := h.jobs.CreateJob(c.Request().Context(), companyID, owner, req)
	if err != nil {
		return respondError(c, err, "failed to create job")
	}

	return Success(c, http.StatusCreated, "job created", job)
}

// List handles GET /companies/:id/jobs requests.
func (h *JobsHandler) List(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}
	companyID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	jobs, err := h.jobs.ListJobs(c.Request().Context(), companyID, owner)
	if err != nil {
		return respondError(c, err, "failed to list jobs")
	}
	if jobs == nil {
		jobs = []entity.Job{}
	}

	return Success(c, http.StatusOK, "jobs retrieved", jobs)
}

// Update handles PATCH /jobs/:id requests, including single-job publish
// flips via the published field.
func (h *JobsHandler) Update(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}
	jobID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid job id")
	}

	var req dto.UpdateJobRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	job, err := h.jobs.UpdateJob(c.Request().Context(), jobID, owner, req)
	if err != nil {
		return respondError(c, err, "failed to update job")
	}

	h.cache.Delete(c.Request().Context(), cache.PublicPageKey(job.CompanyID), cache.SitemapKey)
	return Success(c, http.StatusOK, "job updated", job)
}

// Bulk handles POST /companies/:id/jobs/bulk requests. The outcome is
// reported at batch granularity only; on error the client must re-fetch
// the list rather than assume nothing changed.
func (h *JobsHandler) Bulk(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}
	companyID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid company id")
	}

	var req dto.BulkJobActionRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	ids := make([]uuid.UUID, 0, len(req.JobIDs))
	for _, raw := range req.JobIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return Error(c, http.StatusBadRequest, "invalid job id in list")
		}
		ids = append(ids, id)
	}

	action := service.BulkAction(strings.ToLower(strings.TrimSpace(req.Action)))
	affected, err := h.jobs.BulkJobAction(c.Request().Context(), companyID, owner, ids, action)
	if err != nil {
		return respondError(c, err, "bulk action failed")
	}

	h.cache.Delete(c.Request().Context(), cache.PublicPageKey(companyID), cache.SitemapKey)
	return Success(c, http.StatusOK, "bulk action applied", dto.BulkJobActionResponse{
		Action:   string(action),
		Affected: affected,
	})
}

// Applications handles GET /jobs/:id/applications requests.
func (h *JobsHandler) Applications(c echo.Context) error {
	owner, ok := ownerID(c)
	if !ok {
		return Error(c, http.StatusUnauthorized, "missing principal")
	}
	jobID, err := paramUUID(c, "id")
	if err != nil {
		return Error(c, http.StatusBadRequest, "invalid job id")
	}

	applications, err := h.applications.ListApplications(c.Request().Context(), jobID, owner)
	if err != nil {
		return respondError(c, err, "failed to list applications")
	}
	if applications == nil {
		applications = []entity.Application{}
	}

	return Success(c, http.StatusOK, "applications retrieved", applications)
}
