package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hireloft/career-pages-api/internal/cache"
	"github.com/hireloft/career-pages-api/internal/dto"
	"github.com/hireloft/career-pages-api/internal/repository"
	"github.com/hireloft/career-pages-api/internal/service"
)

// PublicHandler serves the unauthenticated career page surface. Only
// published content is ever visible here.
type PublicHandler struct {
	pages        *service.PagesService
	applications *service.ApplicationsService
	companies    repository.CompaniesRepository
	cache        *cache.Cache
	cacheTTL     time.Duration
}

// NewPublicHandler creates a new handler instance.
func NewPublicHandler(pages *service.PagesService, applications *service.ApplicationsService, companies repository.CompaniesRepository, cache *cache.Cache, cacheTTL time.Duration) *PublicHandler {
	return &PublicHandler{pages: pages, applications: applications, companies: companies, cache: cache, cacheTTL: cacheTTL}
}

// Page handles GET /careers/:slug requests. Draft and absent pages are
// both 404: external consumers cannot tell them apart.
func (h *PublicHandler) Page(c echo.Context) error {
	slug := c.Param("slug")
	ctx := c.Request().Context()

	// The cache key is scoped to the company ID so owner mutations can
	// invalidate it, so the slug has to be resolved first.
	company, err := h.companies.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) {
			return Error(c, http.StatusNotFound, "career page not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to load career page")
	}

	key := cache.PublicPageKey(company.ID)
	var cached service.PublicPage
	if h.cache.GetJSON(ctx, key, &cached) == nil {
		return Success(c, http.StatusOK, "career page retrieved", cached)
	}

	page, err := h.pages.GetPublicPage(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) || errors.Is(err, repository.ErrCareerPageNotFound) {
			return Error(c, http.StatusNotFound, "career page not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to load career page")
	}
	h.cache.SetJSON(ctx, key, page, h.cacheTTL)

	return Success(c, http.StatusOK, "career page retrieved", page)
}

// Job handles GET /careers/:slug/jobs/:jobSlug requests. A published job
// under a draft page is not reachable.
func (h *PublicHandler) Job(c echo.Context) error {
	job, err := h.pages.GetPublicJob(c.Request().Context(), c.Param("slug"), c.Param("jobSlug"))
	if err != nil {
		if errors.Is(err, repository.ErrCompanyNotFound) ||
			errors.Is(err, repository.ErrCareerPageNotFound) ||
			errors.Is(err, repository.ErrJobNotFound) {
			return Error(c, http.StatusNotFound, "job not found")
		}
		return Error(c, http.StatusInternalServerError, "failed to load job")
	}

	return Success(c, http.StatusOK, "job retrieved", job)
}

// Apply handles POST /careers/:slug/jobs/:jobSlug/apply requests.
func (h *PublicHandler) Apply(c echo.Context) error {
	var req dto.ApplyRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid payload")
	}

	application, err := h.applications.Apply(c.Request().Context(), c.Param("slug"), c.Param("jobSlug"), req)
	if err != nil {
		return respondError(c, err, "failed to submit application")
	}

	return Success(c, http.StatusCreated, "application received", application)
}
